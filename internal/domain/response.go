package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SubmissionResponse is whatever the remote endpoint answered. Data is kept
// raw because its shape differs between success and failure and is never
// enforced.
type SubmissionResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
}

var errInvalidJSON = errors.New("answer is not valid JSON")

// DecodeSubmissionResponse reads an answer body with JavaScript truthiness.
// A falsy body (null, false, 0, "") means no response at all and yields nil.
// An object takes its success flag from the truthiness of "success". Any
// other JSON value is a failure without data.
func DecodeSubmissionResponse(body []byte) (*SubmissionResponse, error) {
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		return nil, errInvalidJSON
	}

	if !truthy(trimmed) {
		return nil, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return &SubmissionResponse{}, nil
	}

	resp := &SubmissionResponse{Success: truthy(obj["success"])}
	if data, ok := obj["data"]; ok {
		resp.Data = data
	}
	return resp, nil
}

// truthy follows JavaScript: absent, null, false, 0 and "" are false; every
// other value, empty objects and arrays included, is true.
func truthy(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}

	switch trimmed[0] {
	case 'n', 'f':
		return false
	case 't', '{', '[':
		return true
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return false
		}
		return s != ""
	default:
		n, err := strconv.ParseFloat(string(trimmed), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return false
		}
		return n != 0
	}
}

// Message renders the response the way the form shows it to the user.
func (r *SubmissionResponse) Message() string {
	if r == nil {
		return ""
	}

	if r.Success {
		fields := decodeObject(r.Data)
		return fmt.Sprintf("Success! Request ID: %s, Name: %s, Request Date: %s",
			fields["requestId"], fields["name"], fields["requestDate"])
	}

	return "Error: " + renderValue(r.Data)
}

// decodeObject flattens a JSON object into display strings. Anything that is
// not an object yields an empty map.
func decodeObject(raw json.RawMessage) map[string]string {
	out := make(map[string]string)

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return out
	}
	for k, v := range obj {
		out[k] = renderValue(v)
	}
	return out
}

// renderValue prints strings without quotes, null as nothing and any other
// JSON as its compact text.
func renderValue(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return strings.TrimSpace(string(trimmed))
	}
	return buf.String()
}

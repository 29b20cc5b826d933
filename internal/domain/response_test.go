package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/DanielPopoola/cardform/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionResponse_Message(t *testing.T) {
	t.Run("success interpolates request details", func(t *testing.T) {
		var resp domain.SubmissionResponse
		require.NoError(t, json.Unmarshal([]byte(`{
			"success": true,
			"data": {"requestId": "req-42", "name": "Ada", "requestDate": "2024-06-15"}
		}`), &resp))

		assert.Equal(t, "Success! Request ID: req-42, Name: Ada, Request Date: 2024-06-15", resp.Message())
	})

	t.Run("numeric request id is printed as is", func(t *testing.T) {
		resp := domain.SubmissionResponse{
			Success: true,
			Data:    json.RawMessage(`{"requestId": 1234, "name": "Ada", "requestDate": null}`),
		}

		assert.Equal(t, "Success! Request ID: 1234, Name: Ada, Request Date: ", resp.Message())
	})

	t.Run("failure prints the data string", func(t *testing.T) {
		resp := domain.SubmissionResponse{
			Success: false,
			Data:    json.RawMessage(`"Card declined"`),
		}

		assert.Equal(t, "Error: Card declined", resp.Message())
	})

	t.Run("failure with structured data prints compact json", func(t *testing.T) {
		resp := domain.SubmissionResponse{
			Data: json.RawMessage(`{ "reason" : "declined" }`),
		}

		assert.Equal(t, `Error: {"reason":"declined"}`, resp.Message())
	})

	t.Run("failure without data", func(t *testing.T) {
		assert.Equal(t, "Error: ", (&domain.SubmissionResponse{}).Message())
	})

	t.Run("nil response renders nothing", func(t *testing.T) {
		var resp *domain.SubmissionResponse
		assert.Equal(t, "", resp.Message())
	})
}

func TestDecodeSubmissionResponse(t *testing.T) {
	t.Run("object answer keeps success and data", func(t *testing.T) {
		resp, err := domain.DecodeSubmissionResponse([]byte(`{"success":true,"data":{"requestId":"r-1"}}`))

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.True(t, resp.Success)
		assert.JSONEq(t, `{"requestId":"r-1"}`, string(resp.Data))
	})

	t.Run("falsy bodies mean no response", func(t *testing.T) {
		for _, body := range []string{`null`, ` null `, `false`, `0`, `""`} {
			resp, err := domain.DecodeSubmissionResponse([]byte(body))

			require.NoError(t, err, body)
			assert.Nil(t, resp, body)
			assert.Empty(t, resp.Message(), body)
		}
	})

	t.Run("success flag follows truthiness", func(t *testing.T) {
		tests := []struct {
			body string
			want bool
		}{
			{`{"success":"yes"}`, true},
			{`{"success":1}`, true},
			{`{"success":{}}`, true},
			{`{"success":[]}`, true},
			{`{"success":"false"}`, true},
			{`{"success":""}`, false},
			{`{"success":0}`, false},
			{`{"success":-0.0}`, false},
			{`{"success":null}`, false},
			{`{"data":"x"}`, false},
		}

		for _, tt := range tests {
			resp, err := domain.DecodeSubmissionResponse([]byte(tt.body))

			require.NoError(t, err, tt.body)
			require.NotNil(t, resp, tt.body)
			assert.Equal(t, tt.want, resp.Success, tt.body)
		}
	})

	t.Run("truthy non object answer is a failure without data", func(t *testing.T) {
		for _, body := range []string{`"accepted"`, `42`, `[1,2]`, `true`} {
			resp, err := domain.DecodeSubmissionResponse([]byte(body))

			require.NoError(t, err, body)
			require.NotNil(t, resp, body)
			assert.False(t, resp.Success, body)
			assert.Equal(t, "Error: ", resp.Message(), body)
		}
	})

	t.Run("invalid json is an error", func(t *testing.T) {
		_, err := domain.DecodeSubmissionResponse([]byte(`<html>oops</html>`))

		assert.Error(t, err)
	})
}

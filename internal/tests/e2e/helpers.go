package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strconv"
	"testing"
	"time"

	"github.com/DanielPopoola/cardform/internal/api"
	"github.com/DanielPopoola/cardform/internal/tests/e2e/testdata"
	"github.com/stretchr/testify/require"
)

// TestClient drives the JSON API the way a browser session would.
type TestClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTestClient(t *testing.T, baseURL string) *TestClient {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &TestClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
		},
	}
}

// APIError is a non 2xx answer of the form API.
type APIError struct {
	Status int
	Code   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Status, e.Code)
}

func (c *TestClient) do(t *testing.T, method, path string, body any) (*api.FormView, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if resp.StatusCode >= 400 {
		var errResp api.ErrorResponse
		json.Unmarshal(bodyBytes, &errResp)
		return nil, &APIError{Status: resp.StatusCode, Code: errResp.Error.Code}
	}

	var view api.FormViewResponse
	require.NoError(t, json.Unmarshal(bodyBytes, &view))
	return &view.Data, nil
}

func (c *TestClient) View(t *testing.T) *api.FormView {
	view, err := c.do(t, http.MethodGet, "/api/form", nil)
	require.NoError(t, err)
	return view
}

func (c *TestClient) Update(t *testing.T, field, value string) (*api.FormView, error) {
	return c.do(t, http.MethodPatch, "/api/form", map[string]string{
		"field": field,
		"value": value,
	})
}

func (c *TestClient) Submit(t *testing.T) (*api.FormView, error) {
	return c.do(t, http.MethodPost, "/api/form/submit", nil)
}

// Fill types every field of card into the session form.
func (c *TestClient) Fill(t *testing.T, card testdata.TestCard) *api.FormView {
	t.Helper()

	var view *api.FormView
	for _, kv := range [][2]string{
		{"name", card.Name},
		{"cardNo", card.CardNumber},
		{"cvv", card.CVV},
		{"expiryMonth", strconv.Itoa(card.ExpiryMonth)},
		{"expiryYear", strconv.Itoa(card.ExpiryYear)},
	} {
		var err error
		view, err = c.Update(t, kv[0], kv[1])
		require.NoError(t, err, "field %s", kv[0])
	}
	return view
}

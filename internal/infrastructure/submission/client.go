package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/DanielPopoola/cardform/internal/application"
	"github.com/DanielPopoola/cardform/internal/config"
	"github.com/DanielPopoola/cardform/internal/domain"
)

// HTTPSubmissionClient posts the card form to a fixed endpoint. It sets no
// timeout and never retries.
type HTTPSubmissionClient struct {
	endpointURL string
	origin      string
	httpClient  *http.Client
}

func NewSubmissionClient(cfg config.SubmissionConfig) *HTTPSubmissionClient {
	return &HTTPSubmissionClient{
		endpointURL: cfg.EndpointURL,
		origin:      cfg.Origin,
		httpClient:  &http.Client{},
	}
}

var _ application.Submitter = (*HTTPSubmissionClient)(nil)

// Submit sends form exactly as held, card number included as typed. The body
// of the answer is decoded whatever the status code; only transport and
// decoding failures are errors. A falsy JSON body yields a nil response.
func (c *HTTPSubmissionClient) Submit(ctx context.Context, form domain.FormData) (*domain.SubmissionResponse, error) {
	jsonData, err := json.Marshal(form)
	if err != nil {
		return nil, &application.SubmissionError{
			Kind: application.SubmissionErrorEncode,
			Err:  fmt.Errorf("error marshalling json: %w", err),
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(jsonData))
	if err != nil {
		return nil, &application.SubmissionError{
			Kind: application.SubmissionErrorTransport,
			Err:  fmt.Errorf("error creating request: %w", err),
		}
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Origin", c.origin)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &application.SubmissionError{
			Kind: application.SubmissionErrorTransport,
			Err:  fmt.Errorf("error making request: %w", err),
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &application.SubmissionError{
			Kind:       application.SubmissionErrorTransport,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("error reading response: %w", err),
		}
	}

	submissionResp, err := domain.DecodeSubmissionResponse(body)
	if err != nil {
		return nil, &application.SubmissionError{
			Kind:       application.SubmissionErrorDecode,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("error decoding json response: %w", err),
		}
	}

	return submissionResp, nil
}

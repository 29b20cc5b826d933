package application

import (
	"context"

	"github.com/DanielPopoola/cardform/internal/domain"
)

// Submitter is the port for the remote card endpoint.
type Submitter interface {
	Submit(ctx context.Context, form domain.FormData) (*domain.SubmissionResponse, error)
}

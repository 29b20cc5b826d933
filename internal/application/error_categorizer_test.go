package application_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/DanielPopoola/cardform/internal/application"
	"github.com/DanielPopoola/cardform/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want application.ErrorCategory
	}{
		{"nil", nil, ""},
		{"deadline", fmt.Errorf("wrapped: %w", context.DeadlineExceeded), application.CategoryTransient},
		{"transport", &application.SubmissionError{Kind: application.SubmissionErrorTransport, Err: errors.New("dial tcp")}, application.CategoryTransient},
		{"decode", &application.SubmissionError{Kind: application.SubmissionErrorDecode, StatusCode: 502, Err: errors.New("invalid character")}, application.CategoryPermanent},
		{"encode", &application.SubmissionError{Kind: application.SubmissionErrorEncode, Err: errors.New("boom")}, application.CategoryInfrastructure},
		{"form invalid", application.ErrFormInvalid, application.CategoryClientError},
		{"field error", domain.NewInvalidFieldError("pin"), application.CategoryClientError},
		{"internal", application.NewInternalError(errors.New("boom")), application.CategoryInfrastructure},
		{"unknown", errors.New("boom"), application.CategoryInfrastructure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, application.CategorizeError(tt.err))
		})
	}
}

func TestToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, application.ToHTTPStatus(nil))
	assert.Equal(t, http.StatusUnprocessableEntity, application.ToHTTPStatus(application.ErrFormInvalid))
	assert.Equal(t, http.StatusNotFound, application.ToHTTPStatus(application.NewSessionNotFoundError("abc")))
	assert.Equal(t, http.StatusBadRequest, application.ToHTTPStatus(domain.NewFieldTooLongError(domain.FieldCVV, 3)))
	assert.Equal(t, http.StatusBadGateway, application.ToHTTPStatus(&application.SubmissionError{Kind: application.SubmissionErrorTransport}))
	assert.Equal(t, http.StatusRequestTimeout, application.ToHTTPStatus(context.DeadlineExceeded))
	assert.Equal(t, http.StatusInternalServerError, application.ToHTTPStatus(errors.New("boom")))
}

func TestToErrorCode(t *testing.T) {
	assert.Equal(t, application.ErrCodeFormInvalid, application.ToErrorCode(application.ErrFormInvalid))
	assert.Equal(t, domain.ErrCodeFieldTooLong, application.ToErrorCode(domain.NewFieldTooLongError(domain.FieldCVV, 3)))
	assert.Equal(t, "SUBMISSION_FAILED", application.ToErrorCode(&application.SubmissionError{Kind: application.SubmissionErrorDecode}))
	assert.Equal(t, application.ErrCodeInternal, application.ToErrorCode(errors.New("boom")))
}

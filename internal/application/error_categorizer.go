package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/cardform/internal/domain"
)

// ErrorCategory represents the nature of an error for logging
type ErrorCategory string

const (
	CategoryTransient      ErrorCategory = "TRANSIENT"
	CategoryPermanent      ErrorCategory = "PERMANENT"
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

// CategorizeError determines error category for logging purposes
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTransient
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return CategoryClientError
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeFormInvalid, ErrCodeFormIncomplete, ErrCodeInvalidInput, ErrCodeSessionNotFound:
			return CategoryClientError
		case ErrCodeInternal:
			return CategoryInfrastructure
		}
	}

	if subErr, ok := IsSubmissionError(err); ok {
		switch subErr.Kind {
		case SubmissionErrorTransport:
			return CategoryTransient
		case SubmissionErrorDecode:
			// The endpoint answered, just not with JSON.
			return CategoryPermanent
		case SubmissionErrorEncode:
			return CategoryInfrastructure
		}
	}

	return CategoryInfrastructure
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return http.StatusBadRequest
	}

	if _, ok := IsSubmissionError(err); ok {
		return http.StatusBadGateway
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}

	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}

	if _, ok := IsSubmissionError(err); ok {
		return "SUBMISSION_FAILED"
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return "TIMEOUT"
	}

	return ErrCodeInternal
}

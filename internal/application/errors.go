package application

import (
	"errors"
	"fmt"
	"net/http"
)

// APPLICATION-LEVEL ERRORS

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeFormInvalid     = "FORM_INVALID"
	ErrCodeFormIncomplete  = "FORM_INCOMPLETE"
	ErrCodeSessionNotFound = "SESSION_NOT_FOUND"
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeInvalidInput    = "INVALID_INPUT"
)

// ErrFormInvalid is returned when a submit is attempted while the form does
// not validate. Nothing is sent in that case.
var ErrFormInvalid = &ServiceError{
	Code:       ErrCodeFormInvalid,
	Message:    "form is not valid",
	HTTPStatus: http.StatusUnprocessableEntity,
}

// ErrFormIncomplete is returned when a submit is attempted while a required
// field is still empty. Nothing is sent in that case.
var ErrFormIncomplete = &ServiceError{
	Code:       ErrCodeFormIncomplete,
	Message:    "name, expiry month and expiry year are required",
	HTTPStatus: http.StatusUnprocessableEntity,
}

func NewSessionNotFoundError(id string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeSessionNotFound,
		Message:    fmt.Sprintf("session %s not found", id),
		HTTPStatus: http.StatusNotFound,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewInvalidInputError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidInput,
		Message:    "Invalid input",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}

// SUBMISSION ERRORS (remote endpoint)

type SubmissionErrorKind string

const (
	SubmissionErrorEncode    SubmissionErrorKind = "encode"
	SubmissionErrorTransport SubmissionErrorKind = "transport"
	SubmissionErrorDecode    SubmissionErrorKind = "decode"
)

// SubmissionError is a failure to get a parsed answer out of the remote
// endpoint. An answer with success=false is not an error.
type SubmissionError struct {
	Kind       SubmissionErrorKind
	StatusCode int
	Err        error
}

func (e *SubmissionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("submission %s error (status: %d): %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("submission %s error: %v", e.Kind, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

func IsSubmissionError(err error) (*SubmissionError, bool) {
	var subErr *SubmissionError
	ok := errors.As(err, &subErr)
	return subErr, ok
}

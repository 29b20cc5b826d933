package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a rejected form input
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeInvalidField      = "INVALID_FIELD"
	ErrCodeInvalidFieldValue = "INVALID_FIELD_VALUE"
	ErrCodeFieldTooLong      = "FIELD_TOO_LONG"
)

func NewInvalidFieldError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidField,
		Message: fmt.Sprintf("unknown form field %q", field),
	}
}

func NewInvalidFieldValueError(field Field, value string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidFieldValue,
		Message: fmt.Sprintf("invalid value %q for %s", value, field),
		Err:     err,
	}
}

func NewFieldTooLongError(field Field, max int) *DomainError {
	return &DomainError{
		Code:    ErrCodeFieldTooLong,
		Message: fmt.Sprintf("%s accepts at most %d characters", field, max),
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

package domain

import (
	"strconv"
	"strings"
)

// Field names a form input. The values double as the JSON keys of the
// submission payload.
type Field string

const (
	FieldName        Field = "name"
	FieldCardNo      Field = "cardNo"
	FieldCVV         Field = "cvv"
	FieldExpiryMonth Field = "expiryMonth"
	FieldExpiryYear  Field = "expiryYear"
)

// Input limits of the card number and CVV boxes.
const (
	MaxCardNoLength = 19
	MaxCVVLength    = 3
)

var fields = []Field{FieldName, FieldCardNo, FieldCVV, FieldExpiryMonth, FieldExpiryYear}

// Fields returns every form field in display order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// ParseField maps a field name to its Field, rejecting unknown names.
func ParseField(name string) (Field, error) {
	for _, f := range fields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", NewInvalidFieldError(name)
}

// FormData is the card form record. CardNo is kept exactly as typed; an
// expiry month or year of zero means nothing was selected.
type FormData struct {
	Name        string `json:"name"`
	CardNo      string `json:"cardNo"`
	CVV         string `json:"cvv"`
	ExpiryMonth int    `json:"expiryMonth"`
	ExpiryYear  int    `json:"expiryYear"`
}

// With returns a copy of f with one field replaced. f itself is never
// modified; on error f is returned as is.
func (f FormData) With(field Field, value string) (FormData, error) {
	next := f

	switch field {
	case FieldName:
		next.Name = value

	case FieldCardNo:
		if len(value) > MaxCardNoLength {
			return f, NewFieldTooLongError(field, MaxCardNoLength)
		}
		next.CardNo = value

	case FieldCVV:
		if len(value) > MaxCVVLength {
			return f, NewFieldTooLongError(field, MaxCVVLength)
		}
		next.CVV = value

	case FieldExpiryMonth:
		month, err := parseSelect(field, value)
		if err != nil {
			return f, err
		}
		if month < 0 || month > 12 {
			return f, NewInvalidFieldValueError(field, value, nil)
		}
		next.ExpiryMonth = month

	case FieldExpiryYear:
		year, err := parseSelect(field, value)
		if err != nil {
			return f, err
		}
		if year < 0 {
			return f, NewInvalidFieldValueError(field, value, nil)
		}
		next.ExpiryYear = year

	default:
		return f, NewInvalidFieldError(string(field))
	}

	return next, nil
}

// Value returns the field as it would be posted back by the form.
func (f FormData) Value(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldCardNo:
		return f.CardNo
	case FieldCVV:
		return f.CVV
	case FieldExpiryMonth:
		return selectValue(f.ExpiryMonth)
	case FieldExpiryYear:
		return selectValue(f.ExpiryYear)
	default:
		return ""
	}
}

// parseSelect reads the value of an expiry select; the empty option is zero.
func parseSelect(field Field, value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, NewInvalidFieldValueError(field, value, err)
	}
	return n, nil
}

func selectValue(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

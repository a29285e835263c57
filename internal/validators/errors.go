package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrInvalidData is the kind every validation failure unwraps to.
	ErrInvalidData = errors.New("invalid data provided")

	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// ValidationError lists the fields that failed validation with a message
// per field.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidData
}

package models

import (
	"errors"
	"fmt"
)

// ErrGeneration marks a request that failed because no description could be generated.
var ErrGeneration = errors.New("description generation failed")

// ValidationError rejects a request before any pipeline stage runs.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

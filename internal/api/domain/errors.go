package domain

import (
	"errors"
	"strings"
)

var (
	// ErrJobNotFound is returned when no job row exists for a given id
	ErrJobNotFound = errors.New("job not found")

	// ErrApplicationNotFound is returned when no application row exists for a given id
	ErrApplicationNotFound = errors.New("application not found")

	// ErrInvalidDeadline is returned when an application deadline cannot be
	// resolved to a calendar date
	ErrInvalidDeadline = errors.New("invalid application deadline")
)

// ValidationError carries the names of every missing or malformed field in a
// request payload. Handlers map it to a 400 response with the field list.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Fields, ", ")
}

// NewValidationError creates a ValidationError naming the offending fields
func NewValidationError(message string, fields ...string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

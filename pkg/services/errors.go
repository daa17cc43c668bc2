// Package services holds the admin-facing operations over channel
// configurations and housekeeping jobs. The HTTP layer is a thin shell around
// this package.
package services

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the requested entity does not exist within the
// caller's tenant.
var ErrNotFound = errors.New("not found")

// ValidationError indicates invalid admin input; the HTTP layer maps it to a
// 400 response.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string { return e.Message }

// NewValidationError creates a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Package apperr defines the error kinds shared by storage, access and services.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers both absent entities and entities outside the actor's scope.
	ErrNotFound = errors.New("not found")
	// ErrPermissionDenied means the actor can see the resource but lacks the role.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrConflict reports a uniqueness or referential constraint violation.
	ErrConflict = errors.New("conflict")
)

// ValidationError is a malformed or missing input field.
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

// Invalid builds a ValidationError.
func Invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err wraps a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

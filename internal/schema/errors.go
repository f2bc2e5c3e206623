package schema

import "strings"

// ValidationError carries the full list of violated constraints for one
// rejected record. It is the only error kind the validation layer produces.
type ValidationError struct {
	Errors []string
}

func NewValidationError(errs []string) *ValidationError {
	return &ValidationError{Errors: errs}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, "; ")
}

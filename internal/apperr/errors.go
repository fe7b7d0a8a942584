// Package apperr defines the error taxonomy shared across the service:
// not-found is a sentinel, validation failures carry a message for the caller.
package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound signals a lookup with no matching record. It is not a failure
// of the request itself; transports decide how to represent it.
var ErrNotFound = errors.New("not found")

// ValidationError marks caller input that is outside the API contract
// (negative heights, non-positive limit, inverted range). It is always
// recoverable and never fatal to the process.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validation wraps err as a ValidationError. A nil err stays nil.
func Validation(err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Err: err}
}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Err: fmt.Errorf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

package services

import (
	"errors"
	"fmt"
)

// ValidationError marks a caller mistake (bad date, bad amount,
// missing field). Handlers map it to 400; any other error is a store
// fault and maps to 500.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Err: fmt.Errorf(format, args...)}
}

// IsValidation reports whether err is a caller error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

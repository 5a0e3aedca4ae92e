// errors.go defines sentinel errors for validation failures.
//
// Detailed messages are provided by wrapping these with fmt.Errorf or
// FieldError in the validation functions.

package validate

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyPhrase       = errors.New("empty phrase")
	ErrPhraseTooLong     = errors.New("phrase too long")
	ErrUnparsable        = errors.New("unable to parse")
	ErrNotPositive       = errors.New("must be greater than zero")
	ErrNegative          = errors.New("must not be negative")
	ErrSavedExceedsSpent = errors.New("time saved must not exceed time spent")
)

// FieldError ties a validation failure to a named input field, such as
// "every" or "saved" on the roi command.
type FieldError struct {
	Field string
	Input string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Input, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

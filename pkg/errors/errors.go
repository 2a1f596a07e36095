package errors

import (
	"errors"
	"fmt"
)

// ErrSubmissionInFlight is returned when a submission is attempted while
// another one for the same cart is still being processed.
var ErrSubmissionInFlight = errors.New("submission already in progress")

// ValidationError indicates the cart or the delivery fields failed the
// pre-submission checks. Terminal for the attempt, no state is mutated.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConfigurationError indicates a required external setting is absent.
type ConfigurationError struct {
	Setting string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Setting)
}

// ExternalCallError wraps a failure from an external collaborator. The
// wrapped error is kept for logs; callers surface Message only.
type ExternalCallError struct {
	Op      string
	Message string
	Err     error
}

func (e *ExternalCallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

func (e *ExternalCallError) Unwrap() error {
	return e.Err
}

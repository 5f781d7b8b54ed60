package host

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched, using errors.Is, by every ArgumentError.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError is returned when a required argument is nil.
type ArgumentError struct {
	Name string
}

func NewArgumentError(name string) *ArgumentError {
	return &ArgumentError{Name: name}
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s must not be nil", ErrInvalidArgument, e.Name)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// FailureError describes a failed test method result as an error, so it can be passed to a
// framework.TestLogger.
type FailureError struct {
	ExceptionType string
	Message       string
	Stack         string
}

func (e *FailureError) Error() string {
	if e.ExceptionType == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.ExceptionType, e.Message)
}

func (e *FailureError) StackTrace() string {
	return e.Stack
}

package bdd

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrForeignExample is returned by Context.Exercise for an example that the context does not own.
	ErrForeignExample = errors.New("example does not belong to this context")

	// ErrWrongInstance is returned by Context.Exercise when the specification instance is not
	// the one the context tree was built with.
	ErrWrongInstance = errors.New("specification instance does not match the one the context was built with")

	// ErrMissingBase is returned by BuildMethodContext for a specification that does not embed a
	// usable Base, such as one that embeds a nil *Base.
	ErrMissingBase = errors.New("specification does not embed bdd.Base")
)

// AssertionError is the failure recorded for an example whose body reported one or more errors
// through its *T.
type AssertionError struct {
	Messages []string
	stack    string
}

func (e *AssertionError) Error() string {
	return strings.Join(e.Messages, "\n")
}

// StackTrace returns the goroutine stack at the time of the first reported error.
func (e *AssertionError) StackTrace() string {
	return e.stack
}

// PanicError is the failure recorded when an example body or a hook panics. If the panic value was
// itself an error, it can be retrieved with errors.Unwrap.
type PanicError struct {
	Value interface{}
	stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func (e *PanicError) StackTrace() string {
	return e.stack
}

// HookError is the failure recorded when a before or after hook fails.
type HookError struct {
	Hook    string
	Context string
	Err     error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("%s hook in %q failed: %s", e.Hook, e.Context, e.Err)
}

func (e *HookError) Unwrap() error {
	return e.Err
}

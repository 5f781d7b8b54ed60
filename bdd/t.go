package bdd

import (
	"fmt"
	"runtime/debug"
)

// T is passed to each example body. It implements require.TestingT, so the testify assert and
// require packages can be used with it.
type T struct {
	example       *Example
	messages      []string
	stack         string
	pending       bool
	pendingReason string
}

// Name returns the full name of the example.
func (t *T) Name() string {
	return t.example.FullName()
}

// Errorf records a failure. It does not stop the example.
func (t *T) Errorf(format string, args ...interface{}) {
	if len(t.messages) == 0 {
		t.stack = string(debug.Stack())
	}
	t.messages = append(t.messages, fmt.Sprintf(format, args...))
}

// FailNow stops the example immediately. The methods in the require package call it.
func (t *T) FailNow() {
	panic(t)
}

// Failed reports whether any failure has been recorded so far.
func (t *T) Failed() bool {
	return len(t.messages) != 0
}

// Helper is a no-op. It lets testify mark its own frames as helpers.
func (t *T) Helper() {}

// Pending stops the example and marks it as pending rather than passed or failed.
func (t *T) Pending(reason string) {
	t.pending = true
	t.pendingReason = reason
	panic(t)
}

// Debug adds a message to the example's debug output.
func (t *T) Debug(format string, args ...interface{}) {
	t.example.logger().Printf(format, args...)
}

// run calls the example body and converts whatever happened into an outcome.
func (t *T) run(body func(*T)) (outcome Outcome, err error) {
	completed := false
	defer func() {
		r := recover()
		if completed {
			return
		}
		if r != t {
			outcome, err = Failed, &PanicError{Value: r, stack: string(debug.Stack())}
			return
		}
		if t.pending {
			outcome, err = Pending, nil
			return
		}
		if len(t.messages) == 0 {
			t.Errorf("example failed with no failure message")
		}
		outcome, err = t.result()
	}()
	body(t)
	completed = true
	return t.result()
}

func (t *T) result() (Outcome, error) {
	if len(t.messages) != 0 {
		return Failed, &AssertionError{Messages: append([]string(nil), t.messages...), stack: t.stack}
	}
	return Passed, nil
}

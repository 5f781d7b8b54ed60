package bdd

import "github.com/launchdarkly/bdd-adapter/logging"

// Example is a single behavior within a Context.
type Example struct {
	description   string
	context       *Context
	body          func(*T)
	declaredTodo  bool
	outcome       Outcome
	err           error
	pendingReason string
	debugLogger   logging.CapturingLogger
}

func (e *Example) Description() string { return e.description }

// Context returns the context that declared the example.
func (e *Example) Context() *Context { return e.context }

// FullName is the names of all enclosing contexts, outermost first, followed by the description,
// separated by ". ".
func (e *Example) FullName() string {
	return joinNames(append(e.context.path(), e.description))
}

func (e *Example) Outcome() Outcome { return e.outcome }

func (e *Example) Passed() bool { return e.outcome == Passed }

func (e *Example) Failed() bool { return e.outcome == Failed }

// Err returns the failure cause of the last execution, or nil if it did not fail.
func (e *Example) Err() error { return e.err }

// PendingReason is set when the example was declared with XIt or it called T.Pending.
func (e *Example) PendingReason() string { return e.pendingReason }

// DebugOutput returns the debug messages written during the last execution.
func (e *Example) DebugOutput() logging.CapturedOutput { return e.debugLogger.Output() }

func (e *Example) logger() logging.Logger { return &e.debugLogger }

func (e *Example) reset() {
	e.outcome = NotRun
	e.err = nil
	e.pendingReason = ""
	e.debugLogger.Reset()
}

package host

import "github.com/launchdarkly/bdd-adapter/logging"

type ResultKind int

const (
	ResultPassed ResultKind = iota
	ResultFailed
	ResultSkipped
)

func (k ResultKind) String() string {
	switch k {
	case ResultPassed:
		return "passed"
	case ResultFailed:
		return "failed"
	case ResultSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Traits are optional name/value metadata attached to a result.
type Traits map[string][]string

// MethodResult is the outcome of executing one TestCommand.
type MethodResult struct {
	Kind          ResultKind
	MethodName    string
	TypeName      string
	DisplayName   string
	Traits        Traits
	ExceptionType string
	Message       string
	StackTrace    string
	SkipReason    string
	DebugOutput   logging.CapturedOutput
}

func PassedResult(methodName, typeName, displayName string, traits Traits) MethodResult {
	return MethodResult{
		Kind:        ResultPassed,
		MethodName:  methodName,
		TypeName:    typeName,
		DisplayName: displayName,
		Traits:      traits,
	}
}

func FailedResult(
	methodName, typeName, displayName string,
	traits Traits,
	exceptionType, message, stackTrace string,
) MethodResult {
	return MethodResult{
		Kind:          ResultFailed,
		MethodName:    methodName,
		TypeName:      typeName,
		DisplayName:   displayName,
		Traits:        traits,
		ExceptionType: exceptionType,
		Message:       message,
		StackTrace:    stackTrace,
	}
}

func SkipResult(methodName, typeName, displayName string, traits Traits, reason string) MethodResult {
	return MethodResult{
		Kind:        ResultSkipped,
		MethodName:  methodName,
		TypeName:    typeName,
		DisplayName: displayName,
		Traits:      traits,
		SkipReason:  reason,
	}
}

// WithDebugOutput returns a copy of the result with debug output attached.
func (r MethodResult) WithDebugOutput(output logging.CapturedOutput) MethodResult {
	r.DebugOutput = output
	return r
}

// Failure returns the result as a *FailureError, or nil if it did not fail.
func (r MethodResult) Failure() error {
	if r.Kind != ResultFailed {
		return nil
	}
	return &FailureError{ExceptionType: r.ExceptionType, Message: r.Message, Stack: r.StackTrace}
}

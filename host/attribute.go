package host

import (
	"fmt"
	"reflect"
	"runtime/debug"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// CommandEnumerator turns a test method into the commands that will run it. It is the equivalent of
// an attribute placed on a test method.
type CommandEnumerator interface {
	EnumerateTestCommands(method *MethodInfo) ([]TestCommand, error)
}

// Attributed is implemented by test types that mark some of their methods as tests. The map is
// keyed by method name.
type Attributed interface {
	TestAttributes() map[string]CommandEnumerator
}

// Fact marks a method that takes no parameters, and returns nothing or an error, as a single test.
type Fact struct {
	// DisplayName overrides the default of TypeName.MethodName.
	DisplayName string
	// Skip, if not empty, is the reason the test is always skipped.
	Skip string
	// Timeout is in milliseconds.
	Timeout int
}

func (f Fact) EnumerateTestCommands(method *MethodInfo) ([]TestCommand, error) {
	if method == nil {
		return nil, NewArgumentError("method")
	}
	if len(method.ParamTypes()) != 0 {
		return nil, fmt.Errorf("test method %s must not take parameters", method)
	}
	results := method.ResultTypes()
	if len(results) > 1 || (len(results) == 1 && results[0] != errorType) {
		return nil, fmt.Errorf("test method %s must return nothing or an error", method)
	}
	name := f.DisplayName
	if name == "" {
		name = method.String()
	}
	return []TestCommand{&factCommand{fact: f, method: method, displayName: name}}, nil
}

type factCommand struct {
	fact        Fact
	method      *MethodInfo
	displayName string
}

func (c *factCommand) DisplayName() string { return c.displayName }

func (c *factCommand) ShouldCreateInstance() bool { return true }

func (c *factCommand) Timeout() int { return c.fact.Timeout }

func (c *factCommand) StartInfo() *StartInfo {
	return &StartInfo{Kind: "fact", DisplayName: c.displayName}
}

func (c *factCommand) Execute(testClass interface{}) (result MethodResult) {
	m := c.method
	if c.fact.Skip != "" {
		return SkipResult(m.Name(), m.TypeName(), c.displayName, nil, c.fact.Skip)
	}
	defer func() {
		if r := recover(); r != nil {
			result = FailedResult(m.Name(), m.TypeName(), c.displayName, nil,
				fmt.Sprintf("%T", r), fmt.Sprint(r), string(debug.Stack()))
		}
	}()
	if err := m.Invoke(testClass); err != nil {
		return FailedResult(m.Name(), m.TypeName(), c.displayName, nil, fmt.Sprintf("%T", err), err.Error(), "")
	}
	return PassedResult(m.Name(), m.TypeName(), c.displayName, nil)
}

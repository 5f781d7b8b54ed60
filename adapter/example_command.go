package adapter

import (
	"errors"
	"fmt"
	"reflect"
	"runtime/debug"
	"strings"

	"github.com/launchdarkly/bdd-adapter/bdd"
	"github.com/launchdarkly/bdd-adapter/host"
)

// PendingReason is the skip reason reported for examples that neither passed nor failed.
const PendingReason = "Pending"

const startInfoKind = "bdd"

var (
	specInterface   = reflect.TypeOf((*bdd.Spec)(nil)).Elem()
	baseType        = reflect.TypeOf((*bdd.Base)(nil))
	contextPtrType  = reflect.TypeOf((*bdd.Context)(nil))
	errMissingCause = errors.New("example failed without a recorded cause")
)

// ExampleCommand is a host.TestCommand that runs a single example.
type ExampleCommand struct {
	method   *host.MethodInfo
	example  *bdd.Example
	instance bdd.Spec
}

// NewExampleCommand returns an error matching host.ErrInvalidArgument if any argument is nil.
func NewExampleCommand(method *host.MethodInfo, example *bdd.Example, instance bdd.Spec) (*ExampleCommand, error) {
	if method == nil {
		return nil, host.NewArgumentError("method")
	}
	if example == nil {
		return nil, host.NewArgumentError("example")
	}
	if isNil(instance) {
		return nil, host.NewArgumentError("instance")
	}
	return &ExampleCommand{method: method, example: example, instance: instance}, nil
}

// Method returns the specification method that declared the example.
func (c *ExampleCommand) Method() *host.MethodInfo { return c.method }

func (c *ExampleCommand) Example() *bdd.Example { return c.example }

// Instance returns the specification instance shared by every command from the same method.
func (c *ExampleCommand) Instance() bdd.Spec { return c.instance }

func (c *ExampleCommand) DisplayName() string { return c.example.FullName() }

// ShouldCreateInstance is always false, since the specification instance already exists.
func (c *ExampleCommand) ShouldCreateInstance() bool { return false }

func (c *ExampleCommand) Timeout() int { return 0 }

func (c *ExampleCommand) StartInfo() *host.StartInfo {
	return &host.StartInfo{Kind: startInfoKind, DisplayName: c.DisplayName()}
}

// Execute exercises the example. The testClass parameter is ignored.
func (c *ExampleCommand) Execute(testClass interface{}) (result host.MethodResult) {
	defer func() {
		if r := recover(); r != nil {
			result = c.failed(&escapedPanic{value: r, stack: string(debug.Stack())})
		}
	}()

	if err := c.example.Context().Exercise(c.example, c.instance); err != nil {
		return c.failed(err)
	}

	switch {
	case c.example.Passed():
		result = host.PassedResult(c.method.Name(), c.method.TypeName(), c.DisplayName(), nil)
	case c.example.Failed():
		cause := c.example.Err()
		if cause == nil {
			cause = errMissingCause
		}
		result = c.failed(cause)
	default:
		result = host.SkipResult(c.method.Name(), c.method.TypeName(), c.DisplayName(), nil, PendingReason)
	}
	return result.WithDebugOutput(c.example.DebugOutput())
}

func (c *ExampleCommand) failed(err error) host.MethodResult {
	root := RootCause(err)
	return host.FailedResult(
		c.method.Name(),
		c.method.TypeName(),
		c.DisplayName(),
		nil,
		errorTypeName(root),
		root.Error(),
		stackTraceOf(err),
	).WithDebugOutput(c.example.DebugOutput())
}

// CreateForMethod returns one command for every example declared by a specification method. It
// returns no commands, and no error, if the method's type is not a specification or the method
// does not have the signature func(*bdd.Context).
//
// A new specification instance is created for every call, and shared by all of the returned
// commands.
func CreateForMethod(method *host.MethodInfo) ([]host.TestCommand, error) {
	if method == nil {
		return nil, host.NewArgumentError("method")
	}
	if !isSpecification(method.Class()) || !isSpecificationMethod(method) {
		return nil, nil
	}
	instance, ok := method.CreateInstance().(bdd.Spec)
	if !ok || !bdd.HasBase(instance) {
		return nil, nil
	}

	root, err := bdd.BuildMethodContext(method.Name(), instance, func(c *bdd.Context) {
		if err := method.Invoke(instance, c); err != nil {
			panic(err)
		}
	})
	if err != nil {
		return nil, err
	}

	var commands []host.TestCommand
	buildCommandList(method, instance, root, &commands)
	return commands, nil
}

func buildCommandList(method *host.MethodInfo, instance bdd.Spec, context *bdd.Context, commands *[]host.TestCommand) {
	for _, example := range context.Examples() {
		*commands = append(*commands, &ExampleCommand{method: method, example: example, instance: instance})
	}
	for _, child := range context.ChildContexts() {
		buildCommandList(method, instance, child, commands)
	}
}

// RootCause returns the innermost error in err's chain. For errors that wrap several errors, the
// first one is followed.
func RootCause(err error) error {
	for err != nil {
		next := unwrapFirst(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}

func unwrapFirst(err error) error {
	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		if errs := e.Unwrap(); len(errs) != 0 {
			return errs[0]
		}
	case interface{ Unwrap() error }:
		return e.Unwrap()
	}
	return nil
}

type stackTracer interface {
	StackTrace() string
}

// stackTraceOf returns the stack of the innermost error in the chain that recorded one.
func stackTraceOf(err error) string {
	var stack string
	for ; err != nil; err = unwrapFirst(err) {
		if st, ok := err.(stackTracer); ok && st.StackTrace() != "" {
			stack = st.StackTrace()
		}
	}
	return stack
}

func errorTypeName(err error) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", err), "*")
}

func isSpecification(t *host.TypeInfo) bool {
	if t == nil || !t.Implements(specInterface) || t.Type() == baseType {
		return false
	}
	instance, ok := t.CreateInstance().(bdd.Spec)
	return ok && bdd.HasBase(instance)
}

func isSpecificationMethod(m *host.MethodInfo) bool {
	params := m.ParamTypes()
	return len(params) == 1 && params[0] == contextPtrType && len(m.ResultTypes()) == 0
}

func isNil(instance bdd.Spec) bool {
	if instance == nil {
		return true
	}
	v := reflect.ValueOf(instance)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// escapedPanic is a panic that got past the specification engine.
type escapedPanic struct {
	value interface{}
	stack string
}

func (e *escapedPanic) Error() string {
	return fmt.Sprintf("unexpected panic in example: %v", e.value)
}

func (e *escapedPanic) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}

func (e *escapedPanic) StackTrace() string { return e.stack }

package bdd

import (
	"fmt"
	"runtime/debug"
	"strings"
)

const fullNameSeparator = ". "

// Context is a named node in a specification tree. During declaration it is also the builder that
// the specification methods call to add child contexts, examples and hooks.
type Context struct {
	name     string
	parent   *Context
	instance Spec
	examples []*Example
	children []*Context
	befores  []func()
	afters   []func()
}

// BuildMethodContext creates the context tree for one specification method by calling body with
// a new root context. The root is named after the method, with underscores turned into spaces.
//
// A panic while declaring the tree is returned as an error. ErrMissingBase is returned if the
// instance does not embed a usable Base.
func BuildMethodContext(methodName string, instance Spec, body func(*Context)) (root *Context, err error) {
	if !HasBase(instance) {
		return nil, ErrMissingBase
	}
	root = &Context{
		name:     strings.ReplaceAll(methodName, "_", " "),
		instance: instance,
	}
	completed := false
	defer func() {
		r := recover()
		if !completed {
			root, err = nil, fmt.Errorf("declaring %q failed: %w", methodName, &PanicError{Value: r, stack: string(debug.Stack())})
		}
	}()
	body(root)
	completed = true
	return root, nil
}

func (c *Context) Name() string { return c.name }

// Parent returns the enclosing context, or nil for a root.
func (c *Context) Parent() *Context { return c.parent }

// Examples returns the examples declared directly in this context, in declaration order.
func (c *Context) Examples() []*Example {
	return append([]*Example(nil), c.examples...)
}

// ChildContexts returns the contexts declared directly in this context, in declaration order.
func (c *Context) ChildContexts() []*Context {
	return append([]*Context(nil), c.children...)
}

func (c *Context) FullName() string {
	return joinNames(c.path())
}

// Context declares a nested context. The body is called immediately.
func (c *Context) Context(name string, body func(*Context)) {
	child := &Context{name: name, parent: c, instance: c.instance}
	c.children = append(c.children, child)
	body(child)
}

// Describe is the same as Context.
func (c *Context) Describe(name string, body func(*Context)) {
	c.Context(name, body)
}

// It declares an example. An example with a nil body is pending.
func (c *Context) It(description string, body func(*T)) {
	c.examples = append(c.examples, &Example{
		description:  description,
		context:      c,
		body:         body,
		declaredTodo: body == nil,
	})
}

// XIt declares an example that is pending; its body is never run.
func (c *Context) XIt(description string, body func(*T)) {
	c.examples = append(c.examples, &Example{
		description:  description,
		context:      c,
		body:         body,
		declaredTodo: true,
	})
}

// Before adds a hook that runs before every example in this context and its descendants.
func (c *Context) Before(hook func()) {
	c.befores = append(c.befores, hook)
}

// After adds a hook that runs after every example in this context and its descendants, even if
// the example failed.
func (c *Context) After(hook func()) {
	c.afters = append(c.afters, hook)
}

// Exercise runs one example that was declared in this context, against the specification
// instance the tree was built with. The outcome is recorded on the example.
//
// The returned error is only non-nil if the example could not be run at all; a failing example is
// not an error.
func (c *Context) Exercise(example *Example, instance Spec) error {
	if example == nil || example.context != c {
		return ErrForeignExample
	}
	if c.instance == nil || !HasBase(instance) || instance.specBase() != c.instance.specBase() {
		return ErrWrongInstance
	}

	example.reset()
	if example.declaredTodo {
		example.outcome = Pending
		example.pendingReason = "not implemented"
		return nil
	}

	base := instance.specBase()
	base.current = example
	defer func() { base.current = nil }()

	lineage := c.lineage()
	var err error
	for _, ctx := range lineage {
		if err = ctx.runHooks("before", ctx.befores); err != nil {
			break
		}
	}
	outcome := Failed
	t := &T{example: example}
	if err == nil {
		outcome, err = t.run(example.body)
	}
	for i := len(lineage) - 1; i >= 0; i-- {
		ctx := lineage[i]
		if afterErr := ctx.runHooks("after", ctx.afters); afterErr != nil {
			if err == nil {
				outcome, err = Failed, afterErr
			} else {
				example.logger().Printf("%s", afterErr)
			}
		}
	}

	example.outcome = outcome
	example.err = err
	if outcome == Pending {
		example.pendingReason = t.pendingReason
	}
	return nil
}

func (c *Context) runHooks(kind string, hooks []func()) (err error) {
	completed := false
	defer func() {
		r := recover()
		if !completed {
			err = &HookError{
				Hook:    kind,
				Context: c.FullName(),
				Err:     &PanicError{Value: r, stack: string(debug.Stack())},
			}
		}
	}()
	for _, h := range hooks {
		h()
	}
	completed = true
	return nil
}

// lineage returns the root first and c last.
func (c *Context) lineage() []*Context {
	var ret []*Context
	for ctx := c; ctx != nil; ctx = ctx.parent {
		ret = append([]*Context{ctx}, ret...)
	}
	return ret
}

func (c *Context) path() []string {
	lineage := c.lineage()
	ret := make([]string, 0, len(lineage))
	for _, ctx := range lineage {
		ret = append(ret, ctx.name)
	}
	return ret
}

func joinNames(names []string) string {
	return strings.Join(names, fullNameSeparator)
}

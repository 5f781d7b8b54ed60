// Package bdd is a small behavior-driven specification engine.
//
// A specification is a struct that embeds Base. Each of its methods with the signature
// func(*Context) declares a tree of nested contexts and examples:
//
//	func (s *StackSpec) Describe_stack(c *bdd.Context) {
//		c.Before(func() { s.stack = nil })
//		c.It("starts empty", func(t *bdd.T) {
//			assert.Len(t, s.stack, 0)
//		})
//		c.Context("after a push", func(c *bdd.Context) {
//			c.Before(func() { s.stack = append(s.stack, 1) })
//			c.It("has one item", func(t *bdd.T) {
//				assert.Len(t, s.stack, 1)
//			})
//		})
//	}
//
// Examples are executed one at a time with Context.Exercise, which runs the before hooks of every
// enclosing context, the example body, and then the after hooks. All examples in a tree share the
// same specification instance, so state set by one example is visible to the next one.
//
// Example bodies receive a *T, which can be passed to the testify assert and require packages as
// if it were a *testing.T.
package bdd

package specs

import (
	"errors"

	"github.com/launchdarkly/bdd-adapter/bdd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errEmptyStack = errors.New("stack is empty")

type stack struct {
	items []string
}

func (s *stack) push(item string) {
	s.items = append(s.items, item)
}

func (s *stack) pop() (string, error) {
	if len(s.items) == 0 {
		return "", errEmptyStack
	}
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return top, nil
}

func (s *stack) peek() (string, bool) {
	if len(s.items) == 0 {
		return "", false
	}
	return s.items[len(s.items)-1], true
}

type StackSpec struct {
	bdd.Base
	stack *stack
}

func (s *StackSpec) Describe_stack(c *bdd.Context) {
	c.Before(func() { s.stack = &stack{} })

	c.It("starts empty", func(t *bdd.T) {
		_, ok := s.stack.peek()
		assert.False(t, ok)
	})

	c.It("refuses to pop when empty", func(t *bdd.T) {
		_, err := s.stack.pop()
		assert.Equal(t, errEmptyStack, err)
	})

	c.Context("after pushing two items", func(c *bdd.Context) {
		c.Before(func() {
			s.stack.push("first")
			s.stack.push("second")
			s.Debug("stack contains %v", s.stack.items)
		})

		c.It("pops the last item first", func(t *bdd.T) {
			top, err := s.stack.pop()
			require.NoError(t, err)
			assert.Equal(t, "second", top)
		})

		c.It("peeks without removing", func(t *bdd.T) {
			top, ok := s.stack.peek()
			require.True(t, ok)
			assert.Equal(t, "second", top)
			assert.Len(t, s.stack.items, 2)
		})

		c.Context("and popping both", func(c *bdd.Context) {
			c.Before(func() {
				_, _ = s.stack.pop()
				_, _ = s.stack.pop()
			})

			c.It("is empty again", func(t *bdd.T) {
				assert.Len(t, s.stack.items, 0)
			})
		})
	})

	c.XIt("has a maximum size", nil)
}

package bdd

import "github.com/launchdarkly/bdd-adapter/logging"

// Spec is implemented by every specification type. The only way to implement it is to embed Base.
type Spec interface {
	specBase() *Base
}

// Base must be embedded in a specification struct.
type Base struct {
	current *Example
}

func (b *Base) specBase() *Base { return b }

// HasBase reports whether s embeds a usable Base. It is false for nil, for a nil pointer, and for a
// specification that embeds *Base (or Spec) and leaves it nil.
func HasBase(s Spec) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return s != nil && s.specBase() != nil
}

func (b *Base) logger() logging.Logger {
	if b.current == nil {
		return logging.NullLogger()
	}
	return b.current.logger()
}

// Debug adds a message to the debug output of the example that is currently being exercised.
// It does nothing if no example is running.
func (b *Base) Debug(format string, args ...interface{}) {
	b.logger().Printf(format, args...)
}

// Package adapter lets specifications written with the bdd package run under the host test runner.
//
// The host runner works with a flat list of commands per test method, while a specification
// method declares a tree of contexts and examples. The adapter builds the tree for a method and
// flattens it into one ExampleCommand per example, in declaration order: a context's own examples
// first, then each child context in turn.
//
// There are two ways to hook it up. A whole specification type can be run with ClassCommand, which
// treats every method declared on the type as a specification method. Alternatively, a type that
// uses host.AttributeClassCommand can mark individual methods with Specification.
//
// All commands produced from one method share one specification instance, so state left behind by
// one example is visible to the examples that run after it. Running two of those commands at the
// same time is not supported.
package adapter

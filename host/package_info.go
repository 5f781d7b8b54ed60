// Package host is a per-method unit test runner, modeled on runners that find test methods by
// reflection and let extensions decide how each method turns into runnable commands.
//
// The extension points are:
//
// 1. CommandEnumerator, which plays the role of a method attribute: it turns one test method into
// zero or more TestCommands. Fact is the default, producing a single command that calls the method.
// Types attach attributes to their methods by implementing Attributed.
//
// 2. ClassCommand, which decides which methods of a type are tests, in what order they run, and
// what happens before and after the whole class. AttributeClassCommand is the default.
//
// A Suite runs every registered class and reports to a framework.TestLogger.
package host

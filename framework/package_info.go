// Package framework contains the runner-independent pieces of test infrastructure that are shared
// by the host runner and the command-line tool.
//
// The general model is:
//
// 1. Every test has a TestID, which is a path of names. For tests produced from specifications,
// the path is the name of the specification type followed by the example's full name.
//
// 2. A TestLogger is notified as each test starts, reports errors, and finishes or is skipped.
//
// 3. The outcome of a whole run is accumulated in Results.
//
// Filters select which tests run, based on regular expressions matched against the TestID.
package framework

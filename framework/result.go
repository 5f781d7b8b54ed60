package framework

import (
	"fmt"
	"strings"
	"time"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
	Skipped  []TestResult
}

type TestResult struct {
	TestID     TestID
	Errors     []error
	Skipped    bool
	SkipReason string
	Timeout    time.Duration
	Duration   time.Duration
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Add records a result, also appending it to Failures or Skipped as appropriate.
func (r *Results) Add(result TestResult) {
	r.Tests = append(r.Tests, result)
	switch {
	case result.Skipped:
		r.Skipped = append(r.Skipped, result)
	case len(result.Errors) != 0:
		r.Failures = append(r.Failures, result)
	}
}

// Merge appends all of the results from another run.
func (r *Results) Merge(other Results) {
	r.Tests = append(r.Tests, other.Tests...)
	r.Failures = append(r.Failures, other.Failures...)
	r.Skipped = append(r.Skipped, other.Skipped...)
}

type TestID struct {
	Path []string
}

func NewTestID(path ...string) TestID {
	return TestID{Path: path}
}

// Plus returns a new TestID with a name appended. It never modifies the receiver's path.
func (t TestID) Plus(name string) TestID {
	path := make([]string, 0, len(t.Path)+1)
	path = append(path, t.Path...)
	return TestID{Path: append(path, name)}
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}

package host

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/launchdarkly/bdd-adapter/framework"
)

const (
	classStartName  = "(class start)"
	classFinishName = "(class finish)"
)

// Suite is an ordered set of test classes.
type Suite struct {
	classes []ClassCommand
}

// Add registers a type using the ClassCommand it asks for with ClassCommandProvider, or an
// AttributeClassCommand if it does not implement that.
func (s *Suite) Add(t *TypeInfo) {
	var cmd ClassCommand = &AttributeClassCommand{}
	if p, ok := t.CreateInstance().(ClassCommandProvider); ok {
		if provided := p.RunWith(); provided != nil {
			cmd = provided
		}
	}
	s.AddWith(t, cmd)
}

// AddWith registers a type with a specific ClassCommand.
func (s *Suite) AddWith(t *TypeInfo, cmd ClassCommand) {
	cmd.SetTypeUnderTest(t)
	s.classes = append(s.classes, cmd)
}

// Run runs every class in registration order.
func (s *Suite) Run(filter framework.Filter, testLogger framework.TestLogger) framework.Results {
	var results framework.Results
	for _, cmd := range s.classes {
		results.Merge(RunClass(cmd, filter, testLogger))
	}
	return results
}

type classRun struct {
	cmd        ClassCommand
	classID    framework.TestID
	filter     framework.Filter
	testLogger framework.TestLogger
	results    framework.Results
}

// RunClass runs all of the tests of one class. Failures to enumerate tests, and errors from
// ClassStart and ClassFinish, are reported as failed tests; they never stop the run.
func RunClass(cmd ClassCommand, filter framework.Filter, testLogger framework.TestLogger) framework.Results {
	if testLogger == nil {
		testLogger = framework.NullTestLogger()
	}
	r := &classRun{
		cmd:        cmd,
		classID:    framework.NewTestID(cmd.TypeUnderTest().Name()),
		filter:     filter,
		testLogger: testLogger,
	}
	r.run()
	return r.results
}

func (r *classRun) run() {
	var methods []*MethodInfo
	for _, m := range r.cmd.EnumerateTestMethods() {
		ok, err := r.cmd.IsTestMethod(m)
		if err != nil {
			r.fail(r.classID.Plus(m.Name()), err)
			continue
		}
		if ok {
			methods = append(methods, m)
		}
	}
	if len(methods) == 0 {
		return
	}

	if err := r.cmd.ClassStart(); err != nil {
		r.fail(r.classID.Plus(classStartName), err)
		return
	}

	for len(methods) > 0 {
		i := r.cmd.ChooseNextTest(methods)
		if i < 0 || i >= len(methods) {
			i = 0
		}
		m := methods[i]
		methods = append(methods[:i:i], methods[i+1:]...)

		commands, err := r.cmd.EnumerateTestCommands(m)
		if err != nil {
			r.fail(r.classID.Plus(m.Name()), err)
			continue
		}
		for _, c := range commands {
			r.runCommand(m, c)
		}
	}

	if err := r.cmd.ClassFinish(); err != nil {
		r.fail(r.classID.Plus(classFinishName), err)
	}
}

func (r *classRun) runCommand(m *MethodInfo, c TestCommand) {
	id := r.classID.Plus(c.DisplayName())

	r.testLogger.TestStarted(id)
	if r.filter != nil && !r.filter(id) {
		r.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	if c.StartInfo() == nil {
		r.skip(id, "command declined to start", 0)
		return
	}

	testClass := r.cmd.ObjectUnderTest()
	if c.ShouldCreateInstance() {
		testClass = m.CreateInstance()
	}

	timeout := time.Duration(c.Timeout()) * time.Millisecond
	startTime := time.Now()
	result := execute(c, m, testClass, timeout)
	elapsed := time.Since(startTime)

	switch result.Kind {
	case ResultSkipped:
		r.skip(id, result.SkipReason, timeout)
	case ResultFailed:
		err := result.Failure()
		r.testLogger.TestError(id, err)
		r.results.Add(framework.TestResult{TestID: id, Errors: []error{err}, Timeout: timeout, Duration: elapsed})
		r.testLogger.TestFinished(id, true, result.DebugOutput)
	default:
		r.results.Add(framework.TestResult{TestID: id, Timeout: timeout, Duration: elapsed})
		r.testLogger.TestFinished(id, false, result.DebugOutput)
	}
}

func (r *classRun) fail(id framework.TestID, err error) {
	r.testLogger.TestStarted(id)
	r.testLogger.TestError(id, err)
	r.results.Add(framework.TestResult{TestID: id, Errors: []error{err}})
	r.testLogger.TestFinished(id, true, nil)
}

func (r *classRun) skip(id framework.TestID, reason string, timeout time.Duration) {
	r.results.Add(framework.TestResult{TestID: id, Skipped: true, SkipReason: reason, Timeout: timeout})
	r.testLogger.TestSkipped(id, reason)
}

func execute(c TestCommand, m *MethodInfo, testClass interface{}, timeout time.Duration) MethodResult {
	if timeout <= 0 {
		return guardedExecute(c, m, testClass)
	}
	ch := make(chan MethodResult, 1)
	go func() {
		ch <- guardedExecute(c, m, testClass)
	}()
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	select {
	case result := <-ch:
		return result
	case <-deadline.C:
		return FailedResult(m.Name(), m.TypeName(), c.DisplayName(), nil,
			"TimeoutError", fmt.Sprintf("test execution time exceeded: %s", timeout), "")
	}
}

func guardedExecute(c TestCommand, m *MethodInfo, testClass interface{}) (result MethodResult) {
	defer func() {
		if r := recover(); r != nil {
			result = FailedResult(m.Name(), m.TypeName(), c.DisplayName(), nil,
				fmt.Sprintf("%T", r), fmt.Sprintf("unexpected panic in test: %v", r), string(debug.Stack()))
		}
	}()
	return c.Execute(testClass)
}

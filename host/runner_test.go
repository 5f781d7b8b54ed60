package host

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/launchdarkly/bdd-adapter/framework"
	"github.com/launchdarkly/bdd-adapter/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTestLogger struct {
	events []string
}

func (l *recordingTestLogger) TestStarted(id framework.TestID) {
	l.events = append(l.events, "started "+id.String())
}

func (l *recordingTestLogger) TestError(id framework.TestID, err error) {
	l.events = append(l.events, fmt.Sprintf("error %s: %s", id, err))
}

func (l *recordingTestLogger) TestFinished(id framework.TestID, failed bool, debugOutput logging.CapturedOutput) {
	l.events = append(l.events, fmt.Sprintf("finished %s failed=%t", id, failed))
}

func (l *recordingTestLogger) TestSkipped(id framework.TestID, reason string) {
	l.events = append(l.events, fmt.Sprintf("skipped %s (%s)", id, reason))
}

type factTests struct{}

func (f *factTests) TestAttributes() map[string]CommandEnumerator {
	return map[string]CommandEnumerator{
		"Passes":       Fact{},
		"ReturnsError": Fact{},
		"Panics":       Fact{},
		"Skipped":      Fact{Skip: "not today"},
		"Named":        Fact{DisplayName: "custom name"},
		"TakesParam":   Fact{},
	}
}

func (f *factTests) Passes()             {}
func (f *factTests) ReturnsError() error { return errors.New("returned") }
func (f *factTests) Panics()             { panic("exploded") }
func (f *factTests) Skipped()            {}
func (f *factTests) Named()              {}
func (f *factTests) TakesParam(n int)    {}
func (f *factTests) NotATest()           {}

func TestSuiteRunsFacts(t *testing.T) {
	var suite Suite
	suite.Add(TypeOf((*factTests)(nil)))
	logger := &recordingTestLogger{}

	results := suite.Run(nil, logger)

	var passed, failed, skipped []string
	for _, r := range results.Tests {
		switch {
		case r.Skipped:
			skipped = append(skipped, r.TestID.String())
		case len(r.Errors) != 0:
			failed = append(failed, r.TestID.String())
		default:
			passed = append(passed, r.TestID.String())
		}
	}
	assert.Equal(t, []string{"factTests/custom name", "factTests/factTests.Passes"}, passed)
	assert.Equal(t, []string{"factTests/factTests.Panics", "factTests/factTests.ReturnsError", "factTests/TakesParam"}, failed)
	assert.Equal(t, []string{"factTests/factTests.Skipped"}, skipped)
	assert.Contains(t, logger.events, "skipped factTests/factTests.Skipped (not today)")
	assert.Contains(t, logger.events, "error factTests/factTests.ReturnsError: *errors.errorString: returned")
}

func TestFactFailureDetails(t *testing.T) {
	commands, err := Fact{}.EnumerateTestCommands(methodNamed(t, &factTests{}, "Panics"))
	require.NoError(t, err)
	require.Len(t, commands, 1)
	c := commands[0]

	assert.True(t, c.ShouldCreateInstance())
	result := c.Execute(&factTests{})
	assert.Equal(t, ResultFailed, result.Kind)
	assert.Equal(t, "string", result.ExceptionType)
	assert.Equal(t, "exploded", result.Message)
	assert.NotEmpty(t, result.StackTrace)
}

func TestFactRejectsBadSignatures(t *testing.T) {
	_, err := Fact{}.EnumerateTestCommands(methodNamed(t, &factTests{}, "TakesParam"))
	assert.Error(t, err)

	_, err = Fact{}.EnumerateTestCommands(methodNamed(t, sampleType{}, "Greet"))
	assert.Error(t, err)

	_, err = Fact{}.EnumerateTestCommands(nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

type scriptedCommand struct {
	name      string
	timeout   int
	noStart   bool
	execute   func(testClass interface{}) MethodResult
	sawObject interface{}
}

func (c *scriptedCommand) DisplayName() string        { return c.name }
func (c *scriptedCommand) ShouldCreateInstance() bool { return false }
func (c *scriptedCommand) Timeout() int               { return c.timeout }

func (c *scriptedCommand) StartInfo() *StartInfo {
	if c.noStart {
		return nil
	}
	return &StartInfo{Kind: "scripted", DisplayName: c.name}
}

func (c *scriptedCommand) Execute(testClass interface{}) MethodResult {
	c.sawObject = testClass
	return c.execute(testClass)
}

type scriptedClass struct {
	typeUnderTest *TypeInfo
	commands      map[string][]TestCommand
	enumerateErr  map[string]error
	startErr      error
	finishErr     error
	order         []string
	object        interface{}
}

func (c *scriptedClass) TypeUnderTest() *TypeInfo     { return c.typeUnderTest }
func (c *scriptedClass) SetTypeUnderTest(t *TypeInfo) { c.typeUnderTest = t }
func (c *scriptedClass) ClassStart() error            { return c.startErr }
func (c *scriptedClass) ClassFinish() error           { return c.finishErr }

func (c *scriptedClass) ObjectUnderTest() interface{} {
	return c.object
}

func (c *scriptedClass) EnumerateTestMethods() []*MethodInfo {
	return c.typeUnderTest.DeclaredMethods()
}

func (c *scriptedClass) ChooseNextTest(testsLeftToRun []*MethodInfo) int {
	last := len(testsLeftToRun) - 1
	c.order = append(c.order, testsLeftToRun[last].Name())
	return last
}

func (c *scriptedClass) IsTestMethod(testMethod *MethodInfo) (bool, error) {
	return testMethod.Name() != "Greet", nil
}

func (c *scriptedClass) EnumerateTestCommands(testMethod *MethodInfo) ([]TestCommand, error) {
	if err := c.enumerateErr[testMethod.Name()]; err != nil {
		return nil, err
	}
	return c.commands[testMethod.Name()], nil
}

func passing(name string) *scriptedCommand {
	return &scriptedCommand{name: name, execute: func(interface{}) MethodResult {
		return PassedResult("m", "sampleType", name, nil)
	}}
}

func newScriptedClass() *scriptedClass {
	c := &scriptedClass{commands: map[string][]TestCommand{}, enumerateErr: map[string]error{}}
	c.SetTypeUnderTest(TypeOf(sampleType{}))
	return c
}

func TestRunClassUsesChooseNextTest(t *testing.T) {
	c := newScriptedClass()
	c.commands["Check"] = []TestCommand{passing("check")}
	c.commands["Rename"] = []TestCommand{passing("rename 1"), passing("rename 2")}

	results := RunClass(c, nil, nil)

	assert.Equal(t, []string{"Rename", "Check"}, c.order)
	var names []string
	for _, r := range results.Tests {
		names = append(names, r.TestID.String())
	}
	assert.Equal(t, []string{"sampleType/rename 1", "sampleType/rename 2", "sampleType/check"}, names)
	assert.True(t, results.OK())
}

func TestRunClassPassesObjectUnderTest(t *testing.T) {
	c := newScriptedClass()
	c.object = "the object"
	cmd := passing("x")
	c.commands["Check"] = []TestCommand{cmd}

	RunClass(c, nil, nil)
	assert.Equal(t, "the object", cmd.sawObject)
}

func TestRunClassReportsClassStartFailure(t *testing.T) {
	c := newScriptedClass()
	c.startErr = errors.New("no database")
	c.commands["Check"] = []TestCommand{passing("check")}

	results := RunClass(c, nil, nil)

	require.Len(t, results.Tests, 1)
	assert.Equal(t, "sampleType/(class start)", results.Failures[0].TestID.String())
}

func TestRunClassReportsClassFinishFailure(t *testing.T) {
	c := newScriptedClass()
	c.finishErr = errors.New("cleanup")
	c.commands["Check"] = []TestCommand{passing("check")}

	results := RunClass(c, nil, nil)

	require.Len(t, results.Tests, 2)
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "sampleType/(class finish)", results.Failures[0].TestID.String())
}

func TestRunClassReportsEnumerationFailureAndContinues(t *testing.T) {
	c := newScriptedClass()
	c.enumerateErr["Rename"] = errors.New("cannot enumerate")
	c.commands["Check"] = []TestCommand{passing("check")}

	results := RunClass(c, nil, nil)

	require.Len(t, results.Tests, 2)
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "sampleType/Rename", results.Failures[0].TestID.String())
}

func TestRunClassRecoversPanickingCommand(t *testing.T) {
	c := newScriptedClass()
	c.commands["Check"] = []TestCommand{&scriptedCommand{name: "boom", execute: func(interface{}) MethodResult {
		panic(errors.New("escaped"))
	}}}
	logger := &recordingTestLogger{}

	results := RunClass(c, nil, logger)

	require.Len(t, results.Failures, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "unexpected panic in test: escaped")
	assert.Equal(t, []string{
		"started sampleType/boom",
		"error sampleType/boom: *errors.errorString: unexpected panic in test: escaped",
		"finished sampleType/boom failed=true",
	}, logger.events)
}

func TestRunClassEnforcesTimeout(t *testing.T) {
	c := newScriptedClass()
	release := make(chan struct{})
	defer close(release)
	c.commands["Check"] = []TestCommand{&scriptedCommand{name: "slow", timeout: 10, execute: func(interface{}) MethodResult {
		<-release
		return PassedResult("Check", "sampleType", "slow", nil)
	}}}

	results := RunClass(c, nil, nil)

	require.Len(t, results.Failures, 1)
	assert.Equal(t, 10*time.Millisecond, results.Failures[0].Timeout)
	var fe *FailureError
	require.True(t, errors.As(results.Failures[0].Errors[0], &fe))
	assert.Equal(t, "TimeoutError", fe.ExceptionType)
}

func TestRunClassSkipsCommandThatDeclinesToStart(t *testing.T) {
	c := newScriptedClass()
	ran := false
	c.commands["Check"] = []TestCommand{&scriptedCommand{name: "declines", noStart: true, execute: func(interface{}) MethodResult {
		ran = true
		return PassedResult("Check", "sampleType", "declines", nil)
	}}}

	results := RunClass(c, nil, nil)

	assert.False(t, ran)
	require.Len(t, results.Skipped, 1)
	assert.Equal(t, "command declined to start", results.Skipped[0].SkipReason)
}

func TestRunClassAppliesFilter(t *testing.T) {
	c := newScriptedClass()
	c.commands["Check"] = []TestCommand{passing("keep"), passing("drop")}
	logger := &recordingTestLogger{}

	results := RunClass(c, func(id framework.TestID) bool { return id.String() != "sampleType/drop" }, logger)

	require.Len(t, results.Tests, 1)
	assert.Equal(t, "sampleType/keep", results.Tests[0].TestID.String())
	assert.Contains(t, logger.events, "skipped sampleType/drop (excluded by filter parameters)")
}

func TestRunClassWithNoTestMethodsDoesNothing(t *testing.T) {
	c := newScriptedClass()
	c.SetTypeUnderTest(TypeOf(emptyType{}))
	c.startErr = errors.New("should not be called")

	results := RunClass(c, nil, nil)
	assert.Len(t, results.Tests, 0)
}

type emptyType struct{}

type providesClassCommand struct{}

var providedCommand = newScriptedClass()

func (p *providesClassCommand) RunWith() ClassCommand { return providedCommand }

func TestSuiteAddUsesProvidedClassCommand(t *testing.T) {
	var suite Suite
	suite.Add(TypeOf((*providesClassCommand)(nil)))

	require.Len(t, suite.classes, 1)
	assert.Same(t, providedCommand, suite.classes[0])
	assert.Equal(t, "providesClassCommand", providedCommand.TypeUnderTest().Name())
}

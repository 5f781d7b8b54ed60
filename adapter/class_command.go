package adapter

import "github.com/launchdarkly/bdd-adapter/host"

// ClassCommand is a host.ClassCommand for specification types. A type is only eligible if it
// embeds bdd.Base; all of the methods declared directly on it are test methods, and each of them is
// expanded into its examples with CreateForMethod.
//
// There is no class-level setup or teardown, and methods run in the order they are enumerated.
type ClassCommand struct {
	typeUnderTest *host.TypeInfo
}

// NewClassCommand returns a ClassCommand with no type under test; the host sets it.
func NewClassCommand() *ClassCommand {
	return &ClassCommand{}
}

// ObjectUnderTest is nil; every ExampleCommand carries its own specification instance.
func (c *ClassCommand) ObjectUnderTest() interface{} { return nil }

func (c *ClassCommand) TypeUnderTest() *host.TypeInfo { return c.typeUnderTest }

func (c *ClassCommand) SetTypeUnderTest(t *host.TypeInfo) { c.typeUnderTest = t }

func (c *ClassCommand) ChooseNextTest(testsLeftToRun []*host.MethodInfo) int { return 0 }

func (c *ClassCommand) ClassStart() error { return nil }

func (c *ClassCommand) ClassFinish() error { return nil }

func (c *ClassCommand) EnumerateTestCommands(testMethod *host.MethodInfo) ([]host.TestCommand, error) {
	if testMethod == nil {
		return nil, host.NewArgumentError("testMethod")
	}
	return CreateForMethod(testMethod)
}

func (c *ClassCommand) EnumerateTestMethods() []*host.MethodInfo {
	if !isSpecification(c.typeUnderTest) {
		return nil
	}
	return c.typeUnderTest.DeclaredMethods()
}

func (c *ClassCommand) IsTestMethod(testMethod *host.MethodInfo) (bool, error) {
	if testMethod == nil {
		return false, host.NewArgumentError("testMethod")
	}
	return isSpecification(testMethod.Class()), nil
}

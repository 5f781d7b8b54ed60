package host

// ClassCommand controls how the runner treats one test type.
type ClassCommand interface {
	// ObjectUnderTest is passed to commands that do not ask for a new instance. It may be nil.
	ObjectUnderTest() interface{}

	TypeUnderTest() *TypeInfo
	SetTypeUnderTest(t *TypeInfo)

	// ChooseNextTest returns the index of the method to run next.
	ChooseNextTest(testsLeftToRun []*MethodInfo) int

	// ClassStart runs before any test method of the class. A non-nil error prevents the class
	// from running.
	ClassStart() error

	// ClassFinish runs after all test methods of the class.
	ClassFinish() error

	EnumerateTestCommands(testMethod *MethodInfo) ([]TestCommand, error)
	EnumerateTestMethods() []*MethodInfo
	IsTestMethod(testMethod *MethodInfo) (bool, error)
}

// ClassCommandProvider can be implemented by a test type to choose its own ClassCommand instead
// of AttributeClassCommand.
type ClassCommandProvider interface {
	RunWith() ClassCommand
}

// AttributeClassCommand treats a method as a test if the type's TestAttributes has an entry for it,
// and lets that entry enumerate the method's commands.
type AttributeClassCommand struct {
	typeUnderTest *TypeInfo
	attributes    map[string]CommandEnumerator
}

func (c *AttributeClassCommand) ObjectUnderTest() interface{} { return nil }

func (c *AttributeClassCommand) TypeUnderTest() *TypeInfo { return c.typeUnderTest }

func (c *AttributeClassCommand) SetTypeUnderTest(t *TypeInfo) {
	c.typeUnderTest = t
	c.attributes = nil
	if t == nil {
		return
	}
	if a, ok := t.CreateInstance().(Attributed); ok {
		c.attributes = a.TestAttributes()
	}
}

func (c *AttributeClassCommand) ChooseNextTest(testsLeftToRun []*MethodInfo) int { return 0 }

func (c *AttributeClassCommand) ClassStart() error { return nil }

func (c *AttributeClassCommand) ClassFinish() error { return nil }

func (c *AttributeClassCommand) EnumerateTestCommands(testMethod *MethodInfo) ([]TestCommand, error) {
	if testMethod == nil {
		return nil, NewArgumentError("testMethod")
	}
	attr := c.attributes[testMethod.Name()]
	if attr == nil {
		return nil, nil
	}
	return attr.EnumerateTestCommands(testMethod)
}

func (c *AttributeClassCommand) EnumerateTestMethods() []*MethodInfo {
	if c.typeUnderTest == nil {
		return nil
	}
	return c.typeUnderTest.DeclaredMethods()
}

func (c *AttributeClassCommand) IsTestMethod(testMethod *MethodInfo) (bool, error) {
	if testMethod == nil {
		return false, NewArgumentError("testMethod")
	}
	return c.attributes[testMethod.Name()] != nil, nil
}

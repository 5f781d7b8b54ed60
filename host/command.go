package host

// TestCommand is one runnable unit produced from a test method.
type TestCommand interface {
	DisplayName() string

	// ShouldCreateInstance tells the runner whether to create a new instance of the test type to
	// pass to Execute. If it returns false, Execute receives the class command's ObjectUnderTest.
	ShouldCreateInstance() bool

	// Timeout is in milliseconds. Zero means no timeout.
	Timeout() int

	// StartInfo describes the command before it runs. A nil value means the command is known not
	// to run, and the runner skips it.
	StartInfo() *StartInfo

	Execute(testClass interface{}) MethodResult
}

// StartInfo is reported by a command that is about to run.
type StartInfo struct {
	Kind        string
	DisplayName string
}

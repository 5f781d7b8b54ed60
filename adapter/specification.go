package adapter

import "github.com/launchdarkly/bdd-adapter/host"

// Specification marks a method of a host.Attributed type as a specification method. The host
// runner then gets one command per example instead of a single command for the method.
//
//	func (s *StackSpec) TestAttributes() map[string]host.CommandEnumerator {
//		return map[string]host.CommandEnumerator{"Describe_stack": adapter.Specification{}}
//	}
type Specification struct{}

func (Specification) EnumerateTestCommands(method *host.MethodInfo) ([]host.TestCommand, error) {
	if method == nil {
		return nil, host.NewArgumentError("method")
	}
	return CreateForMethod(method)
}

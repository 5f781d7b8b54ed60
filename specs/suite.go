package specs

import (
	"github.com/launchdarkly/bdd-adapter/adapter"
	"github.com/launchdarkly/bdd-adapter/host"
)

// AddTo registers every specification with a suite.
func AddTo(s *host.Suite) {
	s.AddWith(host.TypeOf((*StackSpec)(nil)), adapter.NewClassCommand())
	s.AddWith(host.TypeOf((*LedgerSpec)(nil)), adapter.NewClassCommand())
	s.Add(host.TypeOf((*RegistryTests)(nil)))
}

package adapter

import (
	"strings"
	"testing"

	"github.com/launchdarkly/bdd-adapter/bdd"
	"github.com/launchdarkly/bdd-adapter/host"
)

// RunSpecs runs specifications as Go subtests: one subtest per specification type, containing one
// subtest per example. Pending examples are skipped.
//
//	func TestStack(t *testing.T) {
//		adapter.RunSpecs(t, &StackSpec{})
//	}
//
// The argument values are only used for their types.
func RunSpecs(t *testing.T, protos ...bdd.Spec) {
	t.Helper()
	for _, proto := range protos {
		typ := host.TypeOf(proto)
		if typ == nil {
			t.Errorf("RunSpecs: %s", host.NewArgumentError("proto"))
			continue
		}
		cmd := NewClassCommand()
		cmd.SetTypeUnderTest(typ)
		t.Run(typ.Name(), func(t *testing.T) {
			for _, m := range cmd.EnumerateTestMethods() {
				commands, err := cmd.EnumerateTestCommands(m)
				if err != nil {
					t.Errorf("%s: %s", m, err)
					continue
				}
				for _, c := range commands {
					c := c
					t.Run(c.DisplayName(), func(t *testing.T) {
						reportToT(t, c.Execute(nil))
					})
				}
			}
		})
	}
}

func reportToT(t *testing.T, result host.MethodResult) {
	t.Helper()
	for _, line := range result.DebugOutput.Messages() {
		t.Log(line)
	}
	switch result.Kind {
	case host.ResultFailed:
		msg := result.ExceptionType + ": " + result.Message
		if result.StackTrace != "" {
			msg += "\n" + strings.TrimSpace(result.StackTrace)
		}
		t.Error(msg)
	case host.ResultSkipped:
		t.Skip(result.SkipReason)
	}
}

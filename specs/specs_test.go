package specs

import (
	"testing"

	"github.com/launchdarkly/bdd-adapter/adapter"
	"github.com/launchdarkly/bdd-adapter/framework"
	"github.com/launchdarkly/bdd-adapter/host"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecsUnderGoTest(t *testing.T) {
	adapter.RunSpecs(t, &StackSpec{}, &LedgerSpec{}, &RegistryTests{})
}

func TestSuiteRunsAllSpecs(t *testing.T) {
	var suite host.Suite
	AddTo(&suite)

	results := suite.Run(nil, nil)

	var names []string
	for _, r := range results.Tests {
		names = append(names, r.TestID.String())
	}
	assert.Equal(t, []string{
		"StackSpec/Describe stack. starts empty",
		"StackSpec/Describe stack. refuses to pop when empty",
		"StackSpec/Describe stack. has a maximum size",
		"StackSpec/Describe stack. after pushing two items. pops the last item first",
		"StackSpec/Describe stack. after pushing two items. peeks without removing",
		"StackSpec/Describe stack. after pushing two items. and popping both. is empty again",
		"LedgerSpec/Describe ledger. starts with a zero balance",
		"LedgerSpec/Describe ledger. when recording entries. adds a deposit",
		"LedgerSpec/Describe ledger. when recording entries. subtracts a withdrawal from the previous balance",
		"LedgerSpec/Describe ledger. when recording entries. rejects an empty entry",
		"LedgerSpec/Describe ledger. when auditing. reports entries in the order they were recorded",
		"LedgerSpec/Describe ledger. when auditing. flags unusually large entries",
		"RegistryTests/Describe registry. lists names in sorted order",
		"RegistryTests/Describe registry. after removing a name. no longer lists it",
		"RegistryTests/RegistryTests.LookupOfMissingKeyFails",
		"RegistryTests/RegistryTests.NewRegistryIsEmpty",
	}, names)
	assert.True(t, results.OK())

	var skipped []string
	for _, r := range results.Skipped {
		skipped = append(skipped, r.TestID.String())
		assert.Equal(t, adapter.PendingReason, r.SkipReason)
	}
	assert.Equal(t, []string{
		"StackSpec/Describe stack. has a maximum size",
		"LedgerSpec/Describe ledger. when auditing. flags unusually large entries",
	}, skipped)
}

func TestLedgerExamplesDependOnEarlierOnes(t *testing.T) {
	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set("auditing"))

	var suite host.Suite
	suite.AddWith(host.TypeOf((*LedgerSpec)(nil)), adapter.NewClassCommand())
	results := suite.Run(filters.AsFilter, nil)

	require.Len(t, results.Failures, 1)
	assert.Equal(t, "LedgerSpec/Describe ledger. when auditing. reports entries in the order they were recorded",
		results.Failures[0].TestID.String())
}

func TestStackDebugOutputIsCaptured(t *testing.T) {
	commands, err := adapter.NewClassCommand().EnumerateTestCommands(stackMethod(t))
	require.NoError(t, err)

	for _, c := range commands {
		if c.DisplayName() == "Describe stack. after pushing two items. pops the last item first" {
			result := c.Execute(nil)
			assert.Equal(t, host.ResultPassed, result.Kind)
			assert.Equal(t, []string{"stack contains [first second]"}, result.DebugOutput.Messages())
			return
		}
	}
	require.Fail(t, "example not found")
}

func stackMethod(t *testing.T) *host.MethodInfo {
	for _, m := range host.TypeOf((*StackSpec)(nil)).DeclaredMethods() {
		if m.Name() == "Describe_stack" {
			return m
		}
	}
	require.Fail(t, "method not found")
	return nil
}

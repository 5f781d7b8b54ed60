package main

import (
	"os"
	"testing"

	"github.com/launchdarkly/bdd-adapter/framework"

	helpers "github.com/launchdarkly/go-test-helpers/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFlags(t *testing.T) {
	var p commandParams
	require.True(t, p.Read([]string{"bdd-adapter", "-run", "^StackSpec/", "-skip", "pending", "-debug", "-report", "out.json"}))

	assert.True(t, p.debug)
	assert.False(t, p.debugAll)
	assert.Equal(t, "out.json", p.reportFile)
	assert.True(t, p.filters.AsFilter(framework.NewTestID("StackSpec", "x")))
	assert.False(t, p.filters.AsFilter(framework.NewTestID("LedgerSpec", "x")))
	assert.False(t, p.filters.AsFilter(framework.NewTestID("StackSpec", "pending thing")))
}

func TestReadConfigFileWithFlagOverrides(t *testing.T) {
	helpers.WithTempFile(func(path string) {
		require.NoError(t, os.WriteFile(path, []byte(`
run:
  - "^LedgerSpec/"
skip:
  - auditing
report: from-file.json
debug: true
noColor: true
`), 0o600))

		var p commandParams
		require.True(t, p.Read([]string{"bdd-adapter", "-config", path, "-run", "^StackSpec/", "-debug=false"}))

		assert.Equal(t, "from-file.json", p.reportFile)
		assert.False(t, p.debug)
		assert.True(t, p.noColor)
		assert.True(t, p.filters.AsFilter(framework.NewTestID("LedgerSpec", "x")))
		assert.True(t, p.filters.AsFilter(framework.NewTestID("StackSpec", "x")))
		assert.False(t, p.filters.AsFilter(framework.NewTestID("LedgerSpec", "when auditing. y")))
	})
}

func TestReadInvalidConfigFile(t *testing.T) {
	helpers.WithTempFile(func(path string) {
		require.NoError(t, os.WriteFile(path, []byte("run: [\"(\"]\n"), 0o600))

		var p commandParams
		assert.False(t, p.Read([]string{"bdd-adapter", "-config", path}))
	})
}

func TestReadMissingConfigFile(t *testing.T) {
	var p commandParams
	assert.False(t, p.Read([]string{"bdd-adapter", "-config", "/nonexistent/config.yaml"}))
}

func TestRerunCommandQuotesPatterns(t *testing.T) {
	cmd := rerunCommand("bdd-adapter", []framework.TestID{
		framework.NewTestID("StackSpec", "Describe stack. starts empty"),
	})
	assert.Equal(t, `bdd-adapter -run '^StackSpec/Describe stack\. starts empty$'`, cmd)
}

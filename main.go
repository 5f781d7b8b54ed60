package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/launchdarkly/bdd-adapter/framework"
	"github.com/launchdarkly/bdd-adapter/host"
	"github.com/launchdarkly/bdd-adapter/specs"

	"github.com/fatih/color"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}
	if params.noColor {
		color.NoColor = true
	}

	framework.PrintFilterDescription(os.Stdout, params.filters)

	fmt.Println("Running specifications")

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	var suite host.Suite
	specs.AddTo(&suite)
	results := suite.Run(params.filters.AsFilter, testLogger)

	fmt.Println()
	printResults(os.Stdout, filepath.Base(os.Args[0]), results)

	if params.reportFile != "" {
		if err := writeReport(params.reportFile, results); err != nil {
			fmt.Fprintf(os.Stderr, "Could not write report: %s\n", err)
			os.Exit(1)
		}
	}
	if !results.OK() {
		os.Exit(1)
	}
}

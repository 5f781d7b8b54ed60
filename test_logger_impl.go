package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/launchdarkly/bdd-adapter/framework"
	"github.com/launchdarkly/bdd-adapter/logging"

	"github.com/fatih/color"
)

var (
	failedColor  = color.New(color.FgRed, color.Bold)
	skippedColor = color.New(color.FgYellow)
	debugColor   = color.New(color.Faint)
)

type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
	Out                  io.Writer
}

func (c *ConsoleTestLogger) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	fmt.Fprintf(c.out(), "[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintf(c.out(), "  %s\n", line)
	}
	var st interface{ StackTrace() string }
	if c.DebugOutputOnFailure && errors.As(err, &st) && st.StackTrace() != "" {
		for _, line := range strings.Split(strings.TrimSpace(st.StackTrace()), "\n") {
			debugColor.Fprintf(c.out(), "    STACK %s\n", line)
		}
	}
}

func (c *ConsoleTestLogger) TestFinished(id framework.TestID, failed bool, debugOutput logging.CapturedOutput) {
	if failed {
		failedColor.Fprintf(c.out(), "  FAILED: %s\n", id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.out(), "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		skippedColor.Fprintf(c.out(), "  SKIPPED: %s\n", id)
	} else {
		skippedColor.Fprintf(c.out(), "  SKIPPED: %s (%s)\n", id, reason)
	}
}

func printResults(out io.Writer, program string, results framework.Results) {
	fmt.Fprintf(out, "%d tests, %d failed, %d skipped\n", len(results.Tests), len(results.Failures), len(results.Skipped))
	if results.OK() {
		return
	}
	fmt.Fprintln(out, "Failed tests:")
	ids := make([]framework.TestID, 0, len(results.Failures))
	for _, f := range results.Failures {
		failedColor.Fprintf(out, "  %s\n", f.TestID)
		ids = append(ids, f.TestID)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "To run only the failed tests:")
	fmt.Fprintf(out, "  %s\n", rerunCommand(program, ids))
}

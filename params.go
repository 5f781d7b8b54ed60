package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/launchdarkly/bdd-adapter/framework"

	"github.com/alessio/shellescape"
	"gopkg.in/yaml.v3"
)

type commandParams struct {
	configFile string
	filters    framework.RegexFilters
	reportFile string
	debug      bool
	debugAll   bool
	noColor    bool
}

// fileConfig is the format of the optional file given with -config. Command-line flags are
// applied on top of it.
type fileConfig struct {
	Run      []string `yaml:"run"`
	Skip     []string `yaml:"skip"`
	Report   string   `yaml:"report"`
	Debug    bool     `yaml:"debug"`
	DebugAll bool     `yaml:"debugAll"`
	NoColor  bool     `yaml:"noColor"`
}

func (c *commandParams) Read(args []string) bool {
	var run, skip framework.RegexList
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.configFile, "config", "", "YAML file with default parameters")
	fs.Var(&run, "run", "regex pattern(s) to select tests to run")
	fs.Var(&skip, "skip", "regex pattern(s) to select tests not to run")
	fs.StringVar(&c.reportFile, "report", "", "write a JSON report of all results to this file")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colored output")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}

	if c.configFile != "" {
		set := map[string]bool{}
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if err := c.applyConfigFile(set); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration file: %s\n", err)
			return false
		}
	}
	c.filters.MustMatch.Merge(run)
	c.filters.MustNotMatch.Merge(skip)
	return true
}

// applyConfigFile fills in every parameter that was not set on the command line. Filter patterns
// from the file are always kept, and patterns from the command line are added to them.
func (c *commandParams) applyConfigFile(setOnCommandLine map[string]bool) error {
	data, err := os.ReadFile(c.configFile)
	if err != nil {
		return err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("%s: %w", c.configFile, err)
	}
	for _, p := range fc.Run {
		if err := c.filters.MustMatch.Set(p); err != nil {
			return fmt.Errorf("run: %w", err)
		}
	}
	for _, p := range fc.Skip {
		if err := c.filters.MustNotMatch.Set(p); err != nil {
			return fmt.Errorf("skip: %w", err)
		}
	}
	if !setOnCommandLine["report"] {
		c.reportFile = fc.Report
	}
	if !setOnCommandLine["debug"] {
		c.debug = fc.Debug
	}
	if !setOnCommandLine["debug-all"] {
		c.debugAll = fc.DebugAll
	}
	if !setOnCommandLine["no-color"] {
		c.noColor = fc.NoColor
	}
	return nil
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunCommand builds a command line that runs only the given tests.
func rerunCommand(program string, ids []framework.TestID) string {
	var b commandBuilder
	b.add(program)
	for _, id := range ids {
		b.add("-run", "^"+regexp.QuoteMeta(id.String())+"$")
	}
	return b.String()
}

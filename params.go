package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/factoriolab/calc-test-harness/framework/caltest"
)

type commandParams struct {
	filters        caltest.RegexFilters
	skipFile       string
	recordFailures string
	jUnitFile      string
	debug          bool
	debugAll       bool
	quiet          bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.StringVar(&c.skipFile, "skip-from", "", "file with exact test names to skip, one per line")
	fs.StringVar(&c.recordFailures, "record-failures", "", "write names of failed tests to the specified path")
	fs.StringVar(&c.jUnitFile, "junit", "", "write JUnit XML output to the specified path")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
	fs.BoolVar(&c.quiet, "quiet", false, "show a progress bar instead of per-test output")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	if c.quiet && c.debugAll {
		fmt.Fprintln(os.Stderr, "-quiet and -debug-all are mutually exclusive")
		fs.Usage()
		return false
	}
	return true
}

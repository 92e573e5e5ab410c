package caltest

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/factoriolab/calc-test-harness/framework"
)

// ProgressTestLogger is a quiet-mode alternative to ConsoleTestLogger: instead of one
// line per test, it renders a single progress bar whose description shows the live
// pass/fail tally. Failure details are printed after the run completes.
type ProgressTestLogger struct {
	bar    *progressbar.ProgressBar
	passed int
	failed int
}

func NewProgressTestLogger() *ProgressTestLogger {
	p := &ProgressTestLogger{}
	p.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(p.description()),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionOnCompletion(func() {
			fmt.Print("\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
	return p
}

func (p *ProgressTestLogger) description() string {
	return color.CyanString("Running tests: ") +
		color.GreenString("[passed: %d", p.passed) +
		" | " +
		color.RedString("failed: %d]", p.failed)
}

func (p *ProgressTestLogger) TestStarted(id TestID) {}

func (p *ProgressTestLogger) TestError(id TestID, err error) {}

func (p *ProgressTestLogger) TestFinished(id TestID, result TestResult, debugOutput framework.CapturedOutput) {
	if result.Failed() {
		p.failed++
	} else {
		p.passed++
	}
	_ = p.bar.Add(1)
	p.bar.Describe(p.description())
}

func (p *ProgressTestLogger) TestSkipped(id TestID, reason string) {}

func (p *ProgressTestLogger) EndLog(results Results) error {
	_ = p.bar.Finish()
	fmt.Println()
	for _, f := range results.Failures {
		for _, err := range f.Errors {
			_, _ = consoleTestFailedColor.Printf("%s\n", TestFailure{ID: f.TestID, Err: err})
		}
	}
	PrintResults(results)
	return nil
}

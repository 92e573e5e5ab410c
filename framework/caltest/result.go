package caltest

import (
	"fmt"
	"strings"
)

// Results is the tally of a completed run. Tests preserves execution order; Failures is
// the subset of Tests that failed.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

// TestResult is the recorded outcome of one test scope.
type TestResult struct {
	TestID TestID
	Errors []error
}

func (r TestResult) Failed() bool { return len(r.Errors) > 0 }

// OK is true if and only if no test failed.
func (r Results) OK() bool { return len(r.Failures) == 0 }

func (r Results) PassedCount() int { return len(r.Tests) - len(r.Failures) }

func (r Results) FailedCount() int { return len(r.Failures) }

// TestID identifies a test scope as a path of names, parent scopes first.
type TestID []string

func (t TestID) String() string {
	return strings.Join(t, "/")
}

// Plus returns the TestID of a child scope with the given name.
func (t TestID) Plus(name string) TestID {
	return append(append(TestID(nil), t...), name)
}

// TestFailure associates a test's ID with one of its errors, for reporting.
type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}

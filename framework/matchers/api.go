// Package matchers provides a flexible assertion API in the Hamcrest style. Matchers
// are constructed separately from the values being tested, can be combined or negated,
// and self-describe on failure.
package matchers

import (
	"fmt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFunc is the predicate behind a Matcher. It returns true if the value passes.
type TestFunc func(value any) bool

// DescribeFailureFunc returns a description of the expectation, used when the test
// failed. A description of the actual value is always appended automatically.
type DescribeFailureFunc func(value any) string

// Matcher is a declared expectation about a value.
type Matcher struct {
	test            TestFunc
	describeFailure DescribeFailureFunc
}

// New creates a Matcher from a predicate and a failure description.
func New(test TestFunc, describeFailure DescribeFailureFunc) Matcher {
	return Matcher{test: test, describeFailure: describeFailure}
}

// Test applies the expectation to a value. On failure it also returns a string
// describing what was expected and what was seen.
func (m Matcher) Test(value any) (pass bool, failDescription string) {
	if m.run(value) {
		return true, ""
	}
	return false, fmt.Sprintf("expected: %s\nactual value was: %s",
		m.describe(value), Describe(value))
}

func (m Matcher) run(value any) bool {
	if m.test == nil {
		return true
	}
	return m.test(value)
}

func (m Matcher) describe(value any) string {
	if m.describeFailure == nil {
		return "no test description given"
	}
	return m.describeFailure(value)
}

// Assert tests a value and, on failure, calls assert.Fail with the failure description.
// It works with any type compatible with testify's assert.TestingT, including caltest.T.
func (m Matcher) Assert(t assert.TestingT, value any) bool {
	if pass, desc := m.Test(value); !pass {
		assert.Fail(t, desc)
		return false
	}
	return true
}

// Require is like Assert but terminates the test immediately on failure.
func (m Matcher) Require(t require.TestingT, value any) bool {
	if pass, desc := m.Test(value); !pass {
		require.Fail(t, desc)
		return false
	}
	return true
}

// Describe renders a value as a string for failure messages. It uses the value's own
// String method if it has one, and fmt's "%+v" formatting otherwise.
func Describe(value any) string {
	if s, ok := value.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%+v", value)
}

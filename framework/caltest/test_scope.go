package caltest

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/factoriolab/calc-test-harness/framework"
)

type environment struct {
	config  Config
	results Results
}

// T represents a test scope. It is very similar to Go's testing.T type, and implements
// the testify assert.TestingT and require.TestingT interfaces so that standard
// assertion helpers can be used against it.
type T struct {
	env        *environment
	id         TestID
	debugLog   framework.CapturingLogger
	failed     bool
	skipped    bool
	skipReason string
	cleanups   []func()
	errors     []error
	helperFns  []string
}

// Config contains options for an entire test run.
type Config struct {
	// Filter optionally selects which tests to run based on their IDs.
	Filter Filter

	// TestLogger receives status information about each test. If nil, output is discarded.
	TestLogger TestLogger

	// Context is an optional application-defined value that tests can read with T.Context.
	Context any
}

// Filter determines whether a test scope should run.
type Filter interface {
	Match(id TestID) bool
}

func (c Config) WithContext(context any) Config {
	c.Context = context
	return c
}

// Run starts a top-level test scope, executing the given action against it, and returns
// the accumulated results once every scope inside it has settled.
func Run(config Config, action func(*T)) Results {
	if config.TestLogger == nil {
		config.TestLogger = NullTestLogger{}
	}
	env := &environment{config: config}
	t := &T{env: env}
	t.run(action)
	return env.results
}

// run executes the scope's action, downgrading any fault to a recorded failure. This is
// the one boundary where both assertion failures (a panic carrying the *T) and
// unexpected panics are caught; neither ever propagates past the scope.
func (t *T) run(action func(*T)) (result TestResult) {
	result.TestID = t.id
	defer func() {
		if r := recover(); r != nil && !t.skipped {
			t.failed = true
			var caught error
			if _, ok := r.(*T); ok {
				// FailNow was called; the failure message, if any, is already recorded
				if len(t.errors) == 0 {
					caught = errors.New("test failed with no failure message")
				}
			} else {
				caught = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if caught != nil {
				t.errors = append(t.errors, caught)
				t.env.config.TestLogger.TestError(t.id, caught)
			}
		}
		if !t.skipped {
			result.Errors = t.errors
			if t.failed {
				t.env.results.Failures = append(t.env.results.Failures, result)
			}
			if len(t.id) > 0 {
				// the root scope is bookkeeping, not a test; it stays out of the tally
				t.env.results.Tests = append(t.env.results.Tests, result)
			}
		}
		for i := len(t.cleanups) - 1; i >= 0; i-- {
			t.cleanups[i]()
		}
	}()

	action(t)
	return result
}

// ID returns the full name of the current test.
func (t *T) ID() TestID {
	return t.id
}

// Run runs a subtest in its own scope, equivalent to Go's testing.T.Run. A subtest's
// failure never aborts its siblings.
func (t *T) Run(name string, action func(*T)) {
	id := t.id.Plus(name)

	if t.env.config.Filter != nil && !t.env.config.Filter.Match(id) {
		t.env.config.TestLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	t.env.config.TestLogger.TestStarted(id)
	child := &T{id: id, env: t.env}
	t.debugLog.AddChildLogger(&child.debugLog) // see framework.CapturingLogger
	result := child.run(action)
	t.debugLog.RemoveChildLogger(&child.debugLog)
	if child.skipped {
		t.env.config.TestLogger.TestSkipped(id, child.skipReason)
	} else {
		t.env.config.TestLogger.TestFinished(id, result, child.debugLog.Output())
	}
}

// Errorf reports a test failure without terminating the test, equivalent to Go's
// testing.T.Errorf. It is mostly called indirectly through assertion helpers.
func (t *T) Errorf(format string, args ...any) {
	t.failed = true
	err := fmt.Errorf(format, args...)

	stacktrace := getStacktrace(false, t.helperFns)
	err = transformError(err, stacktrace)

	t.errors = append(t.errors, err)
	t.env.config.TestLogger.TestError(t.id, err)
}

// FailNow causes the test to immediately terminate and be marked as failed. It is part
// of this type's implementation of require.TestingT.
func (t *T) FailNow() {
	panic(t)
}

// Skip causes the test to immediately terminate and be marked as skipped.
func (t *T) Skip() {
	t.skipped = true
	panic(t)
}

// SkipWithReason is equivalent to Skip but provides a message.
func (t *T) SkipWithReason(reason string) {
	t.skipReason = reason
	t.Skip()
}

// Debug writes a message to the captured output for this test scope.
func (t *T) Debug(message string, args ...any) {
	t.debugLog.Printf(message, args...)
}

// DebugLogger returns a Logger whose output is captured for this test scope. Whether
// the captured output is displayed is up to the TestLogger in use.
func (t *T) DebugLogger() framework.Logger {
	return &t.debugLog
}

// Defer schedules a cleanup function which is guaranteed to be called when this test
// scope exits for any reason, including skips. Unlike a Go defer statement, Defer can
// be used from within helper functions.
func (t *T) Defer(cleanupFn func()) {
	t.cleanups = append(t.cleanups, cleanupFn)
}

// Context returns the application-defined context value, if any, from the Config.
func (t *T) Context() any {
	return t.env.config.Context
}

// WithContext returns a copy of this scope whose Context method returns the given value.
func (t *T) WithContext(context any) *T {
	copied := *t
	copiedEnv := *t.env
	copiedEnv.config = copiedEnv.config.WithContext(context)
	copied.env = &copiedEnv
	return &copied
}

// Helper marks the function that calls it as a test helper that shouldn't appear in
// failure stacktraces. Equivalent to Go's testing.T.Helper().
func (t *T) Helper() {
	pc, _, _, ok := runtime.Caller(1) // 0 is Helper itself, 1 is who called it
	if !ok {
		return
	}
	f := runtime.FuncForPC(pc)
	if f == nil {
		return
	}
	t.helperFns = append(t.helperFns, f.Name())
}

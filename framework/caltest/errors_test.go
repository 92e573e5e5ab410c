package caltest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factoriolab/calc-test-harness/framework/caltest/internal"
)

func TestStacktraceExcludesRunnerFrames(t *testing.T) {
	_ = Run(Config{}, func(ct *T) {
		ct.Run("frames outside caltest survive", func(ct *T) {
			internal.RunAction(func() {
				stack := getStacktrace(false, nil)
				require.Len(t, stack, 1)
				// the caltest frames (including this test) and everything below
				// caltest.Run are stripped, leaving only internal.RunAction
				assert.Equal(t, currentPackageName()+"/internal", stack[0].Package)
				assert.Equal(t, "RunAction", stack[0].Function)
			})
		})

		ct.Run("designated helpers are filtered", func(ct *T) {
			stackHelper1(func() {
				stackHelper2(func() {
					stack := getStacktrace(true, []string{testPackageName() + ".stackHelper2"})
					found1, found2 := false, false
					for _, s := range stack {
						if s.Function == "stackHelper1" {
							found1 = true
						}
						if s.Function == "stackHelper2" {
							found2 = true
						}
					}
					assert.True(t, found1, "stackHelper1 should be in stacktrace: %+v", stack)
					assert.False(t, found2, "stackHelper2 should not be in stacktrace: %+v", stack)
				})
			})
		})
	})
}

// testPackageName is what runtime reports for functions in this package's test files.
func testPackageName() string {
	return currentPackageName()
}

//go:noinline
func stackHelper1(action func()) {
	action()
}

//go:noinline
func stackHelper2(action func()) {
	action()
}

func TestTransformErrorStripsTestifyTrace(t *testing.T) {
	raw := errors.New("\n\tError Trace:\tfoo.go:10\n\t\t\tbar.go:20\n\tError:\tExpected 5, but got 4")
	out := transformError(raw, nil)
	assert.Equal(t, "Expected 5, but got 4", out.Error())
}

func TestTransformErrorAttachesStacktrace(t *testing.T) {
	frames := []StacktraceInfo{{FileName: "x.go", Package: "p", Function: "F", Line: 3}}
	out := transformError(errors.New("boom"), frames)
	var withStack ErrorWithStacktrace
	require.True(t, errors.As(out, &withStack))
	assert.Equal(t, "boom", withStack.Message)
	assert.Equal(t, frames, withStack.Stacktrace)
}

package caltest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runSingleCase executes one action in its own suite and returns the results.
func runSingleCase(action func(*T)) Results {
	s := NewSuite(Config{})
	s.Register("case", action)
	return s.Run()
}

func firstError(t *testing.T, results Results) string {
	t.Helper()
	require.Len(t, results.Failures, 1)
	require.NotEmpty(t, results.Failures[0].Errors)
	return results.Failures[0].Errors[0].Error()
}

func TestAssertHolds(t *testing.T) {
	assert.True(t, runSingleCase(func(ct *T) {
		ct.AssertHolds(true)
		ct.AssertHolds(1 < 2, "numbers are broken")
	}).OK())

	results := runSingleCase(func(ct *T) {
		ct.AssertHolds(false)
	})
	assert.Contains(t, firstError(t, results), "expected condition to hold")

	beltMessage := "belt %s is backwards"
	results = runSingleCase(func(ct *T) {
		ct.AssertHolds(false, beltMessage, "red")
	})
	assert.Contains(t, firstError(t, results), "belt red is backwards")
}

func TestAssertEqualsIsIdempotentOnEqualValues(t *testing.T) {
	assert.True(t, runSingleCase(func(ct *T) {
		ct.AssertEquals(4, 4)
		ct.AssertEquals("iron-plate", "iron-plate")
		ct.AssertEquals(nil, nil)
	}).OK())
}

func TestAssertEqualsFailureMessage(t *testing.T) {
	results := runSingleCase(func(ct *T) {
		ct.AssertEquals(2+2, 5)
	})
	assert.Contains(t, firstError(t, results), "Expected 5, but got 4")
}

func TestAssertEqualsIsStrictNotDeep(t *testing.T) {
	type point struct{ X, Y int }

	// comparable structs work with ==
	assert.True(t, runSingleCase(func(ct *T) {
		ct.AssertEquals(point{1, 2}, point{1, 2})
	}).OK())

	// slices are not comparable; the case fails instead of panicking the run
	results := runSingleCase(func(ct *T) {
		ct.AssertEquals([]int{1}, []int{1})
	})
	assert.Contains(t, firstError(t, results), "cannot be compared strictly")
}

func TestAssertEqualsTerminatesTheCase(t *testing.T) {
	reached := false
	results := runSingleCase(func(ct *T) {
		ct.AssertEquals(1, 2)
		reached = true
	})
	assert.False(t, results.OK())
	assert.False(t, reached)
}

func TestAssertAlmostEquals(t *testing.T) {
	// a difference exactly at the tolerance passes
	assert.True(t, runSingleCase(func(ct *T) {
		ct.AssertAlmostEquals(1.0005, 1.0, 0.0005)
		ct.AssertAlmostEquals(5.5, 5.5001, DefaultTolerance)
		ct.AssertAlmostEquals(3.0, 3.0, 0)
	}).OK())

	// just past the tolerance fails
	results := runSingleCase(func(ct *T) {
		ct.AssertAlmostEquals(1.002, 1.0, 0.001)
	})
	assert.Contains(t, firstError(t, results), "Expected 1 ±0.001, but got 1.002")
}

func TestAssertContains(t *testing.T) {
	assert.True(t, runSingleCase(func(ct *T) {
		ct.AssertContains([]string{"a", "b", "c"}, "b")
		ct.AssertContains([3]int{1, 2, 3}, 2)
		ct.AssertContains("iron-gear-wheel", "gear")
		ct.AssertContains(map[string]float64{"iron-ore": 2}, "iron-ore")
	}).OK())

	results := runSingleCase(func(ct *T) {
		ct.AssertContains([]string{"a", "b", "c"}, "d")
	})
	assert.Contains(t, firstError(t, results), "does not contain")

	results = runSingleCase(func(ct *T) {
		ct.AssertContains(42, 2)
	})
	assert.Contains(t, firstError(t, results), "cannot check containment in int")

	results = runSingleCase(func(ct *T) {
		ct.AssertContains(nil, "x")
	})
	assert.Contains(t, firstError(t, results), "nil sequence")
}

func TestFailureMessageFormatting(t *testing.T) {
	customMessage := "custom %d"

	assert.Equal(t, "default", failureMessage("default"))
	assert.Equal(t, "custom", failureMessage("default", "custom"))
	assert.Equal(t, "custom 7", failureMessage("default", customMessage, 7))
	assert.Equal(t, "42", failureMessage("default", 42))
}

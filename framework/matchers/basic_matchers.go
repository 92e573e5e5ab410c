package matchers

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Equal tests whether the input value deeply equals the expected value. When the values
// differ and go-cmp can inspect them, the failure description includes a field-level
// diff.
func Equal(expectedValue any) Matcher {
	return New(
		func(value any) bool {
			return reflect.DeepEqual(value, expectedValue)
		},
		func(value any) string {
			desc := fmt.Sprintf("equal to %s", Describe(expectedValue))
			if diff := tryDiff(expectedValue, value); diff != "" {
				desc += "\ndiff (-expected +actual):\n" + diff
			}
			return desc
		},
	)
}

// AlmostEqual tests a float64 value against an expected value with a tolerance.
func AlmostEqual(expectedValue, tolerance float64) Matcher {
	return New(
		func(value any) bool {
			f, ok := value.(float64)
			return ok && math.Abs(f-expectedValue) <= tolerance
		},
		func(value any) string {
			return fmt.Sprintf("within %v of %v", tolerance, expectedValue)
		},
	)
}

// StringContains tests that a string value contains the given substring.
func StringContains(substring string) Matcher {
	return New(
		func(value any) bool {
			s, ok := value.(string)
			return ok && strings.Contains(s, substring)
		},
		func(value any) string {
			return fmt.Sprintf("string containing %q", substring)
		},
	)
}

// tryDiff produces a go-cmp diff, or "" if go-cmp cannot inspect the values.
func tryDiff(expected, actual any) (diff string) {
	defer func() {
		if recover() != nil {
			diff = ""
		}
	}()
	return cmp.Diff(expected, actual)
}

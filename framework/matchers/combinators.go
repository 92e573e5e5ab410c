package matchers

import (
	"fmt"
	"strings"
)

// Not negates another Matcher.
//
//	matchers.Not(Equal(3)).Assert(t, 4)
//	// failure message would describe the expectation as "not (equal to 3)"
func Not(matcher Matcher) Matcher {
	return New(
		func(value any) bool {
			return !matcher.run(value)
		},
		func(value any) string {
			return fmt.Sprintf("not (%s)", matcher.describe(value))
		},
	)
}

// AllOf requires the value to pass all of the given Matchers. The failure message
// describes every matcher that failed.
func AllOf(matchers ...Matcher) Matcher {
	return New(
		func(value any) bool {
			for _, m := range matchers {
				if !m.run(value) {
					return false
				}
			}
			return true
		},
		func(value any) string {
			return describeFailedMatchers(matchers, value, " and ")
		},
	)
}

// AnyOf requires the value to pass at least one of the given Matchers.
func AnyOf(matchers ...Matcher) Matcher {
	return New(
		func(value any) bool {
			for _, m := range matchers {
				if m.run(value) {
					return true
				}
			}
			return false
		},
		func(value any) string {
			return describeFailedMatchers(matchers, value, " or ")
		},
	)
}

func describeFailedMatchers(matchers []Matcher, value any, separator string) string {
	var fails []Matcher
	for _, m := range matchers {
		if !m.run(value) {
			fails = append(fails, m)
		}
	}
	if len(fails) == 1 {
		return fails[0].describe(value)
	}
	parts := make([]string, 0, len(fails))
	for _, m := range fails {
		parts = append(parts, "("+m.describe(value)+")")
	}
	return strings.Join(parts, separator)
}

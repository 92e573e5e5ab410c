package caltest

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// DefaultTolerance is the tolerance used by approximate-equality checks when the caller
// has no stricter requirement.
const DefaultTolerance = 0.001

// AssertHolds fails the current case immediately if condition is false.
func (t *T) AssertHolds(condition bool, msgAndArgs ...any) {
	t.Helper()
	if condition {
		return
	}
	t.failCase(failureMessage("expected condition to hold", msgAndArgs...))
}

// AssertEquals fails the current case unless actual is strictly equal to expected.
// Equality here is Go's == on comparable operands, not deep structural equality;
// uncomparable operands fail with a descriptive message. Callers that need tolerance
// use AssertAlmostEquals; callers that need deep comparison use the matchers package.
func (t *T) AssertEquals(actual, expected any, msgAndArgs ...any) {
	t.Helper()
	eq, comparable := strictlyEqual(actual, expected)
	if comparable && eq {
		return
	}
	var msg string
	if !comparable {
		msg = failureMessage(
			fmt.Sprintf("values of type %T and %T cannot be compared strictly", actual, expected),
			msgAndArgs...)
	} else {
		msg = failureMessage(fmt.Sprintf("Expected %v, but got %v", expected, actual), msgAndArgs...)
		if diff := safeDiff(expected, actual); diff != "" && isComposite(actual) {
			msg += "\ndiff (-expected +actual):\n" + diff
		}
	}
	t.failCase(msg)
}

// AssertAlmostEquals fails the current case unless |actual - expected| <= tolerance.
func (t *T) AssertAlmostEquals(actual, expected, tolerance float64, msgAndArgs ...any) {
	t.Helper()
	if math.Abs(actual-expected) <= tolerance {
		return
	}
	t.failCase(failureMessage(
		fmt.Sprintf("Expected %v ±%v, but got %v", expected, tolerance, actual), msgAndArgs...))
}

// AssertContains fails the current case if item is not present in sequence. A sequence
// may be a slice, an array, a string (substring match), or a map (key membership).
func (t *T) AssertContains(sequence, item any, msgAndArgs ...any) {
	t.Helper()
	found, err := contains(sequence, item)
	if err != nil {
		t.failCase(failureMessage(err.Error(), msgAndArgs...))
		return
	}
	if !found {
		t.failCase(failureMessage(fmt.Sprintf("%v does not contain %v", sequence, item), msgAndArgs...))
	}
}

func (t *T) failCase(message string) {
	t.Helper()
	t.Errorf("%s", message)
	t.FailNow()
}

func failureMessage(defaultMsg string, msgAndArgs ...any) string {
	switch len(msgAndArgs) {
	case 0:
		return defaultMsg
	case 1:
		return fmt.Sprint(msgAndArgs[0])
	default:
		if format, ok := msgAndArgs[0].(string); ok {
			return fmt.Sprintf(format, msgAndArgs[1:]...)
		}
		return fmt.Sprint(msgAndArgs...)
	}
}

// strictlyEqual reports whether a == b, guarding against operands whose types Go cannot
// compare (which would otherwise panic inside the run loop).
func strictlyEqual(a, b any) (eq bool, comparable bool) {
	if a == nil || b == nil {
		return a == b, true
	}
	if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
		return false, false
	}
	return a == b, true
}

func isComposite(value any) bool {
	if value == nil {
		return false
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Struct, reflect.Ptr, reflect.Map, reflect.Slice, reflect.Array, reflect.Interface:
		return true
	default:
		return false
	}
}

// safeDiff produces a go-cmp diff, swallowing the panic go-cmp raises for types it
// cannot inspect (such as structs with unexported fields and no custom comparer).
func safeDiff(expected, actual any) (diff string) {
	defer func() {
		if recover() != nil {
			diff = ""
		}
	}()
	return cmp.Diff(expected, actual)
}

func contains(sequence, item any) (bool, error) {
	if sequence == nil {
		return false, fmt.Errorf("cannot check containment in a nil sequence")
	}
	seq := reflect.ValueOf(sequence)
	switch seq.Kind() {
	case reflect.String:
		sub, ok := item.(string)
		if !ok {
			return false, fmt.Errorf("cannot look for %T in a string", item)
		}
		return strings.Contains(seq.String(), sub), nil
	case reflect.Slice, reflect.Array:
		for i := 0; i < seq.Len(); i++ {
			if reflect.DeepEqual(seq.Index(i).Interface(), item) {
				return true, nil
			}
		}
		return false, nil
	case reflect.Map:
		for _, k := range seq.MapKeys() {
			if reflect.DeepEqual(k.Interface(), item) {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, fmt.Errorf("cannot check containment in %T", sequence)
	}
}

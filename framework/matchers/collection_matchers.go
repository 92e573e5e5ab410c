package matchers

import (
	"fmt"
	"reflect"
)

// Contains is a matcher for a slice or array value. It tests that at least one element
// deeply equals the given item.
func Contains(item any) Matcher {
	return New(
		func(value any) bool {
			v := reflect.ValueOf(value)
			if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
				return false
			}
			for i := 0; i < v.Len(); i++ {
				if reflect.DeepEqual(v.Index(i).Interface(), item) {
					return true
				}
			}
			return false
		},
		func(value any) string {
			return fmt.Sprintf("contains %s", Describe(item))
		},
	)
}

// Length tests that a slice, array, map, or string has exactly n elements.
func Length(n int) Matcher {
	return New(
		func(value any) bool {
			v := reflect.ValueOf(value)
			switch v.Kind() {
			case reflect.Slice, reflect.Array, reflect.Map, reflect.String:
				return v.Len() == n
			default:
				return false
			}
		},
		func(value any) string {
			return fmt.Sprintf("has length %d", n)
		},
	)
}

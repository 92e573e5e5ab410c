// Package internal provides a helper for caltest's own tests: a function that lives
// outside the caltest package, so stacktrace filtering can be observed from a frame
// that is not filtered out.
package internal

func RunAction(action func()) {
	action()
}

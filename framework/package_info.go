// Package framework contains the low-level pieces of test harness infrastructure that
// do not know anything about what is being tested. The base package contains shared
// types such as Logger; the test runner itself is in the subpackage caltest.
//
// The general model is:
//
// 1. The harness runs as a regular Go application rather than under "go test". Test
// cases are registered with a suite and executed sequentially in registration order.
//
// 2. Output produced during a test case is captured per scope, so the runner can
// decide after the fact whether to display it (for instance, only for failed cases).
//
// 3. The domain-specific code that knows what is being tested (the calculator,
// visualizer, and dropdown contract suites) lives outside this package and provides
// the test actions and any mock collaborators they exercise.
package framework

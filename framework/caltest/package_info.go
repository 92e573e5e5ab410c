// Package caltest contains a test runner framework that is similar to Go's testing
// package, but is run as regular Go application code rather than Go tests. It provides
// explicit case registration, sequential execution with per-case fault isolation, and
// richer capabilities for filtering, logging, and result reporting.
package caltest

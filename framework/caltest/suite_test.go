package caltest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuiteRunsEveryCaseExactlyOnceInOrder(t *testing.T) {
	var order []string
	s := NewSuite(Config{})
	s.Register("first", func(ct *T) { order = append(order, "first") })
	s.Register("second", func(ct *T) {
		order = append(order, "second")
		ct.FailNow()
	})
	s.Register("third", func(ct *T) { order = append(order, "third") })
	s.Register("fourth", func(ct *T) { order = append(order, "fourth") })

	results := s.Run()

	assert.Equal(t, []string{"first", "second", "third", "fourth"}, order)
	assert.Equal(t, 3, results.PassedCount())
	assert.Equal(t, 1, results.FailedCount())
}

func TestSuitePassingArithmeticCase(t *testing.T) {
	s := NewSuite(Config{})
	s.Register("two plus two", func(ct *T) {
		ct.AssertEquals(2+2, 4)
	})

	results := s.Run()

	assert.True(t, results.OK())
	assert.Equal(t, 1, results.PassedCount())
	assert.Equal(t, 0, results.FailedCount())
}

func TestSuiteFailingArithmeticCase(t *testing.T) {
	s := NewSuite(Config{})
	s.Register("two plus two", func(ct *T) {
		ct.AssertEquals(2+2, 5)
	})

	results := s.Run()

	assert.False(t, results.OK())
	assert.Equal(t, 0, results.PassedCount())
	assert.Equal(t, 1, results.FailedCount())
	require.Len(t, results.Failures, 1)
	require.NotEmpty(t, results.Failures[0].Errors)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "Expected 5, but got 4")
}

func TestSuiteCaseFaultDoesNotAbortRun(t *testing.T) {
	var order []string
	s := NewSuite(Config{})
	s.Register("first", func(ct *T) { order = append(order, "first") })
	s.Register("second", func(ct *T) {
		order = append(order, "second")
		panic("visualizer is not loaded")
	})
	s.Register("third", func(ct *T) { order = append(order, "third") })

	results := s.Run()

	assert.Equal(t, []string{"first", "second", "third"}, order)
	assert.Equal(t, 2, results.PassedCount())
	assert.Equal(t, 1, results.FailedCount())
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "visualizer is not loaded")
}

func TestSuiteAwaitsBlockedCaseBeforeStartingNext(t *testing.T) {
	var events []string
	s := NewSuite(Config{})
	s.Register("blocks on a deferred tick", func(ct *T) {
		done := make(chan struct{})
		go func() {
			time.Sleep(10 * time.Millisecond)
			close(done)
		}()
		<-done
		events = append(events, "first settled")
	})
	s.Register("next", func(ct *T) {
		events = append(events, "next started")
	})

	results := s.Run()

	assert.True(t, results.OK())
	assert.Equal(t, []string{"first settled", "next started"}, events)
}

func TestSuiteRunIsSingleUse(t *testing.T) {
	runs := 0
	s := NewSuite(Config{})
	s.Register("counts", func(ct *T) { runs++ })

	first := s.Run()
	second := s.Run()

	assert.Equal(t, 1, runs)
	assert.Equal(t, first, second)
}

func TestSuiteRegisterNeverFails(t *testing.T) {
	s := NewSuite(Config{})
	s.Register("", func(ct *T) {})
	s.Register("no action", nil)

	results := s.Run()

	assert.Equal(t, 1, results.PassedCount())
	assert.Equal(t, 1, results.FailedCount())
	assert.Equal(t, TestID{"(unnamed case)"}, results.Tests[0].TestID)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "no action")
}

func TestSuiteAppliesFilter(t *testing.T) {
	var order []string
	filter := filterFunc(func(id TestID) bool { return id[0] != "skipped case" })

	s := NewSuite(Config{Filter: filter})
	s.Register("kept case", func(ct *T) { order = append(order, "kept") })
	s.Register("skipped case", func(ct *T) { order = append(order, "skipped") })

	results := s.Run()

	assert.Equal(t, []string{"kept"}, order)
	assert.Equal(t, 1, results.PassedCount())
	assert.Equal(t, 0, results.FailedCount())
}

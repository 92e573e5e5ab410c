package framework

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

const timestampFormat = "2006-01-02 15:04:05.000"

// Logger is the basic output interface used throughout the harness.
type Logger interface {
	Println(args ...any)
	Printf(message string, args ...any)
}

type nullLogger struct{}

func (n nullLogger) Println(args ...any)                {}
func (n nullLogger) Printf(message string, args ...any) {}

// NullLogger returns a Logger that discards all output.
func NullLogger() Logger { return nullLogger{} }

// CapturedMessage is one timestamped line of captured output.
type CapturedMessage struct {
	Time    time.Time
	Message string
}

type CapturedOutput []CapturedMessage

// CapturingLogger records all output produced within a test scope. When a child scope
// is active (a subtest is running), output sent to the parent is redirected to the
// child, so that debug output from shared fixtures shows up with the test that was
// running at the time.
type CapturingLogger struct {
	messages []CapturedMessage
	children []*CapturingLogger
	lock     sync.Mutex
}

func (l *CapturingLogger) Println(args ...any) {
	// Sprintln appends a newline that we don't want in a captured message
	m := strings.TrimRight(fmt.Sprintln(args...), "\r\n")
	l.record(CapturedMessage{Time: time.Now(), Message: m})
}

func (l *CapturingLogger) Printf(message string, args ...any) {
	l.record(CapturedMessage{Time: time.Now(), Message: fmt.Sprintf(message, args...)})
}

func (l *CapturingLogger) record(m CapturedMessage) {
	l.lock.Lock()
	if len(l.children) == 0 {
		l.messages = append(l.messages, m)
		l.lock.Unlock()
		return
	}
	children := append([]*CapturingLogger(nil), l.children...)
	l.lock.Unlock()
	for _, c := range children {
		c.record(m)
	}
}

// Output returns a snapshot of everything recorded so far.
func (l *CapturingLogger) Output() CapturedOutput {
	l.lock.Lock()
	defer l.lock.Unlock()
	return append(CapturedOutput(nil), l.messages...)
}

// AddChildLogger attaches a child scope's logger. The child starts out with a copy of
// the parent's output so far, and receives any further parent output until removed.
func (l *CapturingLogger) AddChildLogger(child *CapturingLogger) {
	l.lock.Lock()
	l.children = append(l.children, child)
	soFar := append([]CapturedMessage(nil), l.messages...)
	l.lock.Unlock()
	child.lock.Lock()
	child.messages = append(soFar, child.messages...)
	child.lock.Unlock()
}

func (l *CapturingLogger) RemoveChildLogger(child *CapturingLogger) {
	l.lock.Lock()
	defer l.lock.Unlock()
	for i, c := range l.children {
		if c == child {
			l.children = append(l.children[:i], l.children[i+1:]...)
			return
		}
	}
}

// ToString renders the captured output as a multi-line string, with each line prefixed
// by the given prefix and the message timestamp.
func (output CapturedOutput) ToString(prefix string) string {
	lines := make([]string, 0, len(output))
	for _, m := range output {
		lines = append(lines, fmt.Sprintf("%s[%s] %s", prefix, m.Time.Format(timestampFormat), m.Message))
	}
	return strings.Join(lines, "\n")
}

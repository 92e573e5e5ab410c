package caltest

// Case is one registered unit of verification logic: a label plus a zero-argument
// action. The action may block (for example on a channel or timer) before completing;
// the runner waits for it to settle before moving on.
type Case struct {
	Name   string
	Action func(*T)
}

// Suite is an ordered collection of named test cases. Cases are executed exactly once,
// in registration order, by Run; one case's failure never skips or aborts the cases
// after it.
type Suite struct {
	config  Config
	cases   []Case
	ran     bool
	results Results
}

// NewSuite creates an empty suite. A zero-value Config is valid: all tests run and
// status output is discarded.
func NewSuite(config Config) *Suite {
	return &Suite{config: config}
}

// Register appends a named case to the suite. It never fails: an empty name is
// replaced with a placeholder, and a nil action is stored as a case that fails with a
// descriptive message when run.
func (s *Suite) Register(name string, action func(*T)) {
	if name == "" {
		name = "(unnamed case)"
	}
	if action == nil {
		action = func(t *T) {
			t.Errorf("test case was registered with no action")
			t.FailNow()
		}
	}
	s.cases = append(s.cases, Case{Name: name, Action: action})
}

// Run executes every registered case and returns the final tally. Each case runs to
// completion (or failure) before the next one starts; faults are caught at the case
// boundary, so Run always returns a complete Results even if every case fails.
//
// A Suite is single-use. Calling Run again returns the recorded results of the
// completed run without re-executing anything.
func (s *Suite) Run() Results {
	if s.ran {
		return s.results
	}
	s.ran = true
	s.results = Run(s.config, func(t *T) {
		for _, c := range s.cases {
			t.Run(c.Name, c.Action)
		}
	})
	return s.results
}

// Package model defines the data structures for recorded test results and reports.
package model

// Outcome represents the terminal state of a single test execution.
type Outcome int

const (
	// Passed indicates the test completed without failures.
	Passed Outcome = iota
	// Failed indicates the test reported an assertion failure.
	Failed
	// Errored indicates the test aborted unexpectedly (panic, build error, timeout).
	Errored
)

// String returns the status label used in reports.
func (o Outcome) String() string {
	switch o {
	case Passed:
		return "pass"
	case Failed:
		return "fail"
	case Errored:
		return "error"
	default:
		return "unknown"
	}
}

// RowPrefix returns the row identifier prefix. Only passes get "p";
// failures, errors and unknown codes all share "f".
func (o Outcome) RowPrefix() string {
	if o == Passed {
		return "p"
	}

	return "f"
}

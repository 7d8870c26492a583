package runner

import (
	"time"

	"github.com/specialistvlad/cratemover/internal/crate"
	"github.com/specialistvlad/cratemover/internal/plan"
)

// Status is the outcome of a single run.
type Status int

const (
	// Done means the run succeeded and had no expectation to check.
	Done Status = iota + 1
	// Passed means the run succeeded and matched its expectation.
	Passed
	// Failed means the run succeeded but produced a different answer.
	Failed
	// Errored means the input could not be read, parsed or simulated.
	Errored
)

// String returns the status label.
func (s Status) String() string {
	switch s {
	case Done:
		return "DONE"
	case Passed:
		return "PASS"
	case Failed:
		return "FAIL"
	case Errored:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Result records what a run produced.
type Result struct {
	Puzzle       *plan.Puzzle
	RunID        string
	Summary      string
	Stacks       *crate.StackSet
	Instructions int
	Duration     time.Duration
	Err          error
}

// Status derives the outcome of the run.
func (r *Result) Status() Status {
	switch {
	case r.Err != nil:
		return Errored
	case !r.Puzzle.HasExpectation():
		return Done
	case r.Summary == r.Puzzle.Expect:
		return Passed
	default:
		return Failed
	}
}

// Tally counts results per status.
func Tally(results []*Result) map[Status]int {
	counts := make(map[Status]int)
	for _, r := range results {
		counts[r.Status()]++
	}
	return counts
}

// OK reports whether no run failed or errored.
func OK(results []*Result) bool {
	counts := Tally(results)
	return counts[Failed] == 0 && counts[Errored] == 0
}

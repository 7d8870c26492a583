package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/specialistvlad/cratemover/internal/crate"
	"github.com/specialistvlad/cratemover/internal/plan"
	"github.com/specialistvlad/cratemover/internal/runner"
	"github.com/stretchr/testify/assert"
)

func sampleResults() []*runner.Result {
	return []*runner.Result{
		{
			Puzzle:  &plan.Puzzle{Name: "part1", Mode: crate.OneAtATime, Expect: "CMZ"},
			Summary: "CMZ",
			Stacks:  crate.FromStrings("C", "M", "PDNZ"),
		},
		{
			Puzzle:  &plan.Puzzle{Name: "part2", Mode: crate.BulkPreserveOrder, Expect: "CMZ"},
			Summary: "MCD",
		},
		{
			Puzzle: &plan.Puzzle{Name: "bad", Mode: crate.OneAtATime},
			Err:    errors.New("boom"),
		},
		{
			Puzzle:  &plan.Puzzle{Name: "free", Mode: crate.BulkPreserveOrder},
			Summary: "MCD",
		},
	}
}

func TestPrinter_Results(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, Options{}).Results(sampleResults())

	expected := "" +
		"PASS   part1  one-at-a-time  CMZ\n" +
		"FAIL   part2  bulk           got \"MCD\", want \"CMZ\"\n" +
		"ERROR  bad    one-at-a-time  boom\n" +
		"DONE   free   bulk           MCD\n" +
		"\n" +
		"4 runs: 1 passed, 1 failed, 1 errors, 1 unchecked\n"
	assert.Equal(t, expected, buf.String())
}

func TestPrinter_ShowStacks(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, Options{ShowStacks: true}).Results(sampleResults()[:1])

	assert.Contains(t, buf.String(), "       1: C\n       2: M\n       3: P D N Z\n")
}

func TestPrinter_Color(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, Options{Color: true}).Results(sampleResults()[:1])

	assert.Contains(t, buf.String(), "\x1b[")
}

// Package report renders runner results for humans.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/specialistvlad/cratemover/internal/runner"
)

// Options controls rendering.
type Options struct {
	// Color enables ANSI colours regardless of whether w is a terminal.
	Color bool
	// ShowStacks prints the final stacks under every successful run.
	ShowStacks bool
}

// Printer writes result reports.
type Printer struct {
	w    io.Writer
	opts Options

	pass, fail, errc, done, dim *color.Color
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer, opts Options) *Printer {
	p := &Printer{
		w:    w,
		opts: opts,
		pass: color.New(color.FgGreen, color.Bold),
		fail: color.New(color.FgRed, color.Bold),
		errc: color.New(color.FgRed),
		done: color.New(color.FgCyan),
		dim:  color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{p.pass, p.fail, p.errc, p.done, p.dim} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *Printer) statusColor(s runner.Status) *color.Color {
	switch s {
	case runner.Passed:
		return p.pass
	case runner.Failed:
		return p.fail
	case runner.Errored:
		return p.errc
	default:
		return p.done
	}
}

// Results writes one line per result followed by a totals line.
func (p *Printer) Results(results []*runner.Result) {
	width := 0
	for _, r := range results {
		width = max(width, len(r.Puzzle.Name))
	}

	for _, r := range results {
		status := r.Status()
		label := p.statusColor(status).Sprintf("%-5s", status)
		line := fmt.Sprintf("%s  %-*s  %-13s", label, width, r.Puzzle.Name, r.Puzzle.Mode)

		switch status {
		case runner.Errored:
			line += "  " + p.errc.Sprint(r.Err)
		case runner.Failed:
			line += fmt.Sprintf("  got %q, want %q", r.Summary, r.Puzzle.Expect)
		default:
			line += "  " + r.Summary
		}
		fmt.Fprintln(p.w, strings.TrimRight(line, " "))

		if p.opts.ShowStacks && r.Stacks != nil {
			for _, stackLine := range strings.Split(r.Stacks.String(), "\n") {
				fmt.Fprintln(p.w, p.dim.Sprint("       "+stackLine))
			}
		}
	}

	counts := runner.Tally(results)
	fmt.Fprintf(p.w, "\n%d runs: %s passed, %s failed, %s errors, %d unchecked\n",
		len(results),
		p.pass.Sprint(counts[runner.Passed]),
		p.fail.Sprint(counts[runner.Failed]),
		p.errc.Sprint(counts[runner.Errored]),
		counts[runner.Done],
	)
}

package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/specialistvlad/cratemover/internal/crate"
	"github.com/specialistvlad/cratemover/internal/ctxlog"
	"github.com/specialistvlad/cratemover/internal/fsutil"
	"github.com/specialistvlad/cratemover/internal/layout"
	"github.com/specialistvlad/cratemover/internal/plan"
	"github.com/specialistvlad/cratemover/internal/simulator"
	"golang.org/x/sync/errgroup"
)

// Runner executes plans with a bounded number of concurrent runs.
type Runner struct {
	workers int
}

// New creates a Runner. A worker count below one is treated as one.
func New(workers int) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{workers: workers}
}

// Run executes every puzzle of the plan and returns one Result per puzzle,
// in plan order. The error is non-nil only when ctx was cancelled.
func (r *Runner) Run(ctx context.Context, pl *plan.Plan) ([]*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Runner starting.", "puzzles", len(pl.Puzzles), "workers", r.workers)

	results := make([]*Result, len(pl.Puzzles))

	var g errgroup.Group
	g.SetLimit(r.workers)
	for i, p := range pl.Puzzles {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			results[i] = runPuzzle(ctx, p)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("run interrupted: %w", err)
	}

	logger.Debug("Runner finished.", "puzzles", len(results))
	return results, nil
}

// runPuzzle executes one puzzle with its own input and its own StackSet.
func runPuzzle(ctx context.Context, p *plan.Puzzle) *Result {
	ctx, runID := ctxlog.WithRun(ctx, p.Name)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Run started.", "mode", p.Mode.String())

	start := time.Now()
	res := &Result{Puzzle: p, RunID: runID}

	text := p.InputText
	if p.InputPath != "" {
		var err error
		text, err = fsutil.ReadText(p.InputPath)
		if err != nil {
			res.Err = err
			res.Duration = time.Since(start)
			logger.Error("Run failed.", "error", err)
			return res
		}
	}

	summary, stacks, count, err := solve(ctx, text, p.Mode)
	res.Duration = time.Since(start)
	if err != nil {
		res.Err = err
		logger.Error("Run failed.", "error", err)
		return res
	}
	res.Summary, res.Stacks, res.Instructions = summary, stacks, count

	logger.Info("Run finished.", "summary", summary, "status", res.Status().String(), "duration", res.Duration)
	return res
}

// Solve parses puzzle text, runs it under mode and returns the summary and
// the final stacks.
func Solve(ctx context.Context, text string, mode crate.Mode) (string, *crate.StackSet, error) {
	summary, stacks, _, err := solve(ctx, text, mode)
	return summary, stacks, err
}

func solve(ctx context.Context, text string, mode crate.Mode) (string, *crate.StackSet, int, error) {
	stacks, instructions, err := layout.Parse(text)
	if err != nil {
		return "", nil, 0, fmt.Errorf("failed to parse input: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("Input parsed.", "stacks", stacks.Len(), "instructions", len(instructions))

	final, err := simulator.Execute(ctx, stacks, instructions, mode)
	if err != nil {
		return "", nil, 0, fmt.Errorf("simulation failed: %w", err)
	}
	return simulator.Summarize(final), final, len(instructions), nil
}

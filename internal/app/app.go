package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/specialistvlad/cratemover/internal/ctxlog"
	"github.com/specialistvlad/cratemover/internal/hclplan"
	"github.com/specialistvlad/cratemover/internal/plan"
	"github.com/specialistvlad/cratemover/internal/report"
	"github.com/specialistvlad/cratemover/internal/runner"
	"github.com/specialistvlad/cratemover/internal/yamlplan"
)

// ErrVerificationFailed is returned when a run's answer differs from its
// expectation.
var ErrVerificationFailed = errors.New("verification failed")

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	loaders []plan.Loader
	runner  *runner.Runner
}

// NewApp is the constructor for the main application. Answers and reports
// go to outW, logs to logW. Without explicit loaders the HCL and YAML plan
// loaders are used.
func NewApp(outW, logW io.Writer, cfg *Config, loaders ...plan.Loader) *App {
	logger := newLogger(parseLogLevel(cfg.LogLevel), cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if len(loaders) == 0 {
		loaders = []plan.Loader{hclplan.NewLoader(), yamlplan.NewLoader()}
	}

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		loaders: loaders,
		runner:  runner.New(cfg.Workers),
	}
}

// Run executes the configured input or plan.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.InputPath != "" {
		return a.runSingle(ctx)
	}
	return a.runPlan(ctx)
}

// runSingle solves one input file and prints the bare answer.
func (a *App) runSingle(ctx context.Context) error {
	pl := &plan.Plan{Puzzles: []*plan.Puzzle{{
		Name:      filepath.Base(a.config.InputPath),
		InputPath: a.config.InputPath,
		Mode:      a.config.Mode,
		Expect:    a.config.Expect,
		Source:    "command line",
	}}}

	results, err := a.runner.Run(ctx, pl)
	if err != nil {
		return err
	}
	res := results[0]
	if res.Err != nil {
		return res.Err
	}

	fmt.Fprintln(a.outW, res.Summary)
	if a.config.ShowStacks {
		fmt.Fprintln(a.outW, res.Stacks)
	}

	if res.Status() == runner.Failed {
		return fmt.Errorf("%w: got %q, want %q", ErrVerificationFailed, res.Summary, res.Puzzle.Expect)
	}
	return nil
}

// runPlan loads every plan file, runs all puzzles and prints a report.
func (a *App) runPlan(ctx context.Context) error {
	pl, err := plan.Load(ctx, a.loaders, a.config.PlanPaths...)
	if err != nil {
		return fmt.Errorf("failed to load plan: %w", err)
	}
	a.logger.Info("Plan loaded.", "puzzles", len(pl.Puzzles))

	results, err := a.runner.Run(ctx, pl)
	if err != nil {
		return err
	}

	report.NewPrinter(a.outW, report.Options{
		Color:      a.config.Color,
		ShowStacks: a.config.ShowStacks,
	}).Results(results)

	counts := runner.Tally(results)
	if counts[runner.Errored] > 0 {
		return fmt.Errorf("%d of %d runs failed with errors", counts[runner.Errored], len(results))
	}
	if counts[runner.Failed] > 0 {
		return fmt.Errorf("%w: %d of %d runs", ErrVerificationFailed, counts[runner.Failed], len(results))
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

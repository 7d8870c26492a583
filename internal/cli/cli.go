package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/specialistvlad/cratemover/internal/app"
	"github.com/specialistvlad/cratemover/internal/crate"
	"github.com/spf13/pflag"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Exit codes returned by the cratemover binary.
const (
	ExitRuntime      = 1
	ExitUsage        = 2
	ExitVerification = 3
)

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := pflag.NewFlagSet("cratemover", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.SortFlags = false

	flagSet.Usage = func() {
		fmt.Fprint(output, `
cratemover - rearranges crate stacks and reports the top of every stack.

Usage:
  cratemover [options] [INPUT | PLAN_PATH...]

Arguments:
  INPUT
    Puzzle input: a stack diagram, a blank line, then move instructions.
  PLAN_PATH
    A .hcl or .yaml plan file, or a directory of plan files.

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.StringP("input", "i", "", "Path to a single puzzle input file.")
	planFlag := flagSet.StringSliceP("plan", "p", nil, "Plan file or directory. May be repeated.")
	modeFlag := flagSet.StringP("mode", "m", crate.OneAtATime.String(), "Crane mode for --input. Options: 'one-at-a-time' (9000) or 'bulk' (9001).")
	expectFlag := flagSet.StringP("expect", "e", "", "Expected answer for --input. A mismatch exits with code 3.")
	workersFlag := flagSet.IntP("workers", "w", 1, "Number of plan runs executed concurrently.")
	showStacksFlag := flagSet.Bool("show-stacks", false, "Print the final stacks after each answer.")
	noColorFlag := flagSet.Bool("no-color", false, "Disable colored report output.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	input := *inputFlag
	plans := *planFlag
	if input == "" && len(plans) == 0 {
		for _, arg := range flagSet.Args() {
			if isPlanPath(arg) {
				plans = append(plans, arg)
			} else if input == "" {
				input = arg
			} else {
				return nil, false, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("unexpected argument %q: only one input file may be given", arg)}
			}
		}
	} else if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}
	slog.Debug("Paths determined.", "input", input, "plans", plans)

	if input == "" && len(plans) == 0 {
		slog.Debug("No input or plan provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	mode, err := crate.ParseMode(*modeFlag)
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		InputPath:  input,
		PlanPaths:  plans,
		Mode:       mode,
		Expect:     *expectFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
		Workers:    *workersFlag,
		Color:      !*noColorFlag && !color.NoColor,
		ShowStacks: *showStacksFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// isPlanPath reports whether a positional argument names plan files rather
// than a puzzle input.
func isPlanPath(arg string) bool {
	switch strings.ToLower(filepath.Ext(arg)) {
	case ".hcl", ".yaml", ".yml":
		return true
	}
	return false
}

package app

import (
	"errors"

	"github.com/specialistvlad/cratemover/internal/crate"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Exactly one of InputPath and PlanPaths is set.
	InputPath string   // single puzzle input
	PlanPaths []string // .hcl / .yaml plan files or directories

	Mode   crate.Mode // used with InputPath
	Expect string     // used with InputPath

	LogFormat  string
	LogLevel   string
	Workers    int
	Color      bool
	ShowStacks bool
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" && len(cfg.PlanPaths) == 0 {
		return nil, errors.New("either an input file or a plan path is required")
	}
	if cfg.InputPath != "" && len(cfg.PlanPaths) > 0 {
		return nil, errors.New("an input file and plan paths are mutually exclusive")
	}
	if cfg.Expect != "" && cfg.InputPath == "" {
		return nil, errors.New("expect applies to a single input file; put expectations in the plan instead")
	}

	if cfg.Mode == 0 {
		cfg.Mode = crate.OneAtATime
	}
	if !cfg.Mode.Valid() {
		return nil, errors.New("invalid mode: " + cfg.Mode.String())
	}
	if cfg.Workers < 1 {
		return nil, errors.New("workers must be at least 1")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}

	return &cfg, nil
}

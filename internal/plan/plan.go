package plan

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/cratemover/internal/crate"
)

// Puzzle is a single crane run.
type Puzzle struct {
	Name string

	// Exactly one of InputPath and InputText is set. InputPath is already
	// resolved relative to the plan file.
	InputPath string
	InputText string

	Mode crate.Mode

	// Expect is the expected summary. Empty means the run is not verified.
	Expect string

	// Source is the file the puzzle was declared in, for diagnostics.
	Source string
}

// HasExpectation reports whether the run's answer is verified.
func (p *Puzzle) HasExpectation() bool {
	return p.Expect != ""
}

// Validate checks the puzzle is runnable.
func (p *Puzzle) Validate() error {
	var errs []error
	if p.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	switch {
	case p.InputPath == "" && p.InputText == "":
		errs = append(errs, errors.New("one of input or text is required"))
	case p.InputPath != "" && p.InputText != "":
		errs = append(errs, errors.New("input and text are mutually exclusive"))
	}
	if !p.Mode.Valid() {
		errs = append(errs, fmt.Errorf("invalid mode %s", p.Mode))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("puzzle %q: %w", p.Name, err)
	}
	return nil
}

// Plan is an ordered list of puzzles.
type Plan struct {
	Puzzles []*Puzzle
}

// Add appends puzzles, rejecting names already present in the plan.
func (pl *Plan) Add(puzzles ...*Puzzle) error {
	for _, p := range puzzles {
		if prev := pl.Lookup(p.Name); prev != nil {
			return fmt.Errorf("duplicate puzzle %q in %s, first declared in %s", p.Name, p.Source, prev.Source)
		}
		pl.Puzzles = append(pl.Puzzles, p)
	}
	return nil
}

// Lookup returns the puzzle with the given name, or nil.
func (pl *Plan) Lookup(name string) *Puzzle {
	for _, p := range pl.Puzzles {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Validate checks every puzzle in the plan.
func (pl *Plan) Validate() error {
	var errs []error
	for _, p := range pl.Puzzles {
		if err := p.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Package yamlplan provides the YAML implementation of plan.Loader.
//
//	puzzles:
//	  - name: example
//	    input: day5_example.txt
//	    mode: bulk
//	    expect: MCD
//
// Unknown fields are rejected. A missing mode selects one-at-a-time.
package yamlplan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/cratemover/internal/crate"
	"github.com/specialistvlad/cratemover/internal/ctxlog"
	"github.com/specialistvlad/cratemover/internal/fsutil"
	"github.com/specialistvlad/cratemover/internal/plan"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML-specific implementation of the plan.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML plan loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements plan.Loader.
func (l *Loader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

type yamlPlanFile struct {
	Puzzles []yamlPuzzle `yaml:"puzzles"`
}

type yamlPuzzle struct {
	Name   string `yaml:"name"`
	Input  string `yaml:"input"`
	Text   string `yaml:"text"`
	Mode   string `yaml:"mode"`
	Expect string `yaml:"expect"`
}

// LoadFile implements plan.Loader.
func (l *Loader) LoadFile(ctx context.Context, path string) ([]*plan.Puzzle, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing YAML plan file.", "file", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open YAML file %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var parsedFile yamlPlanFile
	if err := dec.Decode(&parsedFile); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}

	puzzles := make([]*plan.Puzzle, 0, len(parsedFile.Puzzles))
	for i, parsed := range parsedFile.Puzzles {
		mode := crate.OneAtATime
		if parsed.Mode != "" {
			mode, err = crate.ParseMode(parsed.Mode)
			if err != nil {
				return nil, fmt.Errorf("puzzle %d (%q) in file %s: %w", i+1, parsed.Name, path, err)
			}
		}
		puzzles = append(puzzles, &plan.Puzzle{
			Name:      parsed.Name,
			InputPath: fsutil.ResolveRelative(path, parsed.Input),
			InputText: parsed.Text,
			Mode:      mode,
			Expect:    parsed.Expect,
			Source:    path,
		})
	}

	logger.Debug("YAML plan file decoded.", "file", path, "puzzles", len(puzzles))
	return puzzles, nil
}

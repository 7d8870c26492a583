package plan

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/cratemover/internal/ctxlog"
	"github.com/specialistvlad/cratemover/internal/fsutil"
)

// Loader reads puzzles from a single plan file of one format.
type Loader interface {
	// Extensions lists the file extensions the loader handles, e.g. ".hcl".
	Extensions() []string

	// LoadFile parses one plan file. Input paths in the returned puzzles are
	// resolved relative to the file.
	LoadFile(ctx context.Context, path string) ([]*Puzzle, error)
}

// Load discovers plan files under the given paths and merges them into one
// validated Plan, in discovery order.
func Load(ctx context.Context, loaders []Loader, paths ...string) (*Plan, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Plan loader started.", "path_count", len(paths))

	byExt := make(map[string]Loader)
	var extensions []string
	for _, l := range loaders {
		for _, ext := range l.Extensions() {
			byExt[ext] = l
			extensions = append(extensions, ext)
		}
	}
	if len(extensions) == 0 {
		return nil, fmt.Errorf("no plan loaders configured")
	}

	pl := &Plan{}
	for _, root := range paths {
		files, err := fsutil.FindFilesByExtension(root, extensions...)
		if err != nil {
			return nil, fmt.Errorf("failed to find plan files in %s: %w", root, err)
		}
		logger.Debug("Discovered plan files.", "root", root, "count", len(files))

		for _, file := range files {
			loader := byExt[filepath.Ext(file)]
			if loader == nil {
				return nil, fmt.Errorf("%s: no loader for extension %q (known: %s)", file, filepath.Ext(file), strings.Join(extensions, ", "))
			}
			puzzles, err := loader.LoadFile(ctx, file)
			if err != nil {
				return nil, err
			}
			if err := pl.Add(puzzles...); err != nil {
				return nil, err
			}
			logger.Debug("Plan file loaded.", "file", file, "puzzles", len(puzzles))
		}
	}

	if len(pl.Puzzles) == 0 {
		logger.Warn("No puzzles found in plan paths.", "paths", paths)
	}
	if err := pl.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}
	return pl, nil
}

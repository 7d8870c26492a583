package hclplan

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/cratemover/internal/crate"
	"github.com/specialistvlad/cratemover/internal/ctxlog"
	"github.com/specialistvlad/cratemover/internal/fsutil"
	"github.com/specialistvlad/cratemover/internal/plan"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Loader is the HCL-specific implementation of the plan.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL plan loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements plan.Loader.
func (l *Loader) Extensions() []string {
	return []string{".hcl"}
}

// hclPlanFile represents the top-level structure of a plan file for decoding.
type hclPlanFile struct {
	Puzzles []*hclPuzzle `hcl:"puzzle,block"`
}

// hclPuzzle represents a single 'puzzle' block.
type hclPuzzle struct {
	Name   string         `hcl:"name,label"`
	Input  *string        `hcl:"input,optional"`
	Text   *string        `hcl:"text,optional"`
	Mode   hcl.Expression `hcl:"mode,optional"`
	Expect *string        `hcl:"expect,optional"`
}

// LoadFile implements plan.Loader.
func (l *Loader) LoadFile(ctx context.Context, path string) ([]*plan.Puzzle, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing HCL plan file.", "file", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	evalCtx := newEvalContext(path)

	var parsedFile hclPlanFile
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &parsedFile)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	puzzles := make([]*plan.Puzzle, 0, len(parsedFile.Puzzles))
	for _, parsed := range parsedFile.Puzzles {
		p, diags := translatePuzzle(parsed, path, evalCtx)
		if diags.HasErrors() {
			return nil, fmt.Errorf("error in puzzle %q in file %s: %w", parsed.Name, path, diags)
		}
		puzzles = append(puzzles, p)
	}

	logger.Debug("HCL plan file decoded.", "file", path, "puzzles", len(puzzles))
	return puzzles, nil
}

// translatePuzzle converts a decoded block into the format-agnostic model.
func translatePuzzle(parsed *hclPuzzle, path string, evalCtx *hcl.EvalContext) (*plan.Puzzle, hcl.Diagnostics) {
	p := &plan.Puzzle{
		Name:   parsed.Name,
		Source: path,
	}
	if parsed.Input != nil {
		p.InputPath = fsutil.ResolveRelative(path, *parsed.Input)
	}
	if parsed.Text != nil {
		p.InputText = *parsed.Text
	}
	if parsed.Expect != nil {
		p.Expect = *parsed.Expect
	}

	mode, diags := decodeMode(parsed.Mode, evalCtx)
	p.Mode = mode
	return p, diags
}

// decodeMode evaluates the mode expression. A missing attribute selects
// one-at-a-time.
func decodeMode(expr hcl.Expression, evalCtx *hcl.EvalContext) (crate.Mode, hcl.Diagnostics) {
	if expr == nil {
		return crate.OneAtATime, nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return 0, diags
	}
	if val.IsNull() {
		return crate.OneAtATime, nil
	}

	str, err := convert.Convert(val, cty.String)
	if err != nil || !str.IsKnown() {
		return 0, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid mode",
			Detail:   "The mode must be a string such as mode.one_at_a_time or mode.bulk.",
			Subject:  expr.Range().Ptr(),
		}}
	}

	mode, err := crate.ParseMode(str.AsString())
	if err != nil {
		return 0, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid mode",
			Detail:   err.Error(),
			Subject:  expr.Range().Ptr(),
		}}
	}
	return mode, nil
}

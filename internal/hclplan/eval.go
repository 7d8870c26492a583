package hclplan

import (
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/cratemover/internal/crate"
	"github.com/specialistvlad/cratemover/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// newEvalContext builds the evaluation context for a plan file at path.
func newEvalContext(path string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"mode": cty.ObjectVal(map[string]cty.Value{
				"one_at_a_time":  cty.StringVal(crate.OneAtATime.String()),
				"bulk":           cty.StringVal(crate.BulkPreserveOrder.String()),
				"cratemover9000": cty.StringVal(crate.OneAtATime.String()),
				"cratemover9001": cty.StringVal(crate.BulkPreserveOrder.String()),
			}),
			"plan_dir": cty.StringVal(filepath.Dir(path)),
		},
		Functions: map[string]function.Function{
			"file": fileFunc(path),
		},
	}
}

// fileFunc returns a `file(path)` function resolving paths relative to the
// plan file.
func fileFunc(planPath string) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "path", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			text, err := fsutil.ReadText(fsutil.ResolveRelative(planPath, args[0].AsString()))
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(text), nil
		},
	})
}

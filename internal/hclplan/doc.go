// Package hclplan provides the HCL implementation of plan.Loader.
//
// A plan file declares one `puzzle` block per run:
//
//	puzzle "example" {
//	  input  = "day5_example.txt"
//	  mode   = mode.bulk
//	  expect = "MCD"
//	}
//
// Attributes are evaluated with a small context: the `mode` object exposes
// the valid execution modes, `plan_dir` holds the directory of the plan
// file, and `file(path)` reads a file relative to it. Inline diagrams can be
// given with `text = <<EOT ... EOT`; use the plain heredoc form, since the
// indented `<<-EOT` form strips the leading spaces the diagram depends on.
package hclplan

// Package plan defines the format-agnostic model of a puzzle plan: a list of
// crane runs, each naming its input, its execution mode and optionally the
// answer it is expected to produce.
//
// The Loader interface keeps file formats out of the runner. Concrete
// loaders for HCL and YAML live in the hclplan and yamlplan packages; Load
// discovers plan files and dispatches each to the loader that claims its
// extension.
package plan

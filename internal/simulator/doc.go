// Package simulator runs crane instructions against a crate.StackSet and
// summarises the result.
//
// Execution is a single linear pass. The first instruction that cannot be
// carried out aborts the run with an *Error; nothing is clamped or skipped.
package simulator

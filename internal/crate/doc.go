// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package crate provides the in-memory model of the crane rearrangement
// puzzle: crates, the ordered stacks they sit on, the move instructions that
// shuffle them around and the execution mode a crane works in.
//
// # Core Concepts
//
//   - Crate: a single labelled unit, one rune wide.
//
//   - StackSet: the complete, ordered collection of stacks. Stacks are
//     addressed by a 1-based index, exactly as the diagram numbers them, and
//     hold their crates bottom to top.
//
//   - Instruction: an immutable "move N from A to B" directive. Instructions
//     are applied strictly in order; each acts on the post-state of the one
//     before it.
//
//   - Mode: whether a multi-crate move lifts crates one by one (reversing the
//     moved block) or as a single block (preserving its order).
//
// The package deliberately knows nothing about text. Turning a diagram into a
// StackSet is the job of the layout package, and running instructions is the
// job of the simulator package. This keeps the model small enough that both
// sides can be tested against it in isolation.
package crate

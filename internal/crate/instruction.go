// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Instruction, the unit of work a crane executes.
package crate

import "fmt"

// Instruction moves Count crates from the Source stack to the Destination
// stack. Both indices are 1-based.
type Instruction struct {
	Count       int
	Source      int
	Destination int
}

// String renders the instruction in its input form.
func (i Instruction) String() string {
	return fmt.Sprintf("move %d from %d to %d", i.Count, i.Source, i.Destination)
}

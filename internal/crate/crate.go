// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the StackSet, the mutable state a crane operates on.
//
// Why a dedicated type instead of a bare [][]rune?
//
// Indexing is the easiest thing to get wrong in this puzzle: the diagram and
// the instructions count stacks from one, Go slices count from zero. The
// StackSet owns that translation so the rest of the code only ever speaks in
// diagram indices. It also hands out copies, never its backing slices, so a
// caller holding a stack cannot mutate the set behind the simulator's back.
package crate

import (
	"fmt"
	"slices"
	"strings"
)

// Crate is a single labelled crate.
type Crate rune

// String returns the crate label.
func (c Crate) String() string {
	return string(c)
}

// StackSet is the ordered collection of stacks, indexed 1..Len().
type StackSet struct {
	stacks [][]Crate
}

// NewStackSet creates a StackSet from bottom-to-top stacks. The input slices
// are copied.
func NewStackSet(stacks ...[]Crate) *StackSet {
	s := &StackSet{stacks: make([][]Crate, len(stacks))}
	for i, stack := range stacks {
		s.stacks[i] = slices.Clone(stack)
	}
	return s
}

// FromStrings is a convenience constructor where each string lists one stack
// bottom to top, e.g. FromStrings("ZN", "MCD", "P").
func FromStrings(stacks ...string) *StackSet {
	s := &StackSet{stacks: make([][]Crate, len(stacks))}
	for i, stack := range stacks {
		for _, r := range stack {
			s.stacks[i] = append(s.stacks[i], Crate(r))
		}
	}
	return s
}

// Len returns the number of stacks.
func (s *StackSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.stacks)
}

// Valid reports whether index addresses an existing stack.
func (s *StackSet) Valid(index int) bool {
	return index >= 1 && index <= s.Len()
}

// Height returns the number of crates on the stack at index, or -1 if the
// index is out of range.
func (s *StackSet) Height(index int) int {
	if !s.Valid(index) {
		return -1
	}
	return len(s.stacks[index-1])
}

// Stack returns a copy of the stack at index, bottom to top.
func (s *StackSet) Stack(index int) ([]Crate, bool) {
	if !s.Valid(index) {
		return nil, false
	}
	return slices.Clone(s.stacks[index-1]), true
}

// Top returns the topmost crate of the stack at index.
func (s *StackSet) Top(index int) (Crate, bool) {
	if !s.Valid(index) || len(s.stacks[index-1]) == 0 {
		return 0, false
	}
	stack := s.stacks[index-1]
	return stack[len(stack)-1], true
}

// Lift removes the top n crates from the stack at index and returns them in
// bottom-to-top order. It panics if the index is invalid or the stack holds
// fewer than n crates; callers validate first.
func (s *StackSet) Lift(index, n int) []Crate {
	if !s.Valid(index) {
		panic(fmt.Sprintf("crate: lift from invalid stack %d", index))
	}
	stack := s.stacks[index-1]
	if n < 0 || n > len(stack) {
		panic(fmt.Sprintf("crate: lift %d crates from stack %d of height %d", n, index, len(stack)))
	}
	cut := len(stack) - n
	lifted := slices.Clone(stack[cut:])
	s.stacks[index-1] = stack[:cut]
	return lifted
}

// Place pushes crates onto the stack at index, first element lowest. It
// panics if the index is invalid.
func (s *StackSet) Place(index int, crates ...Crate) {
	if !s.Valid(index) {
		panic(fmt.Sprintf("crate: place onto invalid stack %d", index))
	}
	s.stacks[index-1] = append(s.stacks[index-1], crates...)
}

// Clone returns a deep copy of the set.
func (s *StackSet) Clone() *StackSet {
	if s == nil {
		return nil
	}
	return NewStackSet(s.stacks...)
}

// Equal reports whether both sets hold the same crates in the same order.
func (s *StackSet) Equal(other *StackSet) bool {
	if s == nil || other == nil {
		return s == other
	}
	return slices.EqualFunc(s.stacks, other.stacks, slices.Equal[[]Crate])
}

// Strings returns every stack as a bottom-to-top string, the inverse of
// FromStrings.
func (s *StackSet) Strings() []string {
	out := make([]string, s.Len())
	for i, stack := range s.stacks {
		var sb strings.Builder
		for _, c := range stack {
			sb.WriteRune(rune(c))
		}
		out[i] = sb.String()
	}
	return out
}

// String renders one line per stack, e.g. "1: Z N".
func (s *StackSet) String() string {
	var sb strings.Builder
	for i, stack := range s.Strings() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%d:", i+1)
		for _, r := range stack {
			sb.WriteByte(' ')
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

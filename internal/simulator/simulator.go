package simulator

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/cratemover/internal/crate"
	"github.com/specialistvlad/cratemover/internal/ctxlog"
)

// Execute applies every instruction in order to a copy of stacks and returns
// the final state. The input set is never modified, so a failed run leaves
// no half-moved state behind.
func Execute(ctx context.Context, stacks *crate.StackSet, instructions []crate.Instruction, mode crate.Mode) (*crate.StackSet, error) {
	logger := ctxlog.FromContext(ctx)
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
	logger.Debug("Simulation started.", "mode", mode.String(), "stacks", stacks.Len(), "instructions", len(instructions))

	work := stacks.Clone()
	for i, inst := range instructions {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("simulation interrupted before instruction %d: %w", i+1, err)
		}
		if err := apply(work, inst, mode); err != nil {
			err.Step = i
			logger.Debug("Instruction failed.", "step", i+1, "instruction", inst.String(), "error", err)
			return nil, err
		}
	}

	logger.Debug("Simulation finished.", "summary", Summarize(work))
	return work, nil
}

// Apply executes a single instruction against stacks in place. The
// instruction is validated before anything moves, so on error stacks is
// unchanged.
func Apply(stacks *crate.StackSet, inst crate.Instruction, mode crate.Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
	if err := apply(stacks, inst, mode); err != nil {
		return err
	}
	return nil
}

func apply(stacks *crate.StackSet, inst crate.Instruction, mode crate.Mode) *Error {
	if err := validate(stacks, inst); err != nil {
		return err
	}

	switch mode {
	case crate.OneAtATime:
		for range inst.Count {
			stacks.Place(inst.Destination, stacks.Lift(inst.Source, 1)...)
		}
	case crate.BulkPreserveOrder:
		stacks.Place(inst.Destination, stacks.Lift(inst.Source, inst.Count)...)
	}
	return nil
}

func validate(stacks *crate.StackSet, inst crate.Instruction) *Error {
	for _, index := range []int{inst.Source, inst.Destination} {
		if !stacks.Valid(index) {
			return &Error{Kind: StackIndexOutOfRange, Instruction: inst, Index: index}
		}
	}
	if inst.Count < 0 {
		return &Error{Kind: NegativeCount, Instruction: inst}
	}
	if available := stacks.Height(inst.Source); inst.Count > available {
		return &Error{
			Kind:        InsufficientCrates,
			Instruction: inst,
			Stack:       inst.Source,
			Requested:   inst.Count,
			Available:   available,
		}
	}
	return nil
}

// Summarize concatenates the top crate of every non-empty stack in ascending
// index order.
func Summarize(stacks *crate.StackSet) string {
	var sb strings.Builder
	for i := 1; i <= stacks.Len(); i++ {
		if top, ok := stacks.Top(i); ok {
			sb.WriteRune(rune(top))
		}
	}
	return sb.String()
}

package simulator

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/cratemover/internal/crate"
)

// ErrorKind classifies a simulation Error.
type ErrorKind int

const (
	// StackIndexOutOfRange means an instruction names a stack that does not exist.
	StackIndexOutOfRange ErrorKind = iota + 1
	// InsufficientCrates means the source stack holds fewer crates than requested.
	InsufficientCrates
	// NegativeCount means the instruction asks for fewer than zero crates.
	NegativeCount
)

// Sentinel errors, one per kind, for use with errors.Is.
var (
	ErrStackIndexOutOfRange = errors.New("stack index out of range")
	ErrInsufficientCrates   = errors.New("insufficient crates")
	ErrNegativeCount        = errors.New("negative crate count")
	ErrUnknownMode          = errors.New("unknown execution mode")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case StackIndexOutOfRange:
		return ErrStackIndexOutOfRange
	case InsufficientCrates:
		return ErrInsufficientCrates
	case NegativeCount:
		return ErrNegativeCount
	}
	return nil
}

// Error identifies the instruction that stopped a run. Step is the 0-based
// position of the instruction in the sequence. Index is the offending stack
// for StackIndexOutOfRange; Stack, Requested and Available describe an
// InsufficientCrates failure.
type Error struct {
	Kind        ErrorKind
	Step        int
	Instruction crate.Instruction
	Index       int
	Stack       int
	Requested   int
	Available   int
}

// Error implements the error interface.
func (e *Error) Error() string {
	prefix := fmt.Sprintf("instruction %d (%s)", e.Step+1, e.Instruction)
	switch e.Kind {
	case StackIndexOutOfRange:
		return fmt.Sprintf("%s: %s: stack %d does not exist", prefix, ErrStackIndexOutOfRange, e.Index)
	case InsufficientCrates:
		return fmt.Sprintf("%s: %s: requested %d from stack %d holding %d", prefix, ErrInsufficientCrates, e.Requested, e.Stack, e.Available)
	case NegativeCount:
		return fmt.Sprintf("%s: %s", prefix, ErrNegativeCount)
	}
	return prefix + ": simulation failed"
}

// Unwrap exposes the kind's sentinel error.
func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

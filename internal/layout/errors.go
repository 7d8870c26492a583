package layout

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// InvalidCell is a crate row cell that is neither `[X]` nor three spaces.
	InvalidCell ErrorKind = iota + 1
	// InvalidInstruction is a line that is not `move N from A to B`.
	InvalidInstruction
	// EmptyLayout means no crate rows precede the column-number row.
	EmptyLayout
	// MalformedNumberRow is a missing or inconsistent column-number row.
	MalformedNumberRow
)

// Sentinel errors, one per kind, for use with errors.Is.
var (
	ErrInvalidCell        = errors.New("invalid cell")
	ErrInvalidInstruction = errors.New("invalid instruction")
	ErrEmptyLayout        = errors.New("empty layout")
	ErrMalformedNumberRow = errors.New("malformed number row")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case InvalidCell:
		return ErrInvalidCell
	case InvalidInstruction:
		return ErrInvalidInstruction
	case EmptyLayout:
		return ErrEmptyLayout
	case MalformedNumberRow:
		return ErrMalformedNumberRow
	}
	return nil
}

// String returns the kind name.
func (k ErrorKind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError reports malformed input. Line is 1-based; zero means the error
// is not tied to a single line. Column is the 1-based cell index for
// InvalidCell errors and zero otherwise.
type ParseError struct {
	Kind   ErrorKind
	Line   int
	Column int
	Text   string
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := e.Kind.String()
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Column > 0 {
		msg = fmt.Sprintf("%s in column %d", msg, e.Column)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Text != "" {
		msg += fmt.Sprintf(" (%q)", e.Text)
	}
	return msg
}

// Unwrap exposes the kind's sentinel error.
func (e *ParseError) Unwrap() error {
	return e.Kind.sentinel()
}

package dirtree

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrUnknownDirectory = errors.New("unknown directory")
	ErrAboveRoot        = errors.New("cd .. above root")
	ErrMalformedListing = errors.New("malformed listing line")
)

// LineError wraps a transcript error with its 1-based line number.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v (%q)", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Parse replays a transcript and returns the tree it describes. `cd name`
// into a directory not yet listed creates it, matching what a shell would
// have shown.
func Parse(transcript string) (*Tree, error) {
	t := New()
	cwd := Root

	for i, line := range strings.Split(strings.TrimRight(transcript, "\r\n"), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		lineErr := func(err error) error {
			return &LineError{Line: i + 1, Text: line, Err: err}
		}

		if cmd, ok := strings.CutPrefix(line, "$ "); ok {
			next, err := t.exec(cwd, cmd)
			if err != nil {
				return nil, lineErr(err)
			}
			cwd = next
			continue
		}

		if err := t.list(cwd, line); err != nil {
			return nil, lineErr(err)
		}
	}
	return t, nil
}

// exec runs a command from cwd and returns the new working directory.
func (t *Tree) exec(cwd NodeID, cmd string) (NodeID, error) {
	if cmd == "ls" {
		return cwd, nil
	}
	target, ok := strings.CutPrefix(cmd, "cd ")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}

	switch target {
	case "/":
		return Root, nil
	case "..":
		parent, ok := t.Parent(cwd)
		if !ok {
			return 0, ErrAboveRoot
		}
		return parent, nil
	case "":
		return 0, fmt.Errorf("%w: cd without a target", ErrUnknownCommand)
	}

	if child, ok := t.Child(cwd, target); ok {
		if !t.nodes[child].Dir {
			return 0, fmt.Errorf("%w: %s is a file", ErrUnknownDirectory, t.Path(child))
		}
		return child, nil
	}
	return t.add(cwd, target, true, 0)
}

// list records one line of `ls` output under cwd.
func (t *Tree) list(cwd NodeID, line string) error {
	if name, ok := strings.CutPrefix(line, "dir "); ok {
		if name == "" {
			return ErrMalformedListing
		}
		_, err := t.add(cwd, name, true, 0)
		return err
	}

	sizeStr, name, ok := strings.Cut(line, " ")
	if !ok || name == "" {
		return ErrMalformedListing
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil || size < 0 {
		return fmt.Errorf("%w: bad size %q", ErrMalformedListing, sizeStr)
	}
	_, err = t.add(cwd, name, false, size)
	return err
}

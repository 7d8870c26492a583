package layout

import (
	"strconv"
	"strings"

	"github.com/specialistvlad/cratemover/internal/crate"
)

// ParseInstruction parses a single `move N from A to B` line. Leading and
// trailing line terminators are tolerated; any other deviation from the exact
// keyword and spacing pattern is rejected.
func ParseInstruction(line string) (crate.Instruction, error) {
	line = strings.Trim(line, "\r\n")

	invalid := func(reason string) (crate.Instruction, error) {
		return crate.Instruction{}, &ParseError{Kind: InvalidInstruction, Text: line, Reason: reason}
	}

	fields := strings.Split(line, " ")
	if len(fields) != 6 || fields[0] != "move" || fields[2] != "from" || fields[4] != "to" {
		return invalid("expected 'move <count> from <source> to <destination>'")
	}

	var nums [3]int
	for i, field := range []string{fields[1], fields[3], fields[5]} {
		if field == "" || strings.TrimLeft(field, "0123456789") != "" {
			return invalid("expected an unsigned decimal integer, found " + strconv.Quote(field))
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return invalid(err.Error())
		}
		nums[i] = n
	}

	return crate.Instruction{Count: nums[0], Source: nums[1], Destination: nums[2]}, nil
}

// parseInstructions parses every non-blank line. lines[0] is line number
// firstLine in the input.
func parseInstructions(lines []string, firstLine int) ([]crate.Instruction, error) {
	instructions := make([]crate.Instruction, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		inst, err := ParseInstruction(line)
		if err != nil {
			if pe, ok := err.(*ParseError); ok {
				pe.Line = firstLine + i
			}
			return nil, err
		}
		instructions = append(instructions, inst)
	}
	return instructions, nil
}

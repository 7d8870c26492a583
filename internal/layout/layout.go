package layout

import (
	"strings"

	"github.com/specialistvlad/cratemover/internal/crate"
)

// Parse converts puzzle text into the initial stacks and the instruction
// sequence. Both `\n` and `\r\n` line endings are accepted. On error no
// partial result is returned.
func Parse(text string) (*crate.StackSet, []crate.Instruction, error) {
	lines := splitLines(text)

	stacks, next, err := parseDiagram(lines, 1)
	if err != nil {
		return nil, nil, err
	}

	instructions, err := parseInstructions(lines[next:], next+1)
	if err != nil {
		return nil, nil, err
	}

	return stacks, instructions, nil
}

// splitLines splits text into lines without their terminators. A final
// terminator does not produce an extra empty line.
func splitLines(text string) []string {
	text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

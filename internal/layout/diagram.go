package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/cratemover/internal/crate"
)

// isNumberRow reports whether line is the column-number row that closes the
// diagram section. The first line carrying a digit is taken to be that row.
func isNumberRow(line string) bool {
	return strings.ContainsAny(line, "0123456789")
}

// parseNumberRow checks that the labels read 1..N in order and returns N.
func parseNumberRow(line string, lineNo int) (int, error) {
	fields := strings.Fields(line)
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil || n != i+1 {
			return 0, &ParseError{
				Kind:   MalformedNumberRow,
				Line:   lineNo,
				Text:   line,
				Reason: fmt.Sprintf("expected column label %d, found %q", i+1, field),
			}
		}
	}
	return len(fields), nil
}

// parseDiagram parses the crate rows and the number row that closes them.
// lines[0] is line number firstLine in the input. It returns the stacks and
// the index in lines of the first line after the number row.
func parseDiagram(lines []string, firstLine int) (*crate.StackSet, int, error) {
	var matrix [][]Cell
	var rowLines []int
	numberRow := -1
	for i, line := range lines {
		if isNumberRow(line) {
			numberRow = i
			break
		}
		if line == "" {
			continue
		}
		row, err := parseRow(line, firstLine+i)
		if err != nil {
			return nil, 0, err
		}
		matrix = append(matrix, row)
		rowLines = append(rowLines, i)
	}

	if numberRow < 0 && len(matrix) == 0 {
		return nil, 0, &ParseError{Kind: EmptyLayout, Reason: "input has no crate diagram"}
	}
	if numberRow < 0 {
		return nil, 0, &ParseError{
			Kind:   MalformedNumberRow,
			Reason: "no column-number row closes the diagram",
		}
	}
	if len(matrix) == 0 {
		return nil, 0, &ParseError{
			Kind:   EmptyLayout,
			Line:   firstLine + numberRow,
			Reason: "no crate rows before the column-number row",
		}
	}

	width, err := parseNumberRow(lines[numberRow], firstLine+numberRow)
	if err != nil {
		return nil, 0, err
	}
	for i, row := range matrix {
		row = trimEmptyTail(row, width)
		if len(row) > width {
			return nil, 0, &ParseError{
				Kind:   MalformedNumberRow,
				Line:   firstLine + rowLines[i],
				Text:   lines[rowLines[i]],
				Reason: fmt.Sprintf("crate in column %d but only %d columns are numbered", len(row), width),
			}
		}
		matrix[i] = row
	}

	return crate.NewStackSet(TransposeAndReverse(matrix, width)...), numberRow + 1, nil
}

// trimEmptyTail drops empty cells past width, so rows padded with spaces
// beyond the last numbered column stay valid.
func trimEmptyTail(row []Cell, width int) []Cell {
	for len(row) > width && !row[len(row)-1].Filled {
		row = row[:len(row)-1]
	}
	return row
}

// TransposeAndReverse turns a row-major diagram into one stack per column.
// Rows shorter than width are padded with empty cells. Empty cells are
// dropped and each column is reversed so the last diagram row becomes the
// bottom of its stack.
func TransposeAndReverse(matrix [][]Cell, width int) [][]crate.Crate {
	stacks := make([][]crate.Crate, width)
	for col := range width {
		stack := []crate.Crate{}
		for row := len(matrix) - 1; row >= 0; row-- {
			if col < len(matrix[row]) && matrix[row][col].Filled {
				stack = append(stack, matrix[row][col].Crate)
			}
		}
		stacks[col] = stack
	}
	return stacks
}

package layout

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/specialistvlad/cratemover/internal/crate"
)

// cellRegex matches one cell at the start of the remaining row: a bracketed
// letter or three spaces.
var cellRegex = regexp.MustCompile(`^(?:\[(\pL)\]| {3})`)

// Cell is one slot of the diagram. A zero Cell is empty.
type Cell struct {
	Crate  crate.Crate
	Filled bool
}

// Empty is the cell used for a slot without a crate.
var Empty = Cell{}

// Filled returns a cell holding c.
func Filled(c crate.Crate) Cell {
	return Cell{Crate: c, Filled: true}
}

// parseRow scans a crate row left to right. Cells are separated by a single
// space; trailing whitespace shorter than a cell is treated as padding.
func parseRow(line string, lineNo int) ([]Cell, error) {
	var row []Cell
	rest := line
	for rest != "" {
		if len(rest) < 3 && strings.TrimLeft(rest, " ") == "" {
			break
		}

		m := cellRegex.FindStringSubmatch(rest)
		if m == nil {
			return nil, &ParseError{
				Kind:   InvalidCell,
				Line:   lineNo,
				Column: len(row) + 1,
				Text:   line,
				Reason: "expected '[X]' or three spaces, found " + quoteFragment(rest),
			}
		}

		if m[1] != "" {
			r, _ := utf8.DecodeRuneInString(m[1])
			row = append(row, Filled(crate.Crate(r)))
		} else {
			row = append(row, Empty)
		}
		rest = rest[len(m[0]):]

		if rest == "" {
			break
		}
		if rest[0] != ' ' {
			return nil, &ParseError{
				Kind:   InvalidCell,
				Line:   lineNo,
				Column: len(row),
				Text:   line,
				Reason: "cell not followed by a single space, found " + quoteFragment(rest),
			}
		}
		rest = rest[1:]
	}
	return row, nil
}

// quoteFragment quotes the next cell-sized chunk of s for error messages.
func quoteFragment(s string) string {
	end := 0
	for i := 0; i < 4 && end < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
	}
	return "'" + s[:end] + "'"
}

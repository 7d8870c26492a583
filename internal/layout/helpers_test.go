package layout

import "github.com/specialistvlad/cratemover/internal/crate"

func runes(stack []crate.Crate) []rune {
	out := make([]rune, len(stack))
	for i, c := range stack {
		out[i] = rune(c)
	}
	return out
}

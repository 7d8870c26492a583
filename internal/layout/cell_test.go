package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRow(t *testing.T) {
	a, b, c, f, k, u := Filled('A'), Filled('B'), Filled('C'), Filled('F'), Filled('K'), Filled('U')

	testCases := []struct {
		input    string
		expected []Cell
	}{
		{input: "[A]", expected: []Cell{a}},
		{input: "[A] [B]", expected: []Cell{a, b}},
		{input: "[F] [U] [C] [K]    ", expected: []Cell{f, u, c, k, Empty}},
		{input: "    [F] [U] [C] [K]", expected: []Cell{Empty, f, u, c, k}},
		{input: "    [F] [U] [C] [K]    ", expected: []Cell{Empty, f, u, c, k, Empty}},
		{input: "    [F] [U]     [C] [K]    ", expected: []Cell{Empty, f, u, Empty, c, k, Empty}},
		{input: "[A] ", expected: []Cell{a}},
		{input: "[A]  ", expected: []Cell{a}},
		{input: "[Ж]", expected: []Cell{Filled('Ж')}},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			row, err := parseRow(tc.input, 1)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, row)
		})
	}
}

func TestParseRow_Invalid(t *testing.T) {
	for _, input := range []string{"[XY]", "( )", "[1]", "[A]x[B]", "[]", "[A] [B", "  x"} {
		t.Run(input, func(t *testing.T) {
			_, err := parseRow(input, 7)
			require.Error(t, err)
			pe, ok := err.(*ParseError)
			require.True(t, ok)
			assert.Equal(t, InvalidCell, pe.Kind)
			assert.Equal(t, 7, pe.Line)
			assert.Equal(t, input, pe.Text)
		})
	}
}

func TestTransposeAndReverse(t *testing.T) {
	d, n, c, z, m, p := Filled('D'), Filled('N'), Filled('C'), Filled('Z'), Filled('M'), Filled('P')
	matrix := [][]Cell{
		{Empty, d, Empty},
		{n, c, Empty},
		{z, m, p},
	}

	stacks := TransposeAndReverse(matrix, 3)

	assert.Equal(t, "ZN", string(runes(stacks[0])))
	assert.Equal(t, "MCD", string(runes(stacks[1])))
	assert.Equal(t, "P", string(runes(stacks[2])))
}

func TestTransposeAndReverse_ShortRowsAndEmptyColumns(t *testing.T) {
	matrix := [][]Cell{
		{Filled('A')},
		{Filled('B'), Empty, Filled('C')},
	}

	stacks := TransposeAndReverse(matrix, 4)

	require.Len(t, stacks, 4)
	assert.Equal(t, "BA", string(runes(stacks[0])))
	assert.Empty(t, stacks[1])
	assert.Equal(t, "C", string(runes(stacks[2])))
	assert.Empty(t, stacks[3])
}

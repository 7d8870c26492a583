package layout

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/cratemover/internal/crate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleInput = "    [D]    \n" +
	"[N] [C]    \n" +
	"[Z] [M] [P]\n" +
	" 1   2   3 \n" +
	"\n" +
	"move 1 from 2 to 1\n" +
	"move 3 from 1 to 3\n" +
	"move 2 from 2 to 1\n" +
	"move 1 from 1 to 2"

var exampleInstructions = []crate.Instruction{
	{Count: 1, Source: 2, Destination: 1},
	{Count: 3, Source: 1, Destination: 3},
	{Count: 2, Source: 2, Destination: 1},
	{Count: 1, Source: 1, Destination: 2},
}

func TestParse_Example(t *testing.T) {
	stacks, instructions, err := Parse(exampleInput)
	require.NoError(t, err)

	assert.Equal(t, []string{"ZN", "MCD", "P"}, stacks.Strings())
	if diff := cmp.Diff(exampleInstructions, instructions); diff != "" {
		t.Errorf("instructions mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_LineEndingsAndPadding(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "crlf", input: strings.ReplaceAll(exampleInput, "\n", "\r\n")},
		{name: "trailing newline", input: exampleInput + "\n"},
		{name: "trimmed rows", input: strings.ReplaceAll(exampleInput, "    \n", "\n")},
		{name: "blank line between instructions", input: strings.Replace(exampleInput, "to 1\nmove 3", "to 1\n\nmove 3", 1)},
		{name: "rows padded past last column", input: strings.Replace(exampleInput, "[Z] [M] [P]\n", "[Z] [M] [P]     \n", 1)},
		{name: "top row padded past last column", input: strings.Replace(exampleInput, "    [D]    \n", "    [D]        \n", 1)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stacks, instructions, err := Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, []string{"ZN", "MCD", "P"}, stacks.Strings())
			assert.Equal(t, exampleInstructions, instructions)
		})
	}
}

func TestParse_IsIdempotent(t *testing.T) {
	s1, i1, err := Parse(exampleInput)
	require.NoError(t, err)
	s2, i2, err := Parse(exampleInput)
	require.NoError(t, err)

	assert.True(t, s1.Equal(s2))
	assert.Equal(t, i1, i2)

	// Mutating one result must not leak into the other.
	s1.Place(1, 'X')
	assert.False(t, s1.Equal(s2))
}

func TestParse_EmptyColumnIsLegal(t *testing.T) {
	input := "[A]     [C]\n 1   2   3\n\nmove 1 from 1 to 2\n"
	stacks, instructions, err := Parse(input)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "", "C"}, stacks.Strings())
	assert.Len(t, instructions, 1)
}

func TestParse_NoInstructions(t *testing.T) {
	stacks, instructions, err := Parse("[A]\n 1\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, stacks.Strings())
	assert.Empty(t, instructions)
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name         string
		input        string
		expectedKind ErrorKind
		expectedLine int
		expectedText string
	}{
		{
			name:         "two letters in a cell",
			input:        "[XY]\n 1\n",
			expectedKind: InvalidCell,
			expectedLine: 1,
			expectedText: "[XY]",
		},
		{
			name:         "parentheses cell",
			input:        "[A] [B]\n[C] ( )\n 1   2\n",
			expectedKind: InvalidCell,
			expectedLine: 2,
			expectedText: "[C] ( )",
		},
		{
			name:         "missing separator",
			input:        "[A][B]\n 1   2\n",
			expectedKind: InvalidCell,
			expectedLine: 1,
			expectedText: "[A][B]",
		},
		{
			name:         "no crate rows",
			input:        " 1   2\n\nmove 1 from 1 to 2\n",
			expectedKind: EmptyLayout,
			expectedLine: 1,
		},
		{
			name:         "empty input",
			input:        "",
			expectedKind: EmptyLayout,
		},
		{
			name:         "no number row",
			input:        "[A] [B]\n",
			expectedKind: MalformedNumberRow,
		},
		{
			name:         "number row out of order",
			input:        "[A] [B]\n 1   3\n",
			expectedKind: MalformedNumberRow,
			expectedLine: 2,
			expectedText: " 1   3",
		},
		{
			name:         "more cells than columns",
			input:        "[A] [B] [C]\n 1   2\n",
			expectedKind: MalformedNumberRow,
			expectedLine: 1,
			expectedText: "[A] [B] [C]",
		},
		{
			name:         "crate beyond padding",
			input:        "[A]\n[B]         [C]\n 1   2\n",
			expectedKind: MalformedNumberRow,
			expectedLine: 2,
			expectedText: "[B]         [C]",
		},
		{
			name:         "bad keyword",
			input:        "[A]\n 1\n\nmove 1 form 1 to 1\n",
			expectedKind: InvalidInstruction,
			expectedLine: 4,
			expectedText: "move 1 form 1 to 1",
		},
		{
			name:         "double space",
			input:        "[A]\n 1\n\nmove 1 from 1 to 1\nmove  1 from 1 to 1\n",
			expectedKind: InvalidInstruction,
			expectedLine: 5,
		},
		{
			name:         "negative number",
			input:        "[A]\n 1\n\nmove -1 from 1 to 1\n",
			expectedKind: InvalidInstruction,
			expectedLine: 4,
		},
		{
			name:         "capitalised keyword",
			input:        "[A]\n 1\n\nMove 1 from 1 to 1\n",
			expectedKind: InvalidInstruction,
			expectedLine: 4,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stacks, instructions, err := Parse(tc.input)
			require.Error(t, err)
			assert.Nil(t, stacks)
			assert.Nil(t, instructions)

			var pe *ParseError
			require.True(t, errors.As(err, &pe), "expected *ParseError, got %T", err)
			assert.Equal(t, tc.expectedKind, pe.Kind)
			assert.Equal(t, tc.expectedLine, pe.Line)
			if tc.expectedText != "" {
				assert.Equal(t, tc.expectedText, pe.Text)
			}
			assert.True(t, errors.Is(err, tc.expectedKind.sentinel()))
		})
	}
}

func TestParseError_Message(t *testing.T) {
	_, _, err := Parse("[A] [XY]\n 1   2\n")
	require.Error(t, err)
	assert.Equal(t, `line 1: invalid cell in column 2: expected '[X]' or three spaces, found '[XY]' ("[A] [XY]")`, err.Error())
}

package crate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackSet_Accessors(t *testing.T) {
	s := FromStrings("ZN", "MCD", "", "P")

	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 2, s.Height(1))
	assert.Equal(t, 0, s.Height(3))
	assert.Equal(t, -1, s.Height(0))
	assert.Equal(t, -1, s.Height(5))

	top, ok := s.Top(2)
	require.True(t, ok)
	assert.Equal(t, Crate('D'), top)

	_, ok = s.Top(3)
	assert.False(t, ok, "empty stack has no top")

	stack, ok := s.Stack(2)
	require.True(t, ok)
	assert.Equal(t, []Crate{'M', 'C', 'D'}, stack)

	// The returned stack is a copy.
	stack[0] = 'X'
	again, _ := s.Stack(2)
	assert.Equal(t, Crate('M'), again[0])
}

func TestStackSet_LiftAndPlace(t *testing.T) {
	s := FromStrings("ABC", "")

	lifted := s.Lift(1, 2)
	assert.Equal(t, []Crate{'B', 'C'}, lifted)
	assert.Equal(t, []string{"A", ""}, s.Strings())

	s.Place(2, lifted...)
	assert.Equal(t, []string{"A", "BC"}, s.Strings())

	assert.Empty(t, s.Lift(1, 0))
	assert.Panics(t, func() { s.Lift(1, 2) })
	assert.Panics(t, func() { s.Lift(3, 1) })
	assert.Panics(t, func() { s.Place(0, 'X') })
}

func TestStackSet_CloneIsIndependent(t *testing.T) {
	orig := FromStrings("ZN", "MCD")
	clone := orig.Clone()
	require.True(t, orig.Equal(clone))

	clone.Place(1, clone.Lift(2, 3)...)
	assert.False(t, orig.Equal(clone))
	assert.Equal(t, []string{"ZN", "MCD"}, orig.Strings())
}

func TestStackSet_Equal(t *testing.T) {
	assert.True(t, FromStrings("A", "").Equal(FromStrings("A", "")))
	assert.False(t, FromStrings("A", "").Equal(FromStrings("A")))
	assert.False(t, FromStrings("AB").Equal(FromStrings("BA")))
	assert.True(t, (*StackSet)(nil).Equal(nil))
	assert.False(t, FromStrings().Equal(nil))
}

func TestStackSet_String(t *testing.T) {
	s := FromStrings("ZN", "", "P")
	assert.Equal(t, "1: Z N\n2:\n3: P", s.String())
}

func TestInstruction_String(t *testing.T) {
	assert.Equal(t, "move 3 from 1 to 2", Instruction{Count: 3, Source: 1, Destination: 2}.String())
}

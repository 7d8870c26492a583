/*
Package layout turns the raw puzzle text into the crate model.

The input has two sections separated by a blank line. The first is a
fixed-width drawing of the stacks, one `[X]` or three spaces per column,
closed by a row of column numbers:

	    [D]
	[N] [C]
	[Z] [M] [P]
	 1   2   3

The second is a list of `move N from A to B` lines. Parse returns the
stacks bottom to top and the instructions in input order, or a *ParseError
naming the offending line. Parsing is a pure function of its input.
*/
package layout

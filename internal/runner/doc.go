// Package runner executes the puzzles of a plan.
//
// Every run reads its own input, parses its own StackSet and simulates it in
// isolation, so independent runs can be spread over a bounded pool of
// workers without sharing any mutable state. A failing run is recorded in
// its Result and does not stop the others; cancelling the context does.
package runner

package fsa

import "fmt"

// Transition is one edge of an Automaton: from Source, any input codepoint c
// with Min <= c <= Max moves to Dest. Min <= Max always holds.
//
// A Transition value doubles as an iteration cursor: Automaton.InitTransition
// positions it at a state's first outgoing edge and Automaton.NextTransition
// advances it.
type Transition struct {
	Source int
	Dest   int
	Min    int
	Max    int

	// upto is the 1-based index of the next edge the cursor will read.
	// Zero means the cursor was never initialized.
	upto int
}

func (t Transition) String() string {
	return fmt.Sprintf("%d --[%#x-%#x]--> %d", t.Source, t.Min, t.Max, t.Dest)
}

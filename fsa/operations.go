package fsa

import "sort"

// Run reports whether the deterministic automaton a accepts s, stepping one
// codepoint at a time. The empty string is accepted iff state 0 accepts.
// The automaton must be deterministic; Determinize first if in doubt.
func Run(a *Automaton, s string) bool {
	if a.NumStates() == 0 {
		return false
	}
	state := 0
	for _, r := range s {
		state = Step(a, state, r)
		if state < 0 {
			return false
		}
	}
	return a.IsAccept(state)
}

// Step returns the successor of state on codepoint r, or -1 when no
// transition covers r. A -1 result is the ordinary negative answer of
// matching, not an error. Requires a deterministic automaton.
func Step(a *Automaton, state int, r rune) int {
	a.checkState(state)
	edges := a.transitions[state]
	c := int(r)
	i := sort.Search(len(edges), func(i int) bool { return edges[i].Min > c })
	if i > 0 && edges[i-1].Max >= c {
		return edges[i-1].Dest
	}
	return -1
}

// MakeEmpty returns the automaton accepting no strings.
func MakeEmpty() *Automaton {
	a := New()
	a.CreateState()
	return a
}

// MakeString returns the automaton accepting exactly s.
func MakeString(s string) *Automaton {
	a := New()
	last := a.CreateState()
	for _, r := range s {
		next := a.CreateState()
		a.AddTransition(last, next, int(r), int(r))
		last = next
	}
	a.SetAccept(last, true)
	return a
}

// MakeCharRange returns the automaton accepting every single-codepoint
// string in [min, max].
func MakeCharRange(min, max rune) *Automaton {
	a := New()
	start := a.CreateState()
	end := a.CreateState()
	a.AddTransition(start, end, int(min), int(max))
	a.SetAccept(end, true)
	return a
}

package fsa

import (
	"fmt"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
)

// Automaton is a mutable, append-only directed graph of integer states and
// range-labeled transitions. State 0 is the initial state by convention.
// State ids are dense: CreateState hands them out consecutively.
//
// Construction is single-threaded. Once an automaton has been handed to
// Determinize or CompileByteRun it is treated as frozen: no further mutation,
// reads from any number of goroutines are safe.
type Automaton struct {
	// transitions[s] holds the outgoing edges of state s, kept sorted by
	// (Min, Max, Dest).
	transitions [][]Transition

	// accept tracks accepting states. Dense small ids are exactly the shape
	// roaring containers are built for.
	accept *roaring.Bitmap
}

// New returns an empty automaton with no states.
func New() *Automaton {
	return &Automaton{accept: roaring.New()}
}

// CreateState allocates the next unused state id.
func (a *Automaton) CreateState() int {
	a.transitions = append(a.transitions, nil)
	return len(a.transitions) - 1
}

// NumStates returns the number of allocated states.
func (a *Automaton) NumStates() int {
	return len(a.transitions)
}

// SetAccept marks state as accepting or non-accepting. Acceptance is
// independent of transitions.
func (a *Automaton) SetAccept(state int, accept bool) {
	a.checkState(state)
	if accept {
		a.accept.Add(uint32(state))
	} else {
		a.accept.Remove(uint32(state))
	}
}

// IsAccept reports whether state is accepting.
func (a *Automaton) IsAccept(state int) bool {
	a.checkState(state)
	return a.accept.Contains(uint32(state))
}

// AddTransition appends the edge source --[min,max]--> dest. Overlapping
// ranges from the same source are allowed here; removing overlap is
// Determinize's job, not this layer's.
func (a *Automaton) AddTransition(source, dest, min, max int) {
	a.checkState(source)
	a.checkState(dest)
	if min > max {
		panic(fmt.Sprintf("fsa: invalid transition range %#x-%#x", min, max))
	}
	edges := a.transitions[source]
	i := sort.Search(len(edges), func(i int) bool {
		if edges[i].Min != min {
			return edges[i].Min > min
		}
		if edges[i].Max != max {
			return edges[i].Max > max
		}
		return edges[i].Dest >= dest
	})
	edges = append(edges, Transition{})
	copy(edges[i+1:], edges[i:])
	edges[i] = Transition{Source: source, Dest: dest, Min: min, Max: max}
	a.transitions[source] = edges
}

// NumTransitions returns the out-degree of state.
func (a *Automaton) NumTransitions(state int) int {
	a.checkState(state)
	return len(a.transitions[state])
}

// TransitionAt fills t with the index'th outgoing edge of state. Edges are
// ordered by (Min, Max, Dest).
func (a *Automaton) TransitionAt(state, index int, t *Transition) {
	a.checkState(state)
	e := a.transitions[state][index]
	t.Source, t.Dest, t.Min, t.Max = e.Source, e.Dest, e.Min, e.Max
}

// InitTransition positions the cursor in t at the first outgoing edge of
// state and returns the out-degree.
func (a *Automaton) InitTransition(state int, t *Transition) int {
	a.checkState(state)
	t.Source = state
	t.upto = 1
	return len(a.transitions[state])
}

// NextTransition advances the cursor and fills t with the next edge. It
// panics if the cursor was never initialized with InitTransition, or if it
// has run past the state's out-degree.
func (a *Automaton) NextTransition(t *Transition) {
	if t.upto == 0 {
		panic("fsa: NextTransition called before InitTransition")
	}
	edges := a.transitions[t.Source]
	if t.upto > len(edges) {
		panic("fsa: transition cursor exhausted")
	}
	e := edges[t.upto-1]
	t.Dest, t.Min, t.Max = e.Dest, e.Min, e.Max
	t.upto++
}

// IsDeterministic reports whether every state's outgoing ranges are pairwise
// disjoint, i.e. every input codepoint has at most one successor.
func (a *Automaton) IsDeterministic() bool {
	for _, edges := range a.transitions {
		for i := 1; i < len(edges); i++ {
			if edges[i].Min <= edges[i-1].Max {
				return false
			}
		}
	}
	return true
}

func (a *Automaton) checkState(state int) {
	if state < 0 || state >= len(a.transitions) {
		panic(fmt.Sprintf("fsa: state %d out of range (%d states)", state, len(a.transitions)))
	}
}

package fsa

import (
	"fmt"
	"slices"
)

// DefaultWorkLimit is the determinization budget used when a caller has no
// better number, measured in DFA states allocated.
const DefaultWorkLimit = 10000

// TooComplexError is returned when subset construction would allocate more
// DFA states than the caller's work limit allows. Certain inputs determinize
// to exponentially many states; the limit is what keeps them from running
// unbounded.
type TooComplexError struct {
	// WorkLimit is the budget that was exceeded.
	WorkLimit int
}

func (e *TooComplexError) Error() string {
	return fmt.Sprintf("fsa: determinizing would require more than %d states", e.WorkLimit)
}

// Determinize converts a (possibly nondeterministic) automaton into an
// equivalent deterministic one via subset construction.
//
// workLimit bounds the number of DFA states allocated, the initial state
// included; exceeding it returns a *TooComplexError carrying the limit. A
// workLimit <= 0 means DefaultWorkLimit. The budget is an argument, not
// shared state, so concurrent determinizations of different automata never
// contend on a counter.
//
// An already-deterministic input is returned as-is. An input with no states
// yields the single-state automaton accepting nothing.
func Determinize(a *Automaton, workLimit int) (*Automaton, error) {
	if workLimit <= 0 {
		workLimit = DefaultWorkLimit
	}
	if a.NumStates() == 0 {
		b := New()
		b.CreateState()
		return b, nil
	}
	if a.IsDeterministic() {
		return a, nil
	}

	b := New()
	b.CreateState()
	b.SetAccept(0, a.IsAccept(0))
	allocated := 1

	initial := NewStateSet()
	initial.Insert(0)
	frozen := initial.Freeze(HashValues(initial.SortedValues()), 0)

	// The registry maps each reachable NFA subset to the DFA state already
	// built for it. Buckets are keyed by hash; membership is confirmed
	// structurally, so hash collisions cost a comparison, never correctness.
	registry := map[uint64][]*FrozenIntSet{frozen.Hash(): {frozen}}
	worklist := []*FrozenIntSet{frozen}

	var all []Transition
	var points []int
	sub := NewStateSet()

	for head := 0; head < len(worklist); head++ {
		cur := worklist[head]
		q := cur.State()

		all = all[:0]
		for _, s := range cur.Values() {
			n := a.NumTransitions(s)
			for i := 0; i < n; i++ {
				var t Transition
				a.TransitionAt(s, i, &t)
				all = append(all, t)
			}
		}
		if len(all) == 0 {
			continue
		}

		// The distinct Min and Max+1 values partition the codepoint space
		// into maximal subranges on which the reachable subset is constant.
		points = points[:0]
		for _, t := range all {
			points = append(points, t.Min, t.Max+1)
		}
		slices.Sort(points)
		points = slices.Compact(points)

		pendDest := -1
		var pendMin, pendMax int
		flush := func() {
			if pendDest >= 0 {
				b.AddTransition(q, pendDest, pendMin, pendMax)
				pendDest = -1
			}
		}

		for pi := 0; pi+1 < len(points); pi++ {
			lo, hi := points[pi], points[pi+1]-1

			// Within [lo, hi] coverage is constant, so testing lo suffices.
			sub.Reset()
			for _, t := range all {
				if t.Min <= lo && lo <= t.Max {
					sub.Insert(t.Dest)
				}
			}
			if sub.Len() == 0 {
				continue
			}

			vals := sub.SortedValues()
			hash := HashValues(vals)
			dest := -1
			for _, f := range registry[hash] {
				if slices.Equal(f.Values(), vals) {
					dest = f.State()
					break
				}
			}
			if dest < 0 {
				if allocated+1 > workLimit {
					return nil, &TooComplexError{WorkLimit: workLimit}
				}
				dest = b.CreateState()
				allocated++
				for _, s := range vals {
					if a.IsAccept(s) {
						b.SetAccept(dest, true)
						break
					}
				}
				f := sub.Freeze(hash, dest)
				registry[hash] = append(registry[hash], f)
				worklist = append(worklist, f)
			}

			// Adjacent subranges with the same destination coalesce into one
			// transition. Gaps break adjacency, so dead ranges stay absent.
			if pendDest == dest && pendMax+1 == lo {
				pendMax = hi
			} else {
				flush()
				pendDest, pendMin, pendMax = dest, lo, hi
			}
		}
		flush()
	}
	return b, nil
}

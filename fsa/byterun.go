package fsa

import "github.com/bits-and-blooms/bitset"

// ByteRun is a deterministic transducer over raw UTF-8 bytes, compiled from a
// codepoint-level Automaton. Matching reads a dense state-by-byte table, so
// the hot path is one bounds check and one load per input byte.
//
// A ByteRun is immutable: Step, IsAccept and Run are safe to call from any
// number of goroutines concurrently.
type ByteRun struct {
	// table is row-major: table[state*256+b] is the successor, -1 if none.
	table  []int
	accept *bitset.BitSet
	size   int
}

// CompileByteRun compiles a into its byte-level matcher: the automaton is
// determinized, every codepoint range is expanded into the UTF-8 byte
// sequences encoding it, and the byte-level result is determinized again
// (expansion reintroduces nondeterminism where multi-byte ranges share lead
// bytes). Both determinizations draw on the same workLimit; a workLimit <= 0
// means DefaultWorkLimit.
func CompileByteRun(a *Automaton, workLimit int) (*ByteRun, error) {
	det, err := Determinize(a, workLimit)
	if err != nil {
		return nil, err
	}
	byt, err := Determinize(toByteAutomaton(det), workLimit)
	if err != nil {
		return nil, err
	}

	n := byt.NumStates()
	br := &ByteRun{
		table:  make([]int, n*256),
		accept: bitset.New(uint(n)),
		size:   n,
	}
	for i := range br.table {
		br.table[i] = -1
	}
	var t Transition
	for s := 0; s < n; s++ {
		if byt.IsAccept(s) {
			br.accept.Set(uint(s))
		}
		count := byt.InitTransition(s, &t)
		for i := 0; i < count; i++ {
			byt.NextTransition(&t)
			for c := t.Min; c <= t.Max; c++ {
				br.table[s*256+c] = t.Dest
			}
		}
	}
	return br, nil
}

// toByteAutomaton rewrites a codepoint automaton over the byte alphabet,
// inserting intermediate states for multi-byte UTF-8 sequences. State ids of
// the input are not preserved except for state 0, which stays initial.
func toByteAutomaton(a *Automaton) *Automaton {
	b := New()
	mapped := make([]int, a.NumStates())
	for i := range mapped {
		mapped[i] = -1
	}
	get := func(s int) int {
		if mapped[s] < 0 {
			mapped[s] = b.CreateState()
			b.SetAccept(mapped[s], a.IsAccept(s))
		}
		return mapped[s]
	}
	if a.NumStates() > 0 {
		get(0)
	}

	var t Transition
	for s := 0; s < a.NumStates(); s++ {
		src := get(s)
		count := a.InitTransition(s, &t)
		for i := 0; i < count; i++ {
			a.NextTransition(&t)
			lo, hi := rune(t.Min), rune(t.Max)
			if hi > maxCodePoint {
				hi = maxCodePoint
			}
			if lo < 0 {
				lo = 0
			}
			for _, seq := range utf8Sequences(lo, hi) {
				cur := src
				for j, br := range seq {
					next := 0
					if j == len(seq)-1 {
						next = get(t.Dest)
					} else {
						next = b.CreateState()
					}
					b.AddTransition(cur, next, int(br.min), int(br.max))
					cur = next
				}
			}
		}
	}
	return b
}

// Step returns the successor of state on input byte c, or -1 when there is
// none. Stepping from -1 stays at -1; a dead end is a non-match, not an
// error.
func (r *ByteRun) Step(state int, c byte) int {
	if state < 0 {
		return -1
	}
	return r.table[state*256+int(c)]
}

// IsAccept reports whether state is accepting. The -1 dead state never is.
func (r *ByteRun) IsAccept(state int) bool {
	return state >= 0 && r.accept.Test(uint(state))
}

// Size returns the number of byte-level states.
func (r *ByteRun) Size() int {
	return r.size
}

// Run reports whether the automaton accepts s, consuming it one raw byte at
// a time from state 0. The empty string is accepted iff state 0 accepts.
func (r *ByteRun) Run(s string) bool {
	state := 0
	for i := 0; i < len(s); i++ {
		state = r.table[state*256+int(s[i])]
		if state < 0 {
			return false
		}
	}
	return r.accept.Test(uint(state))
}

// Package automata compiles finite-state automata into fast byte-level term
// matchers.
//
// Query engines expand wildcard, regex, fuzzy and term-set patterns by
// intersecting an automaton with their term dictionary. This package is the
// automaton side of that contract: callers hand in an automaton graph (or a
// sorted term set) and get back an immutable Matcher that tests candidate
// terms one UTF-8 byte at a time.
//
// # Quick Start
//
// From a sorted term set:
//
//	m, _ := automata.CompileTerms([]string{"car", "cat", "dog"})
//	m.Match("cat") // true
//	m.Match("ca")  // false
//
// From a hand-built (possibly nondeterministic) automaton:
//
//	a := fsa.New()
//	s0, s1 := a.CreateState(), a.CreateState()
//	a.AddTransition(s0, s1, 'a', 'z')
//	a.SetAccept(s1, true)
//	m, err := automata.Compile(a, automata.WithWorkLimit(5000))
//
// Determinization is bounded: automata whose deterministic form explodes
// fail with ErrTooComplex instead of consuming unbounded time and memory.
// Raise the limit with WithWorkLimit or reject the originating pattern;
// which of the two is right is the caller's policy.
//
// # Sharing
//
// Construction is single-threaded, matching is not: a compiled Matcher is
// immutable and may be used from any number of goroutines. Repeated patterns
// are worth caching; see MatcherCache.
package automata

// Package fsa implements a range-compressed finite-state automaton engine
// for matching terms against compiled patterns.
//
// The engine has three layers:
//
//   - Automaton: a mutable, append-only graph of integer states and
//     range-labeled transitions over Unicode codepoints. Callers build it
//     directly (CreateState, AddTransition, SetAccept) or via
//     BuildTermAutomaton, which produces the minimal deterministic automaton
//     for a sorted term set.
//   - Determinize: subset construction turning an arbitrary automaton into an
//     equivalent deterministic one, bounded by an explicit work limit so that
//     pathological inputs fail fast instead of running unbounded.
//   - ByteRun: a compiled byte-level matcher. Codepoint ranges are expanded
//     into the UTF-8 byte sequences that encode them, the result is
//     determinized again, and matching proceeds one raw byte at a time
//     through a dense transition table.
//
// The discipline throughout is build-then-freeze-then-share: all construction
// is single-threaded, and a finished Automaton or ByteRun is immutable and
// safe for concurrent matching from any number of goroutines.
package fsa

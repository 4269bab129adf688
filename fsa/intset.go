package fsa

import "slices"

// StateSet accumulates the NFA states reached during one subset-construction
// step. Duplicate insertions collapse; insertion order is irrelevant.
type StateSet struct {
	members map[int]struct{}
}

// NewStateSet returns an empty, growable state set.
func NewStateSet() *StateSet {
	return &StateSet{members: make(map[int]struct{})}
}

// Insert adds state to the set.
func (s *StateSet) Insert(state int) {
	s.members[state] = struct{}{}
}

// Len returns the number of distinct members.
func (s *StateSet) Len() int {
	return len(s.members)
}

// Reset empties the set for reuse.
func (s *StateSet) Reset() {
	clear(s.members)
}

// SortedValues returns the members sorted ascending, in a fresh slice.
func (s *StateSet) SortedValues() []int {
	vals := make([]int, 0, len(s.members))
	for v := range s.members {
		vals = append(vals, v)
	}
	slices.Sort(vals)
	return vals
}

// Freeze ends the set's mutable life, capturing the sorted members together
// with the precomputed structural hash and the DFA state allocated to
// represent this subset.
func (s *StateSet) Freeze(hash uint64, state int) *FrozenIntSet {
	return &FrozenIntSet{values: s.SortedValues(), hash: hash, state: state}
}

// HashValues is the structural hash shared by all state-set keys. It is a
// pure function of the sorted member sequence, so equal sets always hash
// equal; the converse does not hold and registries must confirm with Equals.
func HashValues(values []int) uint64 {
	h := uint64(683)
	for _, v := range values {
		h = 31*h + uint64(v)
	}
	return h
}

// FrozenIntSet is the immutable canonical form of a StateSet. The
// determinizer uses it as a registry key mapping an NFA-state subset to the
// DFA state that represents it.
type FrozenIntSet struct {
	values []int
	hash   uint64
	state  int
}

// Values returns the sorted, deduplicated members. The slice must not be
// mutated.
func (f *FrozenIntSet) Values() []int {
	return f.values
}

// Len returns the number of members.
func (f *FrozenIntSet) Len() int {
	return len(f.values)
}

// State returns the DFA state assigned to this subset.
func (f *FrozenIntSet) State() int {
	return f.state
}

// Hash returns the precomputed structural hash.
func (f *FrozenIntSet) Hash() uint64 {
	return f.hash
}

// Equals reports structural equality of the member sequences.
func (f *FrozenIntSet) Equals(other *FrozenIntSet) bool {
	return other != nil && slices.Equal(f.values, other.values)
}

package fsa

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stateSignature mirrors the minimality criterion: accept flag plus the
// outgoing transition list.
func stateSignature(a *Automaton, s int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v", a.IsAccept(s))
	var t Transition
	n := a.InitTransition(s, &t)
	for i := 0; i < n; i++ {
		a.NextTransition(&t)
		fmt.Fprintf(&sb, "|%d-%d>%d", t.Min, t.Max, t.Dest)
	}
	return sb.String()
}

func requireMinimal(t *testing.T, a *Automaton) {
	t.Helper()
	seen := make(map[string]int)
	for s := 0; s < a.NumStates(); s++ {
		sig := stateSignature(a, s)
		if prior, ok := seen[sig]; ok {
			t.Fatalf("states %d and %d are structurally identical: %s", prior, s, sig)
		}
		seen[sig] = s
	}
}

func TestBuildTermAutomaton_CatCarDog(t *testing.T) {
	a, err := BuildTermAutomaton([]string{"car", "cat", "dog"})
	require.NoError(t, err)
	require.True(t, a.IsDeterministic())

	for _, s := range []string{"car", "cat", "dog"} {
		assert.True(t, Run(a, s), "should accept %q", s)
	}
	for _, s := range []string{"", "ca", "do", "cats", "dot", "c", "d"} {
		assert.False(t, Run(a, s), "should reject %q", s)
	}

	// Myhill-Nerode classes: start, c, ca, d, do, and one shared final.
	// "car"/"cat" share the ca prefix path and diverge only at the last
	// character; "dog" re-enters the same final state.
	assert.Equal(t, 6, a.NumStates())
	requireMinimal(t, a)

	caFromCat := Step(a, Step(a, 0, 'c'), 'a')
	caFromCar := Step(a, Step(a, 0, 'c'), 'a')
	require.Equal(t, caFromCat, caFromCar)
	assert.Equal(t, Step(a, caFromCat, 't'), Step(a, caFromCat, 'r'))
}

func TestBuildTermAutomaton_SharedSuffixesCollapse(t *testing.T) {
	a, err := BuildTermAutomaton([]string{"bane", "cane", "lane"})
	require.NoError(t, err)

	// The three "ane" suffix paths must be one shared path: start, the
	// merged post-initial state, a, n, final.
	assert.Equal(t, 5, a.NumStates())
	requireMinimal(t, a)

	for _, s := range []string{"bane", "cane", "lane"} {
		assert.True(t, Run(a, s))
	}
	assert.False(t, Run(a, "ane"))
	assert.False(t, Run(a, "banee"))
}

func TestBuildTermAutomaton_Membership(t *testing.T) {
	terms := []string{"", "a", "ab", "abc", "b", "ba", "zzz"}
	a, err := BuildTermAutomaton(terms)
	require.NoError(t, err)
	require.True(t, a.IsDeterministic())
	requireMinimal(t, a)

	inSet := make(map[string]bool, len(terms))
	for _, term := range terms {
		inSet[term] = true
	}
	for _, s := range allStrings("abz", 3) {
		assert.Equal(t, inSet[s], Run(a, s), "input %q", s)
	}
	assert.True(t, Run(a, "zzz"))
}

func TestBuildTermAutomaton_EmptyTermOnly(t *testing.T) {
	a, err := BuildTermAutomaton([]string{""})
	require.NoError(t, err)

	assert.True(t, Run(a, ""))
	assert.False(t, Run(a, "a"))
	assert.Equal(t, 1, a.NumStates())
}

func TestBuildTermAutomaton_NoTerms(t *testing.T) {
	a, err := BuildTermAutomaton(nil)
	require.NoError(t, err)

	assert.Equal(t, 1, a.NumStates())
	assert.False(t, Run(a, ""))
}

func TestBuildTermAutomaton_Unicode(t *testing.T) {
	terms := []string{"köln", "zürich", "北京", "東京"}
	a, err := BuildTermAutomaton(terms)
	require.NoError(t, err)

	for _, term := range terms {
		assert.True(t, Run(a, term), "should accept %q", term)
	}
	assert.False(t, Run(a, "köl"))
	assert.False(t, Run(a, "京"))
}

func TestBuildTermAutomaton_OutOfOrder(t *testing.T) {
	_, err := BuildTermAutomaton([]string{"b", "a"})
	assert.ErrorIs(t, err, ErrTermsOutOfOrder)

	_, err = BuildTermAutomaton([]string{"a", "a"})
	assert.ErrorIs(t, err, ErrTermsOutOfOrder, "duplicates are out of order too")
}

func TestBuildTermAutomaton_TermTooLong(t *testing.T) {
	_, err := BuildTermAutomaton([]string{strings.Repeat("a", MaxTermLength+1)})
	assert.ErrorIs(t, err, ErrTermTooLong)

	a, err := BuildTermAutomaton([]string{strings.Repeat("a", MaxTermLength)})
	require.NoError(t, err)
	assert.True(t, Run(a, strings.Repeat("a", MaxTermLength)))
}

func TestBuildTermAutomaton_RangeCoalescing(t *testing.T) {
	// Consecutive single-rune terms share the final state, so the root's
	// edges coalesce into one range transition.
	a, err := BuildTermAutomaton([]string{"a", "b", "c", "d"})
	require.NoError(t, err)

	require.Equal(t, 2, a.NumStates())
	require.Equal(t, 1, a.NumTransitions(0))

	var tr Transition
	a.TransitionAt(0, 0, &tr)
	assert.Equal(t, int('a'), tr.Min)
	assert.Equal(t, int('d'), tr.Max)
}

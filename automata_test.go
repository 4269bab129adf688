package automata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termset/automata/fsa"
)

func TestCompileTerms_Match(t *testing.T) {
	m, err := CompileTerms([]string{"car", "cat", "dog"})
	require.NoError(t, err)

	assert.True(t, m.Match("cat"))
	assert.True(t, m.Match("car"))
	assert.True(t, m.Match("dog"))
	assert.False(t, m.Match("ca"))
	assert.False(t, m.Match("do"))
	assert.False(t, m.Match(""))
	assert.Greater(t, m.Size(), 0)
}

func TestCompileTerms_Errors(t *testing.T) {
	_, err := CompileTerms(nil)
	assert.ErrorIs(t, err, ErrNoTerms)

	_, err = CompileTerms([]string{"b", "a"})
	assert.ErrorIs(t, err, fsa.ErrTermsOutOfOrder)
}

func TestCompile_FromNFA(t *testing.T) {
	a := fsa.New()
	s0 := a.CreateState()
	s1 := a.CreateState()
	s2 := a.CreateState()
	a.AddTransition(s0, s1, 'a', 'z')
	a.AddTransition(s0, s2, 'm', 'q')
	a.SetAccept(s1, true)
	a.SetAccept(s2, true)

	m, err := Compile(a)
	require.NoError(t, err)

	assert.True(t, m.Match("a"))
	assert.True(t, m.Match("q"))
	assert.False(t, m.Match("aa"))
	assert.False(t, m.Match("A"))
}

func TestCompile_WorkLimitExceeded(t *testing.T) {
	a := fsa.New()
	s0 := a.CreateState()
	s1 := a.CreateState()
	s2 := a.CreateState()
	a.AddTransition(s0, s1, 'a', 'z')
	a.AddTransition(s0, s2, 'm', 'q')
	a.SetAccept(s1, true)
	a.SetAccept(s2, true)

	_, err := Compile(a, WithWorkLimit(2))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooComplex)

	var tc *fsa.TooComplexError
	require.ErrorAs(t, err, &tc)
	assert.Equal(t, 2, tc.WorkLimit)
}

func TestMatcher_ByteRunEscapeHatch(t *testing.T) {
	m, err := CompileTerms([]string{"ab"})
	require.NoError(t, err)

	br := m.ByteRun()
	require.NotNil(t, br)

	state := br.Step(0, 'a')
	require.GreaterOrEqual(t, state, 0)
	state = br.Step(state, 'b')
	assert.True(t, br.IsAccept(state))
}

func TestMatcher_FilterTerms(t *testing.T) {
	m, err := CompileTerms([]string{"car", "cat", "dog"})
	require.NoError(t, err)

	candidates := []string{"ant", "car", "carp", "cat", "dog", "dot", "zebra"}
	got, err := m.FilterTerms(context.Background(), candidates)
	require.NoError(t, err)
	assert.Equal(t, []string{"car", "cat", "dog"}, got)

	got, err = m.FilterTerms(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMatcher_FilterTermsCancelled(t *testing.T) {
	m, err := CompileTerms([]string{"car"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	terms := make([]string, 10000)
	for i := range terms {
		terms[i] = "nope"
	}
	_, err = m.FilterTerms(ctx, terms)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompile_WithLogger(t *testing.T) {
	m, err := CompileTerms([]string{"cat"}, WithLogger(NoopLogger()))
	require.NoError(t, err)
	assert.True(t, m.Match("cat"))
}

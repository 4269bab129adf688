package automata

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/termset/automata/fsa"
)

// Matcher is a compiled, immutable byte-level term matcher. It is safe for
// concurrent use once compiled.
type Matcher struct {
	run    *fsa.ByteRun
	logger *Logger
}

// Compile determinizes a (if necessary) and compiles it into a byte-level
// matcher. The input automaton is treated as frozen from here on and must
// not be mutated afterwards.
func Compile(a *fsa.Automaton, opts ...Option) (*Matcher, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	run, err := fsa.CompileByteRun(a, o.workLimit)
	if err != nil {
		o.logger.WithWorkLimit(o.workLimit).LogCompile(0, err)
		return nil, translateError(err)
	}
	o.logger.WithWorkLimit(o.workLimit).LogCompile(run.Size(), nil)
	return &Matcher{run: run, logger: o.logger}, nil
}

// CompileTerms builds the minimal automaton for the strictly sorted term set
// and compiles it. Minimal construction sidesteps determinization's worst
// case, so even very large term sets compile in linear time.
func CompileTerms(terms []string, opts ...Option) (*Matcher, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(terms) == 0 {
		return nil, ErrNoTerms
	}
	a, err := fsa.BuildTermAutomaton(terms)
	o.logger.LogBuild(len(terms), numStates(a), err)
	if err != nil {
		return nil, translateError(err)
	}
	run, err := fsa.CompileByteRun(a, o.workLimit)
	if err != nil {
		o.logger.WithWorkLimit(o.workLimit).LogCompile(0, err)
		return nil, translateError(err)
	}
	o.logger.WithWorkLimit(o.workLimit).LogCompile(run.Size(), nil)
	return &Matcher{run: run, logger: o.logger}, nil
}

func numStates(a *fsa.Automaton) int {
	if a == nil {
		return 0
	}
	return a.NumStates()
}

// Match reports whether the matcher accepts s.
func (m *Matcher) Match(s string) bool {
	return m.run.Run(s)
}

// Size returns the number of byte-level states.
func (m *Matcher) Size() int {
	return m.run.Size()
}

// ByteRun exposes the underlying transducer for callers that drive matching
// themselves, e.g. term-dictionary intersection that prunes subtrees with
// Step.
func (m *Matcher) ByteRun() *fsa.ByteRun {
	return m.run
}

// FilterTerms returns, in input order, the candidate terms the matcher
// accepts. Work is sharded across GOMAXPROCS goroutines; matching itself is
// read-only, so shards share the matcher freely. Cancellation is checked per
// shard.
func (m *Matcher) FilterTerms(ctx context.Context, terms []string) ([]string, error) {
	if len(terms) == 0 {
		return nil, nil
	}

	shards := runtime.GOMAXPROCS(0)
	if shards > len(terms) {
		shards = len(terms)
	}
	chunk := (len(terms) + shards - 1) / shards

	matched := make([]bool, len(terms))
	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(terms); start += chunk {
		start := start
		end := start + chunk
		if end > len(terms) {
			end = len(terms)
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				matched[i] = m.run.Run(terms[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []string
	for i, ok := range matched {
		if ok {
			out = append(out, terms[i])
		}
	}
	return out, nil
}

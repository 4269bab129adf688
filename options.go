package automata

import "github.com/termset/automata/fsa"

type options struct {
	workLimit int
	logger    *Logger
}

// Option configures compilation behavior.
//
// The work limit is threaded into each compile call rather than held in
// process-global state, so concurrent compilations never share a budget.
type Option func(*options)

// WithWorkLimit sets the determinization work limit, measured in DFA states
// allocated. Values <= 0 fall back to fsa.DefaultWorkLimit.
func WithWorkLimit(limit int) Option {
	return func(o *options) {
		if limit <= 0 {
			limit = fsa.DefaultWorkLimit
		}
		o.workLimit = limit
	}
}

// WithLogger sets the logger used for compile-time diagnostics. If nil is
// passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func defaultOptions() options {
	return options{
		workLimit: fsa.DefaultWorkLimit,
		logger:    NoopLogger(),
	}
}

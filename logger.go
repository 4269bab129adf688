package automata

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with automata-specific helpers so compile-time
// operations log with consistent field names. Matching itself never logs.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. If handler is nil, a
// text handler to stderr at Info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithWorkLimit adds the determinization work limit to the logger.
func (l *Logger) WithWorkLimit(limit int) *Logger {
	return &Logger{Logger: l.Logger.With("work_limit", limit)}
}

// LogCompile logs one automaton compilation.
func (l *Logger) LogCompile(states int, err error) {
	if err != nil {
		l.Error("compile failed",
			"error", err,
		)
	} else {
		l.Debug("compile completed",
			"byte_states", states,
		)
	}
}

// LogBuild logs one minimal-automaton build from a term set.
func (l *Logger) LogBuild(terms, states int, err error) {
	if err != nil {
		l.Error("term automaton build failed",
			"terms", terms,
			"error", err,
		)
	} else {
		l.Debug("term automaton built",
			"terms", terms,
			"states", states,
		)
	}
}

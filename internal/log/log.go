// Package log wraps logrus into the minimal interface pkg/csp needs for
// opt-in search tracing (Config.Logger), so the solver core never
// imports logrus directly.
package log

import "github.com/sirupsen/logrus"

// Logger adapts a *logrus.Entry to csp's unexported searchLogger
// interface (Debugf(format string, args ...any)).
type Logger struct {
	entry *logrus.Entry
}

// New builds a Logger writing through base, tagged with component
// "csp" so solver traces are distinguishable from a host application's
// own log lines.
func New(base *logrus.Logger) *Logger {
	if base == nil {
		base = logrus.New()
	}
	return &Logger{entry: base.WithField("component", "csp")}
}

// Debugf implements the solver's searchLogger capability.
func (l *Logger) Debugf(format string, args ...any) {
	if l == nil || l.entry == nil {
		return
	}
	l.entry.Debugf(format, args...)
}

// WithField returns a Logger scoped to an additional field, e.g. a
// problem name or run ID, useful when several solves are traced
// concurrently (internal/bench's seed sweep).
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

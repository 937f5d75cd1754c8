package gridsight

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Because Enabled is always false, slog
// never builds the attributes of a disabled call.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger returns the logger installed when none is set.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the package logger. A Tracker worker may read it while
// another goroutine replaces it.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger routes gridsight's diagnostics to l. Until it is called the
// package is silent, and passing nil makes it silent again. It may be
// called at any time, including while a Tracker is running.
//
// Line, Circle, Visible and the other single queries never log. The
// Tracker logs at two levels:
//   - [slog.LevelDebug]: per-watcher verdicts and tracker pool sizing
//   - [slog.LevelInfo]: tracker lifecycle
//
// Example:
//
//	gridsight.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger last given to SetLogger, or a discarding one.
// Callers outside the package, such as the gridsight command, log through
// it too.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

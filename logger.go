package coronas

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger shared by coronas and its sub-packages.
// Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: per-run rejection breakdowns, schema already current
//   - [slog.LevelInfo]: enumeration results, migrations applied, runs stored
//   - [slog.LevelWarn]: migration version unreadable after a successful Up
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages (enumerate, store) call it
// so they share one configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

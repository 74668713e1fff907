package ggfu

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for ggfu and all its sub-packages.
// By default, ggfu produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by ggfu:
//   - [slog.LevelDebug]: layout geometry, command counts, playback steps
//   - [slog.LevelInfo]: finished renders and plans
//   - [slog.LevelWarn]: non-fatal backend issues (clamped sizes, unknown commands)
//
// Example:
//
//	ggfu.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by ggfu.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// LoggerFor returns the current logger tagged with component=name.
// Sub-packages log through it so records from the sphere renderer, the
// raster host and the procedure runner can be told apart.
func LoggerFor(name string) *slog.Logger {
	return Logger().With("component", name)
}

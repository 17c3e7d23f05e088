package aura

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"

	"github.com/gogpu/gg-aura/audio"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
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

// SetLogger configures the logger for aura, its sub-packages and gg.
// By default, aura produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by aura:
//   - [slog.LevelDebug]: per-frame timing, surface allocation
//   - [slog.LevelInfo]: session start and stop
//   - [slog.LevelWarn]: skipped frames
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	audio.SetLogger(l)
	gg.SetLogger(l)
}

// Logger returns the current logger used by aura.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

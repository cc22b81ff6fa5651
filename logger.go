package svgmesh

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/svgmesh/internal/tess"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip building the record entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while other goroutines render.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for svgmesh and its internal packages.
// By default svgmesh produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by svgmesh:
//   - [slog.LevelDebug]: per-render diagnostics (vertex and index counts,
//     mesh cache hits, culled widgets)
//   - [slog.LevelWarn]: paths skipped because they could not be tessellated
//
// Example:
//
//	svgmesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	tess.SetLogger(l)
}

// Logger returns the current logger used by svgmesh.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

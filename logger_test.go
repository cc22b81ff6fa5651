package svgmesh

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/svgmesh/internal/svg"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("key", "val")}).(nopHandler); !ok {
		t.Error("nopHandler.WithAttrs() should return nopHandler")
	}
	if _, ok := h.WithGroup("group").(nopHandler); !ok {
		t.Error("nopHandler.WithGroup() should return nopHandler")
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(custom)

	if Logger() != custom {
		t.Error("Logger() did not return the custom logger set via SetLogger")
	}
	Logger().Info("test message", "key", "value")
	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("expected log output to contain 'test message', got: %s", buf.String())
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) should set nop logger, not nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should produce a disabled logger")
	}
}

func TestSkippedPathIsLogged(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	square := []svg.Segment{
		{Kind: svg.MoveTo, P: svg.Point{X: 0, Y: 0}},
		{Kind: svg.LineTo, P: svg.Point{X: 10, Y: 0}},
		{Kind: svg.LineTo, P: svg.Point{X: 10, Y: 10}},
		{Kind: svg.Close},
	}
	good := &svg.Path{
		Transform: svg.Identity(),
		Fill:      &svg.Fill{Paint: svg.Color{R: 255}, Opacity: 1},
		Segments:  square,
	}
	bad := &svg.Path{
		ID:        "bad",
		Transform: svg.Identity(),
		Stroke:    &svg.Stroke{Paint: svg.Color{}, Opacity: 1, Width: -1, MiterLimit: 4},
		Segments:  square,
	}
	icon := func(children ...svg.Node) *Icon {
		return &Icon{
			tree:    &svg.Tree{Root: &svg.Group{Transform: svg.Identity(), Children: children}},
			viewBox: Rect{Max: Pos2{X: 10, Y: 10}},
		}
	}

	want := tessellate(icon(good), Rect{Max: Pos2{X: 10, Y: 10}}, Splat(1), 1, true)
	got := tessellate(icon(good, bad), Rect{Max: Pos2{X: 10, Y: 10}}, Splat(1), 1, true)

	if len(got.Vertices) != len(want.Vertices) || len(got.Indices) != len(want.Indices) {
		t.Errorf("mesh with a failing path has %d vertices, %d indices; want %d, %d",
			len(got.Vertices), len(got.Indices), len(want.Vertices), len(want.Indices))
	}
	out := buf.String()
	if !strings.Contains(out, "skipping path") || !strings.Contains(out, "id=bad") {
		t.Errorf("expected a warning naming the skipped path, got: %s", out)
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	const goroutines = 100

	for range goroutines {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if l := Logger(); l == nil {
				t.Error("Logger() returned nil during concurrent access")
			} else {
				l.Debug("concurrent read")
			}
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}
	wg.Wait()
}

func BenchmarkLoggerDisabledLog(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("message", "key", "value")
	}
}

package svgmesh

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gogpu/svgmesh/internal/svg"
)

func blackToWhite(t *testing.T, wrap WrapMode) *Gradient {
	t.Helper()
	g, err := NewGradient(Pos2{}, Pos2{X: 32}, wrap,
		GradientStop{Offset: 0, Color: Black},
		GradientStop{Offset: 1, Color: White},
	)
	if err != nil {
		t.Fatalf("NewGradient() error = %v", err)
	}
	return g
}

func TestGradientWrapModes(t *testing.T) {
	grey := Color32{R: 127, G: 127, B: 127, A: 255}
	tests := []struct {
		wrap WrapMode
		x    float32
		want Color32
	}{
		{WrapClamp, 48, White},
		{WrapRepeat, 48, grey},
		{WrapMirror, 48, grey},
		{WrapClamp, -16, Black},
		{WrapRepeat, -16, grey},
		{WrapMirror, -16, grey},
		{WrapClamp, 16, grey},
		{WrapClamp, 0, Black},
		{WrapClamp, 32, White},
		{WrapMirror, 64, Black},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_x=%v", tt.wrap, tt.x), func(t *testing.T) {
			g := blackToWhite(t, tt.wrap)
			if got := g.ColorAt(Pos2{X: tt.x, Y: 5}); got != tt.want {
				t.Errorf("ColorAt(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestGradientDegenerate(t *testing.T) {
	g, err := NewGradient(Pos2{X: 4, Y: 4}, Pos2{X: 4, Y: 4}, WrapClamp,
		GradientStop{Offset: 0, Color: Black},
		GradientStop{Offset: 1, Color: RGB(255, 0, 0)},
	)
	if err != nil {
		t.Fatal(err)
	}
	if got := g.ColorAt(Pos2{X: 100}); got != RGB(255, 0, 0) {
		t.Errorf("zero-length axis ColorAt() = %v, want last stop", got)
	}

	empty, err := NewGradient(Pos2{}, Pos2{X: 1}, WrapClamp)
	if err != nil {
		t.Fatal(err)
	}
	if got := empty.ColorAt(Pos2{}); got != Transparent {
		t.Errorf("no stops ColorAt() = %v, want transparent", got)
	}

	single, err := NewGradient(Pos2{}, Pos2{X: 1}, WrapRepeat, GradientStop{Offset: 0.3, Color: White})
	if err != nil {
		t.Fatal(err)
	}
	if got := single.ColorAt(Pos2{X: 0.9}); got != White {
		t.Errorf("single stop ColorAt() = %v, want the stop color", got)
	}
}

func TestGradientCoincidentStops(t *testing.T) {
	red, blue := RGB(255, 0, 0), RGB(0, 0, 255)
	g, err := NewGradient(Pos2{}, Pos2{X: 10}, WrapClamp,
		GradientStop{Offset: 0, Color: Black},
		GradientStop{Offset: 0.5, Color: red},
		GradientStop{Offset: 0.5, Color: blue},
		GradientStop{Offset: 1, Color: White},
	)
	if err != nil {
		t.Fatal(err)
	}
	if got := g.ColorAt(Pos2{X: 5}); got != blue {
		t.Errorf("ColorAt(stop offset) = %v, want the later stop %v", got, blue)
	}
	if got := g.ColorAt(Pos2{X: 4.999}); got.R < 250 || got.B != 0 {
		t.Errorf("ColorAt(before stop) = %v, want nearly red", got)
	}
}

func TestNewGradientErrors(t *testing.T) {
	tests := []struct {
		name  string
		stops []GradientStop
		want  error
	}{
		{"above one", []GradientStop{{Offset: 1.5}}, ErrStopOffsetRange},
		{"negative", []GradientStop{{Offset: -0.1}}, ErrStopOffsetRange},
		{"decreasing", []GradientStop{{Offset: 0.6}, {Offset: 0.4}}, ErrNonMonotonicStops},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGradient(Pos2{}, Pos2{X: 1}, WrapClamp, tt.stops...)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewGradient() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGradientAccessors(t *testing.T) {
	g := blackToWhite(t, WrapMirror)
	if g.Start() != (Pos2{}) || g.End() != (Pos2{X: 32}) || g.Wrap() != WrapMirror {
		t.Errorf("accessors = %v %v %v", g.Start(), g.End(), g.Wrap())
	}
	stops := g.Stops()
	stops[0].Color = White
	if g.Stops()[0].Color != Black {
		t.Error("Stops() should return a copy")
	}
}

func TestGradientOf(t *testing.T) {
	lg := &svg.LinearGradient{
		X1: 0, Y1: 0, X2: 1, Y2: 0,
		Transform: svg.Scale(32, 1),
		Spread:    svg.SpreadReflect,
		Stops: []svg.Stop{
			{Offset: 0, Color: svg.Color{}, Opacity: 1},
			{Offset: 1, Color: svg.Color{R: 255, G: 255, B: 255}, Opacity: 1},
		},
	}
	g := gradientOf(lg, Translate(10, 0), 0.5)

	if g.Start() != (Pos2{X: 10}) || g.End() != (Pos2{X: 42}) {
		t.Errorf("axis = %v -> %v, want (10, 0) -> (42, 0)", g.Start(), g.End())
	}
	if g.Wrap() != WrapMirror {
		t.Errorf("Wrap() = %v, want mirror", g.Wrap())
	}
	if got := g.ColorAt(Pos2{X: 42}); got != RGBA(255, 255, 255, 127) {
		t.Errorf("ColorAt(end) = %v, want white at half opacity", got)
	}
}

func TestWrapOf(t *testing.T) {
	tests := []struct {
		in   svg.SpreadMethod
		want WrapMode
	}{
		{svg.SpreadPad, WrapClamp},
		{svg.SpreadReflect, WrapMirror},
		{svg.SpreadRepeat, WrapRepeat},
	}
	for _, tt := range tests {
		if got := wrapOf(tt.in); got != tt.want {
			t.Errorf("wrapOf(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestVertexPaint(t *testing.T) {
	solid := newVertexPaint(svg.Color{R: 255}, 1, Identity())
	if got := solid.colorAt(Pt(5, 5)); got != RGB(255, 0, 0) {
		t.Errorf("solid colorAt() = %v, want red", got)
	}
	radial := newVertexPaint(&svg.RadialGradient{}, 1, Identity())
	if got := radial.colorAt(Pt(5, 5)); got != Black {
		t.Errorf("unsupported paint colorAt() = %v, want opaque black", got)
	}
}

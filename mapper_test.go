package svgmesh

import (
	"math"
	"testing"
)

func TestMapperRoundTrip(t *testing.T) {
	m := newMapper(rectXYXY(-4, 2, 20, 14), rectXYXY(100, 50, 148, 74), Vec2{X: 2, Y: 2})

	if got := m.toDisplay(Pt(-4, 2)); got != (Pos2{X: 100, Y: 50}) {
		t.Errorf("toDisplay(viewBox.Min) = %v, want rect.Min", got)
	}
	if got := m.toDisplay(Pt(20, 14)); got != (Pos2{X: 148, Y: 74}) {
		t.Errorf("toDisplay(viewBox.Max) = %v, want rect.Max", got)
	}
	for _, p := range []Point{Pt(0, 0), Pt(3.5, 7.25), Pt(-4, 14)} {
		back := m.toSource(m.toDisplay(p))
		if math.Abs(back.X-p.X) > 1e-5 || math.Abs(back.Y-p.Y) > 1e-5 {
			t.Errorf("toSource(toDisplay(%v)) = %v", p, back)
		}
	}
}

func TestMapperZeroScale(t *testing.T) {
	m := newMapper(rectXYXY(1, 2, 5, 6), rectXYXY(0, 0, 0, 0), Vec2{})
	if got := m.toSource(Pos2{X: 10, Y: 10}); got != Pt(1, 2) {
		t.Errorf("toSource() with zero scale = %v, want view box origin", got)
	}

	m = newMapper(rectXYXY(1, 2, 5, 6), rectXYXY(10, 20, 18, 20), Vec2{X: 2})
	if got := m.toSource(Pos2{X: 14, Y: 99}); got != Pt(3, 2) {
		t.Errorf("toSource() with zero height scale = %v, want (3, 2)", got)
	}
}

func TestEffectiveTolerance(t *testing.T) {
	tests := []struct {
		name     string
		tol      float32
		scaleTol bool
		scale    Vec2
		want     float64
	}{
		{"disabled", 1, false, Vec2{X: 4, Y: 4}, 1},
		{"uniform", 1, true, Vec2{X: 4, Y: 4}, 0.25},
		{"uses larger axis", 2, true, Vec2{X: 2, Y: 8}, 0.25},
		{"zero scale", 1, true, Vec2{}, 1},
		{"negative scale", 1, true, Vec2{X: -2, Y: -3}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := effectiveTolerance(tt.tol, tt.scaleTol, tt.scale); got != tt.want {
				t.Errorf("effectiveTolerance() = %v, want %v", got, tt.want)
			}
		})
	}
}

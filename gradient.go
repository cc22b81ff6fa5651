package svgmesh

import (
	"fmt"
	"math"

	"github.com/gogpu/svgmesh/internal/svg"
)

// WrapMode defines how a gradient continues beyond its end points.
type WrapMode uint8

const (
	// WrapClamp extends the first and last stop colors.
	WrapClamp WrapMode = iota
	// WrapRepeat restarts the gradient every axis length.
	WrapRepeat
	// WrapMirror reverses the gradient every axis length.
	WrapMirror
)

// String returns the name of the wrap mode.
func (w WrapMode) String() string {
	switch w {
	case WrapClamp:
		return "clamp"
	case WrapRepeat:
		return "repeat"
	case WrapMirror:
		return "mirror"
	default:
		return fmt.Sprintf("WrapMode(%d)", w)
	}
}

// GradientStop is a color at a position along a gradient axis.
type GradientStop struct {
	Offset float32 // Position on the axis, 0.0 to 1.0
	Color  Color32 // Color at this position
}

type stop struct {
	offset float64
	color  Color32
}

// Gradient is a linear gradient in SVG user space.
//
// A Gradient is immutable and safe for concurrent use.
type Gradient struct {
	start, end Point
	wrap       WrapMode
	stops      []stop
}

// NewGradient returns a linear gradient from start to end, in the icon's
// view box coordinates. Stop offsets must lie in [0, 1] and must not
// decrease.
func NewGradient(start, end Pos2, wrap WrapMode, stops ...GradientStop) (*Gradient, error) {
	g := &Gradient{
		start: Pt(float64(start.X), float64(start.Y)),
		end:   Pt(float64(end.X), float64(end.Y)),
		wrap:  wrap,
		stops: make([]stop, len(stops)),
	}
	for i, s := range stops {
		if !(s.Offset >= 0 && s.Offset <= 1) {
			return nil, fmt.Errorf("%w: stop %d at %v", ErrStopOffsetRange, i, s.Offset)
		}
		if i > 0 && s.Offset < stops[i-1].Offset {
			return nil, fmt.Errorf("%w: stop %d at %v follows %v", ErrNonMonotonicStops, i, s.Offset, stops[i-1].Offset)
		}
		g.stops[i] = stop{offset: float64(s.Offset), color: s.Color}
	}
	return g, nil
}

// gradientOf converts a parsed linear gradient. tf maps the gradient's user
// space to icon space; opacity multiplies every stop alpha.
func gradientOf(lg *svg.LinearGradient, tf Matrix, opacity float64) *Gradient {
	gt := tf.Multiply(Matrix(lg.Transform))
	g := &Gradient{
		start: gt.TransformPoint(Pt(lg.X1, lg.Y1)),
		end:   gt.TransformPoint(Pt(lg.X2, lg.Y2)),
		wrap:  wrapOf(lg.Spread),
		stops: make([]stop, len(lg.Stops)),
	}
	for i, s := range lg.Stops {
		g.stops[i] = stop{offset: s.Offset, color: colorOf(s.Color, s.Opacity*opacity)}
	}
	return g
}

func wrapOf(s svg.SpreadMethod) WrapMode {
	switch s {
	case svg.SpreadReflect:
		return WrapMirror
	case svg.SpreadRepeat:
		return WrapRepeat
	default:
		return WrapClamp
	}
}

// Start returns the start of the gradient axis.
func (g *Gradient) Start() Pos2 { return g.start.Pos2() }

// End returns the end of the gradient axis.
func (g *Gradient) End() Pos2 { return g.end.Pos2() }

// Wrap returns the wrap mode.
func (g *Gradient) Wrap() WrapMode { return g.wrap }

// Stops returns a copy of the color stops.
func (g *Gradient) Stops() []GradientStop {
	out := make([]GradientStop, len(g.stops))
	for i, s := range g.stops {
		out[i] = GradientStop{Offset: float32(s.offset), Color: s.color}
	}
	return out
}

// ColorAt returns the gradient color at p, in view box coordinates.
func (g *Gradient) ColorAt(p Pos2) Color32 {
	return g.colorAt(Pt(float64(p.X), float64(p.Y)))
}

// colorAt evaluates the gradient at a source-space point. The factor is the
// projection of p onto the axis, 0 at start and 1 at end.
func (g *Gradient) colorAt(p Point) Color32 {
	n := len(g.stops)
	if n == 0 {
		return Transparent
	}
	axis := g.end.Sub(g.start)
	den := axis.LengthSquared()
	if !(den > 0) || math.IsInf(den, 0) {
		return g.stops[n-1].color
	}

	t := p.Sub(g.start).Dot(axis) / den
	switch g.wrap {
	case WrapMirror:
		t = 1 - math.Abs(math.Mod(math.Abs(t), 2)-1)
	case WrapRepeat:
		t -= math.Floor(t)
	}

	a, b := g.stops[n-1].color, g.stops[n-1].color
	f := 1.0
	for i := 0; i+1 < n; i++ {
		a, b = g.stops[i].color, g.stops[i+1].color
		if t < g.stops[i+1].offset {
			f = 0
			if span := g.stops[i+1].offset - g.stops[i].offset; span > 0 {
				f = min(max((t-g.stops[i].offset)/span, 0), 1)
			}
			break
		}
	}
	return mixColor(a, b, f)
}

// mixColor interpolates each channel independently and truncates.
func mixColor(a, b Color32, f float64) Color32 {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x)*(1-f) + float64(y)*f)
	}
	return Color32{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

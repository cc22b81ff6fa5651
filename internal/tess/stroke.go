package tess

import (
	"iter"
	"math"
)

// LineCap specifies the shape of open subpath end points.
type LineCap uint8

const (
	// LineCapButt ends the stroke flush with the end point.
	LineCapButt LineCap = iota
	// LineCapSquare extends the stroke by half its width.
	LineCapSquare
	// LineCapRound ends the stroke with a half disc.
	LineCapRound
)

// LineJoin specifies the shape of the corner between two segments.
type LineJoin uint8

const (
	// LineJoinMiter extends the outer edges until they meet, falling back to
	// a bevel beyond the miter limit.
	LineJoinMiter LineJoin = iota
	// LineJoinMiterClip behaves like LineJoinMiter.
	LineJoinMiterClip
	// LineJoinRound joins segments with a circular arc.
	LineJoinRound
	// LineJoinBevel connects the outer corners with a straight line.
	LineJoinBevel
)

// StrokeOptions configures a stroke tessellation.
type StrokeOptions struct {
	Width      float64
	MiterLimit float64
	Tolerance  float64
	Cap        LineCap
	Join       LineJoin
}

// DefaultStrokeOptions returns a 1 unit wide butt/miter stroke.
func DefaultStrokeOptions() StrokeOptions {
	return StrokeOptions{
		Width:      1,
		MiterLimit: 4,
		Tolerance:  DefaultTolerance,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
	}
}

// WithWidth returns a copy of o with the given width.
func (o StrokeOptions) WithWidth(width float64) StrokeOptions {
	o.Width = width
	return o
}

// WithMiterLimit returns a copy of o with the given miter limit.
func (o StrokeOptions) WithMiterLimit(limit float64) StrokeOptions {
	o.MiterLimit = limit
	return o
}

// WithTolerance returns a copy of o with the given tolerance.
func (o StrokeOptions) WithTolerance(tolerance float64) StrokeOptions {
	o.Tolerance = tolerance
	return o
}

// WithCap returns a copy of o with the given cap.
func (o StrokeOptions) WithCap(c LineCap) StrokeOptions {
	o.Cap = c
	return o
}

// WithJoin returns a copy of o with the given join.
func (o StrokeOptions) WithJoin(j LineJoin) StrokeOptions {
	o.Join = j
	return o
}

func (o StrokeOptions) validate() error {
	if math.IsNaN(o.Width) || math.IsInf(o.Width, 0) || o.Width < 0 {
		return ErrInvalidStroke
	}
	if math.IsNaN(o.MiterLimit) || o.MiterLimit < 1 {
		return ErrInvalidStroke
	}
	return nil
}

// StrokeTessellator triangulates stroked paths. It must not be used
// concurrently.
type StrokeTessellator struct {
	fill FillTessellator
	exp  expander
}

// NewStrokeTessellator returns a ready to use stroke tessellator.
func NewStrokeTessellator() *StrokeTessellator {
	return &StrokeTessellator{}
}

// Tessellate strokes the path described by events and writes the triangles
// to out. A zero width produces no geometry.
func (t *StrokeTessellator) Tessellate(events iter.Seq[Event], opts StrokeOptions, out GeometryBuilder) error {
	if err := opts.validate(); err != nil {
		return err
	}
	tol := sanitizeTolerance(opts.Tolerance)
	contours, err := flattenEvents(events, tol)
	if err != nil {
		return err
	}
	if opts.Width == 0 {
		return nil
	}
	outline := t.exp.expand(contours, opts, tol)
	return t.fill.fillContours(outline, FillRuleNonZero, out)
}

// expander converts flattened subpaths into closed outline rings.
//
// An open subpath becomes one ring: the forward offset, the end cap, the
// reversed backward offset and the start cap. A closed subpath becomes two
// rings of opposite orientation so that non-zero filling leaves the
// interior empty.
type expander struct {
	style     StrokeOptions
	tolerance float64

	forward  []Point
	backward []Point
	out      []contour

	startPt   Point
	startNorm Vec2
	startTan  Vec2
	lastPt    Point
	lastTan   Vec2
	lastNorm  Vec2

	// Joins between nearly collinear segments are reduced to a plain
	// connection below this threshold.
	joinThresh float64
}

func (e *expander) expand(contours []contour, style StrokeOptions, tolerance float64) []contour {
	e.style = style
	e.tolerance = tolerance
	e.joinThresh = 2 * tolerance / style.Width
	e.out = e.out[:0]

	for _, c := range contours {
		e.reset(c.pts[0])
		for _, p := range c.pts[1:] {
			e.lineTo(p)
		}
		switch {
		case len(e.forward) == 0:
			e.dot(c.pts[0])
		case c.closed:
			if e.lastPt != e.startPt {
				e.lineTo(e.startPt)
			}
			e.finishClosed()
		default:
			e.finish()
		}
	}
	return e.out
}

func (e *expander) reset(p Point) {
	e.forward = e.forward[:0]
	e.backward = e.backward[:0]
	e.startPt = p
	e.lastPt = p
	e.startNorm = Vec2{}
	e.startTan = Vec2{}
	e.lastTan = Vec2{}
	e.lastNorm = Vec2{}
}

func (e *expander) normal(tan Vec2) Vec2 {
	return tan.Perp().Scale(0.5 * e.style.Width / tan.Length())
}

func (e *expander) lineTo(p Point) {
	tan := p.Sub(e.lastPt)
	if tan.LengthSquared() < 1e-20 {
		return
	}
	e.doJoin(tan)
	e.lastTan = tan

	norm := e.normal(tan)
	e.forward = append(e.forward, p.Add(norm.Neg()))
	e.backward = append(e.backward, p.Add(norm))
	e.lastPt = p
	e.lastNorm = norm
}

// doJoin connects the segment starting at lastPt with tangent tan0 to the
// previous segment.
func (e *expander) doJoin(tan0 Vec2) {
	norm := e.normal(tan0)
	p0 := e.lastPt

	if len(e.forward) == 0 {
		e.forward = append(e.forward, p0.Add(norm.Neg()))
		e.backward = append(e.backward, p0.Add(norm))
		e.startTan = tan0
		e.startNorm = norm
		return
	}

	ab := e.lastTan
	cd := tan0
	cross := ab.Cross(cd)
	dot := ab.Dot(cd)
	hypot := math.Hypot(cross, dot)

	if dot > 0 && math.Abs(cross) < hypot*e.joinThresh {
		e.forward = append(e.forward, p0.Add(norm.Neg()))
		e.backward = append(e.backward, p0.Add(norm))
		return
	}

	switch e.style.Join {
	case LineJoinBevel:
		e.forward = append(e.forward, p0.Add(norm.Neg()))
		e.backward = append(e.backward, p0.Add(norm))
	case LineJoinRound:
		e.roundJoin(p0, norm, cross, dot)
	default:
		limit := e.style.MiterLimit * e.style.MiterLimit
		if 2*hypot < (hypot+dot)*limit {
			e.miterPoint(p0, norm, ab, cd, cross)
		}
		e.forward = append(e.forward, p0.Add(norm.Neg()))
		e.backward = append(e.backward, p0.Add(norm))
	}
}

// miterPoint adds the miter tip on the outer side of the corner and routes
// the inner side through the corner point.
func (e *expander) miterPoint(p0 Point, norm, ab, cd Vec2, cross float64) {
	lastNorm := e.normal(ab)
	switch {
	case cross > 0:
		last := p0.Add(lastNorm.Neg())
		this := p0.Add(norm.Neg())
		h := ab.Cross(this.Sub(last)) / cross
		e.forward = append(e.forward, this.Add(cd.Scale(-h)))
		e.backward = append(e.backward, p0)
	case cross < 0:
		last := p0.Add(lastNorm)
		this := p0.Add(norm)
		h := ab.Cross(this.Sub(last)) / cross
		e.backward = append(e.backward, this.Add(cd.Scale(-h)))
		e.forward = append(e.forward, p0)
	}
}

func (e *expander) roundJoin(p0 Point, norm Vec2, cross, dot float64) {
	lastNorm := e.normal(e.lastTan)
	angle := math.Atan2(cross, dot)
	if angle > 0 {
		e.forward = e.arc(e.forward, p0, lastNorm.Neg(), angle)
		e.backward = append(e.backward, p0.Add(norm))
	} else {
		e.forward = append(e.forward, p0.Add(norm.Neg()))
		e.backward = e.arc(e.backward, p0, lastNorm, angle)
	}
}

// arc appends the points of a circular arc around center, starting at
// center+from and sweeping by angle radians. The start point itself is not
// appended. The step count keeps the chord error below the tolerance.
func (e *expander) arc(dst []Point, center Point, from Vec2, angle float64) []Point {
	radius := from.Length()
	if radius == 0 || angle == 0 {
		return dst
	}
	step := math.Pi / 2
	if radius > e.tolerance {
		step = min(step, 2*math.Acos(1-e.tolerance/radius))
	}
	n := max(1, int(math.Ceil(math.Abs(angle)/step)))
	a0 := from.Angle()
	for i := 1; i <= n; i++ {
		a := a0 + angle*float64(i)/float64(n)
		dst = append(dst, Point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)})
	}
	return dst
}

// finish closes an open subpath with caps.
func (e *expander) finish() {
	ring := make([]Point, 0, len(e.forward)+len(e.backward)+8)
	ring = append(ring, e.forward...)
	ring = e.cap(ring, e.lastPt, e.lastNorm.Neg())
	for i := len(e.backward) - 1; i >= 0; i-- {
		ring = append(ring, e.backward[i])
	}
	ring = e.cap(ring, e.startPt, e.startNorm)
	e.out = append(e.out, contour{pts: ring, closed: true})
}

// finishClosed emits the forward ring and the reversed backward ring.
func (e *expander) finishClosed() {
	e.doJoin(e.startTan)

	fwd := make([]Point, len(e.forward))
	copy(fwd, e.forward)
	back := make([]Point, 0, len(e.backward))
	for i := len(e.backward) - 1; i >= 0; i-- {
		back = append(back, e.backward[i])
	}
	e.out = append(e.out, contour{pts: fwd, closed: true}, contour{pts: back, closed: true})
}

// cap appends a cap at center. norm points from center to the current end
// of the ring; the cap ends at center-norm.
func (e *expander) cap(ring []Point, center Point, norm Vec2) []Point {
	switch e.style.Cap {
	case LineCapRound:
		return e.arc(ring, center, norm, math.Pi)
	case LineCapSquare:
		// Corners of the unit square (1,1) and (-1,1) in the frame spanned
		// by norm and its perpendicular.
		at := func(x, y float64) Point {
			return Point{
				X: norm.X*x - norm.Y*y + center.X,
				Y: norm.Y*x + norm.X*y + center.Y,
			}
		}
		ring = append(ring, at(1, 1), at(-1, 1))
		return append(ring, at(-1, 0))
	default:
		return append(ring, center.Add(norm.Neg()))
	}
}

// dot handles a subpath without any non-degenerate segment: round caps
// produce a disc and square caps an axis-aligned square.
func (e *expander) dot(center Point) {
	r := 0.5 * e.style.Width
	switch e.style.Cap {
	case LineCapRound:
		ring := []Point{center.Add(Vec2{X: r})}
		ring = e.arc(ring, center, Vec2{X: r}, 2*math.Pi)
		e.out = append(e.out, contour{pts: ring[:len(ring)-1], closed: true})
	case LineCapSquare:
		e.out = append(e.out, contour{pts: []Point{
			{X: center.X - r, Y: center.Y - r},
			{X: center.X + r, Y: center.Y - r},
			{X: center.X + r, Y: center.Y + r},
			{X: center.X - r, Y: center.Y + r},
		}, closed: true})
	}
}

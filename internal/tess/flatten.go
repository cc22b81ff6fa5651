package tess

import (
	"iter"
	"math"
)

// DefaultTolerance is the flattening tolerance used when none is given.
const DefaultTolerance = 0.1

// maxFlattenDepth bounds cubic subdivision to 2^16 segments per curve.
const maxFlattenDepth = 16

// contour is a flattened subpath.
type contour struct {
	pts    []Point
	closed bool
}

func sanitizeTolerance(tol float64) float64 {
	if !(tol > 0) || math.IsInf(tol, 0) {
		return DefaultTolerance
	}
	return tol
}

// flattenEvents consumes an event stream and returns its subpaths as
// polylines. Consecutive duplicate points are dropped.
func flattenEvents(events iter.Seq[Event], tolerance float64) ([]contour, error) {
	tolerance = sanitizeTolerance(tolerance)

	var (
		out  []contour
		cur  contour
		open bool
		err  error
	)
	push := func(p Point) {
		if n := len(cur.pts); n > 0 && cur.pts[n-1] == p {
			return
		}
		cur.pts = append(cur.pts, p)
	}
	finish := func(closed bool) {
		if open && len(cur.pts) > 0 {
			cur.closed = closed
			out = append(out, cur)
		}
		cur = contour{}
		open = false
	}

	for ev := range events {
		if !ev.From.finite() || !ev.To.finite() || !ev.Ctrl1.finite() || !ev.Ctrl2.finite() {
			err = ErrInvalidGeometry
			break
		}
		switch ev.Kind {
		case EventBegin:
			finish(false)
			open = true
			push(ev.From)
		case EventLine:
			if !open {
				open = true
				push(ev.From)
			}
			push(ev.To)
		case EventCubic:
			if !open {
				open = true
				push(ev.From)
			}
			flattenCubic(ev.From, ev.Ctrl1, ev.Ctrl2, ev.To, tolerance, 0, push)
		case EventEnd:
			finish(ev.Close)
		}
	}
	if err != nil {
		return nil, err
	}
	finish(false)
	return out, nil
}

// flattenCubic subdivides a cubic Bezier with de Casteljau's algorithm until
// both control points are within tolerance of the chord, emitting the end
// point of every flat piece.
func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, depth int, emit func(Point)) {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	if math.Max(d1, d2) < tolerance || depth >= maxFlattenDepth {
		emit(p3)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubic(p0, q0, r0, s, tolerance, depth+1, emit)
	flattenCubic(s, r1, q2, p3, tolerance, depth+1, emit)
}

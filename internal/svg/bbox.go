package svg

import "math"

// segmentsBounds returns the exact bounding box of a segment list,
// including cubic extrema.
func segmentsBounds(segs []Segment) Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	add := func(p Point) {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	var cur Point
	for _, s := range segs {
		switch s.Kind {
		case MoveTo, LineTo:
			add(s.P)
		case CubicTo:
			add(s.P)
			for _, t := range cubicExtrema(cur.X, s.C1.X, s.C2.X, s.P.X) {
				add(cubicAt(cur, s.C1, s.C2, s.P, t))
			}
			for _, t := range cubicExtrema(cur.Y, s.C1.Y, s.C2.Y, s.P.Y) {
				add(cubicAt(cur, s.C1, s.C2, s.P, t))
			}
		}
		if s.Kind != Close {
			cur = s.P
		}
	}
	if minX > maxX {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// cubicExtrema returns the parameters in (0, 1) where the derivative of a
// one-dimensional cubic Bezier vanishes.
func cubicExtrema(p0, p1, p2, p3 float64) []float64 {
	// B'(t)/3 = a t^2 + b t + c
	a := -p0 + 3*p1 - 3*p2 + p3
	b := 2 * (p0 - 2*p1 + p2)
	c := p1 - p0

	var out []float64
	keep := func(t float64) {
		if t > 0 && t < 1 {
			out = append(out, t)
		}
	}
	if math.Abs(a) < 1e-12 {
		if b != 0 {
			keep(-c / b)
		}
		return out
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return out
	}
	sq := math.Sqrt(disc)
	keep((-b + sq) / (2 * a))
	keep((-b - sq) / (2 * a))
	return out
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

package svgmesh

// mapper maps icon space (view box coordinates) to display space:
//
//	display = (source - viewBox.Min) * scale + rect.Min
type mapper struct {
	display Matrix
	source  Matrix
}

func newMapper(viewBox Rect, rect Rect, scale Vec2) mapper {
	ox, oy := float64(viewBox.Min.X), float64(viewBox.Min.Y)
	rx, ry := float64(rect.Min.X), float64(rect.Min.Y)
	sx, sy := float64(scale.X), float64(scale.Y)

	placed := func(sx, sy float64) Matrix {
		return Translate(rx, ry).Multiply(Scale(sx, sy)).Multiply(Translate(-ox, -oy))
	}
	// A zero scale axis maps back to the view box origin.
	source := placed(nonZero(sx), nonZero(sy)).Invert()
	if sx == 0 {
		source.A, source.B, source.C = 0, 0, ox
	}
	if sy == 0 {
		source.D, source.E, source.F = 0, 0, oy
	}
	return mapper{display: placed(sx, sy), source: source}
}

func nonZero(s float64) float64 {
	if s == 0 {
		return 1
	}
	return s
}

func (m mapper) toDisplay(p Point) Pos2 {
	return m.display.TransformPoint(p).Pos2()
}

// toSource inverts toDisplay.
func (m mapper) toSource(p Pos2) Point {
	return m.source.TransformPoint(Pt(float64(p.X), float64(p.Y)))
}

// effectiveTolerance returns the flattening tolerance in icon space. With
// scaleTolerance the requested display-space tolerance is divided by the
// larger scale factor so curves stay equally smooth at any zoom.
func effectiveTolerance(tolerance float32, scaleTolerance bool, scale Vec2) float64 {
	tol := float64(tolerance)
	if !scaleTolerance {
		return tol
	}
	if s := float64(scale.MaxElem()); s > 0 {
		return tol / s
	}
	return tol
}

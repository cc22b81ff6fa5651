package svg

// kappa is the cubic Bezier control distance for a quarter circle of
// radius 1.
const kappa = 0.5522847498307936

// ellipseSegments returns a closed ellipse made of four cubics.
func ellipseSegments(cx, cy, rx, ry float64) []Segment {
	kx, ky := rx*kappa, ry*kappa
	return []Segment{
		{Kind: MoveTo, P: Point{cx + rx, cy}},
		{Kind: CubicTo, C1: Point{cx + rx, cy + ky}, C2: Point{cx + kx, cy + ry}, P: Point{cx, cy + ry}},
		{Kind: CubicTo, C1: Point{cx - kx, cy + ry}, C2: Point{cx - rx, cy + ky}, P: Point{cx - rx, cy}},
		{Kind: CubicTo, C1: Point{cx - rx, cy - ky}, C2: Point{cx - kx, cy - ry}, P: Point{cx, cy - ry}},
		{Kind: CubicTo, C1: Point{cx + kx, cy - ry}, C2: Point{cx + rx, cy - ky}, P: Point{cx + rx, cy}},
		{Kind: Close},
	}
}

// rectSegments returns a closed rectangle, with elliptical corners when rx
// and ry are positive.
func rectSegments(x, y, w, h, rx, ry float64) []Segment {
	if rx <= 0 || ry <= 0 {
		return []Segment{
			{Kind: MoveTo, P: Point{x, y}},
			{Kind: LineTo, P: Point{x + w, y}},
			{Kind: LineTo, P: Point{x + w, y + h}},
			{Kind: LineTo, P: Point{x, y + h}},
			{Kind: Close},
		}
	}
	rx, ry = min(rx, w/2), min(ry, h/2)
	kx, ky := rx*kappa, ry*kappa
	r, b := x+w, y+h
	return []Segment{
		{Kind: MoveTo, P: Point{x + rx, y}},
		{Kind: LineTo, P: Point{r - rx, y}},
		{Kind: CubicTo, C1: Point{r - rx + kx, y}, C2: Point{r, y + ry - ky}, P: Point{r, y + ry}},
		{Kind: LineTo, P: Point{r, b - ry}},
		{Kind: CubicTo, C1: Point{r, b - ry + ky}, C2: Point{r - rx + kx, b}, P: Point{r - rx, b}},
		{Kind: LineTo, P: Point{x + rx, b}},
		{Kind: CubicTo, C1: Point{x + rx - kx, b}, C2: Point{x, b - ry + ky}, P: Point{x, b - ry}},
		{Kind: LineTo, P: Point{x, y + ry}},
		{Kind: CubicTo, C1: Point{x, y + ry - ky}, C2: Point{x + rx - kx, y}, P: Point{x + rx, y}},
		{Kind: Close},
	}
}

// polySegments returns a polyline through pts, closed for polygons.
func polySegments(pts []float64, closed bool) []Segment {
	n := len(pts) / 2
	if n < 2 {
		return nil
	}
	segs := make([]Segment, 0, n+1)
	segs = append(segs, Segment{Kind: MoveTo, P: Point{pts[0], pts[1]}})
	for i := 1; i < n; i++ {
		segs = append(segs, Segment{Kind: LineTo, P: Point{pts[2*i], pts[2*i+1]}})
	}
	if closed {
		segs = append(segs, Segment{Kind: Close})
	}
	return segs
}

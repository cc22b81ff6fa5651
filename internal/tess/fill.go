package tess

import (
	"cmp"
	"iter"
	"math"
	"slices"
)

// FillRule selects which regions of a self-overlapping shape are inside.
type FillRule uint8

const (
	// FillRuleNonZero fills regions with a non-zero winding number.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd fills regions with an odd winding number.
	FillRuleEvenOdd
)

// String returns the SVG name of the rule.
func (r FillRule) String() string {
	if r == FillRuleEvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

func (r FillRule) inside(winding int) bool {
	if r == FillRuleEvenOdd {
		return winding%2 != 0
	}
	return winding != 0
}

// FillOptions configures a fill tessellation.
type FillOptions struct {
	// Tolerance is the maximum distance between a curve and its flattened
	// polyline. Non-positive values select DefaultTolerance.
	Tolerance float64
	Rule      FillRule
}

// DefaultFillOptions returns non-zero filling at DefaultTolerance.
func DefaultFillOptions() FillOptions {
	return FillOptions{Tolerance: DefaultTolerance, Rule: FillRuleNonZero}
}

// WithTolerance returns a copy of o with the given tolerance.
func (o FillOptions) WithTolerance(tolerance float64) FillOptions {
	o.Tolerance = tolerance
	return o
}

// WithRule returns a copy of o with the given fill rule.
func (o FillOptions) WithRule(rule FillRule) FillOptions {
	o.Rule = rule
	return o
}

// edge is a non-horizontal polygon edge oriented top to bottom.
type edge struct {
	top, bot Point
	wind     int
	dxdy     float64
}

func (e *edge) xAt(y float64) float64 {
	switch y {
	case e.top.Y:
		return e.top.X
	case e.bot.Y:
		return e.bot.X
	}
	return e.top.X + (y-e.top.Y)*e.dxdy
}

// span is an active edge clipped to the current slab.
type span struct {
	xTop, xBot float64
	wind       int
}

// FillTessellator triangulates filled paths. Its scratch buffers are reused
// between calls; a FillTessellator must not be used concurrently.
type FillTessellator struct {
	edges  []edge
	ys     []float64
	active []*edge
	spans  []span
	index  map[Point]uint32
}

// NewFillTessellator returns a ready to use fill tessellator.
func NewFillTessellator() *FillTessellator {
	return &FillTessellator{}
}

// Tessellate fills the shape described by events and writes the triangles
// to out. Open subpaths are closed implicitly.
func (t *FillTessellator) Tessellate(events iter.Seq[Event], opts FillOptions, out GeometryBuilder) error {
	contours, err := flattenEvents(events, opts.Tolerance)
	if err != nil {
		return err
	}
	return t.fillContours(contours, opts.Rule, out)
}

func (t *FillTessellator) fillContours(contours []contour, rule FillRule, out GeometryBuilder) error {
	t.buildEdges(contours)
	if len(t.edges) < 2 {
		return nil
	}

	extent := t.extent()
	minHeight := extent * 1e-6
	minWidth := extent * 1e-7

	t.collectBoundaries()

	if t.index == nil {
		t.index = make(map[Point]uint32)
	}
	clear(t.index)
	t.active = t.active[:0]

	emitted := 0
	next := 0
	for k := 0; k+1 < len(t.ys); k++ {
		y0, y1 := t.ys[k], t.ys[k+1]

		for next < len(t.edges) && t.edges[next].top.Y <= y0 {
			t.active = append(t.active, &t.edges[next])
			next++
		}
		t.active = slices.DeleteFunc(t.active, func(e *edge) bool { return e.bot.Y <= y0 })

		if y1-y0 < minHeight || len(t.active) < 2 {
			continue
		}

		t.spans = t.spans[:0]
		for _, e := range t.active {
			t.spans = append(t.spans, span{xTop: e.xAt(y0), xBot: e.xAt(y1), wind: e.wind})
		}
		slices.SortFunc(t.spans, func(a, b span) int {
			if c := cmp.Compare(a.xTop+a.xBot, b.xTop+b.xBot); c != 0 {
				return c
			}
			return cmp.Compare(a.xBot-a.xTop, b.xBot-b.xTop)
		})

		winding := 0
		var left span
		for _, s := range t.spans {
			was := rule.inside(winding)
			winding += s.wind
			now := rule.inside(winding)
			switch {
			case !was && now:
				left = s
			case was && !now:
				n, err := t.emitTrapezoid(out, left, s, y0, y1, minWidth)
				if err != nil {
					return err
				}
				emitted += n
			}
		}
	}

	slogger().Debug("tess: fill", "edges", len(t.edges), "slabs", len(t.ys)-1, "triangles", emitted)
	return nil
}

func (t *FillTessellator) buildEdges(contours []contour) {
	t.edges = t.edges[:0]
	for _, c := range contours {
		n := len(c.pts)
		if n < 2 {
			continue
		}
		for i := range n {
			a, b := c.pts[i], c.pts[(i+1)%n]
			if a.Y == b.Y {
				continue
			}
			e := edge{top: a, bot: b, wind: 1}
			if a.Y > b.Y {
				e = edge{top: b, bot: a, wind: -1}
			}
			e.dxdy = (e.bot.X - e.top.X) / (e.bot.Y - e.top.Y)
			t.edges = append(t.edges, e)
		}
	}
	slices.SortFunc(t.edges, func(a, b edge) int {
		return cmp.Compare(a.top.Y, b.top.Y)
	})
}

func (t *FillTessellator) extent() float64 {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, e := range t.edges {
		minX = min(minX, e.top.X, e.bot.X)
		maxX = max(maxX, e.top.X, e.bot.X)
		minY = min(minY, e.top.Y)
		maxY = max(maxY, e.bot.Y)
	}
	return max(maxX-minX, maxY-minY)
}

// collectBoundaries gathers the sorted unique slab boundaries: every edge
// end point and every y where two edges cross.
func (t *FillTessellator) collectBoundaries() {
	t.ys = t.ys[:0]
	for i := range t.edges {
		t.ys = append(t.ys, t.edges[i].top.Y, t.edges[i].bot.Y)
	}
	for i := range t.edges {
		a := &t.edges[i]
		for j := i + 1; j < len(t.edges); j++ {
			b := &t.edges[j]
			if b.top.Y >= a.bot.Y {
				break
			}
			if y, ok := crossingY(a, b); ok {
				t.ys = append(t.ys, y)
			}
		}
	}
	slices.Sort(t.ys)
	t.ys = slices.Compact(t.ys)
}

// crossingY returns the y at which two edges swap their horizontal order
// strictly inside their common y range.
func crossingY(a, b *edge) (float64, bool) {
	lo := max(a.top.Y, b.top.Y)
	hi := min(a.bot.Y, b.bot.Y)
	if hi <= lo {
		return 0, false
	}
	dLo := a.xAt(lo) - b.xAt(lo)
	dHi := a.xAt(hi) - b.xAt(hi)
	if dLo == 0 || dHi == 0 || (dLo < 0) == (dHi < 0) {
		return 0, false
	}
	y := lo + (hi-lo)*dLo/(dLo-dHi)
	if y <= lo || y >= hi {
		return 0, false
	}
	return y, true
}

// emitTrapezoid writes the covered region between two spans of one slab.
// Triangles are wound (top-left, top-right, bottom-right) and
// (top-left, bottom-right, bottom-left): positive signed area in a y-down
// coordinate system.
func (t *FillTessellator) emitTrapezoid(out GeometryBuilder, l, r span, y0, y1, minWidth float64) (int, error) {
	xl0, xr0 := l.xTop, r.xTop
	if xr0-xl0 < minWidth {
		xl0 = (xl0 + xr0) / 2
		xr0 = xl0
	}
	xl1, xr1 := l.xBot, r.xBot
	if xr1-xl1 < minWidth {
		xl1 = (xl1 + xr1) / 2
		xr1 = xl1
	}
	topWide := xr0 > xl0
	botWide := xr1 > xl1
	if !topWide && !botWide {
		return 0, nil
	}

	tl, err := t.vertex(out, Pt(xl0, y0))
	if err != nil {
		return 0, err
	}
	br, err := t.vertex(out, Pt(xr1, y1))
	if err != nil {
		return 0, err
	}

	n := 0
	if topWide {
		tr, err := t.vertex(out, Pt(xr0, y0))
		if err != nil {
			return n, err
		}
		out.AddTriangle(tl, tr, br)
		n++
	}
	if botWide {
		bl, err := t.vertex(out, Pt(xl1, y1))
		if err != nil {
			return n, err
		}
		out.AddTriangle(tl, br, bl)
		n++
	}
	return n, nil
}

func (t *FillTessellator) vertex(out GeometryBuilder, p Point) (uint32, error) {
	if i, ok := t.index[p]; ok {
		return i, nil
	}
	i, err := out.AddVertex(p)
	if err != nil {
		return 0, err
	}
	t.index[p] = i
	return i, nil
}

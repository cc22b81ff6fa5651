package svgmesh

import (
	"iter"

	"github.com/gogpu/svgmesh/internal/svg"
	"github.com/gogpu/svgmesh/internal/tess"
)

// pathEvents converts absolute path segments into tessellator events.
//
// A MoveTo while a subpath is open ends that subpath unclosed before the
// new Begin. Close moves the current point back to the first point of the
// subpath and ends it closed, so its End reports the first point as last.
// Drawing segments with no open subpath start one at the current point,
// which is the origin initially. Every open subpath is ended before the
// stream finishes.
func pathEvents(segs []svg.Segment) iter.Seq[tess.Event] {
	return func(yield func(tess.Event) bool) {
		var prev, first tess.Point
		open := false
		begin := func(at tess.Point) bool {
			prev, first, open = at, at, true
			return yield(tess.BeginEvent(at))
		}

		for _, s := range segs {
			switch s.Kind {
			case svg.MoveTo:
				if open && !yield(tess.EndEvent(prev, first, false)) {
					return
				}
				if !begin(tessPoint(s.P)) {
					return
				}
			case svg.LineTo:
				if !open && !begin(prev) {
					return
				}
				to := tessPoint(s.P)
				if !yield(tess.LineEvent(prev, to)) {
					return
				}
				prev = to
			case svg.CubicTo:
				if !open && !begin(prev) {
					return
				}
				to := tessPoint(s.P)
				if !yield(tess.CubicEvent(prev, tessPoint(s.C1), tessPoint(s.C2), to)) {
					return
				}
				prev = to
			case svg.Close:
				if !open {
					continue
				}
				open = false
				prev = first
				if !yield(tess.EndEvent(prev, first, true)) {
					return
				}
			}
		}
		if open {
			yield(tess.EndEvent(prev, first, false))
		}
	}
}

func tessPoint(p svg.Point) tess.Point {
	return tess.Point{X: p.X, Y: p.Y}
}

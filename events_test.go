package svgmesh

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/svgmesh/internal/svg"
	"github.com/gogpu/svgmesh/internal/tess"
)

func sp(x, y float64) svg.Point  { return svg.Point{X: x, Y: y} }
func tp(x, y float64) tess.Point { return tess.Point{X: x, Y: y} }

func TestPathEvents(t *testing.T) {
	tests := []struct {
		name string
		segs []svg.Segment
		want []tess.Event
	}{
		{
			name: "empty",
			segs: nil,
			want: nil,
		},
		{
			name: "open polyline",
			segs: []svg.Segment{
				{Kind: svg.MoveTo, P: sp(0, 0)},
				{Kind: svg.LineTo, P: sp(10, 0)},
				{Kind: svg.LineTo, P: sp(10, 10)},
			},
			want: []tess.Event{
				tess.BeginEvent(tp(0, 0)),
				tess.LineEvent(tp(0, 0), tp(10, 0)),
				tess.LineEvent(tp(10, 0), tp(10, 10)),
				tess.EndEvent(tp(10, 10), tp(0, 0), false),
			},
		},
		{
			name: "closed triangle",
			segs: []svg.Segment{
				{Kind: svg.MoveTo, P: sp(1, 1)},
				{Kind: svg.LineTo, P: sp(5, 1)},
				{Kind: svg.LineTo, P: sp(3, 4)},
				{Kind: svg.Close},
			},
			want: []tess.Event{
				tess.BeginEvent(tp(1, 1)),
				tess.LineEvent(tp(1, 1), tp(5, 1)),
				tess.LineEvent(tp(5, 1), tp(3, 4)),
				tess.EndEvent(tp(1, 1), tp(1, 1), true),
			},
		},
		{
			name: "moveto ends open subpath",
			segs: []svg.Segment{
				{Kind: svg.MoveTo, P: sp(0, 0)},
				{Kind: svg.LineTo, P: sp(1, 0)},
				{Kind: svg.MoveTo, P: sp(5, 5)},
				{Kind: svg.CubicTo, C1: sp(6, 5), C2: sp(7, 6), P: sp(7, 7)},
			},
			want: []tess.Event{
				tess.BeginEvent(tp(0, 0)),
				tess.LineEvent(tp(0, 0), tp(1, 0)),
				tess.EndEvent(tp(1, 0), tp(0, 0), false),
				tess.BeginEvent(tp(5, 5)),
				tess.CubicEvent(tp(5, 5), tp(6, 5), tp(7, 6), tp(7, 7)),
				tess.EndEvent(tp(7, 7), tp(5, 5), false),
			},
		},
		{
			name: "drawing after close restarts at first point",
			segs: []svg.Segment{
				{Kind: svg.MoveTo, P: sp(2, 2)},
				{Kind: svg.LineTo, P: sp(4, 2)},
				{Kind: svg.Close},
				{Kind: svg.LineTo, P: sp(2, 6)},
			},
			want: []tess.Event{
				tess.BeginEvent(tp(2, 2)),
				tess.LineEvent(tp(2, 2), tp(4, 2)),
				tess.EndEvent(tp(2, 2), tp(2, 2), true),
				tess.BeginEvent(tp(2, 2)),
				tess.LineEvent(tp(2, 2), tp(2, 6)),
				tess.EndEvent(tp(2, 6), tp(2, 2), false),
			},
		},
		{
			name: "segments before any moveto start at origin",
			segs: []svg.Segment{
				{Kind: svg.LineTo, P: sp(3, 0)},
			},
			want: []tess.Event{
				tess.BeginEvent(tp(0, 0)),
				tess.LineEvent(tp(0, 0), tp(3, 0)),
				tess.EndEvent(tp(3, 0), tp(0, 0), false),
			},
		},
		{
			name: "close without subpath is ignored",
			segs: []svg.Segment{
				{Kind: svg.Close},
				{Kind: svg.MoveTo, P: sp(1, 1)},
				{Kind: svg.LineTo, P: sp(2, 2)},
				{Kind: svg.Close},
				{Kind: svg.Close},
			},
			want: []tess.Event{
				tess.BeginEvent(tp(1, 1)),
				tess.LineEvent(tp(1, 1), tp(2, 2)),
				tess.EndEvent(tp(1, 1), tp(1, 1), true),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []tess.Event
			for ev := range pathEvents(tt.segs) {
				got = append(got, ev)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("pathEvents() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPathEventsStopsEarly(t *testing.T) {
	segs := []svg.Segment{
		{Kind: svg.MoveTo, P: sp(0, 0)},
		{Kind: svg.LineTo, P: sp(1, 0)},
		{Kind: svg.LineTo, P: sp(1, 1)},
	}
	n := 0
	for range pathEvents(segs) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("consumed %d events, want 2", n)
	}
}

func TestPathEventsBalanced(t *testing.T) {
	segs, err := svgSegments("M0 0 L1 0 M2 2 L3 3 Z L4 4 M9 9")
	if err != nil {
		t.Fatal(err)
	}
	depth := 0
	for ev := range pathEvents(segs) {
		switch ev.Kind {
		case tess.EventBegin:
			depth++
		case tess.EventEnd:
			depth--
		}
		if depth < 0 || depth > 1 {
			t.Fatalf("unbalanced event stream at %v", ev)
		}
	}
	if depth != 0 {
		t.Errorf("stream ended with %d open subpaths", depth)
	}
}

// svgSegments parses path data through a minimal document.
func svgSegments(d string) ([]svg.Segment, error) {
	tree, err := svg.Parse([]byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><path d="` + d + `"/></svg>`))
	if err != nil {
		return nil, err
	}
	return tree.Root.Children[0].(*svg.Path).Segments, nil
}

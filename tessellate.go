package svgmesh

import (
	"github.com/gogpu/svgmesh/internal/svg"
	"github.com/gogpu/svgmesh/internal/tess"
)

// tessellator walks an icon's scene graph and accumulates one mesh.
type tessellator struct {
	fill   *tess.FillTessellator
	stroke *tess.StrokeTessellator
	buf    tess.VertexBuffers[Vertex]
	mapper mapper
	tol    float64
}

// tessellate renders icon into rect. scale maps view box units to display
// units; tolerance is in display units when scaleTolerance is set.
func tessellate(icon *Icon, rect Rect, scale Vec2, tolerance float32, scaleTolerance bool) *Mesh {
	t := &tessellator{
		fill:   tess.NewFillTessellator(),
		stroke: tess.NewStrokeTessellator(),
		mapper: newMapper(icon.viewBox, rect, scale),
		tol:    effectiveTolerance(tolerance, scaleTolerance, scale),
	}
	t.walk(icon.tree.Root, Identity())
	return &Mesh{Vertices: t.buf.Vertices, Indices: t.buf.Indices}
}

// walk visits g and its children depth-first. Image and text nodes are
// skipped.
func (t *tessellator) walk(g *svg.Group, parent Matrix) {
	tf := parent.Multiply(Matrix(g.Transform))
	for _, n := range g.Children {
		switch n := n.(type) {
		case *svg.Group:
			t.walk(n, tf)
		case *svg.Path:
			t.path(n, tf.Multiply(Matrix(n.Transform)))
		}
	}
}

func (t *tessellator) path(p *svg.Path, tf Matrix) {
	if f := p.Fill; f != nil {
		opts := tess.DefaultFillOptions().
			WithTolerance(t.tol).
			WithRule(fillRuleOf(f.Rule))
		t.emit(p, "fill", newVertexPaint(f.Paint, f.Opacity, tf), tf, func(out tess.GeometryBuilder) error {
			return t.fill.Tessellate(pathEvents(p.Segments), opts, out)
		})
	}
	if s := p.Stroke; s != nil {
		opts := tess.DefaultStrokeOptions().
			WithWidth(s.Width).
			WithMiterLimit(s.MiterLimit).
			WithTolerance(t.tol).
			WithCap(lineCapOf(s.Cap)).
			WithJoin(lineJoinOf(s.Join))
		t.emit(p, "stroke", newVertexPaint(s.Paint, s.Opacity, tf), tf, func(out tess.GeometryBuilder) error {
			return t.stroke.Tessellate(pathEvents(p.Segments), opts, out)
		})
	}
}

// emit runs one tessellation into the shared buffers. On failure the
// vertices and indices written by it are dropped and the walk continues.
func (t *tessellator) emit(p *svg.Path, op string, vp vertexPaint, tf Matrix, run func(tess.GeometryBuilder) error) {
	nv, ni := len(t.buf.Vertices), len(t.buf.Indices)
	out := tess.NewBuffersBuilder(&t.buf, func(at tess.Point) Vertex {
		src := tf.TransformPoint(Pt(at.X, at.Y))
		return Vertex{Pos: t.mapper.toDisplay(src), Color: vp.colorAt(src)}
	})
	if err := run(out); err != nil {
		t.buf.Truncate(nv, ni)
		Logger().Warn("svgmesh: skipping path", "id", p.ID, "op", op, "err", err)
	}
}

func fillRuleOf(r svg.FillRule) tess.FillRule {
	if r == svg.EvenOdd {
		return tess.FillRuleEvenOdd
	}
	return tess.FillRuleNonZero
}

func lineCapOf(c svg.LineCap) tess.LineCap {
	switch c {
	case svg.CapRound:
		return tess.LineCapRound
	case svg.CapSquare:
		return tess.LineCapSquare
	default:
		return tess.LineCapButt
	}
}

func lineJoinOf(j svg.LineJoin) tess.LineJoin {
	switch j {
	case svg.JoinMiterClip:
		return tess.LineJoinMiterClip
	case svg.JoinRound:
		return tess.LineJoinRound
	case svg.JoinBevel:
		return tess.LineJoinBevel
	default:
		return tess.LineJoinMiter
	}
}

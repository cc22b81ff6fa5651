package svgmesh

import "github.com/gogpu/svgmesh/internal/svg"

// vertexPaint colors the vertices of one fill or stroke. It is built once
// per path and evaluated per vertex.
type vertexPaint struct {
	solid    Color32
	gradient *Gradient
}

// newVertexPaint resolves a parsed paint. tf is the full transform of the
// path, so that gradients are evaluated in icon space. Paints other than
// solid colors and linear gradients are drawn opaque black.
func newVertexPaint(p svg.Paint, opacity float64, tf Matrix) vertexPaint {
	switch p := p.(type) {
	case svg.Color:
		return vertexPaint{solid: colorOf(p, opacity)}
	case *svg.LinearGradient:
		return vertexPaint{gradient: gradientOf(p, tf, opacity)}
	default:
		return vertexPaint{solid: Black}
	}
}

// colorAt returns the color at a point in icon space.
func (vp vertexPaint) colorAt(p Point) Color32 {
	if vp.gradient != nil {
		return vp.gradient.colorAt(p)
	}
	return vp.solid
}

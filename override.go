package svgmesh

import (
	"github.com/chewxy/math32"
	"github.com/gogpu/gpucontext"
)

type overrideKind uint8

const (
	overrideNone overrideKind = iota
	overrideFromStyle
	overrideSolid
	overrideTexture
	overrideGradient
)

// ColorOverride replaces the colors of a tessellated icon. The zero value
// keeps the icon's own colors.
type ColorOverride struct {
	kind     overrideKind
	color    Color32
	texture  gpucontext.Texture
	gradient *Gradient
}

// OverrideNone keeps the colors from the SVG source.
func OverrideNone() ColorOverride { return ColorOverride{} }

// OverrideFromStyle paints every vertex with the foreground stroke color of
// the host style for the widget's interaction state.
func OverrideFromStyle() ColorOverride { return ColorOverride{kind: overrideFromStyle} }

// OverrideSolid paints every vertex with c.
func OverrideSolid(c Color32) ColorOverride { return ColorOverride{kind: overrideSolid, color: c} }

// OverrideTexture maps tex over the icon's view box. Vertices become white
// and get UV coordinates in [0, 1].
func OverrideTexture(tex gpucontext.Texture) ColorOverride {
	return ColorOverride{kind: overrideTexture, texture: tex}
}

// OverrideGradient paints the icon with g, evaluated in view box
// coordinates.
func OverrideGradient(g *Gradient) ColorOverride {
	return ColorOverride{kind: overrideGradient, gradient: g}
}

// IsNone reports whether o keeps the source colors.
func (o ColorOverride) IsNone() bool {
	return o.kind == overrideNone
}

// apply rewrites the vertices of m. m maps the mesh's display positions back
// to view box coordinates.
func (o ColorOverride) apply(mesh *Mesh, m mapper, viewBox Rect, visuals WidgetVisuals) {
	switch o.kind {
	case overrideFromStyle:
		fillColor(mesh, visuals.FgStroke.Color)
	case overrideSolid:
		fillColor(mesh, o.color)
	case overrideTexture:
		size := viewBox.Size()
		for i := range mesh.Vertices {
			v := &mesh.Vertices[i]
			src := m.toSource(v.Pos).Pos2().Sub(viewBox.Min)
			v.Color = White
			v.UV = Pos2{X: unit(src.X, size.X), Y: unit(src.Y, size.Y)}
		}
		mesh.Texture = o.texture
	case overrideGradient:
		if o.gradient == nil {
			return
		}
		for i := range mesh.Vertices {
			v := &mesh.Vertices[i]
			v.Color = o.gradient.colorAt(m.toSource(v.Pos))
		}
	}
}

func fillColor(mesh *Mesh, c Color32) {
	for i := range mesh.Vertices {
		mesh.Vertices[i].Color = c
	}
}

// unit returns v / extent clamped to [0, 1]; 0 for an empty extent.
func unit(v, extent float32) float32 {
	if !(extent > 0) {
		return 0
	}
	return math32.Min(math32.Max(v/extent, 0), 1)
}

type backgroundKind uint8

const (
	backgroundNone backgroundKind = iota
	backgroundFromStyle
	backgroundCustom
)

// Background is drawn under the icon over the whole allocated frame. The
// zero value draws nothing.
type Background struct {
	kind     backgroundKind
	fill     Color32
	rounding float32
	stroke   Stroke
}

// BackgroundNone draws no background.
func BackgroundNone() Background { return Background{} }

// BackgroundFromStyle draws the host style's background for the widget's
// interaction state.
func BackgroundFromStyle() Background { return Background{kind: backgroundFromStyle} }

// BackgroundCustom draws a rounded rectangle with the given fill and
// outline.
func BackgroundCustom(fill Color32, rounding float32, stroke Stroke) Background {
	return Background{kind: backgroundCustom, fill: fill, rounding: rounding, stroke: stroke}
}

func (b Background) draw(p Painter, frame Rect, visuals WidgetVisuals) {
	switch b.kind {
	case backgroundFromStyle:
		p.AddRect(frame, visuals.Rounding, visuals.BgFill, visuals.BgStroke)
	case backgroundCustom:
		p.AddRect(frame, b.rounding, b.fill, b.stroke)
	}
}

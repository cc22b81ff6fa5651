package svgmesh

import (
	"image/color"

	"github.com/gogpu/svgmesh/internal/svg"
)

// Color32 is an 8-bit per channel color with straight (not premultiplied)
// alpha.
type Color32 struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Transparent = Color32{}
	Black       = Color32{A: 255}
	White       = Color32{R: 255, G: 255, B: 255, A: 255}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color32 {
	return Color32{R: r, G: g, B: b, A: 255}
}

// RGBA returns a color with straight alpha.
func RGBA(r, g, b, a uint8) Color32 {
	return Color32{R: r, G: g, B: b, A: a}
}

// NRGBA converts c to the standard library's non-premultiplied color.
func (c Color32) NRGBA() color.NRGBA {
	return color.NRGBA(c)
}

// Float32x4 returns the channels normalized to [0, 1].
func (c Color32) Float32x4() [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

// alphaByte converts an opacity to an alpha byte by truncation.
func alphaByte(opacity float64) uint8 {
	switch {
	case !(opacity > 0):
		return 0
	case opacity >= 1:
		return 255
	}
	return uint8(opacity * 255)
}

// colorOf converts a parsed SVG color with the given opacity.
func colorOf(c svg.Color, opacity float64) Color32 {
	return Color32{R: c.R, G: c.G, B: c.B, A: alphaByte(opacity)}
}

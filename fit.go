package svgmesh

import "fmt"

type fitKind uint8

const (
	fitNone fitKind = iota
	fitSize
	fitFactor
	fitCover
	fitContain
)

// FitMode decides how an icon's view box is sized and placed inside the
// frame allocated for it. The zero value is FitNone.
type FitMode struct {
	kind   fitKind
	size   Vec2
	factor float32
	margin Margin
}

// FitNone draws the icon at its view box size, centered in the frame.
func FitNone() FitMode { return FitMode{kind: fitNone} }

// FitSize draws the icon at a fixed display size, centered in the frame.
func FitSize(size Vec2) FitMode { return FitMode{kind: fitSize, size: size} }

// FitFactor draws the icon at factor times its view box size.
func FitFactor(factor float32) FitMode { return FitMode{kind: fitFactor, factor: factor} }

// FitCover scales the icon to cover the whole frame, keeping its aspect
// ratio. Parts outside the frame are clipped when drawn.
func FitCover() FitMode { return FitMode{kind: fitCover} }

// FitContain scales the icon to the largest size that fits inside the frame
// shrunk by margin, keeping its aspect ratio.
func FitContain(margin Margin) FitMode { return FitMode{kind: fitContain, margin: margin} }

// String implements fmt.Stringer.
func (f FitMode) String() string {
	switch f.kind {
	case fitSize:
		return fmt.Sprintf("size(%v, %v)", f.size.X, f.size.Y)
	case fitFactor:
		return fmt.Sprintf("factor(%v)", f.factor)
	case fitCover:
		return "cover"
	case fitContain:
		return fmt.Sprintf("contain(%v, %v, %v, %v)", f.margin.Left, f.margin.Right, f.margin.Top, f.margin.Bottom)
	default:
		return "none"
	}
}

// Resolve returns the display size of the icon and the rectangle it is
// drawn into, given the source view box and the allocated frame. The
// rectangle is centered in the frame, or in the margin-shrunk frame for
// FitContain.
func (f FitMode) Resolve(source, frame Rect) (Vec2, Rect) {
	svg := source.Size()
	switch f.kind {
	case fitSize:
		return f.size, RectFromCenterSize(frame.Center(), f.size)
	case fitFactor:
		size := svg.Mul(f.factor)
		return size, RectFromCenterSize(frame.Center(), size)
	case fitCover:
		var size Vec2
		if frame.AspectRatio() > source.AspectRatio() {
			size = Vec2{X: frame.Width(), Y: svg.Y * frame.Width() / svg.X}
		} else {
			size = Vec2{X: svg.X * frame.Height() / svg.Y, Y: frame.Height()}
		}
		return size, RectFromCenterSize(frame.Center(), size)
	case fitContain:
		inner := frame.Shrink(f.margin)
		var size Vec2
		if inner.AspectRatio() > source.AspectRatio() {
			size = Vec2{X: svg.X * inner.Height() / svg.Y, Y: inner.Height()}
		} else {
			size = Vec2{X: inner.Width(), Y: svg.Y * inner.Width() / svg.X}
		}
		return size, RectFromCenterSize(inner.Center(), size)
	default:
		return svg, RectFromCenterSize(frame.Center(), svg)
	}
}

// naturalSize is the frame size Show allocates for an icon with the given
// view box.
func (f FitMode) naturalSize(viewBox Rect) Vec2 {
	switch f.kind {
	case fitSize:
		return f.size
	case fitFactor:
		return viewBox.Size().Mul(f.factor)
	case fitContain:
		return viewBox.Size().Add(f.margin.Sum())
	default:
		return viewBox.Size()
	}
}

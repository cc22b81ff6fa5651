package svgmesh

import "github.com/chewxy/math32"

// Vec2 is a display-space size or offset in UI points.
type Vec2 struct {
	X, Y float32
}

// Splat returns a Vec2 with both components set to v.
func Splat(v float32) Vec2 {
	return Vec2{X: v, Y: v}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns v scaled by s.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div divides v componentwise by o.
func (v Vec2) Div(o Vec2) Vec2 {
	return Vec2{X: v.X / o.X, Y: v.Y / o.Y}
}

// MaxElem returns the larger component.
func (v Vec2) MaxElem() float32 {
	return math32.Max(v.X, v.Y)
}

// Pos2 is a display-space position in UI points.
type Pos2 struct {
	X, Y float32
}

// Add returns p offset by v.
func (p Pos2) Add(v Vec2) Pos2 {
	return Pos2{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from o to p.
func (p Pos2) Sub(o Pos2) Vec2 {
	return Vec2{X: p.X - o.X, Y: p.Y - o.Y}
}

// Vec2 returns p as an offset from the origin.
func (p Pos2) Vec2() Vec2 {
	return Vec2(p)
}

// Rect is an axis-aligned display-space rectangle. Min is the top-left
// corner, Max the bottom-right one.
type Rect struct {
	Min, Max Pos2
}

// RectFromCenterSize returns the rectangle of the given size centered on c.
func RectFromCenterSize(c Pos2, size Vec2) Rect {
	half := size.Mul(0.5)
	return Rect{Min: Pos2{X: c.X - half.X, Y: c.Y - half.Y}, Max: c.Add(half)}
}

// Width returns the width of r.
func (r Rect) Width() float32 { return r.Max.X - r.Min.X }

// Height returns the height of r.
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

// Size returns the width and height of r.
func (r Rect) Size() Vec2 { return r.Max.Sub(r.Min) }

// Center returns the center of r.
func (r Rect) Center() Pos2 {
	return Pos2{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// AspectRatio returns width / height.
func (r Rect) AspectRatio() float32 {
	return r.Width() / r.Height()
}

// Translate returns r moved by v.
func (r Rect) Translate(v Vec2) Rect {
	return Rect{Min: r.Min.Add(v), Max: r.Max.Add(v)}
}

// Shrink returns r with each side moved inward by the margin.
func (r Rect) Shrink(m Margin) Rect {
	return Rect{
		Min: Pos2{X: r.Min.X + m.Left, Y: r.Min.Y + m.Top},
		Max: Pos2{X: r.Max.X - m.Right, Y: r.Max.Y - m.Bottom},
	}
}

// Intersects reports whether r and o overlap. Rectangles that only touch
// do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X < o.Max.X && o.Min.X < r.Max.X &&
		r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y
}

// Margin is the space kept free on each side of a frame.
type Margin struct {
	Left, Right, Top, Bottom float32
}

// Sum returns the total horizontal and vertical margin.
func (m Margin) Sum() Vec2 {
	return Vec2{X: m.Left + m.Right, Y: m.Top + m.Bottom}
}

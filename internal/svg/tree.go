package svg

// Rect is an axis-aligned rectangle in user units.
type Rect struct {
	X, Y, Width, Height float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return !(r.Width > 0) || !(r.Height > 0)
}

// Point is a position in user units.
type Point struct {
	X, Y float64
}

// Tree is a parsed SVG document.
type Tree struct {
	// ViewBox is the document's view box, or (0, 0, width, height) when the
	// root element has no viewBox attribute.
	ViewBox Rect
	// Width and Height are the intrinsic document size.
	Width, Height float64
	// Root holds the top-level nodes. The view box to viewport mapping is
	// not folded into Root.Transform.
	Root *Group
}

// Node is one of *Group, *Path, *Image or *Text.
type Node interface {
	// NodeID returns the id attribute, possibly empty.
	NodeID() string
	isNode()
}

// Group is a container node.
type Group struct {
	ID        string
	Transform Transform
	Children  []Node
}

// Path is a drawable outline.
type Path struct {
	ID        string
	Transform Transform
	Fill      *Fill
	Stroke    *Stroke
	Segments  []Segment
}

// Image is an embedded raster or vector image. It carries no geometry.
type Image struct {
	ID        string
	Transform Transform
	Href      string
	Bounds    Rect
}

// Text is a text element. Its content is kept but never shaped.
type Text struct {
	ID        string
	Transform Transform
	Content   string
}

func (g *Group) NodeID() string { return g.ID }
func (p *Path) NodeID() string  { return p.ID }
func (i *Image) NodeID() string { return i.ID }
func (t *Text) NodeID() string  { return t.ID }

func (*Group) isNode() {}
func (*Path) isNode()  {}
func (*Image) isNode() {}
func (*Text) isNode()  {}

// SegmentKind identifies a path segment.
type SegmentKind uint8

const (
	MoveTo SegmentKind = iota
	LineTo
	CubicTo
	Close
)

// Segment is an absolute path segment. Only P is set for MoveTo and LineTo;
// CubicTo uses C1, C2 and P; Close uses nothing.
type Segment struct {
	Kind   SegmentKind
	C1, C2 Point
	P      Point
}

// FillRule is the fill-rule property.
type FillRule uint8

const (
	NonZero FillRule = iota
	EvenOdd
)

// LineCap is the stroke-linecap property.
type LineCap uint8

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin is the stroke-linejoin property.
type LineJoin uint8

const (
	JoinMiter LineJoin = iota
	JoinMiterClip
	JoinRound
	JoinBevel
)

// Fill is a resolved fill.
type Fill struct {
	Paint   Paint
	Opacity float64
	Rule    FillRule
}

// Stroke is a resolved stroke.
type Stroke struct {
	Paint      Paint
	Opacity    float64
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// Paint is one of Color, *LinearGradient, *RadialGradient.
type Paint interface {
	isPaint()
}

// Color is an opaque sRGB color. Alpha lives in the owning Fill or Stroke.
type Color struct {
	R, G, B uint8
}

// SpreadMethod is the gradient spreadMethod property.
type SpreadMethod uint8

const (
	SpreadPad SpreadMethod = iota
	SpreadReflect
	SpreadRepeat
)

// Stop is a gradient color stop.
type Stop struct {
	Offset  float64
	Color   Color
	Opacity float64
}

// LinearGradient is a resolved linear gradient in user space: the points
// (X1, Y1) and (X2, Y2) are mapped by Transform, which already includes the
// object bounding box mapping when gradientUnits is objectBoundingBox.
type LinearGradient struct {
	ID             string
	X1, Y1, X2, Y2 float64
	Transform      Transform
	Spread         SpreadMethod
	Stops          []Stop
}

// RadialGradient is parsed for completeness; renderers may treat it as
// unsupported.
type RadialGradient struct {
	ID        string
	CX, CY, R float64
	FX, FY    float64
	Transform Transform
	Spread    SpreadMethod
	Stops     []Stop
}

func (Color) isPaint()           {}
func (*LinearGradient) isPaint() {}
func (*RadialGradient) isPaint() {}

package svgmesh

// WidgetID identifies a widget to the host UI across frames.
type WidgetID uint64

// Sense selects which interactions the host UI should track for a widget.
// Hover is always sensed.
type Sense uint8

const (
	// SenseHover senses hovering only.
	SenseHover Sense = 0
	// SenseClick senses clicks.
	SenseClick Sense = 1 << iota
	// SenseDrag senses drags.
	SenseDrag
	// SenseFocusable lets the widget take keyboard focus.
	SenseFocusable
)

// Has reports whether s includes all flags of o.
func (s Sense) Has(o Sense) bool {
	return s&o == o
}

// Response is the host UI's report of the interaction with a widget.
type Response struct {
	ID      WidgetID
	Rect    Rect
	Sense   Sense
	Hovered bool
	Clicked bool
	Dragged bool
	Focused bool
}

// Stroke is an outline width and color.
type Stroke struct {
	Width float32
	Color Color32
}

// WidgetVisuals is the host style for a widget in one interaction state.
type WidgetVisuals struct {
	BgFill   Color32
	BgStroke Stroke
	Rounding float32
	FgStroke Stroke
}

// Painter records shapes for the current frame.
type Painter interface {
	// AddMesh draws m clipped to clip.
	AddMesh(clip Rect, m *Mesh)
	// AddRect draws a rounded rectangle.
	AddRect(rect Rect, rounding float32, fill Color32, stroke Stroke)
}

// UI is the part of an immediate-mode UI a Widget needs.
type UI interface {
	// AvailableHeight returns the height left in the current layout.
	AvailableHeight() float32
	// AllocateSpace reserves a frame of the given size in the layout.
	AllocateSpace(size Vec2) (WidgetID, Rect)
	// Interact reports the interaction with the given frame.
	Interact(rect Rect, id WidgetID, sense Sense) Response
	// ClipRect returns the visible area of the current layout.
	ClipRect() Rect
	// Visuals returns the style for the interaction state in resp.
	Visuals(resp Response) WidgetVisuals
	// Painter returns the painter for the current layer.
	Painter() Painter
}

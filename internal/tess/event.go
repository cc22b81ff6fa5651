package tess

import "errors"

// Errors returned by the tessellators.
var (
	// ErrInvalidGeometry is returned when an input coordinate is NaN or infinite.
	ErrInvalidGeometry = errors.New("tess: non-finite coordinate in path")

	// ErrInvalidStroke is returned for a negative or NaN stroke width or a
	// miter limit below 1.
	ErrInvalidStroke = errors.New("tess: invalid stroke parameters")

	// ErrTooManyVertices is returned when the output would overflow 32-bit indices.
	ErrTooManyVertices = errors.New("tess: too many vertices")
)

// EventKind identifies the kind of a path event.
type EventKind uint8

const (
	// EventBegin starts a subpath at From.
	EventBegin EventKind = iota
	// EventLine is a straight segment From -> To.
	EventLine
	// EventCubic is a cubic Bezier From, Ctrl1, Ctrl2, To.
	EventCubic
	// EventEnd ends the subpath. From is the last point, To the first point
	// of the subpath, Close reports whether the subpath is closed.
	EventEnd
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventBegin:
		return "Begin"
	case EventLine:
		return "Line"
	case EventCubic:
		return "Cubic"
	case EventEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Event is one element of a path event stream.
//
// Every subpath is bracketed by exactly one EventBegin and one EventEnd.
type Event struct {
	Kind  EventKind
	From  Point
	Ctrl1 Point
	Ctrl2 Point
	To    Point
	Close bool
}

// BeginEvent returns an event starting a subpath at p.
func BeginEvent(at Point) Event {
	return Event{Kind: EventBegin, From: at}
}

// LineEvent returns a line segment event.
func LineEvent(from, to Point) Event {
	return Event{Kind: EventLine, From: from, To: to}
}

// CubicEvent returns a cubic Bezier segment event.
func CubicEvent(from, ctrl1, ctrl2, to Point) Event {
	return Event{Kind: EventCubic, From: from, Ctrl1: ctrl1, Ctrl2: ctrl2, To: to}
}

// EndEvent returns an event ending the current subpath.
func EndEvent(last, first Point, closePath bool) Event {
	return Event{Kind: EventEnd, From: last, To: first, Close: closePath}
}

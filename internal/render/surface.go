// Package render draws the curriculum graph onto a retained scene.
//
// The Driver is the only code that knows what a curriculum looks like on
// screen. It talks to its output through Surface, which offers just enough
// to build a tree of primitives, attach pointer handlers and measure text.
// Scene is the in-memory Surface used by every host; EncodeSVG and Rasterize
// turn a Scene into an SVG document or a block of terminal cells.
package render

import "github.com/npratt/pathviz/internal/geometry"

// ID identifies an element on a surface. Root is the container every
// Reset creates.
type ID int

// Root is the top-level container.
const Root ID = 0

// Kind is the primitive type of an element.
type Kind int

const (
	KindRoot Kind = iota
	KindGroup
	KindLine
	KindCircle
	KindText
	KindDefs
	KindMarker
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "svg"
	case KindGroup:
		return "g"
	case KindLine:
		return "line"
	case KindCircle:
		return "circle"
	case KindText:
		return "text"
	case KindDefs:
		return "defs"
	case KindMarker:
		return "marker"
	default:
		return "unknown"
	}
}

// TextLine is one wrapped line of a text element, offset DY below the
// element's anchor.
type TextLine struct {
	Text string
	DY   float64
}

// Element holds the attributes of one primitive. Fields that do not apply to
// a kind are left zero. Positions are relative to the enclosing group.
type Element struct {
	Kind  Kind
	Class string // role within the graph: link, node-group, node, score, title
	Key   string // topic id, or "source->target" for links

	// Group translation, circle center and text anchor.
	X, Y float64
	// Line endpoints.
	X1, Y1, X2, Y2 float64

	R           float64
	Fill        string
	Stroke      string
	StrokeWidth float64
	Opacity     float64

	Text       string
	Lines      []TextLine
	DY         float64
	FontSize   float64
	FontWeight string
	Anchor     string

	MarkerEnd string // id of the marker drawn at a line's end

	// Marker geometry: a triangle Size long and Size wide, drawn in a
	// Width x Height box.
	Size          float64
	Width, Height float64
}

// Event is a pointer or touch notification on an element.
type Event int

const (
	PointerEnter Event = iota
	PointerLeave
	TouchStart
	TouchEnd
)

func (e Event) String() string {
	switch e {
	case PointerEnter:
		return "mouseenter"
	case PointerLeave:
		return "mouseleave"
	case TouchStart:
		return "touchstart"
	case TouchEnd:
		return "touchend"
	default:
		return "unknown"
	}
}

// Handler receives an event and the pointer position in viewport pixels.
type Handler func(ev Event, p geometry.Point)

// Surface is the drawing capability the Driver renders through.
type Surface interface {
	// Reset removes every element and sizes the root container.
	Reset(width, height float64)
	// Append adds el as the last child of parent and returns its id.
	Append(parent ID, el Element) ID
	// Update changes an element's attributes in place.
	Update(id ID, fn func(*Element))
	Bind(id ID, ev Event, h Handler)
	Unbind(id ID, ev Event)
	// MeasureText returns the rendered width of text at fontSize pixels.
	MeasureText(text string, fontSize float64) float64
	// Placeholder removes every element and shows a message instead.
	Placeholder(message string)
}

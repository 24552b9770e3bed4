package render

import "github.com/npratt/pathviz/internal/geometry"

type sceneNode struct {
	el       Element
	parent   ID
	children []ID
	handlers map[Event]Handler
}

// Scene is a retained element tree. It implements Surface and adds the
// lookups hosts need to draw it and route input to it.
type Scene struct {
	width   float64
	height  float64
	nodes   []sceneNode
	message string

	measure func(text string, fontSize float64) float64
	slop    float64
}

// SceneOption configures a Scene.
type SceneOption func(*Scene)

// WithMeasure replaces the text measurer. The default measures Go Regular
// glyph advances.
func WithMeasure(fn func(text string, fontSize float64) float64) SceneOption {
	return func(s *Scene) {
		s.measure = fn
	}
}

// WithHitSlop widens line hit testing by px on each side.
func WithHitSlop(px float64) SceneOption {
	return func(s *Scene) {
		s.slop = px
	}
}

// NewScene returns an empty scene.
func NewScene(opts ...SceneOption) *Scene {
	s := &Scene{
		measure: MeasureGlyphs,
		slop: 3,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset(0, 0)
	return s
}

// Reset implements Surface.
func (s *Scene) Reset(width, height float64) {
	s.width = width
	s.height = height
	s.message = ""
	s.nodes = []sceneNode{{el: Element{Kind: KindRoot}, parent: -1}}
}

// Append implements Surface. An unknown parent attaches to Root.
func (s *Scene) Append(parent ID, el Element) ID {
	if !s.valid(parent) {
		parent = Root
	}
	id := ID(len(s.nodes))
	s.nodes = append(s.nodes, sceneNode{el: el, parent: parent})
	s.nodes[parent].children = append(s.nodes[parent].children, id)
	return id
}

// Update implements Surface.
func (s *Scene) Update(id ID, fn func(*Element)) {
	if s.valid(id) {
		fn(&s.nodes[id].el)
	}
}

// Bind implements Surface.
func (s *Scene) Bind(id ID, ev Event, h Handler) {
	if !s.valid(id) {
		return
	}
	n := &s.nodes[id]
	if n.handlers == nil {
		n.handlers = make(map[Event]Handler)
	}
	n.handlers[ev] = h
}

// Unbind implements Surface.
func (s *Scene) Unbind(id ID, ev Event) {
	if s.valid(id) {
		delete(s.nodes[id].handlers, ev)
	}
}

// MeasureText implements Surface.
func (s *Scene) MeasureText(text string, fontSize float64) float64 {
	return s.measure(text, fontSize)
}

// Placeholder implements Surface.
func (s *Scene) Placeholder(message string) {
	s.Reset(s.width, s.height)
	s.message = message
}

// Width returns the root container width.
func (s *Scene) Width() float64 { return s.width }

// Height returns the root container height.
func (s *Scene) Height() float64 { return s.height }

// Message returns the placeholder message, or "" when the scene is drawn.
func (s *Scene) Message() string { return s.message }

// Len returns the number of elements below Root.
func (s *Scene) Len() int { return len(s.nodes) - 1 }

// Element returns the attributes of id.
func (s *Scene) Element(id ID) (Element, bool) {
	if !s.valid(id) {
		return Element{}, false
	}
	return s.nodes[id].el, true
}

// Children returns the children of id in draw order.
func (s *Scene) Children(id ID) []ID {
	if !s.valid(id) {
		return nil
	}
	return append([]ID(nil), s.nodes[id].children...)
}

// Bound reports whether id has a handler for ev.
func (s *Scene) Bound(id ID, ev Event) bool {
	if !s.valid(id) {
		return false
	}
	_, ok := s.nodes[id].handlers[ev]
	return ok
}

// Find returns the first element with the given class and key.
func (s *Scene) Find(class, key string) (ID, bool) {
	var found ID
	ok := false
	s.Walk(func(id ID, el Element, _ geometry.Point) bool {
		if !ok && el.Class == class && el.Key == key {
			found, ok = id, true
		}
		return !ok
	})
	return found, ok
}

// FindAll returns every element with the given class in draw order.
func (s *Scene) FindAll(class string) []ID {
	var ids []ID
	s.Walk(func(id ID, el Element, _ geometry.Point) bool {
		if el.Class == class {
			ids = append(ids, id)
		}
		return true
	})
	return ids
}

// Walk visits elements in draw order. origin is the position of the
// element's coordinate system, the sum of its ancestors' group translations.
// Returning false skips the element's children.
func (s *Scene) Walk(fn func(id ID, el Element, origin geometry.Point) bool) {
	s.walk(Root, geometry.Point{}, fn)
}

func (s *Scene) walk(id ID, origin geometry.Point, fn func(ID, Element, geometry.Point) bool) {
	n := s.nodes[id]
	if id != Root && !fn(id, n.el, origin) {
		return
	}
	inner := origin
	if n.el.Kind == KindGroup {
		inner = origin.Add(geometry.Point{X: n.el.X, Y: n.el.Y})
	}
	for _, child := range n.children {
		s.walk(child, inner, fn)
	}
}

// HitTest returns the topmost element with a bound handler under p.
// Circles hit inside their radius; lines within half their stroke width
// plus the hit slop.
func (s *Scene) HitTest(p geometry.Point) (ID, bool) {
	type candidate struct {
		id     ID
		el     Element
		origin geometry.Point
	}
	var cands []candidate
	s.Walk(func(id ID, el Element, origin geometry.Point) bool {
		if len(s.nodes[id].handlers) > 0 {
			cands = append(cands, candidate{id, el, origin})
		}
		return true
	})

	for i := len(cands) - 1; i >= 0; i-- {
		c := cands[i]
		switch c.el.Kind {
		case KindCircle:
			center := c.origin.Add(geometry.Point{X: c.el.X, Y: c.el.Y})
			if geometry.Distance(center, p) <= c.el.R {
				return c.id, true
			}
		case KindLine:
			seg := geometry.Segment{
				Start: c.origin.Add(geometry.Point{X: c.el.X1, Y: c.el.Y1}),
				End:   c.origin.Add(geometry.Point{X: c.el.X2, Y: c.el.Y2}),
			}
			if distanceToSegment(p, seg) <= c.el.StrokeWidth/2+s.slop {
				return c.id, true
			}
		}
	}
	return 0, false
}

// Dispatch calls the handler bound to id for ev, reporting whether one ran.
func (s *Scene) Dispatch(id ID, ev Event, p geometry.Point) bool {
	if !s.valid(id) {
		return false
	}
	h, ok := s.nodes[id].handlers[ev]
	if !ok {
		return false
	}
	h(ev, p)
	return true
}

func (s *Scene) valid(id ID) bool {
	return id >= 0 && int(id) < len(s.nodes)
}

func distanceToSegment(p geometry.Point, seg geometry.Segment) float64 {
	d := seg.End.Sub(seg.Start)
	l2 := d.X*d.X + d.Y*d.Y
	if l2 == 0 {
		return geometry.Distance(p, seg.Start)
	}
	t := ((p.X-seg.Start.X)*d.X + (p.Y-seg.Start.Y)*d.Y) / l2
	t = max(0, min(1, t))
	return geometry.Distance(p, seg.Start.Add(d.Scale(t)))
}

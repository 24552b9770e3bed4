package render

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/npratt/pathviz/internal/curriculum"
	"github.com/npratt/pathviz/internal/encode"
	"github.com/npratt/pathviz/internal/geometry"
	"github.com/npratt/pathviz/internal/interact"
	"github.com/npratt/pathviz/internal/layout"
	"github.com/npratt/pathviz/internal/wrap"
)

// LoadingMessage is shown until the viewport has been measured.
const LoadingMessage = "Loading visualization..."

// Marker ids referenced by links.
const (
	MarkerArrow     = "arrowhead"
	MarkerHighlight = "arrowhead-highlight"
)

// Element classes the Driver emits.
const (
	ClassLink      = "link"
	ClassNodeGroup = "node-group"
	ClassNode      = "node"
	ClassScore     = "score"
	ClassTitle     = "title"
)

// ScoreBaseline shifts a score label down so it sits centered in its node,
// as a fraction of the font size.
const ScoreBaseline = 0.35

// Frame is everything one redraw depends on.
type Frame struct {
	Curriculum *curriculum.Curriculum
	State      interact.State
	Now        time.Time
}

// Handlers receive node interaction from the surface. Either may be nil.
type Handlers struct {
	Hover func(topic curriculum.Topic, device interact.Device, p geometry.Point)
	Leave func(id string, device interact.Device)
}

// Driver redraws the whole graph on every call to Render.
type Driver struct {
	surface  Surface
	table    *layout.Table
	handlers Handlers
	logger   *slog.Logger

	result  layout.Result
	circles map[string]ID
	links   map[string]ID
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) DriverOption {
	return func(d *Driver) {
		d.logger = logger
	}
}

// WithHandlers sets the node interaction callbacks.
func WithHandlers(h Handlers) DriverOption {
	return func(d *Driver) {
		d.handlers = h
	}
}

// NewDriver creates a driver drawing onto s.
func NewDriver(s Surface, table *layout.Table, opts ...DriverOption) *Driver {
	d := &Driver{
		surface: s,
		table:   table,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Result returns the layout of the last drawn frame.
func (d *Driver) Result() layout.Result { return d.result }

// Render discards the previous drawing and draws f from scratch. Before the
// viewport is measured it shows the loading placeholder instead.
func (d *Driver) Render(f Frame) layout.Result {
	d.circles = make(map[string]ID)
	d.links = make(map[string]ID)

	dims := f.State.Dimensions
	if !f.State.Initialized || dims.IsZero() {
		d.result = layout.Result{}
		d.surface.Placeholder(LoadingMessage)
		return d.result
	}

	d.surface.Reset(dims.Width, dims.Height)
	res := layout.Compute(d.table, f.Curriculum, dims.Width, dims.Height)
	if len(res.Missing) > 0 {
		d.logger.Debug("topics without a position", "tier", res.Tier.String(), "ids", res.Missing)
	}
	d.result = res

	nodes, edges := interact.Visible(f.Curriculum, res.Nodes, f.State.Filter)
	pos := make(map[string]geometry.Point, len(nodes))
	for _, n := range nodes {
		pos[n.ID] = geometry.Point{X: n.X, Y: n.Y}
	}

	for _, e := range edges {
		d.drawLink(e, pos, res)
	}
	d.drawMarkers(res.Style)
	for _, n := range nodes {
		d.drawNode(n, res, f.State, f.Now)
	}

	d.logger.Debug("rendered",
		"tier", res.Tier.String(),
		"width", dims.Width,
		"height", dims.Height,
		"nodes", len(nodes),
		"links", len(d.links),
		"filter", f.State.Filter.String())
	return res
}

// Animate moves circle radii toward their transition targets without a
// redraw. Nodes that are not drawn are ignored.
func (d *Driver) Animate(s interact.State, now time.Time) {
	for _, id := range s.Animated() {
		circle, ok := d.circles[id]
		if !ok {
			continue
		}
		r := s.Radius(id, d.result.NodeRadius, now)
		d.surface.Update(circle, func(el *Element) {
			el.R = r
		})
	}
}

// HighlightLink restyles one link in place.
func (d *Driver) HighlightLink(key string, on bool) {
	id, ok := d.links[key]
	if !ok {
		return
	}
	width := d.result.Style.EdgeWidth
	marker := MarkerArrow
	if on {
		width = d.result.Style.EdgeHighlightWidth
		marker = MarkerHighlight
	}
	color, opacity := encode.Edge(on)
	d.surface.Update(id, func(el *Element) {
		el.Stroke = color
		el.Opacity = opacity
		el.StrokeWidth = width
		el.MarkerEnd = marker
	})
}

// Detach removes every handler bound by the last frame. Hosts call it when
// the view goes away so no callback outlives it.
func (d *Driver) Detach() {
	for _, id := range d.circles {
		for _, ev := range []Event{PointerEnter, PointerLeave, TouchStart, TouchEnd} {
			d.surface.Unbind(id, ev)
		}
	}
	for _, id := range d.links {
		d.surface.Unbind(id, PointerEnter)
		d.surface.Unbind(id, PointerLeave)
	}
}

// LinkKey names the link element for an edge.
func LinkKey(e curriculum.Edge) string {
	return e.Source + "->" + e.Target
}

func (d *Driver) drawLink(e curriculum.Edge, pos map[string]geometry.Point, res layout.Result) {
	src, okSrc := pos[e.Source]
	dst, okDst := pos[e.Target]
	if !okSrc || !okDst {
		d.logger.Debug("skipping unlocatable link", "source", e.Source, "target", e.Target)
		return
	}

	seg := geometry.Trim(src, dst, res.NodeRadius)
	color, opacity := encode.Edge(false)
	key := LinkKey(e)
	id := d.surface.Append(Root, Element{
		Kind:        KindLine,
		Class:       ClassLink,
		Key:         key,
		X1:          seg.Start.X,
		Y1:          seg.Start.Y,
		X2:          seg.End.X,
		Y2:          seg.End.Y,
		Stroke:      color,
		StrokeWidth: res.Style.EdgeWidth,
		Opacity:     opacity,
		MarkerEnd:   MarkerArrow,
	})
	d.links[key] = id

	d.surface.Bind(id, PointerEnter, func(Event, geometry.Point) { d.HighlightLink(key, true) })
	d.surface.Bind(id, PointerLeave, func(Event, geometry.Point) { d.HighlightLink(key, false) })
}

func (d *Driver) drawMarkers(style layout.Style) {
	defs := d.surface.Append(Root, Element{Kind: KindDefs})
	size := style.ArrowSize
	d.surface.Append(defs, Element{
		Kind:        KindMarker,
		Key:         MarkerArrow,
		Size:        size,
		Width:       size + 2,
		Height:      size + 2,
		Fill:        encode.EdgeColor,
		Stroke:      encode.EdgeColor,
		StrokeWidth: 0.5,
	})
	d.surface.Append(defs, Element{
		Kind:        KindMarker,
		Key:         MarkerHighlight,
		Size:        size,
		Width:       size + 4,
		Height:      size + 4,
		Fill:        encode.EdgeHighlightColor,
		Stroke:      encode.EdgeHighlightColor,
		StrokeWidth: 1,
	})
}

func (d *Driver) drawNode(n layout.Node, res layout.Result, s interact.State, now time.Time) {
	style := res.Style
	group := d.surface.Append(Root, Element{
		Kind:  KindGroup,
		Class: ClassNodeGroup,
		Key:   n.ID,
		X:     n.X,
		Y:     n.Y,
	})

	circle := d.surface.Append(group, Element{
		Kind:        KindCircle,
		Class:       ClassNode,
		Key:         n.ID,
		R:           s.Radius(n.ID, res.NodeRadius, now),
		Fill:        encode.Fill(n.Status),
		Stroke:      encode.Stroke(n.Status),
		StrokeWidth: style.NodeStroke,
	})
	d.circles[n.ID] = circle
	d.bindNode(circle, n.Topic)

	if encode.ShowsScore(n.Status) {
		d.surface.Append(group, Element{
			Kind:       KindText,
			Class:      ClassScore,
			Key:        n.ID,
			Text:       strconv.Itoa(n.Score),
			DY:         ScoreBaseline * style.ScoreFont,
			Fill:       encode.ScoreColor,
			FontSize:   style.ScoreFont,
			FontWeight: "bold",
			Anchor:     "middle",
		})
	}

	measure := func(text string) float64 {
		return d.surface.MeasureText(text, style.TitleFont)
	}
	lines := wrap.Wrap(n.Title, style.WrapWidth, measure)
	offsets := wrap.Offsets(lines, res.TitleOffset(), style.TitleFont)
	title := Element{
		Kind:       KindText,
		Class:      ClassTitle,
		Key:        n.ID,
		Text:       n.Title,
		DY:         res.TitleOffset(),
		Fill:       encode.TitleColor,
		FontSize:   style.TitleFont,
		FontWeight: "600",
		Anchor:     "middle",
		Lines:      make([]TextLine, len(lines)),
	}
	for i, line := range lines {
		title.Lines[i] = TextLine{Text: line, DY: offsets[i]}
	}
	d.surface.Append(group, title)
}

func (d *Driver) bindNode(id ID, topic curriculum.Topic) {
	enter := func(device interact.Device) Handler {
		return func(_ Event, p geometry.Point) {
			if d.handlers.Hover != nil {
				d.handlers.Hover(topic, device, p)
			}
		}
	}
	leave := func(device interact.Device) Handler {
		return func(Event, geometry.Point) {
			if d.handlers.Leave != nil {
				d.handlers.Leave(topic.ID, device)
			}
		}
	}
	d.surface.Bind(id, PointerEnter, enter(interact.DevicePointer))
	d.surface.Bind(id, TouchStart, enter(interact.DeviceTouch))
	d.surface.Bind(id, PointerLeave, leave(interact.DevicePointer))
	d.surface.Bind(id, TouchEnd, leave(interact.DeviceTouch))
}

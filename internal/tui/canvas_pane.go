package tui

import (
	"log/slog"
	"math"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/npratt/pathviz/internal/config"
	"github.com/npratt/pathviz/internal/curriculum"
	"github.com/npratt/pathviz/internal/geometry"
	"github.com/npratt/pathviz/internal/interact"
	"github.com/npratt/pathviz/internal/layout"
	"github.com/npratt/pathviz/internal/render"
)

// canvasPane owns the engine objects behind the graph area. It is shared by
// pointer between model copies; bubbletea drives it from one goroutine.
type canvasPane struct {
	curriculum *curriculum.Curriculum
	cfg        *config.Config
	logger     *slog.Logger
	now        func() time.Time

	machine *interact.Machine
	scene   *render.Scene
	driver  *render.Driver
	state   interact.State

	// Timer requests raised by surface handlers, drained after each dispatch.
	timers []interact.Timer

	cols int
	rows int

	under    render.ID // element under the pointer
	hasUnder bool
	pressed  render.ID // element receiving a touch
	touching bool

	// Last canvas cell seen, re-hit-tested after a redraw.
	pointerCol  int
	pointerRow  int
	hasPointer  bool
	hoverDevice interact.Device
}

func newCanvasPane(c *curriculum.Curriculum, table *layout.Table, cfg *config.Config, logger *slog.Logger) *canvasPane {
	p := &canvasPane{
		curriculum: c,
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
	}

	cellW := cfg.Terminal.CellWidth
	p.scene = render.NewScene(
		render.WithMeasure(func(text string, _ float64) float64 {
			return float64(runewidth.StringWidth(text)) * cellW
		}),
		render.WithHitSlop(cfg.Terminal.CellHeight/2),
	)
	p.machine = interact.NewMachine(table, cfg, interact.WithClock(func() time.Time { return p.now() }))
	p.driver = render.NewDriver(p.scene, table,
		render.WithLogger(logger),
		render.WithHandlers(render.Handlers{
			Hover: p.onHover,
			Leave: p.onLeave,
		}),
	)
	p.state = p.machine.State()
	return p
}

// SetSize records the canvas size in cells. The first size mounts the view
// immediately; later width changes are debounced and return a timer.
func (p *canvasPane) SetSize(cols, rows int) *interact.Timer {
	widthChanged := cols != p.cols
	p.cols = cols
	p.rows = rows

	width := p.containerWidth()
	if !p.state.Initialized {
		p.state = p.machine.Mount(width)
		p.redraw()
		return nil
	}
	if !widthChanged {
		return nil
	}
	timer := p.machine.Resize(width)
	if timer.IsZero() {
		return nil
	}
	return &timer
}

// Settle applies a debounced resize. Stale tokens report false.
func (p *canvasPane) Settle(token uint64) bool {
	s, ok := p.machine.Settle(token)
	if !ok {
		return false
	}
	p.state = s
	p.redraw()
	return true
}

// Dismiss clears a touch tooltip. Stale tokens report false.
func (p *canvasPane) Dismiss(token uint64) bool {
	s, ok := p.machine.Dismiss(token)
	if ok {
		p.state = s
	}
	return ok
}

// ToggleFilter filters to status, or back to all when already filtered.
func (p *canvasPane) ToggleFilter(status curriculum.Status) {
	p.state = p.machine.ToggleFilter(status)
	p.redraw()
}

// ShowAll clears the filter.
func (p *canvasPane) ShowAll() {
	p.state = p.machine.ShowAll()
	p.redraw()
}

// Close releases handlers and invalidates pending timers.
func (p *canvasPane) Close() {
	p.machine.Unmount()
	p.driver.Detach()
}

// Animate advances radius transitions and reports whether more frames are
// needed.
func (p *canvasPane) Animate() bool {
	now := p.now()
	p.driver.Animate(p.state, now)
	return p.state.Animating(now)
}

// Animating reports whether a radius transition is running.
func (p *canvasPane) Animating() bool {
	return p.state.Animating(p.now())
}

// PointerMove routes pointer motion at cell (col, row) of the canvas. A
// position outside the canvas leaves whatever was under the pointer.
func (p *canvasPane) PointerMove(col, row int) {
	pt, inside := p.toPixels(col, row)
	p.pointerCol, p.pointerRow, p.hasPointer = col, row, inside
	var hit render.ID
	hitOK := false
	if inside {
		hit, hitOK = p.scene.HitTest(pt)
	}
	if p.hasUnder && (!hitOK || hit != p.under) {
		p.scene.Dispatch(p.under, render.PointerLeave, pt)
		p.hasUnder = false
	}
	if hitOK && !p.hasUnder {
		p.under, p.hasUnder = hit, true
		p.scene.Dispatch(hit, render.PointerEnter, pt)
	}
}

// TouchStart begins an emulated tap at cell (col, row).
func (p *canvasPane) TouchStart(col, row int) {
	pt, inside := p.toPixels(col, row)
	p.pointerCol, p.pointerRow, p.hasPointer = col, row, inside
	if !inside {
		return
	}
	if hit, ok := p.scene.HitTest(pt); ok && p.scene.Dispatch(hit, render.TouchStart, pt) {
		p.pressed, p.touching = hit, true
	}
}

// TouchEnd ends the emulated tap on the element it started on.
func (p *canvasPane) TouchEnd(col, row int) {
	if !p.touching {
		return
	}
	pt, _ := p.toPixels(col, row)
	p.scene.Dispatch(p.pressed, render.TouchEnd, pt)
	p.touching = false
}

// DrainTimers returns and clears the timer requests raised by handlers.
func (p *canvasPane) DrainTimers() []interact.Timer {
	timers := p.timers
	p.timers = nil
	return timers
}

// View rasterizes the scene with the tooltip on top.
func (p *canvasPane) View() string {
	cellW, cellH := p.cellSize()
	var overlays []render.Overlay
	if tt := p.state.Tooltip; tt != nil {
		overlays = append(overlays, render.TooltipOverlay(tt))
	}
	return render.Rasterize(p.scene, p.cols, p.rows, cellW, cellH, overlays...)
}

func (p *canvasPane) onHover(topic curriculum.Topic, device interact.Device, pt geometry.Point) {
	p.state = p.machine.Hover(topic, device, pt)
	p.hoverDevice = device
	p.logger.Debug("hover", "topic", topic.ID, "device", device.String())
}

func (p *canvasPane) onLeave(id string, device interact.Device) {
	s, timer := p.machine.Unhover(id, device)
	p.state = s
	if timer != nil {
		p.timers = append(p.timers, *timer)
	}
}

func (p *canvasPane) redraw() {
	p.driver.Render(render.Frame{
		Curriculum: p.curriculum,
		State:      p.state,
		Now:        p.now(),
	})
	// Element ids from the previous frame are gone.
	p.hasUnder = false
	wasTouching := p.touching
	p.touching = false

	hovered := p.state.Hovered
	if hovered == "" {
		return
	}
	circle, drawn := p.scene.Find(render.ClassNode, hovered)
	if pt, inside := p.toPixels(p.pointerCol, p.pointerRow); drawn && p.hasPointer && inside {
		if hit, ok := p.scene.HitTest(pt); ok && hit == circle {
			if p.hoverDevice != interact.DeviceTouch {
				p.under, p.hasUnder = circle, true
				return
			}
			if wasTouching {
				p.pressed, p.touching = circle, true
				return
			}
		}
	}
	// The hovered node is gone or no longer under the pointer.
	p.onLeave(hovered, p.hoverDevice)
}

func (p *canvasPane) containerWidth() float64 {
	return float64(p.cols) * p.cfg.Terminal.CellWidth
}

// cellSize returns the pixels each cell covers. Cells grow past the
// configured size so the whole viewport fits in the canvas.
func (p *canvasPane) cellSize() (float64, float64) {
	cellW, cellH := p.cfg.Terminal.CellWidth, p.cfg.Terminal.CellHeight
	dims := p.state.Dimensions
	if p.cols > 0 {
		cellW = math.Max(cellW, dims.Width/float64(p.cols))
	}
	if p.rows > 0 {
		cellH = math.Max(cellH, dims.Height/float64(p.rows))
	}
	return cellW, cellH
}

// toPixels maps a canvas cell to the viewport pixel at its center.
func (p *canvasPane) toPixels(col, row int) (geometry.Point, bool) {
	cellW, cellH := p.cellSize()
	pt := geometry.Point{X: (float64(col) + 0.5) * cellW, Y: (float64(row) + 0.5) * cellH}
	inside := col >= 0 && row >= 0 && col < p.cols && row < p.rows
	return pt, inside
}

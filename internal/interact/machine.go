package interact

import (
	"math"
	"time"

	"github.com/npratt/pathviz/internal/config"
	"github.com/npratt/pathviz/internal/curriculum"
	"github.com/npratt/pathviz/internal/geometry"
	"github.com/npratt/pathviz/internal/layout"
)

// Machine applies named transitions to the UI state. It is not safe for
// concurrent use; hosts drive it from their single event loop.
type Machine struct {
	table    *layout.Table
	viewport config.ViewportConfig
	cfg      config.InteractionConfig
	now      func() time.Time

	state State

	pendingWidth float64
	seq          uint64
	resizeToken  uint64
	dismissToken uint64
	unmounted    bool
}

// Option configures a Machine.
type Option func(*Machine)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) {
		m.now = now
	}
}

// NewMachine creates an uninitialized machine.
func NewMachine(table *layout.Table, cfg *config.Config, opts ...Option) *Machine {
	m := &Machine{
		table:    table,
		viewport: cfg.Viewport,
		cfg:      cfg.Interaction,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current snapshot.
func (m *Machine) State() State { return m.state.clone() }

// BaseRadius returns the node radius for the current tier, or 0 before the
// first measurement.
func (m *Machine) BaseRadius() float64 {
	if !m.state.Initialized {
		return 0
	}
	return m.table.Tier(m.table.Classify(m.state.Dimensions.Width)).Radius
}

// Mount takes the first measurement immediately.
func (m *Machine) Mount(containerWidth float64) State {
	if m.unmounted {
		return m.State()
	}
	m.measure(containerWidth)
	return m.State()
}

// Resize records a new container width and requests a debounce timer. Only
// the newest token settles, so a burst of resizes recomputes once.
func (m *Machine) Resize(containerWidth float64) Timer {
	if m.unmounted {
		return Timer{}
	}
	m.pendingWidth = containerWidth
	m.resizeToken = m.token()
	return Timer{Kind: TimerSettle, Token: m.resizeToken, Delay: m.cfg.ResizeDebounce}
}

// Settle applies the pending width when token is the newest resize token.
func (m *Machine) Settle(token uint64) (State, bool) {
	if m.unmounted || token == 0 || token != m.resizeToken {
		return m.State(), false
	}
	m.resizeToken = 0
	m.measure(m.pendingWidth)
	return m.State(), true
}

// Hover shows the tooltip for topic near pointer and grows its node. It
// supersedes any pending touch dismissal.
func (m *Machine) Hover(topic curriculum.Topic, device Device, pointer geometry.Point) State {
	if m.unmounted || !m.state.Initialized {
		return m.State()
	}
	s := m.state.clone()
	base := m.BaseRadius()
	s.transitions[topic.ID] = m.animate(topic.ID, base+m.cfg.HoverGrow)
	s.Hovered = topic.ID
	s.Tooltip = &Tooltip{
		Topic: topic,
		X:     math.Min(pointer.X+m.cfg.TooltipOffset, s.Dimensions.Width-m.cfg.TooltipWidth),
		Y:     math.Max(pointer.Y-m.cfg.TooltipOffset, m.cfg.TooltipMargin),
	}
	m.dismissToken = 0
	m.state = s
	return m.State()
}

// Unhover shrinks node id back to its base radius. A pointer leave clears the
// tooltip at once; a touch end returns a dismissal timer instead. Leaving a
// node that is no longer the hovered one only shrinks it.
func (m *Machine) Unhover(id string, device Device) (State, *Timer) {
	if m.unmounted {
		return m.State(), nil
	}
	s := m.state.clone()
	s.transitions[id] = m.animate(id, m.BaseRadius())

	var timer *Timer
	if s.Hovered == id {
		s.Hovered = ""
		if device == DeviceTouch && s.Tooltip != nil {
			m.dismissToken = m.token()
			timer = &Timer{Kind: TimerDismiss, Token: m.dismissToken, Delay: m.cfg.TouchDismissDelay}
		} else {
			s.Tooltip = nil
			m.dismissToken = 0
		}
	}
	m.state = s
	return m.State(), timer
}

// Dismiss clears the tooltip when token is still the current dismissal.
func (m *Machine) Dismiss(token uint64) (State, bool) {
	if m.unmounted || token == 0 || token != m.dismissToken {
		return m.State(), false
	}
	m.dismissToken = 0
	s := m.state.clone()
	s.Tooltip = nil
	m.state = s
	return m.State(), true
}

// SetFilter replaces the active filter.
func (m *Machine) SetFilter(f Filter) State {
	if m.unmounted {
		return m.State()
	}
	s := m.state.clone()
	s.Filter = f
	// The redraw recreates every node at its base radius.
	s.transitions = map[string]Transition{}
	m.state = s
	return m.State()
}

// ToggleFilter filters to status, or clears the filter if status is
// already the active one.
func (m *Machine) ToggleFilter(status curriculum.Status) State {
	next := Only(status)
	if m.state.Filter == next {
		next = NoFilter
	}
	return m.SetFilter(next)
}

// ShowAll clears the filter.
func (m *Machine) ShowAll() State {
	return m.SetFilter(NoFilter)
}

// Unmount invalidates every pending token. Later transitions do nothing.
func (m *Machine) Unmount() {
	m.unmounted = true
	m.resizeToken = 0
	m.dismissToken = 0
}

// Unmounted reports whether Unmount has been called.
func (m *Machine) Unmounted() bool { return m.unmounted }

func (m *Machine) measure(containerWidth float64) {
	s := m.state.clone()
	s.Dimensions = layout.Measure(containerWidth, m.viewport)
	s.Initialized = true
	s.transitions = map[string]Transition{}
	m.state = s
}

// animate starts a transition for id from wherever its radius is now.
func (m *Machine) animate(id string, to float64) Transition {
	now := m.now()
	return Transition{
		From:     m.state.Radius(id, m.BaseRadius(), now),
		To:       to,
		Start:    now,
		Duration: m.cfg.HoverTransition,
	}
}

func (m *Machine) token() uint64 {
	m.seq++
	return m.seq
}

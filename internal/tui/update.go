package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/npratt/pathviz/internal/curriculum"
	"github.com/npratt/pathviz/internal/interact"
)

// timerMsg delivers a debounce or dismissal timer back to the model.
type timerMsg struct {
	kind  interact.TimerKind
	token uint64
}

// frameMsg advances hover animations.
type frameMsg time.Time

// stopMsg asks the model to quit from outside the program.
type stopMsg struct{}

// timerCmd schedules t. The token is checked when it fires, so a superseded
// timer arrives and is dropped.
func timerCmd(t interact.Timer) tea.Cmd {
	return tea.Tick(t.Delay, func(time.Time) tea.Msg {
		return timerMsg{kind: t.Kind, token: t.Token}
	})
}

// doFrame creates a command that waits one frame interval.
func doFrame(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update implements tea.Model. It handles all message types and updates the model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = max(10, msg.Width-2)
		if timer := m.canvas.SetSize(msg.Width, max(0, m.canvasRows())); timer != nil {
			return m, timerCmd(*timer)
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case stopMsg:
		return m.quit()

	case timerMsg:
		return m.handleTimer(msg)

	case frameMsg:
		if m.canvas.Animate() {
			return m, doFrame(m.frameInterval)
		}
		m.animating = false
		return m, nil

	case spinner.TickMsg:
		// Only spin while waiting for the first measurement
		if m.width != 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input and returns the updated model and command.
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m.quit()

	case "1":
		m.canvas.ToggleFilter(curriculum.StatusCompleted)
	case "2":
		m.canvas.ToggleFilter(curriculum.StatusInProgress)
	case "3":
		m.canvas.ToggleFilter(curriculum.StatusNotStarted)
	case "0", "a":
		m.canvas.ShowAll()

	case "t":
		// Switch between pointer hover and tap emulation
		if m.device == interact.DeviceTouch {
			m.device = interact.DevicePointer
		} else {
			m.device = interact.DeviceTouch
		}
		m.logger.Debug("input device changed", "device", m.device.String())
	}
	// A redraw can release a touch hover, which schedules its dismissal.
	return m, tea.Batch(m.drainTimers()...)
}

// quit releases the canvas and ends the program.
func (m model) quit() (tea.Model, tea.Cmd) {
	m.canvas.Close()
	if m.onQuit != nil {
		m.onQuit()
	}
	return m, tea.Quit
}

// handleMouse routes mouse input to the legend or the canvas.
func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Y == legendRow && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if item, ok := legendAt(msg.X, m.width); ok {
			if item.all {
				m.canvas.ShowAll()
			} else {
				m.canvas.ToggleFilter(item.status)
			}
		}
		return m, nil
	}

	col, row := msg.X, msg.Y-headerRows
	switch m.device {
	case interact.DeviceTouch:
		if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
			return m, nil
		}
		switch msg.Action {
		case tea.MouseActionPress:
			m.canvas.TouchStart(col, row)
		case tea.MouseActionRelease:
			m.canvas.TouchEnd(col, row)
		}
	default:
		m.canvas.PointerMove(col, row)
	}

	cmds := m.drainTimers()
	if !m.animating && m.canvas.Animating() {
		m.animating = true
		cmds = append(cmds, doFrame(m.frameInterval))
	}
	return m, tea.Batch(cmds...)
}

// handleTimer applies a timer that is still current and drops stale ones.
func (m model) handleTimer(msg timerMsg) (tea.Model, tea.Cmd) {
	var applied bool
	switch msg.kind {
	case interact.TimerSettle:
		applied = m.canvas.Settle(msg.token)
	case interact.TimerDismiss:
		applied = m.canvas.Dismiss(msg.token)
	}
	if !applied {
		m.logger.Debug("dropping stale timer", "kind", msg.kind.String(), "token", msg.token)
	}
	return m, tea.Batch(m.drainTimers()...)
}

func (m model) drainTimers() []tea.Cmd {
	var cmds []tea.Cmd
	for _, t := range m.canvas.DrainTimers() {
		cmds = append(cmds, timerCmd(t))
	}
	return cmds
}

package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"

	"github.com/npratt/pathviz/internal/config"
	"github.com/npratt/pathviz/internal/curriculum"
	"github.com/npratt/pathviz/internal/layout"
)

// TestTUILifecycleSmoke verifies the full bubbletea program lifecycle:
// start, size, handle keyboard input, and quit cleanly.
// This test uses teatest to run the TUI headlessly without a real TTY.
func TestTUILifecycleSmoke(t *testing.T) {
	var quitCalled bool
	onQuit := func() { quitCalled = true }

	m := newModel(curriculum.Default(), layout.DefaultTable(), config.Default(), nil, onQuit)

	tm := teatest.NewTestModel(
		t,
		m,
		teatest.WithInitialTermSize(100, 40),
	)

	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("Overall Progress"))
	}, teatest.WithDuration(3*time.Second))

	// Filter and clear
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'0'}})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	fm := tm.FinalModel(t, teatest.WithFinalTimeout(5*time.Second))
	if fm == nil {
		t.Fatal("FinalModel returned nil")
	}
	final, ok := fm.(model)
	if !ok {
		t.Fatalf("FinalModel type = %T, want model", fm)
	}
	if final.canvas.state.Filter.Active() {
		t.Errorf("filter = %v, want all", final.canvas.state.Filter)
	}
	if !quitCalled {
		t.Error("quit callback was not invoked")
	}
}

// TestTUILifecycle_CtrlC verifies ctrl+c exits the same way q does.
func TestTUILifecycle_CtrlC(t *testing.T) {
	m := newModel(curriculum.Default(), layout.DefaultTable(), config.Default(), nil, nil)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(100, 40))
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})

	fm := tm.FinalModel(t, teatest.WithFinalTimeout(5*time.Second))
	final := fm.(model)
	if !final.canvas.machine.Unmounted() {
		t.Error("machine should be unmounted after ctrl+c")
	}

	out := tm.FinalOutput(t, teatest.WithFinalTimeout(5*time.Second))
	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(out)
	if strings.Contains(buf.String(), "panic") {
		t.Errorf("unexpected panic in output: %s", buf.String())
	}
}

package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Size of the static frame when the output is not a terminal.
const (
	fallbackWidth  = 100
	fallbackHeight = 40
)

// isTerminal returns true if both stdout and stdin are TTYs.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}

// terminalSize returns the current terminal width and height.
// Returns 0, 0 if the terminal size cannot be determined.
func terminalSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0
	}
	return width, height
}

// runSimple prints one frame for non-interactive environments. The frame
// is drawn at the terminal size when stdout has one.
func (t *TUI) runSimple() error {
	width, height := terminalSize()
	if width == 0 || height == 0 {
		width, height = fallbackWidth, fallbackHeight
	}

	m := newModel(t.curriculum, t.table, t.cfg, t.logger, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})

	if _, err := fmt.Fprintln(t.out, next.View()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

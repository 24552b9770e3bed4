// Package tui hosts the curriculum graph in a terminal using bubbletea.
//
// The terminal stands in for the browser: its width in cells sets the
// container width, mouse motion is pointer hover, and when the configured
// device is "touch" a press and release stand in for a tap.
package tui

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/npratt/pathviz/internal/config"
	"github.com/npratt/pathviz/internal/curriculum"
	"github.com/npratt/pathviz/internal/layout"
)

// TUI is the interactive curriculum viewer.
type TUI struct {
	curriculum *curriculum.Curriculum
	table      *layout.Table
	cfg        *config.Config
	logger     *slog.Logger
	onQuit     func()
	out        io.Writer

	mu      sync.Mutex
	program *tea.Program
}

// Option configures the TUI.
type Option func(*TUI)

// New creates a TUI for c laid out by table.
func New(c *curriculum.Curriculum, table *layout.Table, cfg *config.Config, opts ...Option) *TUI {
	t := &TUI{
		curriculum: c,
		table:      table,
		cfg:        cfg,
		logger:     slog.Default(),
		out:        os.Stdout,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// WithLogger sets the logger. The TUI owns the screen, so it should not
// write to the terminal.
func WithLogger(logger *slog.Logger) Option {
	return func(t *TUI) {
		t.logger = logger
	}
}

// WithOnQuit sets the callback invoked when the user quits.
func WithOnQuit(fn func()) Option {
	return func(t *TUI) {
		t.onQuit = fn
	}
}

// WithOutput sets where the non-interactive fallback prints.
func WithOutput(w io.Writer) Option {
	return func(t *TUI) {
		t.out = w
	}
}

// Run starts the TUI and blocks until it exits. Without a terminal it
// prints a single static frame instead.
func (t *TUI) Run(ctx context.Context) error {
	if !isTerminal() {
		return t.runSimple()
	}

	m := newModel(t.curriculum, t.table, t.cfg, t.logger, t.onQuit)

	// Signals are left to the caller, which quits through Stop
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx), tea.WithoutSignalHandler()}
	if t.cfg.Terminal.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(m, opts...)

	t.mu.Lock()
	t.program = p
	t.mu.Unlock()

	_, err := p.Run()
	return err
}

// Stop asks a running TUI to quit the same way the quit key does. It is safe
// to call from another goroutine and does nothing before Run.
func (t *TUI) Stop() {
	t.mu.Lock()
	p := t.program
	t.mu.Unlock()

	if p != nil {
		p.Send(stopMsg{})
	}
}

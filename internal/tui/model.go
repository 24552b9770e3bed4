package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/npratt/pathviz/internal/config"
	"github.com/npratt/pathviz/internal/curriculum"
	"github.com/npratt/pathviz/internal/encode"
	"github.com/npratt/pathviz/internal/interact"
	"github.com/npratt/pathviz/internal/layout"
)

// Screen rows around the canvas.
const (
	// headerRows covers title, subtitle, legend, progress label, bar,
	// counts and the divider below them.
	headerRows = 7
	// footerRows covers the divider and key help.
	footerRows = 2
	// legendRow is the screen row the legend is drawn on.
	legendRow = 2
	// minCanvasRows is the smallest canvas worth drawing.
	minCanvasRows = 8
)

// model is the bubbletea model for the TUI.
type model struct {
	curriculum *curriculum.Curriculum
	canvas     *canvasPane
	summary    interact.Summary

	bar     progress.Model
	spinner spinner.Model

	// UI state
	width     int
	height    int
	device    interact.Device
	animating bool // a frame tick is in flight

	frameInterval time.Duration
	logger        *slog.Logger

	// Callbacks
	onQuit func()
}

// newModel creates a model for c. Nothing is laid out until the first
// window size arrives.
func newModel(c *curriculum.Curriculum, table *layout.Table, cfg *config.Config, logger *slog.Logger, onQuit func()) model {
	if logger == nil {
		logger = slog.Default()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Loading

	bar := progress.New(
		progress.WithSolidFill(encode.Fill(curriculum.StatusCompleted)),
		progress.WithoutPercentage(),
	)

	return model{
		curriculum: c,
		canvas:     newCanvasPane(c, table, cfg, logger),
		summary:    interact.Progress(c.Topics),
		bar:        bar,
		spinner:    sp,
		device:     interact.ParseDevice(cfg.Interaction.Device),

		frameInterval: cfg.Terminal.FrameInterval,
		logger:        logger,
		onQuit:        onQuit,
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

// canvasRows returns the rows left for the graph.
func (m model) canvasRows() int {
	return m.height - headerRows - footerRows
}

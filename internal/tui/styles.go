package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/npratt/pathviz/internal/curriculum"
	"github.com/npratt/pathviz/internal/encode"
)

// styles contains all lipgloss styles used by the TUI.
var styles = struct {
	// Header styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Legend styles
	Legend       lipgloss.Style
	LegendActive lipgloss.Style

	// Progress styles
	ProgressLabel   lipgloss.Style
	ProgressPercent lipgloss.Style
	StatNumber      lipgloss.Style
	Stat            lipgloss.Style

	// Layout styles
	Divider lipgloss.Style
	Footer  lipgloss.Style
	Loading lipgloss.Style
	Error   lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#1f2937")),

	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6b7280")),

	Legend: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	LegendActive: lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(lipgloss.Color("252")),

	ProgressLabel: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#374151")),

	ProgressPercent: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(encode.Fill(curriculum.StatusCompleted))),

	StatNumber: lipgloss.NewStyle().
		Bold(true),

	Stat: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	Divider: lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")),

	Footer: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	Loading: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6b7280")),

	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")),
}

// swatch returns the legend color chip for a status.
func swatch(s curriculum.Status) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(encode.Fill(s)))
}

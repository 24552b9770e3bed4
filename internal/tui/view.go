package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/npratt/pathviz/internal/curriculum"
	"github.com/npratt/pathviz/internal/interact"
)

const (
	minWidth  = 56 // fits the compact legend
	minHeight = headerRows + footerRows + minCanvasRows
)

const (
	headerTitle    = "Learning Path"
	headerSubtitle = "Your progress through the curriculum"
	legendSep      = "   "
	legendChip     = "●"
)

// legendItem is one clickable legend control.
type legendItem struct {
	key    string
	label  string
	status curriculum.Status
	all    bool
}

var legendItems = []legendItem{
	{key: "1", label: "Completed", status: curriculum.StatusCompleted},
	{key: "2", label: "In Progress", status: curriculum.StatusInProgress},
	{key: "3", label: "Not Started", status: curriculum.StatusNotStarted},
	{key: "0", label: "Show All", all: true},
}

// text returns the unstyled label. The compact form drops the key hint.
func (li legendItem) text(compact bool) string {
	if compact {
		return li.label
	}
	return "[" + li.key + "] " + li.label
}

// plain returns the unstyled legend text, used for both drawing and hit
// testing so the two agree on widths.
func (li legendItem) plain(compact bool) string {
	if li.all {
		return li.text(compact)
	}
	return legendChip + " " + li.text(compact)
}

// legendWidth returns the width of the whole legend row.
func legendWidth(compact bool) int {
	w := runewidth.StringWidth(legendSep) * (len(legendItems) - 1)
	for _, item := range legendItems {
		w += runewidth.StringWidth(item.plain(compact))
	}
	return w
}

// legendCompact reports whether a screen width needs the compact legend.
func legendCompact(width int) bool {
	return legendWidth(false) > width
}

// legendAt returns the legend item drawn at column x on a screen width
// columns wide.
func legendAt(x, width int) (legendItem, bool) {
	compact := legendCompact(width)
	pos := 0
	for _, item := range legendItems {
		w := runewidth.StringWidth(item.plain(compact))
		if x >= pos && x < pos+w {
			return item, true
		}
		pos += w + runewidth.StringWidth(legendSep)
	}
	return legendItem{}, false
}

// View implements tea.Model. This renders the full TUI display.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return m.spinner.View() + " " + styles.Loading.Render("Loading...")
	}

	// Handle too small terminal
	if m.width < minWidth || m.height < minHeight {
		return m.renderTooSmall()
	}

	sections := []string{
		styles.Title.Render(headerTitle),
		styles.Subtitle.Render(headerSubtitle),
		m.renderLegend(),
		m.renderProgressLabel(),
		m.bar.ViewAs(m.summary.Fraction()),
		m.renderCounts(),
		m.renderDivider(),
		m.canvas.View(),
		m.renderDivider(),
		m.renderFooter(),
	}
	return strings.Join(sections, "\n")
}

func (m model) renderLegend() string {
	filter := m.canvas.state.Filter
	compact := legendCompact(m.width)
	parts := make([]string, 0, len(legendItems))
	for _, item := range legendItems {
		active := !filter.Active()
		if !item.all {
			s, ok := filter.Status()
			active = ok && s == item.status
		}

		style := styles.Legend
		if active {
			style = styles.LegendActive
		}
		label := item.text(compact)
		if item.all {
			parts = append(parts, style.Render(label))
			continue
		}
		parts = append(parts, swatch(item.status).Render(legendChip)+" "+style.Render(label))
	}
	return strings.Join(parts, legendSep)
}

func (m model) renderProgressLabel() string {
	label := styles.ProgressLabel.Render("Overall Progress")
	pct := styles.ProgressPercent.Render(fmt.Sprintf("%d%%", m.summary.Percentage))
	gap := m.width - lipgloss.Width(label) - lipgloss.Width(pct)
	if gap < 1 {
		gap = 1
	}
	return label + strings.Repeat(" ", gap) + pct
}

func (m model) renderCounts() string {
	stat := func(n int, label string) string {
		return styles.StatNumber.Render(fmt.Sprintf("%d", n)) + " " + styles.Stat.Render(label)
	}
	return strings.Join([]string{
		stat(m.summary.Completed, "completed"),
		stat(m.summary.InProgress, "in progress"),
		stat(m.summary.NotStarted, "not started"),
		stat(m.summary.Total, "topics"),
	}, styles.Stat.Render("  ·  "))
}

func (m model) renderDivider() string {
	return styles.Divider.Render(strings.Repeat("─", m.width))
}

func (m model) renderFooter() string {
	device := "hover"
	if m.device == interact.DeviceTouch {
		device = "tap"
	}
	text := fmt.Sprintf("1-3: filter  0: show all  t: %s mode  q: quit    filter: %s",
		device, m.canvas.state.Filter)
	return styles.Footer.Render(runewidth.Truncate(text, m.width, "…"))
}

func (m model) renderTooSmall() string {
	msg := fmt.Sprintf("Terminal too small (%dx%d)\nNeed at least %dx%d", m.width, m.height, minWidth, minHeight)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, styles.Error.Render(msg))
}

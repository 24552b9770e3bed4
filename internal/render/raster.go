package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/npratt/pathviz/internal/geometry"
)

// cell is one terminal character and its colors.
type cell struct {
	r    rune
	fg   string
	bg   string
	bold bool
}

// charGrid is a 2D grid of styled cells.
type charGrid struct {
	width  int
	height int
	cells  [][]cell
}

func newGrid(width, height int) *charGrid {
	cells := make([][]cell, height)
	for y := range cells {
		cells[y] = make([]cell, width)
		for x := range cells[y] {
			cells[y][x] = cell{r: ' '}
		}
	}
	return &charGrid{width: width, height: height, cells: cells}
}

func (g *charGrid) in(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *charGrid) set(x, y int, c cell) {
	if g.in(x, y) {
		g.cells[y][x] = c
	}
}

// writeString writes s from column x, keeping the background already there.
func (g *charGrid) writeString(x, y int, s string, fg string, bold bool) {
	for _, r := range s {
		if g.in(x, y) {
			bg := g.cells[y][x].bg
			g.cells[y][x] = cell{r: r, fg: fg, bg: bg, bold: bold}
		}
		x += max(1, runewidth.RuneWidth(r))
	}
}

// String renders the grid, styling runs of cells that share colors.
func (g *charGrid) String() string {
	lines := make([]string, g.height)
	for y, row := range g.cells {
		var b strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && sameStyle(row[x], row[start]) {
				continue
			}
			b.WriteString(renderRun(row[start:x]))
			start = x
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func sameStyle(a, b cell) bool {
	return a.fg == b.fg && a.bg == b.bg && a.bold == b.bold
}

func renderRun(run []cell) string {
	if len(run) == 0 {
		return ""
	}
	rs := make([]rune, len(run))
	for i, c := range run {
		rs[i] = c.r
	}
	text := string(rs)
	c := run[0]
	if c.fg == "" && c.bg == "" && !c.bold {
		return text
	}
	style := lipgloss.NewStyle().Bold(c.bold)
	if c.fg != "" {
		style = style.Foreground(lipgloss.Color(c.fg))
	}
	if c.bg != "" {
		style = style.Background(lipgloss.Color(c.bg))
	}
	return style.Render(text)
}

// Overlay is a floating text box drawn above the scene, anchored at its
// top-left corner in viewport pixels.
type Overlay struct {
	X, Y  float64
	Lines []string
	Fg    string
	Bg    string
	Bold  int // index of the line drawn bold, -1 for none
}

// Rasterize draws scene and any overlays into a cols x rows block of
// terminal cells, each cell covering cellW x cellH viewport pixels.
func Rasterize(scene *Scene, cols, rows int, cellW, cellH float64, overlays ...Overlay) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	grid := newGrid(cols, rows)

	if msg := scene.Message(); msg != "" {
		x := (cols - runewidth.StringWidth(msg)) / 2
		grid.writeString(max(0, x), rows/2, msg, placeholderColor, false)
		return grid.String()
	}

	r := rasterizer{grid: grid, cellW: cellW, cellH: cellH, markers: map[string]Element{}}
	scene.Walk(func(_ ID, el Element, _ geometry.Point) bool {
		if el.Kind == KindMarker {
			r.markers[el.Key] = el
		}
		return true
	})
	scene.Walk(func(_ ID, el Element, origin geometry.Point) bool {
		switch el.Kind {
		case KindLine:
			r.line(el, origin)
		case KindCircle:
			r.disc(el, origin)
		case KindText:
			r.text(el, origin)
		}
		return true
	})
	for _, o := range overlays {
		r.overlay(o)
	}
	return grid.String()
}

type rasterizer struct {
	grid    *charGrid
	cellW   float64
	cellH   float64
	markers map[string]Element
}

func (r *rasterizer) cellOf(p geometry.Point) (int, int) {
	return int(math.Floor(p.X / r.cellW)), int(math.Floor(p.Y / r.cellH))
}

func (r *rasterizer) center(x, y int) geometry.Point {
	return geometry.Point{X: (float64(x) + 0.5) * r.cellW, Y: (float64(y) + 0.5) * r.cellH}
}

func (r *rasterizer) line(el Element, origin geometry.Point) {
	seg := geometry.Segment{
		Start: origin.Add(geometry.Point{X: el.X1, Y: el.Y1}),
		End:   origin.Add(geometry.Point{X: el.X2, Y: el.Y2}),
	}
	bold := el.MarkerEnd == MarkerHighlight
	glyph := lineGlyph(seg.Start, seg.End, r.cellW, r.cellH)

	step := math.Min(r.cellW, r.cellH) / 2
	n := int(math.Ceil(seg.Length() / step))
	dir := seg.Direction()
	for i := 0; i <= n; i++ {
		p := seg.Start.Add(dir.Scale(math.Min(float64(i)*step, seg.Length())))
		x, y := r.cellOf(p)
		r.grid.set(x, y, cell{r: glyph, fg: el.Stroke, bold: bold})
	}

	if m, ok := r.markers[el.MarkerEnd]; ok && seg.Length() > 0 {
		x, y := r.cellOf(seg.End)
		r.grid.set(x, y, cell{r: arrowGlyph(seg.Start, seg.End, r.cellW, r.cellH), fg: m.Fill, bold: bold})
	}
}

func (r *rasterizer) disc(el Element, origin geometry.Point) {
	c := origin.Add(geometry.Point{X: el.X, Y: el.Y})
	x0, y0 := r.cellOf(geometry.Point{X: c.X - el.R, Y: c.Y - el.R})
	x1, y1 := r.cellOf(geometry.Point{X: c.X + el.R, Y: c.Y + el.R})

	inner := el.R - math.Max(el.StrokeWidth, r.cellW/2)
	drawn := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			d := geometry.Distance(r.center(x, y), c)
			switch {
			case d <= inner:
				r.grid.set(x, y, cell{r: ' ', bg: el.Fill})
			case d <= el.R:
				r.grid.set(x, y, cell{r: ' ', bg: el.Stroke})
			default:
				continue
			}
			drawn = true
		}
	}
	if !drawn {
		x, y := r.cellOf(c)
		r.grid.set(x, y, cell{r: ' ', bg: el.Fill})
	}
}

func (r *rasterizer) text(el Element, origin geometry.Point) {
	anchor := origin.Add(geometry.Point{X: el.X, Y: el.Y})
	lines := el.Lines
	if len(lines) == 0 {
		// Single-line labels are centered on their own row.
		lines = []TextLine{{Text: el.Text}}
	}
	for _, line := range lines {
		x, y := r.cellOf(anchor.Add(geometry.Point{Y: line.DY}))
		if el.Anchor == "middle" {
			x -= runewidth.StringWidth(line.Text) / 2
		}
		r.grid.writeString(x, y, line.Text, el.Fill, el.FontWeight != "")
	}
}

// overlay draws a padded box, shifted left or up as needed to stay inside
// the grid.
func (r *rasterizer) overlay(o Overlay) {
	width := 0
	for _, line := range o.Lines {
		width = max(width, runewidth.StringWidth(line))
	}
	width += 2
	height := len(o.Lines) + 2

	x, y := r.cellOf(geometry.Point{X: o.X, Y: o.Y})
	x = max(0, min(x, r.grid.width-width))
	y = max(0, min(y, r.grid.height-height))

	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			r.grid.set(x+dx, y+dy, cell{r: ' ', bg: o.Bg})
		}
	}
	for i, line := range o.Lines {
		r.grid.writeString(x+1, y+1+i, line, o.Fg, i == o.Bold)
	}
}

// lineGlyph picks the box-drawing rune closest to the on-screen slope.
func lineGlyph(a, b geometry.Point, cellW, cellH float64) rune {
	dx := (b.X - a.X) / cellW
	dy := (b.Y - a.Y) / cellH
	switch {
	case math.Abs(dy) <= math.Abs(dx)*0.4:
		return '─'
	case math.Abs(dx) <= math.Abs(dy)*0.4:
		return '│'
	case dx*dy > 0:
		return '╲'
	default:
		return '╱'
	}
}

var arrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// arrowGlyph picks the arrow closest to the on-screen direction of a to b.
func arrowGlyph(a, b geometry.Point, cellW, cellH float64) rune {
	angle := math.Atan2((b.Y-a.Y)/cellH, (b.X-a.X)/cellW)
	octant := int(math.Round(angle/(math.Pi/4))+8) % 8
	return arrows[octant]
}

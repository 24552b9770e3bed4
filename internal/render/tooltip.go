package render

import (
	"strconv"

	"github.com/npratt/pathviz/internal/curriculum"
	"github.com/npratt/pathviz/internal/encode"
	"github.com/npratt/pathviz/internal/interact"
)

// Tooltip box colors.
const (
	TooltipFg = "#f9fafb"
	TooltipBg = "#1f2937"
)

// TooltipLines returns the text of a topic's tooltip: title, status, score
// and, for started topics, an encouragement line.
func TooltipLines(t curriculum.Topic) []string {
	lines := []string{
		t.Title,
		"Status: " + encode.Normalize(t.Status).String(),
		"Score: " + strconv.Itoa(t.Score) + "%",
	}
	if msg := encode.Encouragement(t.Status); msg != "" {
		lines = append(lines, msg)
	}
	return lines
}

// TooltipOverlay positions tt's text box for Rasterize.
func TooltipOverlay(tt *interact.Tooltip) Overlay {
	return Overlay{
		X:     tt.X,
		Y:     tt.Y,
		Lines: TooltipLines(tt.Topic),
		Fg:    TooltipFg,
		Bg:    TooltipBg,
		Bold:  0,
	}
}

// Package encode maps topic state to its visual encoding.
//
// Every function is total over curriculum.Status: a status outside the three
// known values is drawn as NotStarted.
package encode

import "github.com/npratt/pathviz/internal/curriculum"

// Text and edge colors shared by every surface.
const (
	TitleColor = "#374151"
	ScoreColor = "#ffffff"

	EdgeColor            = "#000000"
	EdgeHighlightColor   = "#333333"
	EdgeOpacity          = 0.8
	EdgeHighlightOpacity = 1.0
)

// Swatch is the fill and stroke pair for one status.
type Swatch struct {
	Fill   string
	Stroke string
}

var palette = map[curriculum.Status]Swatch{
	curriculum.StatusCompleted:  {Fill: "#22c55e", Stroke: "#16a34a"},
	curriculum.StatusInProgress: {Fill: "#eab308", Stroke: "#ca8a04"},
	curriculum.StatusNotStarted: {Fill: "#9ca3af", Stroke: "#6b7280"},
}

var encouragement = map[curriculum.Status]string{
	curriculum.StatusCompleted:  "Excellent work! ✓",
	curriculum.StatusInProgress: "Keep going! You're doing great!",
}

// Normalize folds unrecognized statuses into NotStarted.
func Normalize(s curriculum.Status) curriculum.Status {
	if _, ok := palette[s]; ok {
		return s
	}
	return curriculum.StatusNotStarted
}

// For returns the swatch for a status.
func For(s curriculum.Status) Swatch {
	return palette[Normalize(s)]
}

// Fill returns the node fill color.
func Fill(s curriculum.Status) string { return For(s).Fill }

// Stroke returns the node outline color.
func Stroke(s curriculum.Status) string { return For(s).Stroke }

// ShowsScore reports whether the numeric score is drawn inside the node.
func ShowsScore(s curriculum.Status) bool {
	return Normalize(s) != curriculum.StatusNotStarted
}

// Encouragement returns the tooltip message for a status, or "" for none.
func Encouragement(s curriculum.Status) string {
	return encouragement[Normalize(s)]
}

// Edge returns the stroke color and opacity of a prerequisite line.
func Edge(highlighted bool) (color string, opacity float64) {
	if highlighted {
		return EdgeHighlightColor, EdgeHighlightOpacity
	}
	return EdgeColor, EdgeOpacity
}

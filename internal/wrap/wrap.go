// Package wrap breaks titles into lines that fit a pixel width.
package wrap

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// LineHeight is the distance between baselines as a multiple of font size.
const LineHeight = 1.1

// Measurer reports the rendered width of a text run in pixels.
type Measurer func(text string) float64

// RuneMeasurer measures text by display cell count, pxPerCell pixels per cell.
// Wide runes count as two cells.
func RuneMeasurer(pxPerCell float64) Measurer {
	return func(text string) float64 {
		return float64(runewidth.StringWidth(text)) * pxPerCell
	}
}

// Wrap greedily packs the words of text into lines no wider than maxWidth.
// Words are never split, so a single word wider than maxWidth sits alone on
// its line. Blank input yields one empty line.
func Wrap(text string, maxWidth float64, measure Measurer) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		if measure(candidate) > maxWidth {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	return append(lines, line)
}

// Offsets returns the vertical offset of each line from the text anchor.
// The first line sits at baseDY and each following line one LineHeight lower.
func Offsets(lines []string, baseDY, fontSize float64) []float64 {
	out := make([]float64, len(lines))
	for i := range lines {
		out[i] = baseDY + float64(i)*LineHeight*fontSize
	}
	return out
}

package render

import (
	"fmt"
	"sync"

	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// GlyphAspect approximates the advance of a sans-serif glyph as a fraction
// of the font size. It is only used if the embedded font cannot be loaded.
const GlyphAspect = 0.6

// GlyphMeasurer measures text by the advance widths of the Go Regular font.
// Faces are built once per font size. It is safe for concurrent use.
type GlyphMeasurer struct {
	mu    sync.Mutex
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewGlyphMeasurer parses the embedded Go Regular font.
func NewGlyphMeasurer() (*GlyphMeasurer, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &GlyphMeasurer{font: f, faces: make(map[float64]font.Face)}, nil
}

// Measure returns the rendered width of text in px at fontSize px.
func (g *GlyphMeasurer) Measure(text string, fontSize float64) float64 {
	if fontSize <= 0 || text == "" {
		return 0
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	face, ok := g.faces[fontSize]
	if !ok {
		var err error
		// At 72 DPI one point is one pixel.
		face, err = opentype.NewFace(g.font, &opentype.FaceOptions{
			Size:    fontSize,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			return estimateWidth(text, fontSize)
		}
		g.faces[fontSize] = face
	}
	return float64(font.MeasureString(face, text)) / 64
}

var defaultGlyphs = sync.OnceValues(NewGlyphMeasurer)

// MeasureGlyphs measures text with a shared GlyphMeasurer. It is the
// default Scene measurer.
func MeasureGlyphs(text string, fontSize float64) float64 {
	g, err := defaultGlyphs()
	if err != nil {
		return estimateWidth(text, fontSize)
	}
	return g.Measure(text, fontSize)
}

func estimateWidth(text string, fontSize float64) float64 {
	return float64(runewidth.StringWidth(text)) * fontSize * GlyphAspect
}

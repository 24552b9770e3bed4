package render

import (
	"math"
	"sync"
	"testing"
)

func TestGlyphMeasurer(t *testing.T) {
	g, err := NewGlyphMeasurer()
	if err != nil {
		t.Fatalf("NewGlyphMeasurer failed: %v", err)
	}

	tests := []struct {
		text string
		size float64
		want float64
	}{
		{"Basic Arithmetic", 12, 87.0},
		{"Linear Equations", 12, 90.7},
		{"Fractions & Decimals", 12, 114.6},
		{"Basic Arithmetic", 10, 72.5},
		{"", 12, 0},
		{"Basic Arithmetic", 0, 0},
	}
	for _, tt := range tests {
		got := g.Measure(tt.text, tt.size)
		if math.Abs(got-tt.want) > 0.5 {
			t.Errorf("Measure(%q, %v) = %v, want about %v", tt.text, tt.size, got, tt.want)
		}
	}
}

func TestGlyphMeasurer_NarrowerThanEstimate(t *testing.T) {
	text := "Quadratic Equations"
	if got, est := MeasureGlyphs(text, 12), estimateWidth(text, 12); got >= est {
		t.Errorf("MeasureGlyphs = %v, want less than the %v estimate", got, est)
	}
}

func TestGlyphMeasurer_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(size float64) {
			defer wg.Done()
			if w := MeasureGlyphs("Trigonometry", size); w <= 0 {
				t.Errorf("MeasureGlyphs at %v = %v", size, w)
			}
		}(float64(10 + i%3))
	}
	wg.Wait()
}

package layout

import (
	"math"
	"sort"

	"github.com/npratt/pathviz/internal/config"
)

// Dimensions is the drawable viewport size in pixels.
type Dimensions struct {
	Width  float64
	Height float64
}

// IsZero reports whether the viewport has not been measured yet.
func (d Dimensions) IsZero() bool {
	return d.Width <= 0 || d.Height <= 0
}

// Measure derives viewport dimensions from the container's content width.
// Height is never measured; it follows from the width-dependent aspect ratio.
func Measure(containerWidth float64, cfg config.ViewportConfig) Dimensions {
	width := math.Max(cfg.MinWidth, containerWidth-cfg.Margin)
	height := math.Max(cfg.MinHeight, width*aspectFor(width, cfg.Aspect))
	return Dimensions{Width: width, Height: height}
}

// aspectFor returns the ratio of the first band whose bound exceeds width.
// A band with Below == 0 is the catch-all for widths past every bound.
func aspectFor(width float64, bands []config.AspectBand) float64 {
	if len(bands) == 0 {
		return 1
	}

	bounded := make([]config.AspectBand, 0, len(bands))
	fallback := bands[len(bands)-1].Ratio
	for _, b := range bands {
		if b.Below <= 0 {
			fallback = b.Ratio
			continue
		}
		bounded = append(bounded, b)
	}
	sort.Slice(bounded, func(i, j int) bool { return bounded[i].Below < bounded[j].Below })

	for _, b := range bounded {
		if width < b.Below {
			return b.Ratio
		}
	}
	return fallback
}

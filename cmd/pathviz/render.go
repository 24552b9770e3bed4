package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/npratt/pathviz/internal/config"
	"github.com/npratt/pathviz/internal/curriculum"
	"github.com/npratt/pathviz/internal/geometry"
	"github.com/npratt/pathviz/internal/interact"
	"github.com/npratt/pathviz/internal/layout"
	"github.com/npratt/pathviz/internal/render"
)

// renderOptions selects what a one-shot render draws.
type renderOptions struct {
	Width  float64 // container width in px
	Filter string  // status name, empty for all
	Hover  string  // topic id shown hovered
	Format string
	Rows   int // text rows, 0 to derive from the viewport height
}

// renderGraph draws one frame of c to w without a terminal. It drives the
// same machine and driver the interactive view uses, settling any hover
// animation before drawing.
func renderGraph(w io.Writer, c *curriculum.Curriculum, table *layout.Table, cfg *config.Config, opts renderOptions, logger *slog.Logger) error {
	now := time.Now()
	machine := interact.NewMachine(table, cfg, interact.WithClock(func() time.Time { return now }))
	state := machine.Mount(opts.Width)

	if opts.Filter != "" {
		status := curriculum.ParseStatus(opts.Filter)
		if status == curriculum.StatusUnknown {
			return fmt.Errorf("unknown status %q", opts.Filter)
		}
		state = machine.SetFilter(interact.Only(status))
	}

	scene := render.NewScene(render.WithMeasure(render.MeasureGlyphs))
	driver := render.NewDriver(scene, table, render.WithLogger(logger))
	res := driver.Render(render.Frame{Curriculum: c, State: state, Now: now})
	for _, id := range res.Missing {
		logger.Warn("topic has no position", "topic", id, "tier", res.Tier.String())
	}

	if opts.Hover != "" {
		node, ok := res.Node(opts.Hover)
		if _, drawn := scene.Find(render.ClassNode, opts.Hover); !ok || !drawn {
			return fmt.Errorf("topic %q is not drawn", opts.Hover)
		}
		state = machine.Hover(node.Topic, interact.DevicePointer, geometry.Point{X: node.X, Y: node.Y})
		driver.Animate(state, now.Add(cfg.Interaction.HoverTransition))
	}

	switch opts.Format {
	case FormatSVG, "":
		if err := render.EncodeSVG(scene, w); err != nil {
			return err
		}
	case FormatText:
		cols := int(math.Ceil(state.Dimensions.Width / cfg.Terminal.CellWidth))
		rows := opts.Rows
		if rows <= 0 {
			rows = int(math.Ceil(state.Dimensions.Height / cfg.Terminal.CellHeight))
		}
		cellW := state.Dimensions.Width / float64(cols)
		cellH := state.Dimensions.Height / float64(rows)

		var overlays []render.Overlay
		if state.Tooltip != nil {
			overlays = append(overlays, render.TooltipOverlay(state.Tooltip))
		}
		if _, err := fmt.Fprintln(w, render.Rasterize(scene, cols, rows, cellW, cellH, overlays...)); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q (want %q or %q)", opts.Format, FormatSVG, FormatText)
	}

	machine.Unmount()
	driver.Detach()
	return nil
}

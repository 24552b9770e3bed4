// Package config provides configuration types and defaults for pathviz.
package config

import (
	"fmt"
	"time"
)

// Device names accepted by InteractionConfig.Device.
const (
	DevicePointer = "pointer"
	DeviceTouch   = "touch"
)

// Config holds all configuration for pathviz.
type Config struct {
	Viewport    ViewportConfig    `yaml:"viewport" mapstructure:"viewport"`
	Interaction InteractionConfig `yaml:"interaction" mapstructure:"interaction"`
	Terminal    TerminalConfig    `yaml:"terminal" mapstructure:"terminal"`
	Paths       PathsConfig       `yaml:"paths" mapstructure:"paths"`
	LogRotation LogRotationConfig `yaml:"log_rotation" mapstructure:"log_rotation"`
}

// ViewportConfig controls how the container width becomes viewport dimensions.
type ViewportConfig struct {
	MinWidth  float64      `yaml:"min_width" mapstructure:"min_width"`
	Margin    float64      `yaml:"margin" mapstructure:"margin"` // Subtracted from the container width
	MinHeight float64      `yaml:"min_height" mapstructure:"min_height"`
	Aspect    []AspectBand `yaml:"aspect" mapstructure:"aspect"`
}

// AspectBand maps widths below a bound to a height/width ratio.
// Below == 0 marks the catch-all band.
type AspectBand struct {
	Below float64 `yaml:"below" mapstructure:"below"`
	Ratio float64 `yaml:"ratio" mapstructure:"ratio"`
}

// InteractionConfig holds hover, tooltip and resize timing.
type InteractionConfig struct {
	ResizeDebounce    time.Duration `yaml:"resize_debounce" mapstructure:"resize_debounce"`
	TouchDismissDelay time.Duration `yaml:"touch_dismiss_delay" mapstructure:"touch_dismiss_delay"`
	HoverGrow         float64       `yaml:"hover_grow" mapstructure:"hover_grow"` // Radius increase in px
	HoverTransition   time.Duration `yaml:"hover_transition" mapstructure:"hover_transition"`
	TooltipWidth      float64       `yaml:"tooltip_width" mapstructure:"tooltip_width"` // Estimate used for clamping
	TooltipOffset     float64       `yaml:"tooltip_offset" mapstructure:"tooltip_offset"`
	TooltipMargin     float64       `yaml:"tooltip_margin" mapstructure:"tooltip_margin"`
	Device            string        `yaml:"device" mapstructure:"device"` // "pointer" or "touch"
}

// TerminalConfig maps terminal cells to the pixel space the layout works in.
type TerminalConfig struct {
	CellWidth     float64       `yaml:"cell_width" mapstructure:"cell_width"`
	CellHeight    float64       `yaml:"cell_height" mapstructure:"cell_height"`
	FrameInterval time.Duration `yaml:"frame_interval" mapstructure:"frame_interval"` // Radius animation frame rate
	Mouse         bool          `yaml:"mouse" mapstructure:"mouse"`
}

// PathsConfig holds file paths for logs and optional data overrides.
type PathsConfig struct {
	Log        string `yaml:"log" mapstructure:"log"`
	Curriculum string `yaml:"curriculum" mapstructure:"curriculum"` // Empty uses the embedded curriculum
	Layout     string `yaml:"layout" mapstructure:"layout"`         // Empty uses the embedded tier table
}

// LogRotationConfig holds settings for log file rotation.
// Used for the TUI debug log (lumberjack-based automatic rotation).
type LogRotationConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool `yaml:"compress" mapstructure:"compress"`
}

// Default returns a Config with the values the visualization was tuned for.
func Default() *Config {
	return &Config{
		Viewport: ViewportConfig{
			MinWidth:  280,
			Margin:    20,
			MinHeight: 200,
			Aspect: []AspectBand{
				{Below: 480, Ratio: 1.4}, // small phones
				{Below: 768, Ratio: 1.2},
				{Below: 1024, Ratio: 0.8},
				{Below: 0, Ratio: 0.4}, // desktop is much flatter
			},
		},
		Interaction: InteractionConfig{
			ResizeDebounce:    100 * time.Millisecond,
			TouchDismissDelay: 2 * time.Second,
			HoverGrow:         4,
			HoverTransition:   200 * time.Millisecond,
			TooltipWidth:      200,
			TooltipOffset:     10,
			TooltipMargin:     10,
			Device:            DevicePointer,
		},
		Terminal: TerminalConfig{
			CellWidth:     8,
			CellHeight:    16,
			FrameInterval: 40 * time.Millisecond,
			Mouse:         true,
		},
		Paths: PathsConfig{
			Log: ".pathviz/pathviz.log",
		},
		LogRotation: LogRotationConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

// Validate checks values that would make layout or rendering meaningless.
func (c *Config) Validate() error {
	if c.Viewport.MinWidth <= 0 || c.Viewport.MinHeight <= 0 {
		return fmt.Errorf("viewport min_width and min_height must be positive")
	}
	for _, b := range c.Viewport.Aspect {
		if b.Ratio <= 0 {
			return fmt.Errorf("viewport aspect ratio must be positive, got %v", b.Ratio)
		}
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return fmt.Errorf("terminal cell_width and cell_height must be positive")
	}
	if c.Terminal.FrameInterval <= 0 {
		return fmt.Errorf("terminal frame_interval must be positive")
	}
	switch c.Interaction.Device {
	case DevicePointer, DeviceTouch:
	default:
		return fmt.Errorf("interaction device must be %q or %q, got %q", DevicePointer, DeviceTouch, c.Interaction.Device)
	}
	if c.Interaction.ResizeDebounce < 0 || c.Interaction.TouchDismissDelay < 0 || c.Interaction.HoverTransition < 0 {
		return fmt.Errorf("interaction durations must not be negative")
	}
	return nil
}

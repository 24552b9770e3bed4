package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg == nil {
		t.Fatal("Default() returned nil")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() does not validate: %v", err)
	}
}

func TestDefaultViewportConfig(t *testing.T) {
	cfg := Default()

	if cfg.Viewport.MinWidth != 280 {
		t.Errorf("Viewport.MinWidth = %v, want 280", cfg.Viewport.MinWidth)
	}
	if cfg.Viewport.Margin != 20 {
		t.Errorf("Viewport.Margin = %v, want 20", cfg.Viewport.Margin)
	}
	if cfg.Viewport.MinHeight != 200 {
		t.Errorf("Viewport.MinHeight = %v, want 200", cfg.Viewport.MinHeight)
	}
	if len(cfg.Viewport.Aspect) != 4 {
		t.Fatalf("Viewport.Aspect has %d bands, want 4", len(cfg.Viewport.Aspect))
	}
	last := cfg.Viewport.Aspect[3]
	if last.Below != 0 || last.Ratio != 0.4 {
		t.Errorf("catch-all band = %+v, want {Below:0 Ratio:0.4}", last)
	}
}

func TestDefaultInteractionConfig(t *testing.T) {
	cfg := Default()

	durations := []struct {
		name string
		got  time.Duration
		want time.Duration
	}{
		{"ResizeDebounce", cfg.Interaction.ResizeDebounce, 100 * time.Millisecond},
		{"TouchDismissDelay", cfg.Interaction.TouchDismissDelay, 2 * time.Second},
		{"HoverTransition", cfg.Interaction.HoverTransition, 200 * time.Millisecond},
	}
	for _, tc := range durations {
		if tc.got != tc.want {
			t.Errorf("Interaction.%s = %v, want %v", tc.name, tc.got, tc.want)
		}
	}

	if cfg.Interaction.HoverGrow != 4 {
		t.Errorf("Interaction.HoverGrow = %v, want 4", cfg.Interaction.HoverGrow)
	}
	if cfg.Interaction.TooltipWidth != 200 {
		t.Errorf("Interaction.TooltipWidth = %v, want 200", cfg.Interaction.TooltipWidth)
	}
	if cfg.Interaction.Device != DevicePointer {
		t.Errorf("Interaction.Device = %q, want %q", cfg.Interaction.Device, DevicePointer)
	}
}

func TestDefaultPathsConfig(t *testing.T) {
	cfg := Default()

	if cfg.Paths.Log != ".pathviz/pathviz.log" {
		t.Errorf("Paths.Log = %q, want %q", cfg.Paths.Log, ".pathviz/pathviz.log")
	}
	if cfg.Paths.Curriculum != "" {
		t.Errorf("Paths.Curriculum = %q, want empty (embedded)", cfg.Paths.Curriculum)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "bad device",
			mutate:  func(c *Config) { c.Interaction.Device = "stylus" },
			wantErr: "interaction device",
		},
		{
			name:    "zero cell width",
			mutate:  func(c *Config) { c.Terminal.CellWidth = 0 },
			wantErr: "cell_width",
		},
		{
			name:    "negative aspect",
			mutate:  func(c *Config) { c.Viewport.Aspect[0].Ratio = -1 },
			wantErr: "aspect ratio",
		},
		{
			name:    "negative debounce",
			mutate:  func(c *Config) { c.Interaction.ResizeDebounce = -time.Second },
			wantErr: "durations",
		},
		{
			name:   "touch device",
			mutate: func(c *Config) { c.Interaction.Device = DeviceTouch },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

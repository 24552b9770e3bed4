package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadConfig_Defaults(t *testing.T) {
	v := viper.New()
	cfg, err := LoadConfig(v)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Interaction.ResizeDebounce != 100*time.Millisecond {
		t.Errorf("Interaction.ResizeDebounce = %v, want %v", cfg.Interaction.ResizeDebounce, 100*time.Millisecond)
	}
	if cfg.Terminal.CellWidth != 8 {
		t.Errorf("Terminal.CellWidth = %v, want 8", cfg.Terminal.CellWidth)
	}
	if len(cfg.Viewport.Aspect) != 4 {
		t.Errorf("Viewport.Aspect has %d bands, want 4", len(cfg.Viewport.Aspect))
	}
}

func TestLoadConfig_ProjectFile(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	defer func() { _ = os.Chdir(oldWd) }()

	if err := os.MkdirAll(ProjectConfigDir, 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	configContent := `
interaction:
  touch_dismiss_delay: 3s
  device: touch
terminal:
  cell_width: 10
paths:
  curriculum: custom.yaml
`
	configPath := filepath.Join(ProjectConfigDir, ProjectConfigFile)
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	v := viper.New()
	cfg, err := LoadConfig(v)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Interaction.TouchDismissDelay != 3*time.Second {
		t.Errorf("Interaction.TouchDismissDelay = %v, want %v", cfg.Interaction.TouchDismissDelay, 3*time.Second)
	}
	if cfg.Interaction.Device != DeviceTouch {
		t.Errorf("Interaction.Device = %q, want %q", cfg.Interaction.Device, DeviceTouch)
	}
	if cfg.Terminal.CellWidth != 10 {
		t.Errorf("Terminal.CellWidth = %v, want 10", cfg.Terminal.CellWidth)
	}
	if cfg.Paths.Curriculum != "custom.yaml" {
		t.Errorf("Paths.Curriculum = %q, want %q", cfg.Paths.Curriculum, "custom.yaml")
	}

	// Untouched values keep their defaults
	if cfg.Interaction.ResizeDebounce != 100*time.Millisecond {
		t.Errorf("Interaction.ResizeDebounce = %v, want default", cfg.Interaction.ResizeDebounce)
	}
	if cfg.Terminal.CellHeight != 16 {
		t.Errorf("Terminal.CellHeight = %v, want default 16", cfg.Terminal.CellHeight)
	}
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `
viewport:
  min_width: 320
  aspect:
    - {below: 600, ratio: 1.0}
    - {below: 0, ratio: 0.5}
`
	configPath := filepath.Join(tmpDir, "custom-config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	v := viper.New()
	v.Set("config", configPath)

	cfg, err := LoadConfig(v)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Viewport.MinWidth != 320 {
		t.Errorf("Viewport.MinWidth = %v, want 320", cfg.Viewport.MinWidth)
	}
	if len(cfg.Viewport.Aspect) != 2 {
		t.Fatalf("Viewport.Aspect has %d bands, want 2", len(cfg.Viewport.Aspect))
	}
	if cfg.Viewport.Aspect[0].Below != 600 || cfg.Viewport.Aspect[0].Ratio != 1.0 {
		t.Errorf("first band = %+v, want {Below:600 Ratio:1}", cfg.Viewport.Aspect[0])
	}
}

func TestLoadConfig_ExplicitFileMissing(t *testing.T) {
	v := viper.New()
	v.Set("config", "/nonexistent/path/config.yaml")

	_, err := LoadConfig(v)
	if err == nil {
		t.Error("LoadConfig should fail for missing explicit config")
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(configPath, []byte("interaction:\n  device: stylus\n"), 0644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	v := viper.New()
	v.Set("config", configPath)

	if _, err := LoadConfig(v); err == nil {
		t.Error("LoadConfig should fail validation for unknown device")
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	defer func() { _ = os.Chdir(oldWd) }()

	if err := os.MkdirAll(ProjectConfigDir, 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	configContent := `
paths:
  layout: "from-file.yaml"
`
	configPath := filepath.Join(ProjectConfigDir, ProjectConfigFile)
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	v := viper.New()
	v.SetEnvPrefix("PATHVIZ")
	v.AutomaticEnv()

	// Simulate env var by setting directly in viper (env binding happens in CLI)
	v.Set("paths.layout", "from-env.yaml")

	cfg, err := LoadConfig(v)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Paths.Layout != "from-env.yaml" {
		t.Errorf("Paths.Layout = %q, want %q", cfg.Paths.Layout, "from-env.yaml")
	}
}

func TestLoadConfig_DurationParsing(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		yaml    string
		wantDur time.Duration
		field   string
	}{
		{
			name:    "milliseconds",
			yaml:    "interaction:\n  resize_debounce: 250ms",
			wantDur: 250 * time.Millisecond,
			field:   "interaction.resize_debounce",
		},
		{
			name:    "seconds",
			yaml:    "interaction:\n  touch_dismiss_delay: 5s",
			wantDur: 5 * time.Second,
			field:   "interaction.touch_dismiss_delay",
		},
		{
			name:    "frames",
			yaml:    "terminal:\n  frame_interval: 16ms",
			wantDur: 16 * time.Millisecond,
			field:   "terminal.frame_interval",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(tmpDir, tt.name+".yaml")
			if err := os.WriteFile(configPath, []byte(tt.yaml), 0644); err != nil {
				t.Fatalf("write config failed: %v", err)
			}

			v := viper.New()
			v.Set("config", configPath)

			cfg, err := LoadConfig(v)
			if err != nil {
				t.Fatalf("LoadConfig failed: %v", err)
			}

			var got time.Duration
			switch tt.field {
			case "interaction.resize_debounce":
				got = cfg.Interaction.ResizeDebounce
			case "interaction.touch_dismiss_delay":
				got = cfg.Interaction.TouchDismissDelay
			case "terminal.frame_interval":
				got = cfg.Terminal.FrameInterval
			}

			if got != tt.wantDur {
				t.Errorf("got %v, want %v", got, tt.wantDur)
			}
		})
	}
}

func TestGlobalConfigPath(t *testing.T) {
	path := globalConfigPath()
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("globalConfigPath returned %q but file doesn't exist", path)
		}
	}
}

func TestProjectConfigPath(t *testing.T) {
	path := projectConfigPath()
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("projectConfigPath returned %q but file doesn't exist", path)
		}
	}
}

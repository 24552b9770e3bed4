package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// ConfigPaths defines the search locations for config files.
const (
	// GlobalConfigDir is the XDG config directory name
	GlobalConfigDir = "pathviz"
	// GlobalConfigFile is the global config file name
	GlobalConfigFile = "config.yaml"
	// ProjectConfigDir is the project-local config directory
	ProjectConfigDir = ".pathviz"
	// ProjectConfigFile is the project-local config file name
	ProjectConfigFile = "config.yaml"
)

// LoadConfig loads configuration from files and viper settings.
// Precedence (later overrides earlier):
//  1. Default() values
//  2. ~/.config/pathviz/config.yaml (global)
//  3. .pathviz/config.yaml (project)
//  4. --config file (explicit, must exist)
//  5. Environment variables (PATHVIZ_*)
//  6. CLI flags (already bound to viper)
//
// Missing global and project files are silently ignored. The merged result
// is validated before it is returned.
func LoadConfig(v *viper.Viper) (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Register defaults per key so file values of a different Go type
	// (strings for durations, ints for floats) still override them.
	defaultMap, err := structToMap(cfg)
	if err != nil {
		return nil, err
	}
	setDefaults(v, "", defaultMap)

	// Load global config (~/.config/pathviz/config.yaml)
	globalPath := globalConfigPath()
	if globalPath != "" {
		if err := loadConfigFile(v, globalPath); err != nil {
			return nil, err
		}
	}

	// Load project config (.pathviz/config.yaml)
	projectPath := projectConfigPath()
	if projectPath != "" {
		if err := loadConfigFile(v, projectPath); err != nil {
			return nil, err
		}
	}

	// Explicit config file (from --config flag or PATHVIZ_CONFIG env)
	if explicitPath := v.GetString("config"); explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return nil, fmt.Errorf("explicit config: %w", err)
		}
		if err := loadConfigFile(v, explicitPath); err != nil {
			return nil, err
		}
	}

	// Unmarshal with duration hook
	if err := v.Unmarshal(cfg, viperDecodeHook()); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// globalConfigPath returns the global config file path if it exists.
func globalConfigPath() string {
	// Try XDG_CONFIG_HOME first
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		// Fall back to ~/.config
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(home, ".config")
	}

	path := filepath.Join(configDir, GlobalConfigDir, GlobalConfigFile)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// projectConfigPath returns the project config file path if it exists.
func projectConfigPath() string {
	path := filepath.Join(ProjectConfigDir, ProjectConfigFile)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// loadConfigFile loads a YAML config file and merges it into viper.
// Returns nil if the file doesn't exist.
func loadConfigFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	// Create a temporary viper to read the file
	fileViper := viper.New()
	fileViper.SetConfigType("yaml")
	if err := fileViper.ReadConfig(file); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	// Merge into main viper
	return v.MergeConfigMap(fileViper.AllSettings())
}

// viperDecodeHook returns the decoder config with duration hook.
func viperDecodeHook() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
}

// structToMap converts the defaults to a nested map keyed by mapstructure tags.
func structToMap(cfg *Config) (map[string]interface{}, error) {
	result := make(map[string]interface{})

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "mapstructure",
		Result:  &result,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			durationToStringHook(),
		),
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(cfg); err != nil {
		return nil, err
	}

	return result, nil
}

// setDefaults registers every leaf of m as a viper default, using dotted
// keys for nested maps.
func setDefaults(v *viper.Viper, prefix string, m map[string]interface{}) {
	for key, val := range m {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if nested, ok := val.(map[string]interface{}); ok {
			setDefaults(v, full, nested)
			continue
		}
		v.SetDefault(full, val)
	}
}

// durationToStringHook converts time.Duration to string for YAML compatibility.
func durationToStringHook() mapstructure.DecodeHookFunc {
	return func(from, to reflect.Type, data interface{}) (interface{}, error) {
		if from != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}
		return data.(time.Duration).String(), nil
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/labelsphere/pkg/encoding"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path wins over the search locations
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "LabelSphere")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "LabelSphere")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "labelsphere")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "labelsphere")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
// A countries list in the file replaces the default list entirely.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// LabelNames returns the label list: the lines of scene.countries_file when
// set, otherwise scene.countries. The file may be UTF-8 or EUC-KR.
func (c *Config) LabelNames() ([]string, error) {
	if c.Scene.CountriesFile == "" {
		return c.Scene.Countries, nil
	}
	data, err := os.ReadFile(c.Scene.CountriesFile)
	if err != nil {
		return nil, fmt.Errorf("reading labels: %w", err)
	}
	return encoding.Lines(data), nil
}

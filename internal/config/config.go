package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"
)

// Config holds all eduforecast configuration.
type Config struct {
	Scenario Scenario     `toml:"scenario" yaml:"scenario"`
	Report   ReportConfig `toml:"report" yaml:"report"`
}

// ReportConfig holds output preferences.
type ReportConfig struct {
	Output      string `toml:"output" yaml:"output"`
	Format      string `toml:"format,omitempty" yaml:"format,omitempty"`
	Currency    string `toml:"currency" yaml:"currency"`
	Title       string `toml:"title" yaml:"title"`
	ChartAnchor string `toml:"chart_anchor" yaml:"chart_anchor"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Scenario: DefaultScenario(),
		Report: ReportConfig{
			Output:      "college_business_model_full_analysis.xlsx",
			Currency:    "NPR",
			Title:       "College Business Model Analysis",
			ChartAnchor: "N2",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "eduforecast")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "eduforecast")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg, err := LoadFile(Path())
	if err != nil && os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFile reads a scenario file on top of the defaults. The decoder is
// chosen by extension: .toml, .yaml or .yml.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is user supplied on purpose
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, err
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveFile(Path(), cfg)
}

// SaveFile writes the config as TOML to path, creating parent directories.
func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // path is user supplied on purpose
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Package config loads editor configuration.
//
// Configuration comes from Default, optionally overlaid with a YAML file
// given by --config. Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Log formats understood by the logging package.
const (
	FormatText   = "text"
	FormatLogfmt = "logfmt"
	FormatJSON   = "json"
)

// DefaultOSCPort is the port QLab listens on for OSC.
const DefaultOSCPort = 53000

// Config is the complete editor configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	OSC    OSCConfig    `yaml:"osc"`
	Editor EditorConfig `yaml:"editor"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// File receives log output. Empty discards logs, since the terminal
	// belongs to the editor while it runs.
	File string `yaml:"file"`

	// Format is text, logfmt or json.
	Format string `yaml:"format"`
}

// OSCConfig configures the OSC mirror that publishes cue list changes.
type OSCConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`

	// Prefix is prepended to every address, e.g. /cuelist/cue/{id}/number.
	Prefix string `yaml:"prefix"`
}

// EditorConfig configures the editor itself.
type EditorConfig struct {
	// DefaultLabel is the label stem for quick-added cues ("cue 1", "cue 2", ...).
	DefaultLabel string `yaml:"default_label"`

	// Seed is the number of cues created at startup.
	Seed int `yaml:"seed"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: FormatText,
		},
		OSC: OSCConfig{
			Enabled: false,
			Host:    "127.0.0.1",
			Port:    DefaultOSCPort,
			Prefix:  "/cuelist",
		},
		Editor: EditorConfig{
			DefaultLabel: "cue",
		},
	}
}

// LoadFile loads configuration from path on top of Default.
// Keys missing from the file keep their default values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration and reports every problem found.
func (c *Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q: must be debug, info, warn or error", c.Log.Level))
	}

	switch c.Log.Format {
	case FormatText, FormatLogfmt, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("log.format %q: must be text, logfmt or json", c.Log.Format))
	}

	if c.OSC.Enabled {
		if c.OSC.Host == "" {
			errs = append(errs, errors.New("osc.host: required when osc is enabled"))
		}
		if c.OSC.Port < 1 || c.OSC.Port > 65535 {
			errs = append(errs, fmt.Errorf("osc.port %d: out of range", c.OSC.Port))
		}
		if !strings.HasPrefix(c.OSC.Prefix, "/") {
			errs = append(errs, fmt.Errorf("osc.prefix %q: must start with /", c.OSC.Prefix))
		}
	}

	if c.Editor.Seed < 0 {
		errs = append(errs, fmt.Errorf("editor.seed %d: must not be negative", c.Editor.Seed))
	}

	return errors.Join(errs...)
}

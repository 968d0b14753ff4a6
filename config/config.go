// Package config provides configuration loading for the game shell.
// Grid size and tick rate are fixed in game/types and cannot be configured.
package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all shell configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Style  StyleConfig  `yaml:"style"`
	Log    LogConfig    `yaml:"log"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
	Resizable bool   `yaml:"resizable"`
}

// StyleConfig holds drawing parameters. Colors are hex strings: RRGGBB or RRGGBBAA.
type StyleConfig struct {
	Radius       float32 `yaml:"radius"`        // Bend corner radius in window units
	StrokeWeight float32 `yaml:"stroke_weight"` // Body border width
	Background   string  `yaml:"background"`
	Body         string  `yaml:"body"`
	Food         string  `yaml:"food"`
	Border       string  `yaml:"border"`  // Outer play-area stroke
	Overlay      string  `yaml:"overlay"` // Game over dimming
	Text         string  `yaml:"text"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
	File   string `yaml:"file"`   // empty = stderr (window) or discarded (terminal)
}

// DerivedConfig holds values parsed from the raw config.
type DerivedConfig struct {
	Background color.NRGBA
	Body       color.NRGBA
	Food       color.NRGBA
	Border     color.NRGBA
	Overlay    color.NRGBA
	Text       color.NRGBA
	LogLevel   slog.Level
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load: %v", err))
	}
	return cfg
}

func (c *Config) computeDerived() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Style.Radius < 0 || c.Style.StrokeWeight < 0 {
		return fmt.Errorf("style radius and stroke_weight must not be negative")
	}

	colors := []struct {
		name string
		raw  string
		dst  *color.NRGBA
	}{
		{"background", c.Style.Background, &c.Derived.Background},
		{"body", c.Style.Body, &c.Derived.Body},
		{"food", c.Style.Food, &c.Derived.Food},
		{"border", c.Style.Border, &c.Derived.Border},
		{"overlay", c.Style.Overlay, &c.Derived.Overlay},
		{"text", c.Style.Text, &c.Derived.Text},
	}
	for _, col := range colors {
		parsed, err := ParseHex(col.raw)
		if err != nil {
			return fmt.Errorf("style.%s: %w", col.name, err)
		}
		*col.dst = parsed
	}

	if err := c.Derived.LogLevel.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// ParseHex parses "#RRGGBB" or "#RRGGBBAA" (leading # optional).
// Alpha is not premultiplied.
func ParseHex(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Package config provides configuration loading and access for the backdrop effects.
package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all effect configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Field     FieldConfig     `yaml:"field"`
	Pointer   PointerConfig   `yaml:"pointer"`
	Follower  FollowerConfig  `yaml:"follower"`
	Ripple    RippleConfig    `yaml:"ripple"`
	Gradient  GradientConfig  `yaml:"gradient"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	TargetFPS  int    `yaml:"target_fps"`
	Resizable  bool   `yaml:"resizable"`
	Background string `yaml:"background"` // hex color, e.g. "#f4f4f4"
}

// FieldConfig holds particle field parameters.
type FieldConfig struct {
	DensityDivisor float64 `yaml:"density_divisor"` // viewport area per particle
	ParticleRadius float64 `yaml:"particle_radius"`
	MaxSpeed       float64 `yaml:"max_speed"`     // velocity components drawn from [-max, max]
	LinkDistance   float64 `yaml:"link_distance"` // particle-particle links shorter than this are drawn
	LinkWidth      float64 `yaml:"link_width"`
	ParticleColor  string  `yaml:"particle_color"`
	LinkColor      string  `yaml:"link_color"`
}

// PointerConfig holds pointer interaction parameters.
type PointerConfig struct {
	Radius    float64 `yaml:"radius"` // particle-pointer links shorter than this are drawn
	LinkWidth float64 `yaml:"link_width"`
	LinkColor string  `yaml:"link_color"`
}

// FollowerConfig holds the smoothed pointer follower parameters.
type FollowerConfig struct {
	Smoothing  float64 `yaml:"smoothing"` // fraction of the remaining distance covered per frame
	DotRadius  float64 `yaml:"dot_radius"`
	DotColor   string  `yaml:"dot_color"`
	DotAlpha   float64 `yaml:"dot_alpha"`
	RingRadius float64 `yaml:"ring_radius"`
	RingWidth  float64 `yaml:"ring_width"`
	RingColor  string  `yaml:"ring_color"`
	RingAlpha  float64 `yaml:"ring_alpha"`
}

// RippleConfig holds click ripple parameters.
type RippleConfig struct {
	Growth    float64 `yaml:"growth"` // radius added per frame
	Decay     float64 `yaml:"decay"`  // opacity removed per frame
	MaxRadius float64 `yaml:"max_radius"`
	Width     float64 `yaml:"width"`
	Color     string  `yaml:"color"`
}

// GradientConfig holds shader background parameters.
type GradientConfig struct {
	Timestep  float64 `yaml:"timestep"` // simulated seconds added per frame
	Base      float64 `yaml:"base"`     // dark base gray level
	Amplitude float64 `yaml:"amplitude"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         int `yaml:"stats_window"` // ticks per stats window
	PerfCollectorWindow int `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Background    color.RGBA
	ParticleColor color.RGBA
	LinkColor     color.RGBA
	PointerColor  color.RGBA
	DotColor      color.RGBA
	RingColor     color.RGBA
	RippleColor   color.RGBA
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
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

// computeDerived parses color strings into RGBA values.
func (c *Config) computeDerived() error {
	colors := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"screen.background", c.Screen.Background, &c.Derived.Background},
		{"field.particle_color", c.Field.ParticleColor, &c.Derived.ParticleColor},
		{"field.link_color", c.Field.LinkColor, &c.Derived.LinkColor},
		{"pointer.link_color", c.Pointer.LinkColor, &c.Derived.PointerColor},
		{"follower.dot_color", c.Follower.DotColor, &c.Derived.DotColor},
		{"follower.ring_color", c.Follower.RingColor, &c.Derived.RingColor},
		{"ripple.color", c.Ripple.Color, &c.Derived.RippleColor},
	}
	for _, entry := range colors {
		rgba, err := ParseHexColor(entry.hex)
		if err != nil {
			return fmt.Errorf("%s: %w", entry.name, err)
		}
		*entry.dst = rgba
	}
	return nil
}

// ParseHexColor parses "#rgb" or "#rrggbb" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 255}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		err = fmt.Errorf("invalid length %d", len(s))
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
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

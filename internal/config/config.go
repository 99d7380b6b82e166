// Package config loads and saves simulator configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/gesture"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/particles"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/shapes"
)

const (
	DefaultCount     = 5000
	DefaultDt        = 1.0 / 60
	DefaultDuration  = 10.0
	DefaultFrameRate = 30
	DefaultAddr      = ":8765"
)

// Config is the full runtime configuration: ensemble size and shape, the
// physics tuning, classifier thresholds and the server surface. Color is
// rendering-only and never feeds physics.
type Config struct {
	Shape    string  `yaml:"shape"`
	Count    int     `yaml:"count"`
	Color    string  `yaml:"color"`
	Dt       float64 `yaml:"dt"`
	Duration float64 `yaml:"duration"`
	Seed     int64   `yaml:"seed"`

	Physics    particles.Params `yaml:"physics"`
	Classifier gesture.Config   `yaml:"classifier"`
	Server     ServerConfig     `yaml:"server"`
}

// ServerConfig holds the websocket surface settings.
type ServerConfig struct {
	Addr      string `yaml:"addr"`
	FrameRate int    `yaml:"frame_rate"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() *Config {
	return &Config{
		Shape:      string(shapes.Sphere),
		Count:      DefaultCount,
		Color:      "#8be9fd",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		Physics:    particles.DefaultParams(),
		Classifier: gesture.DefaultConfig(),
		Server: ServerConfig{
			Addr:      DefaultAddr,
			FrameRate: DefaultFrameRate,
		},
	}
}

// Load reads a yaml config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as yaml.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ShapeKind resolves the configured shape name. Unrecognized names fall
// back to the sphere template, matching the generator's own fallback.
func (c *Config) ShapeKind() shapes.Kind {
	kind := shapes.Kind(c.Shape)
	for _, k := range shapes.Kinds() {
		if k == kind {
			return k
		}
	}
	return shapes.Sphere
}

package config

import "github.com/rohitTo95/God-Hand-Particle-Simulator/internal/shapes"

func withDefaults(mutate func(*Config)) *Config {
	cfg := DefaultConfig()
	mutate(cfg)
	return cfg
}

// Presets maps shape name to named ready-made configurations.
var Presets = map[string]map[string]*Config{
	string(shapes.Sphere): {
		"calm": withDefaults(func(c *Config) {
			c.Count = 3000
			c.Physics.Friction = 0.92
			c.Physics.SpringK = 0.03
		}),
		"dense": withDefaults(func(c *Config) {
			c.Count = 20000
		}),
		"springy": withDefaults(func(c *Config) {
			c.Physics.Friction = 0.985
			c.Physics.SpringK = 0.01
		}),
	},
	string(shapes.Galaxy): {
		"dense": withDefaults(func(c *Config) {
			c.Shape = string(shapes.Galaxy)
			c.Count = 30000
		}),
		"sparse": withDefaults(func(c *Config) {
			c.Shape = string(shapes.Galaxy)
			c.Count = 2000
			c.Physics.Friction = 0.9
		}),
	},
	string(shapes.Saturn): {
		"showcase": withDefaults(func(c *Config) {
			c.Shape = string(shapes.Saturn)
			c.Count = 15000
			c.Physics.SwirlStrength = 0.08
		}),
	},
	string(shapes.Heart): {
		"pulse": withDefaults(func(c *Config) {
			c.Shape = string(shapes.Heart)
			c.Count = 8000
			c.Physics.Friction = 0.97
		}),
	},
	string(shapes.Buddha): {
		"still": withDefaults(func(c *Config) {
			c.Shape = string(shapes.Buddha)
			c.Count = 12000
			c.Physics.Friction = 0.9
			c.Physics.SpringK = 0.04
		}),
	},
}

// GetPreset returns the named preset for a shape, or nil.
func GetPreset(shape, preset string) *Config {
	shapePresets, ok := Presets[shape]
	if !ok {
		return nil
	}
	cfg, ok := shapePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

// ListPresets returns the preset names available for a shape.
func ListPresets(shape string) []string {
	shapePresets, ok := Presets[shape]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(shapePresets))
	for name := range shapePresets {
		names = append(names, name)
	}
	return names
}

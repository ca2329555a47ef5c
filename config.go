package skiplist

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// LoadConfig reads a Config from a YAML file. Fields absent from the file
// keep their defaults.
//
// Example:
//
//	max_level: 16
//	probability: 0.25
//	seed: 42
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("skiplist: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("skiplist: parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// WithConfig applies a whole Config, typically one produced by LoadConfig.
// Options given after it still override individual fields.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		src := c.source
		*c = cfg
		if cfg.source == nil {
			c.source = src
		}
	}
}

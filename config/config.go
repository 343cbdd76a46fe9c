// Package config loads the planner configuration from YAML or JSON with
// optional environment overrides (prefix LT_, path separator __).
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/patriknoomi/laddtider/core/metrics"
	"github.com/patriknoomi/laddtider/core/planner"
	"github.com/patriknoomi/laddtider/core/pricing"
	"github.com/patriknoomi/laddtider/infra/mqtt"
	"github.com/patriknoomi/laddtider/infra/spot"
)

// Config is the full configuration surface of the planner.
type Config struct {
	Spot    spot.Config    `json:"spot"`
	Pricing pricing.Config `json:"pricing"`
	Planner planner.Config `json:"planner"`
	MQTT    mqtt.Config    `json:"mqtt"`
	Metrics metrics.Config `json:"metrics"`
}

// Default returns the configuration with all defaults applied, matching the
// stock SE3/Tibber setup. It is used when no config file is given.
func Default() *Config {
	var cfg Config
	cfg.setDefaults()
	return &cfg
}

// Load reads the configuration file at path, applies environment overrides,
// defaults and validation. An empty path yields Default() plus environment
// overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	if err := k.Load(env.Provider("LT_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "lt_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) setDefaults() {
	c.Spot.SetDefaults()
	c.Pricing.SetDefaults()
	c.Planner.SetDefaults()
	c.MQTT.SetDefaults()
	c.Metrics.SetDefaults()
}

// Validate checks every sub-configuration.
func (c Config) Validate() error {
	if err := c.Spot.Validate(); err != nil {
		return fmt.Errorf("spot: %w", err)
	}
	if err := c.Pricing.Validate(); err != nil {
		return fmt.Errorf("pricing: %w", err)
	}
	if err := c.Planner.Validate(); err != nil {
		return fmt.Errorf("planner: %w", err)
	}
	if err := c.MQTT.Validate(); err != nil {
		return fmt.Errorf("mqtt: %w", err)
	}
	if err := c.Metrics.Validate(); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	return nil
}

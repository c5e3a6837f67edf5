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

	"github.com/kilianp07/derby/core/metrics"
	"github.com/kilianp07/derby/infra/mqtt"
	"github.com/kilianp07/derby/infra/store"
)

type Config struct {
	Schedule ScheduleConfig `json:"schedule"`
	Store    store.Config   `json:"store"`
	Metrics  metrics.Config `json:"metrics"`
	MQTT     mqtt.Config    `json:"mqtt"`
	HTTP     HTTPConfig     `json:"http"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	cfg := Config{Schedule: DefaultSchedule()}
	cfg.setDefaults()
	return cfg
}

// Load reads the yaml or json file at path, applies K_ prefixed environment
// overrides (K_SCHEDULE__LANES=4) and validates the result. An empty path
// loads defaults plus environment only.
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
	// Optional environment overrides
	if err := k.Load(env.Provider("K_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "k_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	// keys absent from the sources keep their default values
	cfg := Config{Schedule: DefaultSchedule()}
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
	c.Schedule.SetDefaults()
	c.Store.SetDefaults()
	if c.MQTT.Enabled() {
		c.MQTT.SetDefaults()
	}
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Schedule.Validate(); err != nil {
		return fmt.Errorf("schedule: %w", err)
	}
	if err := c.Store.Validate(); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	return nil
}

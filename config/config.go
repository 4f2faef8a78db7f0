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

	"github.com/sanjithdevineni/AoA-Project-1/bench"
	"github.com/sanjithdevineni/AoA-Project-1/core/metrics"
	"github.com/sanjithdevineni/AoA-Project-1/infra/mqtt"
)

type Config struct {
	MQTT    mqtt.Config    `json:"mqtt"`
	Metrics metrics.Config `json:"metrics"`
	Bench   bench.Config   `json:"bench"`
	Logging LoggingConfig  `json:"logging"`
}

// Default returns a configuration with every section set to its defaults.
func Default() *Config {
	var cfg Config
	cfg.MQTT.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.Bench.SetDefaults()
	cfg.Logging.SetDefaults()
	return &cfg
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
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
	// Optional environment overrides
	if err := k.Load(env.Provider("EVPLAN_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "evplan_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.MQTT.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.Bench.SetDefaults()
	cfg.Logging.SetDefaults()
	if err := cfg.Metrics.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Bench.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

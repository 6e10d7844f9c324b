// Package config loads settings from built-in defaults, an optional YAML
// file, and VECERKA_* environment variables, in that order.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix namespaces environment overrides: VECERKA_INVENTORY_CAPACITY
// sets inventory.capacity.
const EnvPrefix = "VECERKA_"

type Config struct {
	Log       LogConfig       `koanf:"log"`
	Inventory InventoryConfig `koanf:"inventory"`
	Interact  InteractConfig  `koanf:"interact"`
	Sim       SimConfig       `koanf:"sim"`
	Server    ServerConfig    `koanf:"server"`
	Metrics   MetricsConfig   `koanf:"metrics"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	RunLog    RunLogConfig    `koanf:"runlog"`
}

type LogConfig struct {
	Level    string `koanf:"level"`
	Format   string `koanf:"format"` // json, text
	PanelMax int    `koanf:"panel_max"`
}

type InventoryConfig struct {
	Capacity int `koanf:"capacity"`
	Slots    int `koanf:"slots"` // HUD slots, independent of capacity
}

type InteractConfig struct {
	Radius        float64 `koanf:"radius"`
	Reach         float64 `koanf:"reach"` // tiles ahead of the player
	MaxCandidates int     `koanf:"max_candidates"`
}

type SimConfig struct {
	TickInterval time.Duration `koanf:"tick_interval"`
}

type ServerConfig struct {
	Port    int    `koanf:"port"`
	HostKey string `koanf:"host_key"`
}

type MetricsConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Interval time.Duration `koanf:"interval"`
}

type CatalogConfig struct {
	Path string `koanf:"path"` // empty uses the embedded catalog
}

type RunLogConfig struct {
	Enabled bool `koanf:"enabled"`
}

var defaults = map[string]any{
	"log.level":               "info",
	"log.format":              "text",
	"log.panel_max":           100,
	"inventory.capacity":      20,
	"inventory.slots":         8,
	"interact.radius":         0.5,
	"interact.reach":          1.0,
	"interact.max_candidates": 3,
	"sim.tick_interval":       "100ms",
	"server.port":             2222,
	"server.host_key":         "server_host_key",
	"metrics.enabled":         false,
	"metrics.interval":        "1m",
	"catalog.path":            "",
	"runlog.enabled":          true,
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		// Defaults alone cannot fail to decode.
		panic(fmt.Sprintf("config defaults: %v", err))
	}
	return cfg
}

// Load builds a Config. path may be empty to skip the file layer.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	for key, v := range defaults {
		if err := k.Set(key, v); err != nil {
			return nil, fmt.Errorf("set default %s: %w", key, err)
		}
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps VECERKA_INTERACT_MAX_CANDIDATES to interact.max_candidates:
// the first underscore separates the section, the rest stay in the key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, rest, found := strings.Cut(s, "_")
	if !found {
		return s
	}
	return section + "." + rest
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Inventory.Capacity <= 0:
		return fmt.Errorf("inventory.capacity must be positive, got %d", c.Inventory.Capacity)
	case c.Inventory.Slots < 0:
		return fmt.Errorf("inventory.slots must not be negative, got %d", c.Inventory.Slots)
	case c.Interact.Radius <= 0:
		return fmt.Errorf("interact.radius must be positive, got %g", c.Interact.Radius)
	case c.Interact.MaxCandidates <= 0:
		return fmt.Errorf("interact.max_candidates must be positive, got %d", c.Interact.MaxCandidates)
	case c.Sim.TickInterval <= 0:
		return fmt.Errorf("sim.tick_interval must be positive, got %s", c.Sim.TickInterval)
	}
	return nil
}

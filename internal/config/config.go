package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Server holds all configuration for the simulation server.
type Server struct {
	// Simulation
	TickMs int `yaml:"tick_ms"`

	// Content
	CatalogPath string `yaml:"catalog_path"` // empty = embedded default

	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Demo entity equipped at startup
	Demo DemoEntity `yaml:"demo"`
}

// DemoEntity describes the entity the server creates and equips on boot.
type DemoEntity struct {
	Name      string `yaml:"name"`
	AbilityID string `yaml:"ability_id"`
}

// Default returns a Server config with sensible defaults.
func Default() Server {
	return Server{
		TickMs:   50,
		LogLevel: "info",
		Demo: DemoEntity{
			Name:      "Drifter",
			AbilityID: "emberblade",
		},
	}
}

// Load reads server config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Server, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// SlogLevel maps the configured level string to a slog.Level.
func (s Server) SlogLevel() slog.Level {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

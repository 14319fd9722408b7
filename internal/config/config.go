package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/zeusync/duckpond/internal/core/observability/log"
)

// EnvPrefix scopes environment overrides: DUCKPOND_LOG_LEVEL -> log.level.
const EnvPrefix = "DUCKPOND_"

const (
	OutputStdout = "stdout"
	OutputBus    = "bus"
)

type Config struct {
	Log    LogConfig    `koanf:"log"`
	Roster RosterConfig `koanf:"roster"`
	Output OutputConfig `koanf:"output"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // json, console
}

type RosterConfig struct {
	Path string `koanf:"path"`
}

type OutputConfig struct {
	Mode string `koanf:"mode"` // stdout, bus
}

// Load applies defaults, then the optional YAML file, then the environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		"log.level":   "info",
		"log.format":  "console",
		"roster.path": "",
		"output.mode": OutputStdout,
	}
	for key, v := range defaults {
		if err := k.Set(key, v); err != nil {
			return nil, err
		}
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	switch c.Output.Mode {
	case OutputStdout, OutputBus:
	default:
		return fmt.Errorf("unknown output mode %q", c.Output.Mode)
	}
	return nil
}

// LogLevel returns the parsed log level; Validate has already checked it.
func (c *Config) LogLevel() log.Level {
	l, _ := log.ParseLevel(c.Log.Level)
	return l
}

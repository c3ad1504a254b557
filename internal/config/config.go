// Package config loads folio settings from defaults, an optional YAML file
// and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/Zachkp/folio/internal/theme"
)

// EnvPrefix is the prefix of environment overrides, e.g. FOLIO_PORT.
const EnvPrefix = "FOLIO_"

// Config is the top-level configuration, corresponding to folio.yml.
type Config struct {
	Port             int           `koanf:"port"`
	Skin             string        `koanf:"skin"`
	ContentFile      string        `koanf:"content_file"`
	OutputDir        string        `koanf:"output_dir"`
	Mode             string        `koanf:"mode"`
	BackdropInterval time.Duration `koanf:"backdrop_interval"`
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() *Config {
	return &Config{
		Port:             8080,
		Skin:             theme.DefaultSkin,
		ContentFile:      "content.yml",
		OutputDir:        "dist",
		Mode:             "release",
		BackdropInterval: 100 * time.Millisecond,
	}
}

// Load reads configuration from the YAML file at path, if it exists, then
// overlays FOLIO_* environment variables. A bare PORT variable is honoured
// when FOLIO_PORT is unset, as hosting platforms set it.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if !k.Exists("port") {
		if p := os.Getenv("PORT"); p != "" {
			port, err := strconv.Atoi(p)
			if err != nil {
				return nil, fmt.Errorf("invalid PORT %q: %w", p, err)
			}
			cfg.Port = port
		}
	}

	return cfg, nil
}

var validModes = map[string]bool{
	"debug":   true,
	"release": true,
	"test":    true,
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range 1-65535", c.Port)
	}
	if !theme.Valid(c.Skin) {
		return fmt.Errorf("invalid skin %q: must be one of %s", c.Skin, strings.Join(theme.Names(), ", "))
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if !validModes[c.Mode] {
		return fmt.Errorf("invalid mode %q: must be one of debug, release, test", c.Mode)
	}
	if c.BackdropInterval <= 0 {
		return fmt.Errorf("backdrop_interval must be positive")
	}
	return nil
}

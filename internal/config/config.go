// Package config loads markup engine configuration from TOML files.
//
// Configuration is optional: a missing config file is not an error and
// every field has a sensible default, so callers always get a usable
// Config back. Live reload is available through Watcher.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/notemark/internal/markup"
)

// Config is the top-level configuration.
type Config struct {
	// Markup configures bullet recognition.
	Markup MarkupConfig `toml:"markup"`

	// Store configures the note store.
	Store StoreConfig `toml:"store"`
}

// MarkupConfig configures the bullet scheme.
type MarkupConfig struct {
	// Bullet is the prefix added when bulleting lines.
	Bullet string `toml:"bullet"`

	// LegacyBullets are prefixes recognized as bullets but never added.
	LegacyBullets []string `toml:"legacy_bullets"`
}

// StoreConfig configures the note store.
type StoreConfig struct {
	// DataPath is the path to the notes data file.
	DataPath string `toml:"data_path"`
}

// Default returns the built-in configuration.
func Default() Config {
	scheme := markup.DefaultScheme()
	return Config{
		Markup: MarkupConfig{
			Bullet:        scheme.Bullet,
			LegacyBullets: scheme.LegacyBullets,
		},
		Store: StoreConfig{
			DataPath: "Coursemate_data.json",
		},
	}
}

// Load reads configuration from a TOML file, layered over the defaults.
// A missing file is not an error: the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills in zero values left by a partial config file.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Markup.Bullet == "" {
		c.Markup.Bullet = def.Markup.Bullet
	}
	if c.Markup.LegacyBullets == nil {
		c.Markup.LegacyBullets = def.Markup.LegacyBullets
	}
	if c.Store.DataPath == "" {
		c.Store.DataPath = def.Store.DataPath
	}
}

// Scheme returns the markup scheme described by the configuration.
func (c Config) Scheme() markup.Scheme {
	return markup.Scheme{
		Bullet:        c.Markup.Bullet,
		LegacyBullets: c.Markup.LegacyBullets,
	}
}

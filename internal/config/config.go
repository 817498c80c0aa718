// Package config loads the declarative site configuration.
//
// Configuration is optional and failure is never fatal: a missing or
// unparsable config.yaml produces a warning and default settings, and the
// build proceeds with alphabetical, root-first ordering and no dropdowns.
package config

import (
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/mdsite/internal/mathspan"
	"git.home.luguber.info/inful/mdsite/internal/nav"
)

// Config is the full site configuration. The navigation keys (page_order,
// navbar_order, dropdowns) are decoded into the typed nav model here, at
// load time; unrecognized shapes are warned about then, not during
// rendering.
type Config struct {
	Title      string `yaml:"title"`
	ContentDir string `yaml:"content_dir"`
	OutputDir  string `yaml:"output_dir"`
	AssetsDir  string `yaml:"assets_dir"`

	Math MathConfig `yaml:"math"`

	PageOrder   []nav.OrderItem `yaml:"page_order"`
	NavbarOrder []nav.OrderItem `yaml:"navbar_order"`
	Dropdowns   nav.DropdownSet `yaml:"dropdowns"`
}

// MathConfig selects the math handling strategy.
type MathConfig struct {
	Strategy mathspan.Strategy `yaml:"strategy"`
}

// Default returns the configuration used when no config file is present.
func Default() Config {
	return Config{
		Title:      "Site",
		ContentDir: "content",
		OutputDir:  "dist",
		AssetsDir:  "assets",
		Math:       MathConfig{Strategy: mathspan.StrategyProtect},
	}
}

// Load reads the configuration file at path. A missing or invalid file is
// recovered by falling back to defaults with a warning; the returned
// configuration is always usable.
func Load(path string) Config {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("No configuration file, using defaults", "path", path)
		} else {
			slog.Warn("Failed to read configuration, using defaults", "path", path, "error", err)
		}
		return cfg
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		slog.Warn("Failed to parse configuration, using defaults", "path", path, "error", err)
		return Default()
	}

	cfg.normalize()
	cfg.applyEnv()
	return cfg
}

// Nav returns the typed navigation configuration.
func (c Config) Nav() nav.Config {
	return nav.Config{
		PageOrder:   c.PageOrder,
		NavbarOrder: c.NavbarOrder,
		Dropdowns:   []nav.Dropdown(c.Dropdowns),
	}
}

func (c *Config) normalize() {
	def := Default()
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.ContentDir == "" {
		c.ContentDir = def.ContentDir
	}
	if c.OutputDir == "" {
		c.OutputDir = def.OutputDir
	}
	if c.AssetsDir == "" {
		c.AssetsDir = def.AssetsDir
	}

	switch c.Math.Strategy {
	case "", mathspan.StrategyProtect, mathspan.StrategyEmbed:
		if c.Math.Strategy == "" {
			c.Math.Strategy = mathspan.StrategyProtect
		}
	default:
		slog.Warn("Unknown math strategy, using protect", "strategy", c.Math.Strategy)
		c.Math.Strategy = mathspan.StrategyProtect
	}
}

// applyEnv applies MDSITE_* environment overrides. The CLI loads a .env
// file before parsing, so these also work from project-local env files.
func (c *Config) applyEnv() {
	if v := os.Getenv("MDSITE_CONTENT_DIR"); v != "" {
		c.ContentDir = v
	}
	if v := os.Getenv("MDSITE_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
}

// Package config loads server settings: built-in defaults, then an optional
// YAML file, then DICEROLLER_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"diceroller/internal/dice"
	"diceroller/internal/errs"
)

const envPrefix = "DICEROLLER_"

// Config holds everything the server needs at startup.
type Config struct {
	Addr         string        `yaml:"addr" env:"ADDR"`
	LogMode      string        `yaml:"log_mode" env:"LOG_MODE"`
	RollDelay    time.Duration `yaml:"roll_delay" env:"ROLL_DELAY"`
	SessionTTL   time.Duration `yaml:"session_ttl" env:"SESSION_TTL"`
	DiceSetPath  string        `yaml:"dice_set" env:"DICE_SET"`
	TemplatesDir string        `yaml:"templates_dir" env:"TEMPLATES_DIR"`
	Features     dice.Features `yaml:"features" envPrefix:"FEATURE_"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Addr:         ":8080",
		LogMode:      "dev",
		RollDelay:    dice.DefaultDelay,
		SessionTTL:   24 * time.Hour,
		TemplatesDir: "templates",
		Features:     dice.AllFeatures(),
	}
}

// Load applies the YAML file at path (skipped when path is empty) and then
// the environment on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return Config{}, errs.Wrap(err, "read config")
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, errs.Wrap(err, "decode config")
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, errs.Wrap(err, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate fills blanks and rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.TemplatesDir == "" {
		c.TemplatesDir = "templates"
	}
	if c.RollDelay < 0 {
		return errs.Fatalf("roll delay must not be negative, got %s", c.RollDelay)
	}
	if c.SessionTTL < 0 {
		return errs.Fatalf("session ttl must not be negative, got %s", c.SessionTTL)
	}
	return nil
}

// DiceSet loads the configured dice set, or the built-in one when no path is
// set.
func (c *Config) DiceSet() (*dice.Set, error) {
	if c.DiceSetPath == "" {
		return dice.DefaultSet(), nil
	}
	return dice.LoadSet(c.DiceSetPath)
}

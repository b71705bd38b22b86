package util

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// Config holds runtime settings and flags.
type Config struct {
	SeedText     string `env:"LIFESIM_SEED"`
	Dialect      string `env:"LIFESIM_DB_DIALECT" envDefault:"sqlite"`
	DSN          string `env:"DATABASE_URL"`
	SQLitePath   string `env:"LIFESIM_SQLITE_PATH" envDefault:"tmp/lifesim.sqlite"`
	Theme        string `env:"LIFESIM_THEME" envDefault:"catppuccin"`
	BirthYear    int    `env:"LIFESIM_BIRTH_YEAR"`
	Debug        bool   `env:"LIFESIM_DEBUG"`
	RulesVersion string `env:"-"`
}

// Load reads Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate normalizes the dialect and checks the fields it needs.
func (c *Config) Validate() error {
	c.Dialect = strings.ToLower(strings.TrimSpace(c.Dialect))
	switch c.Dialect {
	case DialectSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return fmt.Errorf("sqlite path is required")
		}
	case DialectPostgres:
		if strings.TrimSpace(c.DSN) == "" {
			return fmt.Errorf("DATABASE_URL is required for postgres")
		}
	default:
		return fmt.Errorf("unknown database dialect %q", c.Dialect)
	}
	return nil
}

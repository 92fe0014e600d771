package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment driven configuration for the website service.
type Config struct {
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"corchet-web"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPHost        string        `env:"HTTP_HOST" envDefault:"127.0.0.1"`
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"5000"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	Debug           bool          `env:"DEBUG" envDefault:"false"`
	SecretKey       string        `env:"CORCHET_SECRET" envDefault:"dev-secret-key"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	DatabasePath    string        `env:"DB_SQLITE_PATH" envDefault:"site.db"`
	DBMaxIdleConns  int           `env:"DB_MAX_IDLE_CONNS" envDefault:"2"`
	DBMaxOpenConns  int           `env:"DB_MAX_OPEN_CONNS" envDefault:"5"`
	DBConnLifetime  time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// Load parses environment variables into Config.
//
// Configuration Loading Order (highest to lowest priority):
// 1. Environment variables
// 2. .env file (if present)
// 3. Default values from struct tags
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	if strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, fmt.Errorf("CORCHET_SECRET must not be blank")
	}
	if strings.TrimSpace(cfg.DatabasePath) == "" {
		return nil, fmt.Errorf("DB_SQLITE_PATH must not be blank")
	}

	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HTTPHost, c.HTTPPort)
}

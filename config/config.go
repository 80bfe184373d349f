package config

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the server.
type Config struct {
	Addr            string        `envconfig:"MONEY_ADDR" default:":8080"`
	CoinbaseURL     string        `envconfig:"MONEY_COINBASE_URL"` // empty uses the coinbase default
	CoinbaseTimeout time.Duration `envconfig:"MONEY_COINBASE_TIMEOUT" default:"5s"`
	RefreshInterval time.Duration `envconfig:"MONEY_REFRESH_INTERVAL" default:"1m"`
	LogLevel        string        `envconfig:"MONEY_LOG_LEVEL" default:"info"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.RefreshInterval <= 0 {
		return nil, errors.New("refresh interval must be positive")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.New("log level must be one of debug, info, warn, error")
	}
	return &cfg, nil
}

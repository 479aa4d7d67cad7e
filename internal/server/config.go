package server

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config controls calcd.
type Config struct {
	Addr            string        `env:"CALCPAD_ADDR"             envDefault:":8080"`
	LogLevel        string        `env:"CALCPAD_LOG_LEVEL"        envDefault:"info"`
	ShutdownTimeout time.Duration `env:"CALCPAD_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	MaxBodyBytes    int64         `env:"CALCPAD_MAX_BODY_BYTES"   envDefault:"4096"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("CALCPAD_MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}
	return cfg, nil
}

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration read from TM_* environment variables.
// CLI flags override these values.
type Config struct {
	LogLevel  string `env:"TM_LOG_LEVEL"  envDefault:"warn"`
	LogFormat string `env:"TM_LOG_FORMAT" envDefault:"text"`
	MaxSteps  int    `env:"TM_MAX_STEPS"  envDefault:"1000000"`
	Workers   int    `env:"TM_WORKERS"    envDefault:"4"`
	HTTPAddr  string `env:"TM_HTTP_ADDR"  envDefault:"127.0.0.1:8080"`

	Redis RedisConfig
}

// RedisConfig enables the Redis report store when Addr is set.
type RedisConfig struct {
	Addr     string        `env:"TM_REDIS_ADDR"`
	Password string        `env:"TM_REDIS_PASSWORD"`
	DB       int           `env:"TM_REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"TM_REPORT_TTL" envDefault:"24h"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxSteps < 0 {
		return Config{}, fmt.Errorf("TM_MAX_STEPS must not be negative, got %d", cfg.MaxSteps)
	}
	if cfg.Workers < 1 {
		return Config{}, fmt.Errorf("TM_WORKERS must be positive, got %d", cfg.Workers)
	}
	return cfg, nil
}

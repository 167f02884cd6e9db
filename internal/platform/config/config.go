// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the settings for the server and the collector.
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	// DatabaseDriver selects the storage backend: "sqlite" or "postgres".
	DatabaseDriver string `envconfig:"DATABASE_DRIVER" default:"sqlite"`
	// DatabaseURL is the Postgres DSN. Required when DatabaseDriver is "postgres".
	DatabaseURL string `envconfig:"DATABASE_URL"`
	// SQLitePath is the database file used by the sqlite driver.
	SQLitePath    string `envconfig:"SQLITE_PATH" default:"stock_dashboard.db"`
	RunMigrations bool   `envconfig:"RUN_MIGRATIONS" default:"true"`

	// RedisAddr enables the bar cache when set; empty disables caching.
	RedisAddr     string        `envconfig:"REDIS_ADDR"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	CacheTTL      time.Duration `envconfig:"CACHE_TTL" default:"5m"`

	AlphaVantageAPIKey  string        `envconfig:"ALPHA_VANTAGE_API_KEY"`
	AlphaVantageBaseURL string        `envconfig:"ALPHA_VANTAGE_BASE_URL" default:"https://www.alphavantage.co"`
	HTTPTimeout         time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	// Tickers seeds the collection universe; stored active stocks are
	// collected as well.
	Tickers             []string `envconfig:"TICKERS" default:"AAPL,MSFT,GOOGL,AMZN,NVDA,META,TSLA"`
	UpdateIntervalHours int      `envconfig:"UPDATE_INTERVAL_HOURS" default:"24"`
	RateLimitPerMinute  int      `envconfig:"RATE_LIMIT_PER_MINUTE" default:"5"`
}

// Load reads the .env file if present, then maps environment variables
// into a Config and validates it.
func Load() (*Config, error) {
	// Production environments may not ship a .env file, so a load
	// failure is not an error.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints that envconfig cannot express.
func (c *Config) Validate() error {
	switch c.DatabaseDriver {
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required when DATABASE_DRIVER is sqlite")
		}
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when DATABASE_DRIVER is postgres")
		}
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q (want sqlite or postgres)", c.DatabaseDriver)
	}
	if c.UpdateIntervalHours <= 0 {
		return fmt.Errorf("UPDATE_INTERVAL_HOURS must be positive, got %d", c.UpdateIntervalHours)
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive, got %d", c.RateLimitPerMinute)
	}
	return nil
}

package config

import (
	"errors"
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP     HTTP       `mapstructure:",squash"`
	Redis    Redis      `mapstructure:",squash"`
	Search   Search     `mapstructure:",squash"`
	Session  Session    `mapstructure:",squash"`
}

type HTTP struct {
	Port           int           `mapstructure:"HTTP_PORT"`
	Timeout        time.Duration `mapstructure:"HTTP_TIMEOUT"`
	RateLimitRPS   int           `mapstructure:"HTTP_RATE_LIMIT_RPS"`
	AllowedOrigins []string      `mapstructure:"HTTP_CORS_ALLOWED_ORIGINS"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// Search holds the flight search result cache configuration.
type Search struct {
	CacheExpiration time.Duration `mapstructure:"SEARCH_CACHE_EXPIRATION"`
}

// Session holds the in-memory session store configuration.
// Sessions idle for longer than TTL are evicted every CleanupInterval.
type Session struct {
	TTL             time.Duration `mapstructure:"SESSION_TTL"`
	CleanupInterval time.Duration `mapstructure:"SESSION_CLEANUP_INTERVAL"`
}

// Validate rejects values the server cannot run with.
func (c Config) Validate() error {
	var errs []error

	if c.HTTP.RateLimitRPS <= 0 {
		errs = append(errs, errors.New("HTTP_RATE_LIMIT_RPS must be positive"))
	}

	if c.Session.TTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}

	if c.Session.CleanupInterval <= 0 {
		errs = append(errs, errors.New("SESSION_CLEANUP_INTERVAL must be positive"))
	}

	return errors.Join(errs...)
}

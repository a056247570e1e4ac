// Package config provides configuration loading from environment variables.
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-envconfig"
)

// ErrInvalidConfig is returned when configuration values fail validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Store backends.
const (
	BackendMongo  = "mongo"
	BackendMemory = "memory"
)

// Config holds all configuration for the application.
type Config struct {
	// Server settings
	Port           int      `env:"PORT, default=3000" json:"port" validate:"min=1,max=65535"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS, default=*" json:"allowed_origins"`

	// Storage settings
	StoreBackend        string        `env:"STORE_BACKEND, default=mongo" json:"store_backend" validate:"oneof=mongo memory"`
	MongoURI            string        `env:"MONGO_URI, default=mongodb://localhost:27017" json:"-" validate:"required,uri"` // May embed credentials
	MongoDatabase       string        `env:"MONGO_DATABASE, default=jobboard" json:"mongo_database" validate:"required"`
	MongoCollection     string        `env:"MONGO_COLLECTION, default=jobs" json:"mongo_collection" validate:"required"`
	MongoConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT, default=10s" json:"mongo_connect_timeout" validate:"gt=0"`

	// Logging settings
	LogFormat string `env:"LOG_FORMAT, default=text" json:"log_format"` // "json" or "text"
	LogLevel  string `env:"LOG_LEVEL, default=info" json:"log_level"`   // "debug", "info", "warn", "error"
}

// Load reads configuration from environment variables using go-envconfig
// and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := envconfig.Process(context.Background(), cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration against its validate tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err.Error())
	}
	return nil
}

// MemoryBackend returns true if jobs are kept in process memory.
func (c *Config) MemoryBackend() bool {
	return c.StoreBackend == BackendMemory
}

// NewLogger creates a structured logger based on the configuration.
// When LogFormat is "json", it outputs JSON logs suitable for production.
// Otherwise, it outputs human-readable text logs.
func (c *Config) NewLogger() *slog.Logger {
	level := parseLogLevel(c.LogLevel)

	var handler slog.Handler
	if strings.ToLower(c.LogFormat) == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}

	return slog.New(handler)
}

// String returns a string representation of the config with sensitive values masked.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Port: %d, StoreBackend: %s, MongoURI: %s, MongoDatabase: %s, MongoCollection: %s, MongoConnectTimeout: %s, LogFormat: %s, LogLevel: %s}",
		c.Port,
		c.StoreBackend,
		RedactURI(c.MongoURI),
		c.MongoDatabase,
		c.MongoCollection,
		c.MongoConnectTimeout,
		c.LogFormat,
		c.LogLevel,
	)
}

// RedactURI masks the password of a connection string.
// Unparseable input is replaced entirely.
func RedactURI(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<redacted>"
	}
	return u.Redacted()
}

// parseLogLevel converts a string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

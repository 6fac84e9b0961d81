package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config holds process configuration
type Config struct {
	// Database
	DatabaseURL string

	// Events
	RedisURL      string
	EventsChannel string

	// Server
	Port            string
	ShutdownTimeout time.Duration

	// Logging
	LogLevel    string
	Environment string
}

// Load reads .env (if present) and the process environment
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DatabaseURL:     getEnv("DATABASE_URL", "sqlite://api_hits.db"),
		RedisURL:        getEnv("REDIS_URL", ""),
		EventsChannel:   getEnv("EVENTS_CHANNEL", "api_hits"),
		Port:            getEnv("PORT", "5000"),
		ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Environment:     getEnv("ENV", "production"),
	}
}

// BindFlags registers command line overrides for the loaded values.
// Flags keep the current value as their default, so an unset flag changes nothing.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.DatabaseURL, "database-url", c.DatabaseURL, "database connection string (sqlite://path or postgres://...)")
	fs.StringVar(&c.Port, "port", c.Port, "HTTP listen port")
	fs.StringVar(&c.RedisURL, "redis-url", c.RedisURL, "redis URL for publishing hit events (empty disables)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// Validate checks that the configuration can be used to start the server
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}

	port, err := strconv.Atoi(c.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid port: %q", c.Port)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}

	return nil
}

// IsDevelopment reports whether verbose development logging should be used
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development" || c.LogLevel == "debug"
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

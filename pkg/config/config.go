package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv   string
	LogLevel string
	UserID   string

	// Database
	DatabaseURL    string
	DatabaseDriver string
	SQLitePath     string

	// Scheduling
	Timezone        string
	PriorityDefault int64
	PriorityGap     int64
	MaxExtensions   int
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	databaseURL := getEnv("DATABASE_URL", "")
	defaultDriver := "sqlite"
	if databaseURL != "" {
		defaultDriver = "auto"
	}

	cfg := &Config{
		AppEnv:   getEnv("SCHEDULER_ENV", "development"),
		LogLevel: getEnv("SCHEDULER_LOG_LEVEL", "info"),
		UserID:   getEnv("SCHEDULER_USER_ID", "00000000-0000-0000-0000-000000000001"),

		DatabaseURL:    databaseURL,
		DatabaseDriver: getEnv("DATABASE_DRIVER", defaultDriver),
		SQLitePath:     getEnv("SQLITE_PATH", defaultSQLitePath()),

		Timezone:        getEnv("SCHEDULER_TIMEZONE", "UTC"),
		PriorityDefault: getInt64Env("PRIORITY_DEFAULT", 1_000_000_000),
		PriorityGap:     getInt64Env("PRIORITY_GAP", 1_000),
		MaxExtensions:   getIntEnv("SCHEDULER_MAX_EXTENSIONS", 1),
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// LocalMode reports whether the embedded SQLite store is used.
func (c *Config) LocalMode() bool {
	return c.DatabaseDriver == "sqlite"
}

// Location resolves the configured IANA zone, falling back to UTC when the
// name is unknown.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func defaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".scheduler", "scheduler.db")
	}
	return filepath.Join(home, ".scheduler", "scheduler.db")
}

// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// MemoryDB selects a process-local store instead of a database file.
const MemoryDB = ":memory:"

// Config holds all runtime settings.
type Config struct {
	DBPath                string
	LoadDelay             time.Duration
	AllowNegativeDuration bool
	LogLevel              slog.Level
	LogUseCases           bool
}

// DefaultConfig returns the settings used when nothing is overridden.
func DefaultConfig() Config {
	dbPath := MemoryDB
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".activitylog", "activitylog.db")
	}
	return Config{
		DBPath:                dbPath,
		LoadDelay:             500 * time.Millisecond,
		AllowNegativeDuration: false,
		LogLevel:              slog.LevelWarn,
		LogUseCases:           false,
	}
}

// LoadEnvFile loads a .env file from the working directory if present.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for any unset or unparsable values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("ACTIVITYLOG_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("ACTIVITYLOG_LOAD_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.LoadDelay = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv("ACTIVITYLOG_ALLOW_NEGATIVE_DURATION"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AllowNegativeDuration = b
		}
	}
	if v := os.Getenv("ACTIVITYLOG_LOG_LEVEL"); v != "" {
		if lvl, err := ParseLevel(v); err == nil {
			cfg.LogLevel = lvl
		}
	}
	if v := os.Getenv("ACTIVITYLOG_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}

	return cfg
}

// ParseLevel maps debug|info|warn|error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// InMemory reports whether the store should not touch disk.
func (c Config) InMemory() bool {
	return c.DBPath == MemoryDB
}

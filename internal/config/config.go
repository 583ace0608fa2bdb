// Package config loads runtime settings from the environment, with a
// .env file picked up when present.
package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the server.
type Config struct {
	Port     int    // HTTP listen port
	DBPath   string // SQLite save-slot database
	Seed     int64  // simulation seed; 0 uses crypto randomness
	BaseYear int    // calendar year new lives are born into
	LogLevel slog.Level
}

// Load reads configuration, falling back to defaults for anything
// unset.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using system environment")
	}

	cfg := Config{
		Port:     8080,
		DBPath:   "data/minilife.db",
		BaseYear: 2025,
		LogLevel: slog.LevelInfo,
	}

	if v := os.Getenv("MINILIFE_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := os.Getenv("MINILIFE_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("MINILIFE_SEED"); v != "" {
		if s, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = s
		}
	}
	if v := os.Getenv("MINILIFE_BASE_YEAR"); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			cfg.BaseYear = y
		}
	}
	switch os.Getenv("MINILIFE_LOG_LEVEL") {
	case "debug":
		cfg.LogLevel = slog.LevelDebug
	case "warn":
		cfg.LogLevel = slog.LevelWarn
	case "error":
		cfg.LogLevel = slog.LevelError
	}

	return cfg
}

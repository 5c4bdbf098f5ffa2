// Package config reads process configuration from the environment, with an
// optional .env file loaded first.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything both binaries read from the environment.
type Config struct {
	// Backend is the base URL the client talks to.
	Backend string
	// Token is the optional bearer token sent on every backend request.
	Token string
	// ListenAddr is the server's bind address.
	ListenAddr string
	// DBPath is the server's SQLite file.
	DBPath string
	// DebounceWindow is the client's write-coalescing delay.
	DebounceWindow time.Duration
	// LogLevel is debug, info, warn, or error.
	LogLevel string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Backend:        "http://localhost:8939",
		ListenAddr:     ":8939",
		DBPath:         defaultDBPath(),
		DebounceWindow: 500 * time.Millisecond,
		LogLevel:       "info",
	}
}

// Load reads .env if present, then overlays TREKOPS_* variables onto the
// defaults. A missing .env file is not an error.
func Load() Config {
	godotenv.Load()

	cfg := Default()
	if v := os.Getenv("TREKOPS_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("TREKOPS_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("TREKOPS_LISTEN"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("TREKOPS_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("TREKOPS_DEBOUNCE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.DebounceWindow = time.Duration(ms) * time.Millisecond
		}
	}
	if v := os.Getenv("TREKOPS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}

// SlogLevel maps the configured level name onto slog. Unknown names fall
// back to info.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "trekops.db"
	}
	return home + "/.trekops/trekops.db"
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "http://localhost:8939", cfg.Backend)
	assert.Equal(t, ":8939", cfg.ListenAddr)
	assert.Equal(t, 500*time.Millisecond, cfg.DebounceWindow)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.DBPath)
}

func TestLoad_EnvOverlay(t *testing.T) {
	t.Setenv("TREKOPS_BACKEND", "http://ops.example:9000")
	t.Setenv("TREKOPS_TOKEN", "s3cret")
	t.Setenv("TREKOPS_DEBOUNCE_MS", "1200")
	t.Setenv("TREKOPS_LOG_LEVEL", "debug")

	cfg := Load()
	assert.Equal(t, "http://ops.example:9000", cfg.Backend)
	assert.Equal(t, "s3cret", cfg.Token)
	assert.Equal(t, 1200*time.Millisecond, cfg.DebounceWindow)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_BadDebounceIgnored(t *testing.T) {
	t.Setenv("TREKOPS_DEBOUNCE_MS", "soon")
	assert.Equal(t, 500*time.Millisecond, Load().DebounceWindow)

	t.Setenv("TREKOPS_DEBOUNCE_MS", "-5")
	assert.Equal(t, 500*time.Millisecond, Load().DebounceWindow)
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, "INFO", Config{LogLevel: "verbose"}.SlogLevel().String())
	assert.Equal(t, "WARN", Config{LogLevel: "warn"}.SlogLevel().String())
	assert.Equal(t, "DEBUG", Config{LogLevel: "debug"}.SlogLevel().String())
}

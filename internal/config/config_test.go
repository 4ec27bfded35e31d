package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/berroteran/promptstash/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	assert.NotEmpty(t, cfg.StorePath)
	assert.Equal(t, "fs", cfg.Backend)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PROMPTSTASH_BACKEND", "sqlite")
	t.Setenv("PROMPTSTASH_LOCALE", "es")
	t.Setenv("PROMPTSTASH_STORE", "/tmp/p.db")

	cfg := config.Load()

	assert.Equal(t, "sqlite", cfg.Backend)
	assert.Equal(t, "es", cfg.Locale)
	assert.Equal(t, "/tmp/p.db", cfg.StorePath)
}

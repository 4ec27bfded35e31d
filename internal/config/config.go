// Package config resolves CLI configuration from the environment.
// Values come from PROMPTSTASH_* variables, optionally loaded from a
// .env file in the working directory; flags override them later.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "promptstash"

// Config holds the resolved CLI settings.
type Config struct {
	StorePath string
	Backend   string // "fs" or "sqlite"
	Locale    string
	LogLevel  string
}

// Load reads configuration from .env (if present) and the environment.
func Load() *Config {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("store", defaultStorePath())
	v.SetDefault("backend", "fs")
	v.SetDefault("locale", "en")
	v.SetDefault("log_level", "info")

	return &Config{
		StorePath: v.GetString("store"),
		Backend:   v.GetString("backend"),
		Locale:    v.GetString("locale"),
		LogLevel:  v.GetString("log_level"),
	}
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "prompts.json"
	}
	return filepath.Join(home, ".promptstash", "prompts.json")
}

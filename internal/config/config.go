// Package config loads runtime settings from the environment, after
// reading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPort        = "8080"
	DefaultGeminiModel = "gemini-2.5-flash-lite"
	DefaultLogLevel    = "info"
)

type Config struct {
	Port         string
	GeminiAPIKey string
	GeminiModel  string
	LogLevel     string
	GinMode      string
}

// ProfilerEnabled reports whether a Gemini key is configured.
func (c Config) ProfilerEnabled() bool {
	return c.GeminiAPIKey != ""
}

// Load reads envFiles (".env" when none are given) into the process
// environment without overriding variables that are already set, then
// builds a Config. Missing files are ignored.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := Config{
		Port:         getenv("PORT", DefaultPort),
		GeminiAPIKey: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:  getenv("GEMINI_MODEL", DefaultGeminiModel),
		LogLevel:     strings.ToLower(getenv("LOG_LEVEL", DefaultLogLevel)),
		GinMode:      getenv("GIN_MODE", "release"),
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

package cmd

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the resolved global configuration.
//
// Flags take precedence over the environment, which may itself be loaded from
// a .env file in the working directory.
type Config struct {
	RenamesFile string
	LogLevel    string
	LogJSON     bool
}

// LoadConfig reads the configuration from the global flags and the environment.
func LoadConfig() Config {
	// .env is optional
	_ = godotenv.Load()

	cfg := Config{
		RenamesFile: os.Getenv("CGT_RENAMES"),
		LogLevel:    getEnv("CGT_LOG_LEVEL", "info"),
		LogJSON:     *logJSON || isTrue(os.Getenv("CGT_LOG_JSON")),
	}
	if *renamesFile != "" {
		cfg.RenamesFile = *renamesFile
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func isTrue(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// Package cli provides the startup steps cmd/billtracker runs before
// handing control to the shell.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"billtracker/internal/config"
	applog "billtracker/internal/log"
)

// LoadEnvFile loads a .env file from the working directory if present.
// A missing file is not an error.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger builds the application logger for the configured level and
// makes it the slog default. An unknown level falls back to warn.
func SetupLogger(level string) *applog.Logger {
	cfg := applog.DefaultConfig()
	if lvl, ok := applog.ParseLevel(level); ok {
		cfg.Level = lvl
	}
	logger := applog.New(cfg)
	applog.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

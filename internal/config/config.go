// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

// Package config provides configuration for term-launcher: process settings
// from the environment and the TOML application list.
package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/joho/godotenv"
)

// Settings holds process configuration loaded from environment variables.
type Settings struct {
	LogLevel  string // debug, info, warn, error (default: info)
	LogFormat string // text, json (default: text)
	LogFile   string // log destination; empty means no file logging
	AppsPath  string // config file override (empty means use the default path)
	DBPath    string // pins database override (empty means use the default path)
}

// validLogLevels contains the allowed log level values.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// validLogFormats contains the allowed log format values.
var validLogFormats = []string{"text", "json"}

// Load reads settings from environment variables, with .env file as optional
// override. The .env file is loaded if present but errors are ignored if it
// doesn't exist.
func Load() (*Settings, error) {
	// Try to load .env file (ignore if not found)
	_ = godotenv.Load()

	cfg := &Settings{
		LogLevel:  getEnv("TERM_LAUNCHER_LOG_LEVEL", "info"),
		LogFormat: getEnv("TERM_LAUNCHER_LOG_FORMAT", "text"),
		LogFile:   getEnv("TERM_LAUNCHER_LOG_FILE", ""),
		AppsPath:  getEnv("TERM_LAUNCHER_CONFIG", ""),
		DBPath:    getEnv("TERM_LAUNCHER_DB_PATH", ""),
	}

	if !slices.Contains(validLogLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid TERM_LAUNCHER_LOG_LEVEL %q: must be one of %v", cfg.LogLevel, validLogLevels)
	}

	if !slices.Contains(validLogFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid TERM_LAUNCHER_LOG_FORMAT %q: must be one of %v", cfg.LogFormat, validLogFormats)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

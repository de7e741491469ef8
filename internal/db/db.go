// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package db provides SQLite database access for term-launcher.
package db

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// GetDefaultDBPath returns the default database path
// ($XDG_DATA_HOME/term-launcher/pins.db, falling back to
// ~/.local/share/term-launcher/pins.db). It creates the directory if it
// doesn't exist.
func GetDefaultDBPath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	launcherDir := filepath.Join(dataDir, "term-launcher")
	if err := os.MkdirAll(launcherDir, 0750); err != nil {
		return "", fmt.Errorf("creating data directory: %w", err)
	}

	return filepath.Join(launcherDir, "pins.db"), nil
}

// Open opens or creates a SQLite database at the specified path.
// Use ":memory:" for an in-memory database (useful for testing).
func Open(dbPath string) (*sql.DB, error) {
	slog.Info("opening database", "component", "db", "path", dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		slog.Error("failed to open database", "component", "db", "path", dbPath, "error", err)
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Verify connection works
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	// Enable foreign keys for SQLite
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func Close(db *sql.DB) error {
	if db == nil {
		return nil
	}
	slog.Debug("closing database", "component", "db")
	if err := db.Close(); err != nil {
		slog.Error("failed to close database", "component", "db", "error", err)
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}

// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package store provides data access layer for pinned applications.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store provides data access methods for pins.
type Store struct {
	db *sql.DB
}

// New creates a new Store with the given database connection.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// AddPin pins an application by name. Pinning an already pinned
// application is a no-op.
func (s *Store) AddPin(appName string) error {
	_, err := s.db.Exec(`
		INSERT OR IGNORE INTO pins (app_name, pinned_at) VALUES (?, ?)
	`, appName, formatTimeForSQLite(time.Now()))
	if err != nil {
		return fmt.Errorf("adding pin %s: %w", appName, err)
	}
	return nil
}

// RemovePin unpins an application by name.
// Returns ErrNotFound if the application is not pinned.
func (s *Store) RemovePin(appName string) error {
	result, err := s.db.Exec(`DELETE FROM pins WHERE app_name = ?`, appName)
	if err != nil {
		return fmt.Errorf("removing pin %s: %w", appName, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// TogglePin flips the pin state of an application.
// Returns the new state: true if the application is now pinned.
func (s *Store) TogglePin(appName string) (bool, error) {
	pinned, err := s.IsPinned(appName)
	if err != nil {
		return false, err
	}

	if pinned {
		if err := s.RemovePin(appName); err != nil && !errors.Is(err, ErrNotFound) {
			return false, err
		}
		return false, nil
	}

	if err := s.AddPin(appName); err != nil {
		return false, err
	}
	return true, nil
}

// IsPinned reports whether an application is pinned.
func (s *Store) IsPinned(appName string) (bool, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM pins WHERE app_name = ?
	`, appName).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("querying pin %s: %w", appName, err)
	}
	return count > 0, nil
}

// GetPins returns all pinned application names, oldest pin first.
func (s *Store) GetPins() ([]string, error) {
	rows, err := s.db.Query(`
		SELECT app_name FROM pins ORDER BY pinned_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying pins: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning pin: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return names, nil
}

// CountPins returns the number of pinned applications.
func (s *Store) CountPins() (int64, error) {
	var count int64
	err := s.db.QueryRow(`SELECT COUNT(*) FROM pins`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting pins: %w", err)
	}
	return count, nil
}

// GetLastPinTime returns when an application was most recently pinned.
// Returns zero time if nothing is pinned.
func (s *Store) GetLastPinTime() (time.Time, error) {
	var pinnedAt sql.NullString
	err := s.db.QueryRow(`SELECT MAX(pinned_at) FROM pins`).Scan(&pinnedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("querying last pin time: %w", err)
	}

	if !pinnedAt.Valid || pinnedAt.String == "" {
		return time.Time{}, nil
	}

	t, err := parseTimeFromSQLite(pinnedAt.String)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing pin time: %w", err)
	}

	return t, nil
}

// Prune removes pins for applications no longer in the config.
// Returns the number of deleted pins.
func (s *Store) Prune(validNames []string) (int64, error) {
	valid := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		valid[name] = true
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback is no-op after commit

	stale, err := staleNames(tx, valid)
	if err != nil {
		return 0, err
	}

	if len(stale) > 0 {
		stmt, err := tx.Prepare(`DELETE FROM pins WHERE app_name = ?`)
		if err != nil {
			return 0, fmt.Errorf("preparing statement: %w", err)
		}
		defer stmt.Close()

		for _, name := range stale {
			if _, err := stmt.Exec(name); err != nil {
				return 0, fmt.Errorf("deleting pin %s: %w", name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}

	return int64(len(stale)), nil
}

// staleNames returns pinned names missing from the valid set.
func staleNames(tx *sql.Tx, valid map[string]bool) ([]string, error) {
	rows, err := tx.Query(`SELECT app_name FROM pins`)
	if err != nil {
		return nil, fmt.Errorf("querying pins: %w", err)
	}
	defer rows.Close()

	var stale []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning pin: %w", err)
		}
		if !valid[name] {
			stale = append(stale, name)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return stale, nil
}

// sqliteTimeFormat is the standard SQLite datetime format.
const sqliteTimeFormat = "2006-01-02 15:04:05"

// formatTimeForSQLite converts a time to SQLite format string, or nil if zero.
func formatTimeForSQLite(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(sqliteTimeFormat)
}

// parseTimeFromSQLite parses a time string from SQLite, handling multiple formats.
func parseTimeFromSQLite(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	// Try common SQLite formats
	formats := []string{
		sqliteTimeFormat,
		"2006-01-02 15:04:05.999999999",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05.999999999Z",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("cannot parse time: %s", s)
}

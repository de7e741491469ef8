// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jospf/term-launcher/internal/sanitize"
)

// AppEntry is one launchable application from the config file. Name and Key
// are display strings and arrive sanitized from LoadApps; Cmd and Args are
// byte-exact as configured and must never be altered.
type AppEntry struct {
	Name string   `toml:"name"`
	Key  string   `toml:"key"`
	Cmd  string   `toml:"cmd"`
	Args []string `toml:"args"`
}

// appsFile is the top-level TOML document.
type appsFile struct {
	Apps []AppEntry `toml:"apps"`
}

// DefaultAppsPath returns the default config file location,
// $XDG_CONFIG_HOME/term-launcher/config.toml (~/.config on most systems).
func DefaultAppsPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting config directory: %w", err)
	}
	return filepath.Join(base, "term-launcher", "config.toml"), nil
}

// LoadApps reads and validates the application list at path. Display fields
// (name, key) are sanitized against terminal control characters; cmd and
// args pass through untouched so resolution sees exactly what was
// configured.
func LoadApps(path string) ([]AppEntry, error) {
	var file appsFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	seen := make(map[string]string, len(file.Apps)) // key -> app name
	entries := make([]AppEntry, 0, len(file.Apps))

	for i, app := range file.Apps {
		if app.Name == "" {
			return nil, fmt.Errorf("app entry %d: name is required", i+1)
		}
		if app.Key == "" {
			return nil, fmt.Errorf("app entry %d (%q): key is required", i+1, app.Name)
		}
		if app.Cmd == "" {
			return nil, fmt.Errorf("app entry %d (%q): cmd is required", i+1, app.Name)
		}

		app.Name = sanitize.Clean(app.Name)
		app.Key = sanitize.Clean(app.Key)

		if prev, dup := seen[app.Key]; dup {
			return nil, fmt.Errorf("duplicate key %q (apps %q and %q)", app.Key, prev, app.Name)
		}
		seen[app.Key] = app.Name

		entries = append(entries, app)
	}

	return entries, nil
}

// defaultAppsConfig is written on first run so the launcher starts with
// something on screen.
const defaultAppsConfig = `# term-launcher application list.
#
# Each entry needs a display name, a hotkey, and a command. The command is
# either a bare name looked up in the allowed directories (/usr/bin,
# /usr/local/bin, /bin, ~/.local/bin) or an absolute path. Arguments are
# passed to the program directly; no shell is involved.

[[apps]]
name = "htop"
key = "h"
cmd = "htop"

[[apps]]
name = "Editor"
key = "e"
cmd = "vim"
`

// EnsureDefault writes a starter config at path when none exists yet.
// An existing file is never touched.
func EnsureDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultAppsConfig), 0o640); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}

// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jospf/term-launcher/internal/config"
	"github.com/jospf/term-launcher/internal/launch"
	"github.com/jospf/term-launcher/internal/tui"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configured apps",
	Long: `Check that every configured app resolves to an allowed executable
and that hotkeys do not collide with each other or with built-in bindings.
Exits nonzero if any app would be refused.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}

		logFile, err := setupLogging(settings, os.Stderr)
		if err != nil {
			return err
		}
		if logFile != nil {
			defer logFile.Close()
		}

		appsPath, err := resolveAppsPath(settings)
		if err != nil {
			return fmt.Errorf("resolving config path: %w", err)
		}

		entries, err := config.LoadApps(appsPath)
		if err != nil {
			return fmt.Errorf("loading %s: %w", appsPath, err)
		}

		allow, err := launch.DefaultAllowlist()
		if err != nil {
			return fmt.Errorf("building allowlist: %w", err)
		}

		fmt.Printf("Checking %d apps from %s\n\n", len(entries), appsPath)

		refused := checkEntries(entries, allow)

		for _, warning := range keyWarnings(entries) {
			fmt.Printf("WARNING: %s\n", warning)
		}

		fmt.Printf("\n%d apps: %d ok, %d refused\n", len(entries), len(entries)-refused, refused)
		if refused > 0 {
			return fmt.Errorf("%d of %d apps failed validation", refused, len(entries))
		}
		return nil
	},
}

// checkEntries resolves and validates every entry, printing one line per
// app. Returns the number of refused entries.
func checkEntries(entries []config.AppEntry, allow *launch.Allowlist) int {
	refused := 0
	for _, entry := range entries {
		path, err := allow.Resolve(entry.Cmd)
		if err == nil {
			err = launch.Validate(path)
		}
		if err != nil {
			fmt.Printf("REFUSED  %-20s %v\n", entry.Name, err)
			refused++
			continue
		}
		fmt.Printf("OK       %-20s %s\n", entry.Name, path)
	}
	return refused
}

// keyWarnings reports hotkeys shadowed by built-in bindings and hotkeys
// assigned to more than one app.
func keyWarnings(entries []config.AppEntry) []string {
	var warnings []string

	reserved := tui.ReservedKeys()
	byKey := make(map[string][]string)

	for _, entry := range entries {
		if entry.Key == "" {
			continue
		}
		if slices.Contains(reserved, entry.Key) {
			warnings = append(warnings, fmt.Sprintf("key %q for %q is shadowed by a built-in binding", entry.Key, entry.Name))
		}
		byKey[entry.Key] = append(byKey[entry.Key], entry.Name)
	}

	keys := make([]string, 0, len(byKey))
	for key := range byKey {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		names := byKey[key]
		if len(names) > 1 {
			warnings = append(warnings, fmt.Sprintf("key %q is assigned to %d apps: %v (first match wins)", key, len(names), names))
		}
	}

	return warnings
}

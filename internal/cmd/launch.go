// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jospf/term-launcher/internal/config"
	"github.com/jospf/term-launcher/internal/launch"
	"github.com/jospf/term-launcher/internal/terminal"
)

// ExitCodeError carries a child process exit code to main so the launcher
// can exit with the same code.
type ExitCodeError struct {
	Code int
}

// Error implements the error interface.
func (e ExitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

var launchCmd = &cobra.Command{
	Use:   "launch <key-or-name>",
	Short: "Launch an app without opening the UI",
	Long: `Launch a configured app directly by its hotkey or name. The child
inherits the terminal; term-launcher exits with the child's exit code.`,
	Args: cobra.ExactArgs(1),
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

		entry, found := findEntry(entries, args[0])
		if !found {
			return fmt.Errorf("no app with key or name %q in %s", args[0], appsPath)
		}

		allow, err := launch.DefaultAllowlist()
		if err != nil {
			return fmt.Errorf("building allowlist: %w", err)
		}

		// Headless launch: the terminal is already in normal mode and
		// there is no UI to restore.
		guard := terminal.New(terminal.StateNormal)
		launcher := launch.New(allow, guard, launch.ProcessSpawner{})

		status, err := launcher.Launch(entry)
		if err != nil {
			return err
		}
		if status.Code != 0 {
			return ExitCodeError{Code: status.Code}
		}
		return nil
	},
}

// findEntry looks up an app by hotkey first, then by case-insensitive name.
func findEntry(entries []config.AppEntry, arg string) (config.AppEntry, bool) {
	for _, entry := range entries {
		if entry.Key == arg {
			return entry, true
		}
	}
	for _, entry := range entries {
		if strings.EqualFold(entry.Name, arg) {
			return entry, true
		}
	}
	return config.AppEntry{}, false
}

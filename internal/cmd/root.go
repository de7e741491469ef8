// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package cmd

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jospf/term-launcher/internal/config"
	"github.com/jospf/term-launcher/internal/db"
	"github.com/jospf/term-launcher/internal/launch"
	"github.com/jospf/term-launcher/internal/logging"
	"github.com/jospf/term-launcher/internal/store"
	"github.com/jospf/term-launcher/internal/terminal"
	"github.com/jospf/term-launcher/internal/tui"
)

// Version is set at build time with -ldflags
var Version = "dev"

// Flag variables
var (
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "term-launcher",
	Short: "Terminal application launcher",
	Long: `term-launcher is a TUI for launching terminal applications from a
configurable list. Apps are declared in a TOML file and started by hotkey
or from a searchable list; the selection returns when the app exits.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}

		// The TUI owns stdout, so logs go to a file or nowhere.
		logFile, err := setupLogging(settings, io.Discard)
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
		if err := config.EnsureDefault(appsPath); err != nil {
			return fmt.Errorf("writing default config: %w", err)
		}

		entries, err := config.LoadApps(appsPath)
		if err != nil {
			return fmt.Errorf("loading %s: %w", appsPath, err)
		}

		// Pins degrade gracefully: a broken database means no pinning,
		// not a dead launcher.
		pinStore, database := openPinStore(settings)
		if database != nil {
			defer db.Close(database)
		}

		allow, err := launch.DefaultAllowlist()
		if err != nil {
			return fmt.Errorf("building allowlist: %w", err)
		}

		var reloadCh <-chan config.ReloadEvent
		watcher, err := config.NewWatcher(appsPath)
		if err != nil {
			slog.Warn("config watcher unavailable, hot reload disabled", "component", "cmd", "error", err)
		} else {
			reloadCh = watcher.Start()
			defer watcher.Stop()
		}

		guard := terminal.New(terminal.StateUIActive)
		defer guard.Close()

		launcher := launch.New(allow, guard, launch.ProcessSpawner{ClearScreen: true})
		launcher.SetAfterExit(func(status launch.ExitStatus) {
			fmt.Printf("\nProcess exited with status: %s\n", status.Desc)
			fmt.Println("Press any key to return to the launcher...")
			if err := terminal.WaitForKey(os.Stdin); err != nil {
				slog.Warn("key wait failed", "component", "cmd", "error", err)
			}
		})

		model := tui.NewModel(entries, appsPath, launcher, reloadCh)
		if pinStore != nil {
			model.SetStore(pinStore)
			if err := model.LoadPins(); err != nil {
				slog.Warn("loading pins failed", "component", "cmd", "error", err)
			}
		}

		p := tea.NewProgram(model, tea.WithAltScreen())
		guard.SetController(p)

		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running TUI: %w", err)
		}

		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("term-launcher version %s\n", Version)
	},
}

func init() {
	// Define flags on root command
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the apps config file")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(launchCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(dbCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// resolveAppsPath picks the apps config file: the --config flag wins, then
// TERM_LAUNCHER_CONFIG, then the default under the user config directory.
func resolveAppsPath(settings *config.Settings) (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	if settings.AppsPath != "" {
		return settings.AppsPath, nil
	}
	return config.DefaultAppsPath()
}

// resolveDBPath picks the pins database file: TERM_LAUNCHER_DB wins over the
// default under the user data directory.
func resolveDBPath(settings *config.Settings) (string, error) {
	if settings.DBPath != "" {
		return settings.DBPath, nil
	}
	return db.GetDefaultDBPath()
}

// setupLogging configures slog from settings. When no log file is set the
// fallback writer is used; the returned file is nil in that case.
func setupLogging(settings *config.Settings, fallback io.Writer) (*os.File, error) {
	if settings.LogFile == "" {
		logging.SetupLoggerTo(fallback, settings.LogLevel, settings.LogFormat)
		return nil, nil
	}

	logFile, err := logging.OpenLogFile(settings.LogFile)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	logging.SetupLoggerTo(logFile, settings.LogLevel, settings.LogFormat)
	return logFile, nil
}

// openPinStore opens the pins database and runs migrations. Failures are
// logged and reported as a nil store so the launcher can run without pins.
func openPinStore(settings *config.Settings) (*store.Store, *sql.DB) {
	dbPath, err := resolveDBPath(settings)
	if err != nil {
		slog.Warn("pin database path unavailable, pinning disabled", "component", "cmd", "error", err)
		return nil, nil
	}

	database, err := db.Open(dbPath)
	if err != nil {
		slog.Warn("pin database unavailable, pinning disabled", "component", "cmd", "path", dbPath, "error", err)
		return nil, nil
	}

	if err := db.RunMigrations(database); err != nil {
		slog.Warn("pin database migration failed, pinning disabled", "component", "cmd", "path", dbPath, "error", err)
		db.Close(database)
		return nil, nil
	}

	return store.New(database), database
}

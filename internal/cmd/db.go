// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jospf/term-launcher/internal/config"
	"github.com/jospf/term-launcher/internal/db"
	"github.com/jospf/term-launcher/internal/store"
)

var (
	forceReset bool
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management commands",
	Long:  `Commands for managing the term-launcher pins database.`,
}

var dbMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run pending database migrations",
	Long:  `Run all pending database migrations to update the schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := commandDBPath()
		if err != nil {
			return fmt.Errorf("getting database path: %w", err)
		}

		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close(database)

		// Get version before migration
		versionBefore, _ := db.GetMigrationVersion(database)

		if err := db.RunMigrations(database); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}

		versionAfter, err := db.GetMigrationVersion(database)
		if err != nil {
			return fmt.Errorf("getting migration version: %w", err)
		}

		if versionBefore == versionAfter {
			fmt.Printf("Database is already at version %d (no migrations needed)\n", versionAfter)
		} else {
			fmt.Printf("Migrations complete: version %d -> %d\n", versionBefore, versionAfter)
		}

		return nil
	},
}

var dbStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database status and statistics",
	Long:  `Display database location, migration version, and pin statistics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := commandDBPath()
		if err != nil {
			return fmt.Errorf("getting database path: %w", err)
		}

		fmt.Printf("Database path: %s\n", dbPath)

		// Check if database file exists
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			fmt.Println("Status: Database does not exist (run 'term-launcher db migrate' to create)")
			return nil
		}

		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close(database)

		// Get migration version
		version, err := db.GetMigrationVersion(database)
		if err != nil {
			fmt.Printf("Migration version: unknown (error: %v)\n", err)
		} else {
			fmt.Printf("Migration version: %d\n", version)
		}

		pins := store.New(database)

		// Get pin count
		pinCount, err := pins.CountPins()
		if err != nil {
			fmt.Printf("Pinned apps: unknown (error: %v)\n", err)
		} else {
			fmt.Printf("Pinned apps: %d\n", pinCount)
		}

		// Get last pin time
		lastPin, err := pins.GetLastPinTime()
		if err != nil {
			fmt.Printf("Last pin: unknown (error: %v)\n", err)
		} else if lastPin.IsZero() {
			fmt.Println("Last pin: never")
		} else {
			fmt.Printf("Last pin: %s\n", lastPin.Format("2006-01-02 15:04:05"))
		}

		return nil
	},
}

var dbPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print database file location",
	Long:  `Print the path to the term-launcher pins database file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := commandDBPath()
		if err != nil {
			return fmt.Errorf("getting database path: %w", err)
		}
		fmt.Println(dbPath)
		return nil
	},
}

var dbPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove pins for apps no longer in the config",
	Long:  `Delete pins whose app name does not appear in the apps config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}

		appsPath, err := resolveAppsPath(settings)
		if err != nil {
			return fmt.Errorf("resolving config path: %w", err)
		}

		entries, err := config.LoadApps(appsPath)
		if err != nil {
			return fmt.Errorf("loading %s: %w", appsPath, err)
		}

		dbPath, err := resolveDBPath(settings)
		if err != nil {
			return fmt.Errorf("getting database path: %w", err)
		}

		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close(database)

		if err := db.RunMigrations(database); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}

		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			names = append(names, entry.Name)
		}

		removed, err := store.New(database).Prune(names)
		if err != nil {
			return fmt.Errorf("pruning pins: %w", err)
		}

		fmt.Printf("Removed %d stale pins\n", removed)
		return nil
	},
}

var dbResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset database (destructive)",
	Long: `Delete the database file and recreate it with fresh migrations.
This is a destructive operation that will delete all stored pins.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := commandDBPath()
		if err != nil {
			return fmt.Errorf("getting database path: %w", err)
		}

		// Check if database exists
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			fmt.Println("Database does not exist, creating fresh database...")
		} else {
			// Require confirmation
			if !forceReset {
				fmt.Printf("WARNING: This will delete all data in %s\n", dbPath)
				fmt.Print("Type 'yes' to confirm: ")

				reader := bufio.NewReader(os.Stdin)
				confirmation, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("reading confirmation: %w", err)
				}

				if strings.TrimSpace(strings.ToLower(confirmation)) != "yes" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			// Delete the database file
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("deleting database: %w", err)
			}
			fmt.Printf("Deleted: %s\n", dbPath)
		}

		// Create fresh database with migrations
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("creating database: %w", err)
		}
		defer db.Close(database)

		if err := db.RunMigrations(database); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}

		version, err := db.GetMigrationVersion(database)
		if err != nil {
			return fmt.Errorf("getting migration version: %w", err)
		}

		fmt.Printf("Created fresh database at version %d\n", version)
		return nil
	},
}

func init() {
	// Add flags
	dbResetCmd.Flags().BoolVar(&forceReset, "force", false, "Skip confirmation prompt")

	// Add subcommands to db command
	dbCmd.AddCommand(dbMigrateCmd)
	dbCmd.AddCommand(dbStatusCmd)
	dbCmd.AddCommand(dbPathCmd)
	dbCmd.AddCommand(dbPruneCmd)
	dbCmd.AddCommand(dbResetCmd)
}

// commandDBPath resolves the pins database path for db subcommands,
// honoring the TERM_LAUNCHER_DB_PATH override.
func commandDBPath() (string, error) {
	settings, err := config.Load()
	if err != nil {
		return "", err
	}
	return resolveDBPath(settings)
}

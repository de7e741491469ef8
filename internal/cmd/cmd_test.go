// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package cmd

import (
	"strings"
	"testing"

	"github.com/jospf/term-launcher/internal/config"
	"github.com/jospf/term-launcher/internal/testutil"
)

func TestConfigFlag_DefaultEmpty(t *testing.T) {
	// Reset the flag value for testing
	configPath = ""
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := resolveAppsPath(&config.Settings{})
	if err != nil {
		t.Fatalf("resolveAppsPath() error = %v", err)
	}
	if !strings.Contains(path, "term-launcher") {
		t.Errorf("resolveAppsPath() = %q, want default under term-launcher", path)
	}
}

func TestResolveAppsPath_FlagWins(t *testing.T) {
	configPath = "/tmp/custom.toml"
	defer func() { configPath = "" }()

	path, err := resolveAppsPath(&config.Settings{AppsPath: "/tmp/from-env.toml"})
	if err != nil {
		t.Fatalf("resolveAppsPath() error = %v", err)
	}
	if path != "/tmp/custom.toml" {
		t.Errorf("resolveAppsPath() = %q, want flag value", path)
	}
}

func TestResolveAppsPath_EnvFallback(t *testing.T) {
	configPath = ""

	path, err := resolveAppsPath(&config.Settings{AppsPath: "/tmp/from-env.toml"})
	if err != nil {
		t.Fatalf("resolveAppsPath() error = %v", err)
	}
	if path != "/tmp/from-env.toml" {
		t.Errorf("resolveAppsPath() = %q, want env value", path)
	}
}

func TestResolveDBPath_EnvWins(t *testing.T) {
	path, err := resolveDBPath(&config.Settings{DBPath: "/tmp/pins.db"})
	if err != nil {
		t.Fatalf("resolveDBPath() error = %v", err)
	}
	if path != "/tmp/pins.db" {
		t.Errorf("resolveDBPath() = %q, want env value", path)
	}
}

func TestExitCodeError_Message(t *testing.T) {
	err := ExitCodeError{Code: 3}
	if err.Error() != "exit status 3" {
		t.Errorf("Error() = %q, want \"exit status 3\"", err.Error())
	}
}

func TestFindEntry_ByKey(t *testing.T) {
	entries := []config.AppEntry{
		testutil.NewTestEntry(testutil.WithName("htop"), testutil.WithKey("h")),
		testutil.NewTestEntry(testutil.WithName("Editor"), testutil.WithKey("e")),
	}

	entry, found := findEntry(entries, "e")
	if !found {
		t.Fatal("findEntry() found = false, want true")
	}
	if entry.Name != "Editor" {
		t.Errorf("findEntry() name = %q, want \"Editor\"", entry.Name)
	}
}

func TestFindEntry_ByNameCaseInsensitive(t *testing.T) {
	entries := []config.AppEntry{
		testutil.NewTestEntry(testutil.WithName("Editor"), testutil.WithKey("e")),
	}

	entry, found := findEntry(entries, "editor")
	if !found {
		t.Fatal("findEntry() found = false, want true")
	}
	if entry.Name != "Editor" {
		t.Errorf("findEntry() name = %q, want \"Editor\"", entry.Name)
	}
}

func TestFindEntry_KeyBeatsName(t *testing.T) {
	// An app named "e" must not shadow another app's hotkey "e"
	entries := []config.AppEntry{
		testutil.NewTestEntry(testutil.WithName("e"), testutil.WithKey("x")),
		testutil.NewTestEntry(testutil.WithName("Editor"), testutil.WithKey("e")),
	}

	entry, found := findEntry(entries, "e")
	if !found {
		t.Fatal("findEntry() found = false, want true")
	}
	if entry.Name != "Editor" {
		t.Errorf("findEntry() name = %q, want the hotkey match \"Editor\"", entry.Name)
	}
}

func TestFindEntry_NotFound(t *testing.T) {
	entries := []config.AppEntry{
		testutil.NewTestEntry(testutil.WithName("htop"), testutil.WithKey("h")),
	}

	if _, found := findEntry(entries, "zzz"); found {
		t.Error("findEntry() found = true for unknown arg, want false")
	}
}

func TestKeyWarnings_ReservedKey(t *testing.T) {
	entries := []config.AppEntry{
		testutil.NewTestEntry(testutil.WithName("jless"), testutil.WithKey("j")),
	}

	warnings := keyWarnings(entries)
	if len(warnings) != 1 {
		t.Fatalf("keyWarnings() returned %d warnings, want 1", len(warnings))
	}
	if !strings.Contains(warnings[0], "built-in") {
		t.Errorf("warning = %q, want mention of built-in binding", warnings[0])
	}
}

func TestKeyWarnings_DuplicateKey(t *testing.T) {
	entries := []config.AppEntry{
		testutil.NewTestEntry(testutil.WithName("htop"), testutil.WithKey("h")),
		testutil.NewTestEntry(testutil.WithName("helix"), testutil.WithKey("h")),
	}

	warnings := keyWarnings(entries)
	if len(warnings) != 1 {
		t.Fatalf("keyWarnings() returned %d warnings, want 1", len(warnings))
	}
	if !strings.Contains(warnings[0], "2 apps") {
		t.Errorf("warning = %q, want mention of 2 apps", warnings[0])
	}
}

func TestKeyWarnings_CleanConfig(t *testing.T) {
	entries := []config.AppEntry{
		testutil.NewTestEntry(testutil.WithName("htop"), testutil.WithKey("h")),
		testutil.NewTestEntry(testutil.WithName("Editor"), testutil.WithKey("e")),
	}

	if warnings := keyWarnings(entries); len(warnings) != 0 {
		t.Errorf("keyWarnings() = %v, want none", warnings)
	}
}

func TestVersionVariable(t *testing.T) {
	// Version should have a default value
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

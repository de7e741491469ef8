// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package tui provides the Bubble Tea TUI components for term-launcher.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jospf/term-launcher/internal/config"
	"github.com/jospf/term-launcher/internal/launch"
	"github.com/jospf/term-launcher/internal/store"
)

// reservedRows is the screen space taken by the header, search bar and
// footer around the application list.
const reservedRows = 8

// Model is the main TUI model for term-launcher.
type Model struct {
	// Data
	entries    []config.AppEntry
	visible    []config.AppEntry
	pinned     map[string]bool // key: app name
	configPath string
	launcher   *launch.Launcher
	store      *store.Store // database store for pin persistence

	// UI state
	cursor         int
	viewportOffset int // scroll offset for list pagination

	// Search
	searchMode  bool
	searchInput textinput.Model

	// Help
	showHelp bool

	// Async state
	launching bool                      // whether a child process is running
	reloadCh  <-chan config.ReloadEvent // channel for config reload events

	// Dimensions
	width, height int

	// Messages
	lastError     error
	statusMessage string

	// Styles
	styles Styles
}

// AppsReloadedMsg is sent when the config file has been reloaded.
// On Err the TUI keeps its current entries.
type AppsReloadedMsg struct {
	Entries []config.AppEntry
	Err     error

	// fromWatcher marks events from the file watcher, which need the
	// channel listener re-armed.
	fromWatcher bool
}

// LaunchFinishedMsg is sent when a launch attempt completes, either with
// the child's exit status or with the error that stopped it.
type LaunchFinishedMsg struct {
	Name   string
	Status launch.ExitStatus
	Err    error
}

// NewModel creates a new TUI model with the provided application entries.
func NewModel(entries []config.AppEntry, configPath string, launcher *launch.Launcher, reloadCh <-chan config.ReloadEvent) Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "name, key, or command"
	ti.CharLimit = 64

	m := Model{
		entries:     entries,
		pinned:      make(map[string]bool),
		configPath:  configPath,
		launcher:    launcher,
		searchInput: ti,
		reloadCh:    reloadCh,
		styles:      DefaultStyles(),
	}

	m.RefreshVisible()

	return m
}

// SetStore sets the store for the model (useful for testing or delayed initialization).
func (m *Model) SetStore(s *store.Store) {
	m.store = s
}

// LoadPins loads pinned apps from the database into the model's pinned map.
func (m *Model) LoadPins() error {
	if m.store == nil {
		return nil
	}

	names, err := m.store.GetPins()
	if err != nil {
		return err
	}

	for _, name := range names {
		m.pinned[name] = true
	}
	m.RefreshVisible()

	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.reloadCh == nil {
		return nil
	}
	return m.listenForReloads()
}

// listenForReloads returns a command that listens for config reload events.
func (m Model) listenForReloads() tea.Cmd {
	if m.reloadCh == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-m.reloadCh
		if !ok {
			// Channel closed, watcher stopped
			return nil
		}
		return AppsReloadedMsg{Entries: ev.Entries, Err: ev.Err, fromWatcher: true}
	}
}

// Update implements tea.Model - see update.go for implementation.

// View implements tea.Model - see view.go for implementation.

// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jospf/term-launcher/internal/config"
)

// reservedKeys are the single-character keys the main view handles itself.
// App hotkeys that collide with these never fire.
var reservedKeys = []string{"/", "?", "G", "g", "j", "k", "p", "q", "r"}

// ReservedKeys returns the built-in keys that shadow app hotkeys.
func ReservedKeys() []string {
	keys := make([]string, len(reservedKeys))
	copy(keys, reservedKeys)
	return keys
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()

	case AppsReloadedMsg:
		if msg.Err != nil {
			m.lastError = msg.Err
			m.statusMessage = ""
		} else {
			m.SetEntries(msg.Entries)
			m.lastError = nil
			m.statusMessage = fmt.Sprintf("Configuration reloaded (%d apps)", len(msg.Entries))
		}
		if msg.fromWatcher {
			// Keep listening for the next reload
			return m, m.listenForReloads()
		}

	case LaunchFinishedMsg:
		m.launching = false
		if msg.Err != nil {
			m.lastError = msg.Err
			m.statusMessage = ""
		} else {
			m.lastError = nil
			m.statusMessage = fmt.Sprintf("%s: %s", msg.Name, msg.Status.Desc)
		}
	}
	return m, nil
}

// handleKeyMsg routes key messages to the appropriate handler.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A child process owns the terminal; swallow whatever leaks through.
	if m.launching {
		return m, nil
	}

	if m.searchMode {
		return m.handleSearchInput(msg)
	}

	return m.handleMainViewKeys(msg)
}

// handleSearchInput handles key input when in search mode.
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		// Clear search and exit search mode
		m.searchMode = false
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.RefreshVisible()
		return m, nil

	case tea.KeyEnter:
		// Keep the query applied and exit search mode
		m.searchMode = false
		m.searchInput.Blur()
		return m, nil

	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.RefreshVisible()
	return m, cmd
}

// handleMainViewKeys handles key input in the main application list view.
func (m Model) handleMainViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	// Navigation keys
	case "j", "down":
		m.cursor = min(m.cursor+1, len(m.visible)-1)
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.ensureCursorVisible()
		return m, nil

	case "k", "up":
		m.cursor = max(m.cursor-1, 0)
		m.ensureCursorVisible()
		return m, nil

	case "g":
		// Go to top
		m.cursor = 0
		m.viewportOffset = 0
		return m, nil

	case "G":
		// Go to bottom
		if len(m.visible) > 0 {
			m.cursor = len(m.visible) - 1
		}
		m.ensureCursorVisible()
		return m, nil

	case "pgdown", "ctrl+d":
		m.cursor = min(m.cursor+m.getVisibleRows(), len(m.visible)-1)
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.ensureCursorVisible()
		return m, nil

	case "pgup", "ctrl+u":
		m.cursor = max(m.cursor-m.getVisibleRows(), 0)
		m.ensureCursorVisible()
		return m, nil

	// Search mode
	case "/":
		m.searchMode = true
		m.searchInput.Focus()
		return m, textinput.Blink

	// Action keys
	case "enter":
		return m.launchSelected()

	case "p":
		// Toggle pin on current app
		m.togglePin()
		return m, nil

	case "r":
		// Reload the config file by hand
		return m, m.reloadConfig()

	// Meta keys
	case "?":
		m.showHelp = !m.showHelp
		return m, nil

	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		// Clear an applied search filter
		if m.searchInput.Value() != "" {
			m.searchInput.SetValue("")
			m.RefreshVisible()
		}
		return m, nil
	}

	// Single-character keys fall through to app hotkeys
	if key := msg.String(); len(key) == 1 {
		for _, entry := range m.entries {
			if entry.Key == key {
				return m.launchEntry(entry)
			}
		}
	}

	return m, nil
}

// launchSelected launches the application under the cursor.
func (m Model) launchSelected() (tea.Model, tea.Cmd) {
	if len(m.visible) == 0 || m.cursor >= len(m.visible) {
		return m, nil
	}
	return m.launchEntry(m.visible[m.cursor])
}

// launchEntry hands an entry to the launcher on a command goroutine. The
// launcher releases the terminal before spawning and restores it after.
func (m Model) launchEntry(entry config.AppEntry) (tea.Model, tea.Cmd) {
	m.launching = true
	m.statusMessage = ""
	m.lastError = nil

	launcher := m.launcher
	return m, func() tea.Msg {
		status, err := launcher.Launch(entry)
		return LaunchFinishedMsg{Name: entry.Name, Status: status, Err: err}
	}
}

// togglePin flips the pin on the app under the cursor.
func (m *Model) togglePin() {
	if len(m.visible) == 0 || m.cursor >= len(m.visible) {
		return
	}

	name := m.visible[m.cursor].Name

	if m.store != nil {
		pinned, err := m.store.TogglePin(name)
		if err != nil {
			m.lastError = err
			return
		}
		m.pinned[name] = pinned
	} else {
		m.pinned[name] = !m.pinned[name]
	}

	if !m.pinned[name] {
		delete(m.pinned, name)
	}
	m.lastError = nil
	m.RefreshVisible()
}

// reloadConfig reads the config file again, off the update loop.
func (m Model) reloadConfig() tea.Cmd {
	path := m.configPath
	return func() tea.Msg {
		entries, err := config.LoadApps(path)
		return AppsReloadedMsg{Entries: entries, Err: err}
	}
}

// getVisibleRows returns how many list rows fit on screen.
func (m Model) getVisibleRows() int {
	rows := m.height - reservedRows
	if rows < 1 {
		return 5
	}
	return rows
}

// ensureCursorVisible scrolls the viewport so the cursor stays on screen.
func (m *Model) ensureCursorVisible() {
	visibleRows := m.getVisibleRows()

	if m.cursor < m.viewportOffset {
		m.viewportOffset = m.cursor
	}
	if m.cursor >= m.viewportOffset+visibleRows {
		m.viewportOffset = m.cursor - visibleRows + 1
	}
	if m.viewportOffset < 0 {
		m.viewportOffset = 0
	}
}

// min returns the smaller of two integers.
func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// max returns the larger of two integers.
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

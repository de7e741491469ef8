// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column widths for the application list layout.
const (
	colWidthKey  = 5
	colWidthPin  = 3
	colWidthName = 24
	colWidthCmd  = 40
)

// View implements tea.Model and renders the complete TUI.
func (m Model) View() string {
	sections := []string{
		m.renderHeader(),
		m.renderListHeader(),
		m.renderList(),
		m.renderFooter(),
	}

	// Add search input below the header while searching or filtered
	if m.searchMode || m.searchInput.Value() != "" {
		sections = append([]string{sections[0], m.renderSearchBar()}, sections[1:]...)
	}

	// Add error message if present
	if m.lastError != nil {
		errMsg := m.styles.Error.Render(fmt.Sprintf("Error: %s", m.lastError.Error()))
		sections = append([]string{errMsg}, sections...)
	}

	view := strings.Join(sections, "\n")

	// Render help overlay if active
	if m.showHelp {
		view = lipgloss.JoinVertical(lipgloss.Left, view, m.renderHelp())
	}

	return view
}

// renderHeader renders the title line with app and pin counts.
func (m Model) renderHeader() string {
	pinnedCount := 0
	for _, entry := range m.entries {
		if m.pinned[entry.Name] {
			pinnedCount++
		}
	}

	return fmt.Sprintf("term-launcher (%d apps, %d pinned)  [? Help]", len(m.entries), pinnedCount)
}

// renderSearchBar renders the search input with the live match count.
func (m Model) renderSearchBar() string {
	if m.searchMode {
		return m.styles.FilterBar.Render(
			fmt.Sprintf("%s (%d matches)", m.searchInput.View(), len(m.visible)),
		)
	}
	// Applied filter, not editing
	return m.styles.FilterBar.Render(
		fmt.Sprintf("/ %s (%d matches, esc clears)", m.searchInput.Value(), len(m.visible)),
	)
}

// renderListHeader renders the list column headers.
func (m Model) renderListHeader() string {
	header := fmt.Sprintf("%-*s %-*s %-*s %-*s",
		colWidthKey, "KEY",
		colWidthPin, "PIN",
		colWidthName, "NAME",
		colWidthCmd, "COMMAND",
	)

	return m.styles.TableHeader.Width(m.width).Render(header)
}

// renderList renders the visible slice of the application list.
func (m Model) renderList() string {
	if len(m.visible) == 0 {
		if len(m.entries) == 0 {
			return m.styles.HeaderInfo.Render("No applications configured in " + m.configPath)
		}
		return m.styles.HeaderInfo.Render("No applications match the search")
	}

	visibleRows := m.getVisibleRows()
	startIdx := m.viewportOffset
	endIdx := min(startIdx+visibleRows, len(m.visible))

	var rows []string
	for i := startIdx; i < endIdx; i++ {
		entry := m.visible[i]

		style := m.styles.TableRow
		if i == m.cursor {
			style = m.styles.SelectedRow
		} else if m.pinned[entry.Name] {
			style = m.styles.PinnedRow
		}

		pin := " "
		if m.pinned[entry.Name] {
			pin = "*"
		}

		cmdLine := entry.Cmd
		if len(entry.Args) > 0 {
			cmdLine += " " + strings.Join(entry.Args, " ")
		}

		row := fmt.Sprintf("%-*s %-*s %-*s %-*s",
			colWidthKey, "["+entry.Key+"]",
			colWidthPin, pin,
			colWidthName, truncateString(entry.Name, colWidthName),
			colWidthCmd, truncateString(cmdLine, colWidthCmd),
		)

		rows = append(rows, style.Width(m.width).Render(row))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderFooter renders the footer with keybinding hints and the status bar.
func (m Model) renderFooter() string {
	bindings := []struct {
		key  string
		desc string
	}{
		{"j/k", "navigate"},
		{"enter", "launch"},
		{"hotkey", "launch direct"},
		{"/", "search"},
		{"p", "pin"},
		{"r", "reload"},
		{"q", "quit"},
	}

	var parts []string
	for i, b := range bindings {
		key := m.styles.HelpKey.Render(b.key)
		desc := m.styles.HelpDesc.Render(b.desc)
		parts = append(parts, fmt.Sprintf("%s %s", key, desc))
		if i < len(bindings)-1 {
			parts = append(parts, m.styles.HelpDesc.Render(" | "))
		}
	}

	keybindings := strings.Join(parts, "")

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.FilterBar.Render(keybindings),
		m.renderStatusBar(),
	)
}

// renderStatusBar renders launch state and status messages.
func (m Model) renderStatusBar() string {
	var parts []string

	if m.launching {
		parts = append(parts, m.styles.Warning.Render("Launching..."))
	}

	if m.statusMessage != "" {
		parts = append(parts, m.styles.HelpKey.Render(m.statusMessage))
	}

	if len(parts) == 0 {
		parts = append(parts, m.styles.HelpDesc.Render("enter launches the selected app"))
	}

	return m.styles.FilterBar.Render(strings.Join(parts, " "))
}

// renderHelp renders the help overlay with the full key reference.
func (m Model) renderHelp() string {
	lines := []string{
		m.styles.ModalTitle.Render("Keys"),
		"j/k, up/down   move the cursor",
		"g / G          jump to top / bottom",
		"pgup/pgdn      page through the list",
		"enter          launch the selected app",
		"a-z, 0-9       launch by hotkey",
		"/              search by name, key or command",
		"p              pin or unpin the selected app",
		"r              reload the config file",
		"esc            clear search, close help",
		"q              quit",
	}

	return m.styles.ModalBorder.Render(strings.Join(lines, "\n"))
}

// truncateString truncates a string to the specified length, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package tui

import (
	"sort"
	"strings"

	"github.com/jospf/term-launcher/internal/config"
)

// filterEntries returns the entries matching the search query.
// The match is a case-insensitive substring check against the display
// name, hotkey and command. An empty query matches everything.
func filterEntries(entries []config.AppEntry, query string) []config.AppEntry {
	if query == "" {
		result := make([]config.AppEntry, len(entries))
		copy(result, entries)
		return result
	}

	q := strings.ToLower(query)
	result := make([]config.AppEntry, 0, len(entries))

	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Name), q) ||
			strings.Contains(strings.ToLower(entry.Key), q) ||
			strings.Contains(strings.ToLower(entry.Cmd), q) {
			result = append(result, entry)
		}
	}

	return result
}

// sortEntries returns a sorted copy of the entries: pinned apps first,
// then alphabetical by name. Uses stable sort to preserve config order
// among equals.
func sortEntries(entries []config.AppEntry, pinned map[string]bool) []config.AppEntry {
	result := make([]config.AppEntry, len(entries))
	copy(result, entries)

	sort.SliceStable(result, func(i, j int) bool {
		pi, pj := pinned[result[i].Name], pinned[result[j].Name]
		if pi != pj {
			return pi
		}
		return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
	})

	return result
}

// SetEntries replaces the application list and refreshes the view.
func (m *Model) SetEntries(entries []config.AppEntry) {
	m.entries = entries
	m.RefreshVisible()
}

// RefreshVisible applies the current search filter and pin ordering.
func (m *Model) RefreshVisible() {
	filtered := filterEntries(m.entries, m.searchInput.Value())
	m.visible = sortEntries(filtered, m.pinned)

	// Reset cursor if it's out of bounds
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jospf/term-launcher/internal/config"
)

// createTestModelWithApps creates a test model with the specified number of apps.
func createTestModelWithApps(count int, height int) Model {
	entries := make([]config.AppEntry, count)
	for i := 0; i < count; i++ {
		entries[i] = config.AppEntry{
			Name: fmt.Sprintf("app-%03d", i),
			Key:  string(rune('a' + i%26)),
			Cmd:  fmt.Sprintf("cmd-%03d", i),
		}
	}

	m := NewModel(entries, "config.toml", nil, nil)
	m.height = height
	m.width = 100
	return m
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNavigationDown_ScrollsWhenCursorPastVisible(t *testing.T) {
	// Height of 18 leaves 10 visible rows
	m := createTestModelWithApps(50, 18)

	if m.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", m.cursor)
	}
	if m.viewportOffset != 0 {
		t.Errorf("expected viewportOffset at 0, got %d", m.viewportOffset)
	}

	// Navigate down 15 times (past the visible area of 10)
	for i := 0; i < 15; i++ {
		newModel, _ := m.Update(keyRunes('j'))
		m = newModel.(Model)
	}

	if m.cursor != 15 {
		t.Errorf("expected cursor at 15, got %d", m.cursor)
	}

	visibleRows := m.getVisibleRows()
	if m.cursor < m.viewportOffset || m.cursor >= m.viewportOffset+visibleRows {
		t.Errorf("cursor %d not visible in viewport (offset=%d, visibleRows=%d)",
			m.cursor, m.viewportOffset, visibleRows)
	}
}

func TestNavigationUp_ScrollsWhenCursorAboveVisible(t *testing.T) {
	m := createTestModelWithApps(50, 18)

	// Start at position 20 with viewport offset at 15
	m.cursor = 20
	m.viewportOffset = 15

	for i := 0; i < 10; i++ {
		newModel, _ := m.Update(keyRunes('k'))
		m = newModel.(Model)
	}

	if m.cursor != 10 {
		t.Errorf("expected cursor at 10, got %d", m.cursor)
	}

	if m.cursor < m.viewportOffset {
		t.Errorf("cursor %d above viewport offset %d", m.cursor, m.viewportOffset)
	}
}

func TestPageDown_MovesCursorByVisibleRows(t *testing.T) {
	m := createTestModelWithApps(50, 18)
	visibleRows := m.getVisibleRows()

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	m = newModel.(Model)

	expectedCursor := min(visibleRows, len(m.visible)-1)
	if m.cursor != expectedCursor {
		t.Errorf("expected cursor at %d after pgdown, got %d", expectedCursor, m.cursor)
	}

	if m.viewportOffset == 0 && len(m.visible) > visibleRows {
		t.Errorf("expected viewportOffset to increase after pgdown, still 0")
	}
}

func TestPageUp_MovesCursorByVisibleRows(t *testing.T) {
	m := createTestModelWithApps(50, 18)
	visibleRows := m.getVisibleRows()

	m.cursor = 30
	m.viewportOffset = 25

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	m = newModel.(Model)

	expectedCursor := max(30-visibleRows, 0)
	if m.cursor != expectedCursor {
		t.Errorf("expected cursor at %d after pgup, got %d", expectedCursor, m.cursor)
	}

	if m.cursor < m.viewportOffset {
		t.Errorf("cursor %d above viewport offset %d after pgup", m.cursor, m.viewportOffset)
	}
}

func TestGoToTop_ResetsCursorAndViewport(t *testing.T) {
	m := createTestModelWithApps(50, 18)

	m.cursor = 30
	m.viewportOffset = 25

	newModel, _ := m.Update(keyRunes('g'))
	m = newModel.(Model)

	if m.cursor != 0 {
		t.Errorf("expected cursor at 0 after 'g', got %d", m.cursor)
	}
	if m.viewportOffset != 0 {
		t.Errorf("expected viewportOffset at 0 after 'g', got %d", m.viewportOffset)
	}
}

func TestGoToBottom_SetsCursorToEnd(t *testing.T) {
	m := createTestModelWithApps(50, 18)
	visibleRows := m.getVisibleRows()

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftUp})
	m = newModel.(Model)
	// shift+up is unbound; cursor must not move
	if m.cursor != 0 {
		t.Errorf("unbound key moved cursor to %d", m.cursor)
	}

	newModel, _ = m.Update(keyRunes('G'))
	m = newModel.(Model)

	expectedCursor := len(m.visible) - 1
	if m.cursor != expectedCursor {
		t.Errorf("expected cursor at %d after 'G', got %d", expectedCursor, m.cursor)
	}

	expectedOffset := max(0, len(m.visible)-visibleRows)
	if m.viewportOffset != expectedOffset {
		t.Errorf("expected viewportOffset at %d after 'G', got %d", expectedOffset, m.viewportOffset)
	}
}

func TestCtrlD_PageDown(t *testing.T) {
	m := createTestModelWithApps(50, 18)
	visibleRows := m.getVisibleRows()

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	m = newModel.(Model)

	expectedCursor := min(visibleRows, len(m.visible)-1)
	if m.cursor != expectedCursor {
		t.Errorf("expected cursor at %d after ctrl+d, got %d", expectedCursor, m.cursor)
	}
}

func TestCtrlU_PageUp(t *testing.T) {
	m := createTestModelWithApps(50, 18)
	visibleRows := m.getVisibleRows()

	m.cursor = 30
	m.viewportOffset = 25

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	m = newModel.(Model)

	expectedCursor := max(30-visibleRows, 0)
	if m.cursor != expectedCursor {
		t.Errorf("expected cursor at %d after ctrl+u, got %d", expectedCursor, m.cursor)
	}
}

func TestNavigationWithEmptyList(t *testing.T) {
	m := createTestModelWithApps(0, 18)

	newModel, _ := m.Update(keyRunes('j'))
	m = newModel.(Model)

	if m.cursor != 0 {
		t.Errorf("cursor should stay at 0 with empty list, got %d", m.cursor)
	}

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	m = newModel.(Model)

	if m.cursor != 0 {
		t.Errorf("cursor should stay at 0 with empty list after pgdown, got %d", m.cursor)
	}
}

func TestCursorStaysVisibleAfterScroll(t *testing.T) {
	m := createTestModelWithApps(100, 18)
	visibleRows := m.getVisibleRows()

	for i := 0; i < 50; i++ {
		newModel, _ := m.Update(keyRunes('j'))
		m = newModel.(Model)

		if m.cursor < m.viewportOffset {
			t.Errorf("after %d moves down: cursor %d above viewport %d", i+1, m.cursor, m.viewportOffset)
		}
		if m.cursor >= m.viewportOffset+visibleRows {
			t.Errorf("after %d moves down: cursor %d below viewport end %d",
				i+1, m.cursor, m.viewportOffset+visibleRows)
		}
	}

	for i := 0; i < 50; i++ {
		newModel, _ := m.Update(keyRunes('k'))
		m = newModel.(Model)

		if m.cursor < m.viewportOffset {
			t.Errorf("after %d moves up: cursor %d above viewport %d", i+1, m.cursor, m.viewportOffset)
		}
		if m.cursor >= m.viewportOffset+visibleRows {
			t.Errorf("after %d moves up: cursor %d below viewport end %d",
				i+1, m.cursor, m.viewportOffset+visibleRows)
		}
	}
}

func TestWindowResize_KeepsCursorVisible(t *testing.T) {
	m := createTestModelWithApps(50, 30)

	m.cursor = 20
	m.ensureCursorVisible()

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	m = newModel.(Model)

	visibleRows := m.getVisibleRows()
	if m.cursor < m.viewportOffset || m.cursor >= m.viewportOffset+visibleRows {
		t.Errorf("cursor %d not visible after resize (offset=%d, visibleRows=%d)",
			m.cursor, m.viewportOffset, visibleRows)
	}
}

// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package tui

import "github.com/charmbracelet/lipgloss"

// UI colors for general interface elements.
const (
	ColorPrimary   = lipgloss.Color("#7D56F4") // Purple accent
	ColorSecondary = lipgloss.Color("#FFFDF5") // Off-white text
	ColorMuted     = lipgloss.Color("#626262") // Muted text
	ColorBorder    = lipgloss.Color("#383838") // Border color
	ColorPinned    = lipgloss.Color("#00AFFF") // Blue - pinned apps
)

// Styles contains all lipgloss style definitions for the TUI.
type Styles struct {
	// Header styles
	HeaderInfo lipgloss.Style

	// Search/footer bars
	FilterBar lipgloss.Style

	// List styles
	TableHeader lipgloss.Style
	TableRow    lipgloss.Style
	SelectedRow lipgloss.Style
	PinnedRow   lipgloss.Style

	// Help overlay styles
	ModalBorder lipgloss.Style
	ModalTitle  lipgloss.Style

	// Help styles
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Message styles
	Error   lipgloss.Style
	Warning lipgloss.Style
}

// DefaultStyles creates a new Styles instance with default styling.
func DefaultStyles() Styles {
	return Styles{
		HeaderInfo: lipgloss.NewStyle().
			Foreground(ColorMuted),

		FilterBar: lipgloss.NewStyle().
			Padding(0, 1),

		TableHeader: lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			BorderBottom(true).
			Padding(0, 1),

		TableRow: lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Padding(0, 1),

		SelectedRow: lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Background(ColorPrimary).
			Bold(true).
			Padding(0, 1),

		PinnedRow: lipgloss.NewStyle().
			Foreground(ColorPinned).
			Bold(true).
			Padding(0, 1),

		ModalBorder: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2),

		ModalTitle: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			MarginBottom(1),

		HelpKey: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(ColorMuted),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFF00")).
			Bold(true),
	}
}

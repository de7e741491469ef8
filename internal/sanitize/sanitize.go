// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package sanitize neutralizes terminal control characters in display text.
package sanitize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// replacement is substituted for every control character and invalid byte.
const replacement = '?'

// Clean returns s with every control character (C0, DEL, C1) and every
// invalid UTF-8 byte replaced by '?'. The result renders literally in a
// terminal: no escape sequences, no cursor movement, no screen clearing.
// Clean is idempotent.
func Clean(s string) string {
	return strings.Map(func(r rune) rune {
		if r == utf8.RuneError || unicode.IsControl(r) {
			return replacement
		}
		return r
	}, s)
}

// IsClean reports whether s contains no control characters and is valid UTF-8.
func IsClean(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	return !strings.ContainsFunc(s, unicode.IsControl)
}

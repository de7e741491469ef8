// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "htop",
			want:  "htop",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "spaces and punctuation preserved",
			input: "System Monitor (htop)",
			want:  "System Monitor (htop)",
		},
		{
			name:  "escape sequence neutralized",
			input: "evil\x1b[2Jname",
			want:  "evil?[2Jname",
		},
		{
			name:  "newline and tab replaced",
			input: "line1\nline2\tend",
			want:  "line1?line2?end",
		},
		{
			name:  "carriage return replaced",
			input: "name\rspoof",
			want:  "name?spoof",
		},
		{
			name:  "null byte replaced",
			input: "a\x00b",
			want:  "a?b",
		},
		{
			name:  "DEL replaced",
			input: "a\x7fb",
			want:  "a?b",
		},
		{
			name:  "C1 control replaced",
			input: "ab",
			want:  "a?b",
		},
		{
			name:  "invalid UTF-8 byte replaced",
			input: "a\xffb",
			want:  "a?b",
		},
		{
			name:  "unicode text preserved",
			input: "éditeur übersicht 監視",
			want:  "éditeur übersicht 監視",
		},
		{
			name:  "only controls",
			input: "\x1b\x07\x00",
			want:  "???",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"htop",
		"evil\x1b[2Jname",
		"\x00\x01\x02",
		"a\xffb",
		"mixed \t text  here",
	}

	for _, input := range inputs {
		once := Clean(input)
		twice := Clean(once)
		assert.Equal(t, once, twice, "Clean(Clean(%q)) should equal Clean(%q)", input, input)
	}
}

func TestClean_OutputIsAlwaysClean(t *testing.T) {
	inputs := []string{
		"htop",
		"evil\x1b[2Jname",
		"\x00\x01\x02\x7f",
		"a\xff\xfeb",
	}

	for _, input := range inputs {
		assert.True(t, IsClean(Clean(input)), "Clean(%q) should produce clean output", input)
	}
}

func TestIsClean(t *testing.T) {
	assert.True(t, IsClean("htop"))
	assert.True(t, IsClean(""))
	assert.True(t, IsClean("監視 übersicht"))
	assert.False(t, IsClean("a\x1bb"))
	assert.False(t, IsClean("a\nb"))
	assert.False(t, IsClean("a\xffb"))
}

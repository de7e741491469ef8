// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package testutil provides testing utilities and helpers for the term-launcher project.
package testutil

import (
	"github.com/jospf/term-launcher/internal/config"
)

// EntryOption is a functional option for configuring test app entries.
type EntryOption func(*config.AppEntry)

// NewTestEntry creates an AppEntry with sensible defaults for testing.
// Use the With* option functions to customize specific fields.
func NewTestEntry(opts ...EntryOption) config.AppEntry {
	entry := config.AppEntry{
		Name: "testapp",
		Key:  "t",
		Cmd:  "testcmd",
	}

	for _, opt := range opts {
		opt(&entry)
	}

	return entry
}

// WithName sets the display name.
func WithName(name string) EntryOption {
	return func(e *config.AppEntry) {
		e.Name = name
	}
}

// WithKey sets the hotkey.
func WithKey(key string) EntryOption {
	return func(e *config.AppEntry) {
		e.Key = key
	}
}

// WithCmd sets the command.
func WithCmd(cmd string) EntryOption {
	return func(e *config.AppEntry) {
		e.Cmd = cmd
	}
}

// WithArgs sets the command arguments.
func WithArgs(args ...string) EntryOption {
	return func(e *config.AppEntry) {
		e.Args = args
	}
}

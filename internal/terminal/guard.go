// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package terminal tracks which side owns the terminal: the launcher UI or
// a launched child process.
package terminal

import (
	"fmt"
	"sync"

	"github.com/jospf/term-launcher/internal/logging"
)

// State is the terminal ownership state.
type State int

const (
	// StateNormal means the terminal is in its ordinary cooked mode, owned
	// by the shell or a child process.
	StateNormal State = iota
	// StateUIActive means the launcher UI owns the terminal (raw mode,
	// alternate screen).
	StateUIActive
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateUIActive:
		return "ui-active"
	default:
		return "unknown"
	}
}

// Controller switches the terminal between UI mode and normal mode.
// *tea.Program satisfies this interface.
type Controller interface {
	ReleaseTerminal() error
	RestoreTerminal() error
}

// Guard serializes terminal mode transitions and makes them idempotent:
// entering a state the terminal is already in is a no-op. With no controller
// set, transitions update only the bookkeeping, which is what headless
// subcommands and tests need.
type Guard struct {
	mu    sync.Mutex
	ctrl  Controller
	state State
}

// New creates a Guard in the given initial state. The controller is attached
// separately because the UI program that provides it is constructed after
// the guard.
func New(initial State) *Guard {
	return &Guard{state: initial}
}

// SetController attaches the terminal controller.
func (g *Guard) SetController(ctrl Controller) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ctrl = ctrl
}

// State returns the current terminal state.
func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// LeaveUI transitions UIActive -> Normal, restoring cooked mode and the
// primary screen so a child process can take the terminal. Calling it in
// Normal state is a no-op.
func (g *Guard) LeaveUI() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == StateNormal {
		return nil
	}
	if g.ctrl != nil {
		if err := g.ctrl.ReleaseTerminal(); err != nil {
			return fmt.Errorf("releasing terminal: %w", err)
		}
	}
	g.state = StateNormal
	return nil
}

// EnterUI transitions Normal -> UIActive, handing the terminal back to the
// UI. Calling it in UIActive state is a no-op.
func (g *Guard) EnterUI() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == StateUIActive {
		return nil
	}
	if g.ctrl != nil {
		if err := g.ctrl.RestoreTerminal(); err != nil {
			return fmt.Errorf("restoring terminal: %w", err)
		}
	}
	g.state = StateUIActive
	return nil
}

// Close is the final terminal release, meant for a top-level defer: whatever
// happened before, the terminal ends up in normal mode. Safe to call more
// than once; failures are logged because at teardown there is nobody left to
// return an error to.
func (g *Guard) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == StateNormal {
		return
	}
	if g.ctrl != nil {
		if err := g.ctrl.ReleaseTerminal(); err != nil {
			logging.WithComponent("terminal").Error("final terminal release failed", "error", err)
			return
		}
	}
	g.state = StateNormal
}

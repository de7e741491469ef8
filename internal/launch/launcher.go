// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package launch

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/jospf/term-launcher/internal/config"
	"github.com/jospf/term-launcher/internal/logging"
)

// ExitStatus describes how a launched process ended.
type ExitStatus struct {
	Code int    // process exit code; -1 when killed by a signal
	Desc string // os.ProcessState description, e.g. "exit status 0"
}

// Spawner runs a resolved executable and blocks until it exits.
// The production implementation is ProcessSpawner; tests substitute mocks.
type Spawner interface {
	Run(path string, args []string) (ExitStatus, error)
}

// Guard coordinates terminal ownership around a child process.
// Implemented by terminal.Guard.
type Guard interface {
	LeaveUI() error
	EnterUI() error
}

// ProcessSpawner spawns processes with os/exec, inheriting the launcher's
// terminal. The command is invoked directly from an argv vector; no shell is
// involved at any point.
type ProcessSpawner struct {
	// ClearScreen writes an ANSI clear to stdout before the child starts,
	// so full-screen programs begin on a clean primary buffer.
	ClearScreen bool
}

// Run implements Spawner. A nonzero exit code is not an error: the child ran
// and finished. Only process creation failures return an error.
func (p ProcessSpawner) Run(path string, args []string) (ExitStatus, error) {
	if p.ClearScreen {
		fmt.Fprint(os.Stdout, "\x1b[2J\x1b[H")
	}

	cmd := exec.Command(path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return ExitStatus{Code: 0, Desc: cmd.ProcessState.String()}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return ExitStatus{
			Code: exitErr.ExitCode(),
			Desc: exitErr.ProcessState.String(),
		}, nil
	}

	return ExitStatus{}, err
}

// Launcher orchestrates a single launch: resolve, validate, hand the
// terminal over, spawn, wait, hand the terminal back. Launches are strictly
// serial; the Launcher holds no state between them and never caches
// resolution results.
type Launcher struct {
	allow     *Allowlist
	guard     Guard
	spawner   Spawner
	afterExit func(ExitStatus)
}

// New creates a Launcher over the given allowlist, terminal guard, and
// spawner.
func New(allow *Allowlist, guard Guard, spawner Spawner) *Launcher {
	return &Launcher{
		allow:   allow,
		guard:   guard,
		spawner: spawner,
	}
}

// SetAfterExit registers a hook that runs after a child exits, while the
// terminal is still in normal mode. The TUI uses it for the
// press-any-key-to-return prompt.
func (l *Launcher) SetAfterExit(fn func(ExitStatus)) {
	l.afterExit = fn
}

// Launch resolves, validates, and runs the entry's command, blocking until
// the child exits. Refusals are returned unchanged so callers can show their
// message verbatim. A child that ran and exited nonzero is a successful
// launch; inspect the returned ExitStatus.
func (l *Launcher) Launch(entry config.AppEntry) (ExitStatus, error) {
	logger := logging.WithComponent("launch")
	logger.Info("launching", "app", entry.Name, "cmd", entry.Cmd)

	path, err := l.allow.Resolve(entry.Cmd)
	if err != nil {
		logger.Warn("resolution refused", "app", entry.Name, "error", err)
		return ExitStatus{}, err
	}

	if err := Validate(path); err != nil {
		logger.Warn("validation refused", "app", entry.Name, "path", path, "error", err)
		return ExitStatus{}, err
	}

	if err := l.guard.LeaveUI(); err != nil {
		return ExitStatus{}, fmt.Errorf("releasing terminal: %w", err)
	}

	// No deferred EnterUI here: if the spawn panics, the terminal must stay
	// in normal mode while the process unwinds.
	status, err := l.spawner.Run(path, entry.Args)
	if err != nil {
		refusal := newRefusal(ReasonSpawnFailed, entry.Cmd, "", err)
		logger.Error("spawn failed", "app", entry.Name, "path", path, "error", err)
		if enterErr := l.guard.EnterUI(); enterErr != nil {
			logger.Error("restoring terminal after failed spawn", "error", enterErr)
		}
		return ExitStatus{}, refusal
	}

	logger.Info("process exited", "app", entry.Name, "code", status.Code, "status", status.Desc)

	if l.afterExit != nil {
		l.afterExit(status)
	}

	if err := l.guard.EnterUI(); err != nil {
		return status, fmt.Errorf("restoring terminal: %w", err)
	}

	return status, nil
}

// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/jospf/term-launcher/internal/logging"
)

// termDeps abstracts the x/term calls so tests can run without a TTY.
type termDeps struct {
	isTerminal func(fd int) bool
	makeRaw    func(fd int) (*term.State, error)
	restore    func(fd int, old *term.State) error
}

func defaultTermDeps() termDeps {
	return termDeps{
		isTerminal: term.IsTerminal,
		makeRaw:    term.MakeRaw,
		restore:    term.Restore,
	}
}

var deps = defaultTermDeps()

// WaitForKey blocks until a single byte arrives on f, reading in raw mode so
// the very next keypress returns without a newline. The previous terminal
// mode is restored before returning, on every path. When f is not a
// terminal there is nobody to wait for and WaitForKey returns immediately.
func WaitForKey(f *os.File) error {
	fd := int(f.Fd())
	if !deps.isTerminal(fd) {
		return nil
	}

	old, err := deps.makeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer func() {
		if err := deps.restore(fd, old); err != nil {
			logging.WithComponent("terminal").Error("restoring terminal mode", "error", err)
		}
	}()

	buf := make([]byte, 1)
	if _, err := f.Read(buf); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading key: %w", err)
	}
	return nil
}

// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jospf/term-launcher/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// A child's nonzero exit propagates as our own exit code.
		var exitErr cmd.ExitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

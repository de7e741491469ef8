// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package launch

import (
	"errors"
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
)

// Validate confirms that path is a regular file this process can execute.
// It returns a *RefusalError otherwise. Validation runs immediately before
// every spawn; the window between check and exec is small but not zero, so
// spawn failures still map to ReasonSpawnFailed as a backstop.
func Validate(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return newRefusal(ReasonNotFound, path, "", err)
		}
		return newRefusal(ReasonNotExecutable, path, "cannot stat", err)
	}

	if !info.Mode().IsRegular() {
		return newRefusal(ReasonNotExecutable, path, "not a regular file", nil)
	}

	if err := unix.Access(path, unix.X_OK); err != nil {
		return newRefusal(ReasonNotExecutable, path, "no execute permission", err)
	}

	return nil
}

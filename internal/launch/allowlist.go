// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package launch resolves configured commands to allowed executables and
// runs them without a shell.
package launch

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Allowlist is the fixed, ordered set of directories that bare command names
// may resolve from. Earlier directories win. Absolute command paths bypass
// membership entirely; relative paths are always refused.
type Allowlist struct {
	dirs      []string
	canonical []string // symlink-resolved counterparts of dirs, for containment checks
}

// DefaultDirs returns the standard launcher search directories in priority
// order: /usr/bin, /usr/local/bin, /bin, and ~/.local/bin.
func DefaultDirs() ([]string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home directory: %w", err)
	}
	return []string{
		"/usr/bin",
		"/usr/local/bin",
		"/bin",
		filepath.Join(home, ".local", "bin"),
	}, nil
}

// DefaultAllowlist builds an Allowlist over DefaultDirs.
func DefaultAllowlist() (*Allowlist, error) {
	dirs, err := DefaultDirs()
	if err != nil {
		return nil, err
	}
	return NewAllowlist(dirs), nil
}

// NewAllowlist builds an Allowlist over the given directories, preserving
// their order. Directories are canonicalized up front so containment checks
// compare symlink-free paths; a directory that cannot be canonicalized keeps
// its cleaned form and simply never matches.
func NewAllowlist(dirs []string) *Allowlist {
	a := &Allowlist{
		dirs:      make([]string, 0, len(dirs)),
		canonical: make([]string, 0, len(dirs)),
	}
	for _, dir := range dirs {
		cleaned := filepath.Clean(dir)
		a.dirs = append(a.dirs, cleaned)

		canon, err := filepath.EvalSymlinks(cleaned)
		if err != nil {
			canon = cleaned
		}
		a.canonical = append(a.canonical, canon)
	}
	return a
}

// Dirs returns the allowed directories in search order.
func (a *Allowlist) Dirs() []string {
	out := make([]string, len(a.dirs))
	copy(out, a.dirs)
	return out
}

// Resolve maps a configured command string to the canonical path of an
// allowed executable. It returns a *RefusalError when the command cannot be
// resolved safely. Resolve consults the filesystem fresh on every call;
// results must not be cached across launches.
func (a *Allowlist) Resolve(cmd string) (string, error) {
	if cmd == "" {
		return "", newRefusal(ReasonUnresolvable, cmd, "empty command", nil)
	}

	if filepath.IsAbs(cmd) {
		return a.resolveAbsolute(cmd)
	}

	// Relative paths with separators never touch the filesystem.
	if strings.ContainsRune(cmd, filepath.Separator) {
		return "", newRefusal(ReasonUnresolvable, cmd, "relative paths are not allowed", nil)
	}

	return a.resolveBareName(cmd)
}

// resolveAbsolute canonicalizes an absolute command path. Absolute paths are
// always permitted regardless of allowlist membership; the validator still
// has to accept the result before anything runs.
func (a *Allowlist) resolveAbsolute(cmd string) (string, error) {
	canon, err := filepath.EvalSymlinks(cmd)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", newRefusal(ReasonNotFound, cmd, "", err)
		}
		return "", newRefusal(ReasonCanonicalizationFailed, cmd, "", err)
	}
	return canon, nil
}

// resolveBareName searches the allowed directories in order for a direct
// child named cmd. The first directory containing the name wins; no partial
// matches, no recursion, no $PATH.
func (a *Allowlist) resolveBareName(cmd string) (string, error) {
	for i, dir := range a.dirs {
		// Stat, not Lstat: the directory itself may be a symlink, as /bin is
		// on merged-usr systems.
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		if dirWritableByOthers(info) {
			slog.Debug("skipping group/other writable directory",
				"component", "launch", "dir", dir)
			continue
		}

		candidate := filepath.Join(dir, cmd)
		if _, err := os.Lstat(candidate); err != nil {
			continue
		}

		// The name exists here, so this directory owns the decision.
		canon, err := filepath.EvalSymlinks(candidate)
		if err != nil {
			return "", newRefusal(ReasonCanonicalizationFailed, cmd,
				fmt.Sprintf("resolving %s", candidate), err)
		}
		if !a.contains(canon) {
			return "", newRefusal(ReasonUnresolvable, cmd,
				fmt.Sprintf("%s resolves outside the allowed directories", candidate), nil)
		}

		slog.Debug("resolved command", "component", "launch",
			"cmd", cmd, "dir", a.dirs[i], "path", canon)
		return canon, nil
	}

	return "", newRefusal(ReasonUnresolvable, cmd, "not found in any allowed directory", nil)
}

// contains reports whether path sits under one of the canonicalized allowed
// directories.
func (a *Allowlist) contains(path string) bool {
	for _, dir := range a.canonical {
		if strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// dirWritableByOthers reports whether a directory is writable by group or
// other. Such directories are unsafe lookup locations: anyone could plant a
// binary there.
func dirWritableByOthers(info fs.FileInfo) bool {
	return info.Mode().Perm()&0o022 != 0
}

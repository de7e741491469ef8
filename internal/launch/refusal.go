// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package launch

import (
	"errors"
	"fmt"
)

// Reason classifies why a command was refused.
type Reason int

const (
	// ReasonUnresolvable means the command could not be mapped to an allowed
	// executable: a relative path, or a bare name absent from every allowed
	// directory, or a lookup that escaped the allowed directories.
	ReasonUnresolvable Reason = iota

	// ReasonNotFound means a concrete candidate path does not exist.
	ReasonNotFound

	// ReasonNotExecutable means the path exists but is not a regular file
	// with execute permission for this process.
	ReasonNotExecutable

	// ReasonCanonicalizationFailed means symlink resolution failed
	// (dangling link, symlink loop, or an I/O error along the path).
	ReasonCanonicalizationFailed

	// ReasonSpawnFailed means process creation failed after all checks passed.
	ReasonSpawnFailed
)

// String returns a short human-readable name for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonUnresolvable:
		return "not resolvable"
	case ReasonNotFound:
		return "not found"
	case ReasonNotExecutable:
		return "not executable"
	case ReasonCanonicalizationFailed:
		return "canonicalization failed"
	case ReasonSpawnFailed:
		return "spawn failed"
	default:
		return "unknown"
	}
}

// RefusalError reports that a command was refused, and why. Refusals are
// ordinary recoverable errors: the launcher keeps running and the message is
// shown to the user verbatim.
type RefusalError struct {
	Reason Reason
	Cmd    string // the configured command string, unmodified
	Detail string // optional extra context
	Err    error  // underlying OS error, if any
}

// Error implements the error interface.
func (e *RefusalError) Error() string {
	msg := fmt.Sprintf("refusing to launch %q: %s", e.Cmd, e.Reason)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying OS error, if any.
func (e *RefusalError) Unwrap() error {
	return e.Err
}

// newRefusal constructs a RefusalError.
func newRefusal(reason Reason, cmd, detail string, err error) *RefusalError {
	return &RefusalError{Reason: reason, Cmd: cmd, Detail: detail, Err: err}
}

// AsRefusal extracts a RefusalError from err, if err carries one.
func AsRefusal(err error) (*RefusalError, bool) {
	var refusal *RefusalError
	if errors.As(err, &refusal) {
		return refusal, true
	}
	return nil, false
}

// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package terminal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingController counts release/restore calls and can inject failures.
type recordingController struct {
	releases   int
	restores   int
	releaseErr error
	restoreErr error
}

func (c *recordingController) ReleaseTerminal() error {
	c.releases++
	return c.releaseErr
}

func (c *recordingController) RestoreTerminal() error {
	c.restores++
	return c.restoreErr
}

func TestGuard_LeaveAndEnter(t *testing.T) {
	ctrl := &recordingController{}
	g := New(StateUIActive)
	g.SetController(ctrl)

	require.NoError(t, g.LeaveUI())
	assert.Equal(t, StateNormal, g.State())
	assert.Equal(t, 1, ctrl.releases)

	require.NoError(t, g.EnterUI())
	assert.Equal(t, StateUIActive, g.State())
	assert.Equal(t, 1, ctrl.restores)
}

func TestGuard_LeaveUIIdempotent(t *testing.T) {
	ctrl := &recordingController{}
	g := New(StateUIActive)
	g.SetController(ctrl)

	require.NoError(t, g.LeaveUI())
	require.NoError(t, g.LeaveUI())
	require.NoError(t, g.LeaveUI())

	assert.Equal(t, 1, ctrl.releases, "repeated LeaveUI must release only once")
	assert.Equal(t, StateNormal, g.State())
}

func TestGuard_EnterUIIdempotent(t *testing.T) {
	ctrl := &recordingController{}
	g := New(StateUIActive)
	g.SetController(ctrl)

	require.NoError(t, g.EnterUI())
	require.NoError(t, g.EnterUI())

	assert.Equal(t, 0, ctrl.restores, "EnterUI in UIActive state must be a no-op")
}

func TestGuard_InitialNormal(t *testing.T) {
	ctrl := &recordingController{}
	g := New(StateNormal)
	g.SetController(ctrl)

	require.NoError(t, g.LeaveUI())
	assert.Equal(t, 0, ctrl.releases)

	require.NoError(t, g.EnterUI())
	assert.Equal(t, 1, ctrl.restores)
	assert.Equal(t, StateUIActive, g.State())
}

func TestGuard_ReleaseErrorKeepsState(t *testing.T) {
	ctrl := &recordingController{releaseErr: errors.New("tty gone")}
	g := New(StateUIActive)
	g.SetController(ctrl)

	err := g.LeaveUI()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "releasing terminal")

	// The transition did not happen, so a retry is allowed to release again.
	assert.Equal(t, StateUIActive, g.State())

	ctrl.releaseErr = nil
	require.NoError(t, g.LeaveUI())
	assert.Equal(t, StateNormal, g.State())
	assert.Equal(t, 2, ctrl.releases)
}

func TestGuard_Close(t *testing.T) {
	ctrl := &recordingController{}
	g := New(StateUIActive)
	g.SetController(ctrl)

	g.Close()
	assert.Equal(t, StateNormal, g.State())
	assert.Equal(t, 1, ctrl.releases)

	// Already normal: further closes are no-ops.
	g.Close()
	g.Close()
	assert.Equal(t, 1, ctrl.releases)
}

func TestGuard_CloseAfterLeaveUI(t *testing.T) {
	ctrl := &recordingController{}
	g := New(StateUIActive)
	g.SetController(ctrl)

	require.NoError(t, g.LeaveUI())
	g.Close()

	assert.Equal(t, 1, ctrl.releases, "Close after LeaveUI must not release again")
}

func TestGuard_NoController(t *testing.T) {
	g := New(StateUIActive)

	require.NoError(t, g.LeaveUI())
	assert.Equal(t, StateNormal, g.State())

	require.NoError(t, g.EnterUI())
	assert.Equal(t, StateUIActive, g.State())

	g.Close()
	assert.Equal(t, StateNormal, g.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "normal", StateNormal.String())
	assert.Equal(t, "ui-active", StateUIActive.String())
	assert.Equal(t, "unknown", State(42).String())
}

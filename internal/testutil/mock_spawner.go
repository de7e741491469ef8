// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package testutil

import (
	"sync"

	"github.com/jospf/term-launcher/internal/launch"
)

// MockSpawner implements launch.Spawner for testing.
// It allows configuring responses and records all calls for verification.
type MockSpawner struct {
	mu      sync.Mutex
	RunFunc func(path string, args []string) (launch.ExitStatus, error)
	Status  launch.ExitStatus // returned when RunFunc is nil
	Calls   [][]string        // Record all calls for verification
}

// NewMockSpawner creates a new MockSpawner that reports a clean exit.
func NewMockSpawner() *MockSpawner {
	return &MockSpawner{
		Status: launch.ExitStatus{Code: 0, Desc: "exit status 0"},
		Calls:  make([][]string, 0),
	}
}

// Run runs the configured RunFunc or returns the canned Status.
// All calls are recorded in the Calls slice for verification.
func (m *MockSpawner) Run(path string, args []string) (launch.ExitStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Record the call: first element is the resolved path, rest are args
	call := append([]string{path}, args...)
	m.Calls = append(m.Calls, call)

	if m.RunFunc != nil {
		return m.RunFunc(path, args)
	}
	return m.Status, nil
}

// Reset clears all recorded calls.
func (m *MockSpawner) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = make([][]string, 0)
}

// CallCount returns the number of Run calls made.
func (m *MockSpawner) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// GetCall returns the call at the given index, or nil if out of range.
func (m *MockSpawner) GetCall(index int) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.Calls) {
		return nil
	}
	return m.Calls[index]
}

// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jospf/term-launcher/internal/logging"
)

// ReloadEvent carries a freshly loaded application list, or the load error
// if the rewritten file is invalid. On error the receiver should keep its
// current entries.
type ReloadEvent struct {
	Entries []AppEntry
	Err     error
}

// defaultDebounce absorbs the bursts of filesystem events editors emit for
// a single save.
const defaultDebounce = 250 * time.Millisecond

// Watcher reloads the application list when the config file changes.
type Watcher struct {
	path     string
	debounce time.Duration
	events   chan ReloadEvent
	stopCh   chan struct{}
	fw       *fsnotify.Watcher
}

// NewWatcher creates a Watcher for the config file at path. The watch is
// placed on the parent directory: editors replace files on save, which
// would silently drop a watch on the file itself.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	return &Watcher{
		path:     filepath.Clean(path),
		debounce: defaultDebounce,
		events:   make(chan ReloadEvent, 4),
		stopCh:   make(chan struct{}),
		fw:       fw,
	}, nil
}

// Start begins watching. Returns a channel that receives a ReloadEvent per
// settled change; the channel is closed when Stop is called.
func (w *Watcher) Start() <-chan ReloadEvent {
	go w.run()
	return w.events
}

// Stop stops the watcher and closes the event channel.
func (w *Watcher) Stop() {
	close(w.stopCh)
}

// run is the watcher event loop.
func (w *Watcher) run() {
	logger := logging.WithComponent("config")
	defer close(w.events)
	defer w.fw.Close()

	// Debounced trigger: a burst of events collapses into one reload.
	fire := make(chan struct{}, 1)
	var pending *time.Timer

	for {
		select {
		case <-w.stopCh:
			if pending != nil {
				pending.Stop()
			}
			return

		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}
			logger.Debug("config file changed", "event", ev.Op.String())
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(w.debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			entries, err := LoadApps(w.path)
			if err != nil {
				logger.Warn("config reload failed", "error", err)
			} else {
				logger.Info("config reloaded", "apps", len(entries))
			}
			select {
			case w.events <- ReloadEvent{Entries: entries, Err: err}:
			case <-w.stopCh:
				return
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			logger.Warn("file watcher error", "error", err)
		}
	}
}

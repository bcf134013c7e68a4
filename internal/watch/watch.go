// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

// Package watch notifies the demo when its settings file changes on disk.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/toeirei/dropindemo/internal/logging"
)

// DefaultDebounce is how long the watcher waits after the last write.
const DefaultDebounce = 500 * time.Millisecond

// Watcher calls notify once a burst of writes to a single file settles.
// The parent directory is watched so editors that replace the file on save
// are still seen.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	notify   func()
	debounce time.Duration
}

// New creates a watcher for path. The directory containing path must exist.
func New(path string, notify func()) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(abs)
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("settings directory: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %q: %w", dir, err)
	}
	return &Watcher{watcher: w, path: abs, notify: notify, debounce: DefaultDebounce}, nil
}

// SetDebounce overrides the quiet period; call before Run.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run blocks until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	var (
		mu       sync.Mutex
		debounce *time.Timer
	)
	stop := func() {
		mu.Lock()
		if debounce != nil {
			debounce.Stop()
		}
		mu.Unlock()
	}

	for {
		select {
		case <-ctx.Done():
			stop()
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				stop()
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			mu.Lock()
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(w.debounce, func() {
				logging.Debugf("settings file changed: %s", w.path)
				w.notify()
			})
			mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				stop()
				return nil
			}
			logging.Warnf("file watcher error: %v", err)
		}
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

// DefaultDebounce collapses the burst of events one SQLite commit produces
// (main file, -wal and -shm).
const DefaultDebounce = 250 * time.Millisecond

// DBWatcher notices commits made to the database by other processes, such
// as a `taskkeeper add` run while the TUI is open. File events only wake it
// up; OnChange fires when data_version has actually moved, so the process's
// own writes are ignored.
type DBWatcher struct {
	path     string
	versions DataVersioner
	debounce time.Duration
	onChange func()

	logger *logger.Logger
}

func NewDBWatcher(path string, versions DataVersioner, onChange func(), logger *logger.Logger) *DBWatcher {
	return &DBWatcher{
		path:     path,
		versions: versions,
		debounce: DefaultDebounce,
		onChange: onChange,
		logger:   logger,
	}
}

// WithDebounce overrides the quiet period before data_version is checked.
func (w *DBWatcher) WithDebounce(d time.Duration) *DBWatcher {
	if d > 0 {
		w.debounce = d
	}
	return w
}

func (w *DBWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating file watcher: %w", err)
	}
	defer watcher.Close()

	// SQLite replaces -wal/-shm files, so the directory is watched rather
	// than the files themselves.
	dir := filepath.Dir(w.path)
	if err = watcher.Add(dir); err != nil {
		return fmt.Errorf("error watching %s: %w", dir, err)
	}

	last, err := w.versions.DataVersion(ctx)
	if err != nil {
		return fmt.Errorf("error reading data version: %w", err)
	}

	w.logger.Info().Str("path", w.path).Msg("database watcher started")

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	base := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasPrefix(filepath.Base(event.Name), base) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Str("func", "DBWatcher.Run").Msg("file watcher error")

		case <-timer.C:
			current, err := w.versions.DataVersion(ctx)
			if err != nil {
				w.logger.Warn().Err(err).Str("func", "DBWatcher.Run").Msg("cannot read data version")
				continue
			}
			if current == last {
				continue
			}
			last = current

			w.logger.Debug().Int64("data_version", current).Msg("external database change")
			if w.onChange != nil {
				w.onChange()
			}
		}
	}
}

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

	"github.com/MKhiriev/go-note-sync/internal/logger"
)

// minSettle is the shortest window after a trigger during which database
// events are dropped.
const minSettle = 100 * time.Millisecond

// WatchWorker calls a trigger after the local database file changes. Bursts
// of events are collapsed: the trigger fires once the file has been quiet
// for the debounce period. The trigger writes to the same database, so
// events raised while it runs, and for a settle window after it returns,
// are dropped.
type WatchWorker struct {
	path     string
	debounce time.Duration
	trigger  TriggerFunc
	ready    chan struct{}
	logger   *logger.Logger
}

// NewWatchWorker watches the file at path. SQLite side files (journal, WAL,
// shared memory) count as changes of the database.
func NewWatchWorker(path string, debounce time.Duration, trigger TriggerFunc, log *logger.Logger) *WatchWorker {
	return &WatchWorker{
		path:     path,
		debounce: debounce,
		trigger:  trigger,
		ready:    make(chan struct{}),
		logger:   logger.OrNop(log),
	}
}

// Ready is closed once the watch is established.
func (w *WatchWorker) Ready() <-chan struct{} {
	return w.ready
}

// Run implements [Worker].
func (w *WatchWorker) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// The directory is watched rather than the file: SQLite replaces and
	// recreates its side files, which drops a per-file watch.
	dir := filepath.Dir(w.path)
	if err = watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	close(w.ready)

	w.logger.Info().Str("path", w.path).Dur("debounce", w.debounce).Msg("watching local database")

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	var quietUntil time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) || time.Now().Before(quietUntil) {
				continue
			}
			w.logger.Debug().Str("name", event.Name).Str("op", event.Op.String()).Msg("database changed")
			timer.Reset(w.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Err(err).Str("func", "WatchWorker.Run").Msg("fsnotify error")

		case <-timer.C:
			if err := w.trigger(ctx); err != nil {
				w.logger.Err(err).Str("func", "WatchWorker.Run").Msg("triggered sync failed")
			}
			quietUntil = time.Now().Add(w.settle())
		}
	}
}

func (w *WatchWorker) settle() time.Duration {
	return max(w.debounce, minSettle)
}

func (w *WatchWorker) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	return strings.HasPrefix(filepath.Base(event.Name), filepath.Base(w.path))
}

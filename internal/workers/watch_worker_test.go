// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/internal/logger"
)

const testDebounce = 50 * time.Millisecond

type watchFixture struct {
	dir    string
	db     string
	calls  atomic.Int32
	worker *WatchWorker
	cancel context.CancelFunc
	done   chan error
}

func startWatch(t *testing.T, trigger TriggerFunc) *watchFixture {
	t.Helper()

	dir := t.TempDir()
	f := &watchFixture{dir: dir, db: filepath.Join(dir, "notes.db"), done: make(chan error, 1)}
	require.NoError(t, os.WriteFile(f.db, []byte("init"), 0o600))

	if trigger == nil {
		trigger = func(context.Context) error { return nil }
	}
	f.worker = NewWatchWorker(f.db, testDebounce, func(ctx context.Context) error {
		f.calls.Add(1)
		return trigger(ctx)
	}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	go func() { f.done <- f.worker.Run(ctx) }()

	select {
	case <-f.worker.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("watch was not established")
	}

	t.Cleanup(func() {
		cancel()
		<-f.done
	})
	return f
}

func appendTo(t *testing.T, path string) {
	t.Helper()
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	require.NoError(t, err)
	_, err = file.WriteString("x")
	require.NoError(t, err)
	require.NoError(t, file.Close())
}

func TestWatchWorker_DebouncesBurst(t *testing.T) {
	f := startWatch(t, nil)

	for range 5 {
		appendTo(t, f.db)
		time.Sleep(5 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return f.calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(4 * testDebounce)
	assert.Equal(t, int32(1), f.calls.Load())
}

func TestWatchWorker_SideFilesCount(t *testing.T) {
	f := startWatch(t, nil)

	appendTo(t, f.db+"-wal")

	assert.Eventually(t, func() bool { return f.calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatchWorker_IgnoresUnrelatedFiles(t *testing.T) {
	f := startWatch(t, nil)

	appendTo(t, filepath.Join(f.dir, "other.txt"))
	time.Sleep(4 * testDebounce)

	assert.Zero(t, f.calls.Load())
}

func TestWatchWorker_TriggerErrorKeepsWatching(t *testing.T) {
	f := startWatch(t, func(context.Context) error { return errors.New("push failed") })

	appendTo(t, f.db)
	require.Eventually(t, func() bool { return f.calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)

	time.Sleep(f.worker.settle() + testDebounce)
	appendTo(t, f.db)
	assert.Eventually(t, func() bool { return f.calls.Load() == 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatchWorker_IgnoresOwnWrites(t *testing.T) {
	var db atomic.Value
	f := startWatch(t, func(context.Context) error {
		// A push marks items synced and stores the checkpoint.
		path := db.Load().(string)
		appendTo(t, path)
		appendTo(t, path+"-journal")
		return nil
	})
	db.Store(f.db)

	appendTo(t, f.db)
	require.Eventually(t, func() bool { return f.calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	time.Sleep(3 * f.worker.settle())
	assert.Equal(t, int32(1), f.calls.Load())

	appendTo(t, f.db)
	assert.Eventually(t, func() bool { return f.calls.Load() == 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatchWorker_StopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	w := NewWatchWorker(filepath.Join(dir, "notes.db"), testDebounce, func(context.Context) error { return nil }, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	<-w.Ready()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestWatchWorker_MissingDirectory(t *testing.T) {
	w := NewWatchWorker(filepath.Join(t.TempDir(), "missing", "notes.db"), testDebounce, nil, nil)

	err := w.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}

func TestWatchWorker_Relevant(t *testing.T) {
	w := NewWatchWorker("/data/notes.db", testDebounce, nil, nil)

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write to db", fsnotify.Event{Name: "/data/notes.db", Op: fsnotify.Write}, true},
		{"journal created", fsnotify.Event{Name: "/data/notes.db-journal", Op: fsnotify.Create}, true},
		{"wal removed", fsnotify.Event{Name: "/data/notes.db-wal", Op: fsnotify.Remove}, true},
		{"chmod only", fsnotify.Event{Name: "/data/notes.db", Op: fsnotify.Chmod}, false},
		{"other file", fsnotify.Event{Name: "/data/config.yaml", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.relevant(tt.event))
		})
	}
}

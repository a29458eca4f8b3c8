// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
)

// DefaultSyncInterval is used by [SyncJob.Start] for non-positive intervals.
const DefaultSyncInterval = 5 * time.Minute

type syncJob struct {
	syncService SyncService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewSyncJob creates a syncJob that calls syncService.Push on a ticker.
// The job is idle until Start is called.
func NewSyncJob(syncService SyncService, log *logger.Logger) SyncJob {
	return &syncJob{syncService: syncService, logger: logger.OrNop(log)}
}

// Start implements [SyncJob]. The goroutine exits when ctx is cancelled or
// Stop is called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.mu.Unlock()

	j.wg.Go(func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.run(jobCtx)
			}
		}
	})
}

func (j *syncJob) run(ctx context.Context) {
	_, err := j.syncService.Push(ctx, false)
	switch {
	case err == nil:
	case errors.Is(err, ErrSyncInProgress):
		j.logger.Debug().Str("func", "syncJob.run").Msg("previous attempt still running, tick skipped")
	case errors.Is(err, context.Canceled):
	default:
		j.logger.Err(err).Str("func", "syncJob.run").Msg("scheduled push failed")
	}
}

// Stop implements [SyncJob]. Safe to call when the job is not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

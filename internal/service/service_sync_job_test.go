// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/models"
)

// spySyncService counts Push calls and returns a configurable error.
type spySyncService struct {
	calls  atomic.Int64
	forced atomic.Bool
	err    error
}

func (s *spySyncService) Collect(_ context.Context, _ bool) (*models.ChangeSet, error) {
	return &models.ChangeSet{}, nil
}

func (s *spySyncService) Push(_ context.Context, force bool) (models.PushResult, error) {
	s.calls.Add(1)
	if force {
		s.forced.Store(true)
	}
	return models.PushResult{}, s.err
}

// ── NewSyncJob ───────────────────────────────────────────────────────────────

func TestNewSyncJob_ReturnsInterface(t *testing.T) {
	job := NewSyncJob(&spySyncService{}, nil)
	require.NotNil(t, job)

	var _ SyncJob = job
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestSyncJob_Start_CallsPush(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy, nil)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Push called %d times", got)
	assert.False(t, spy.forced.Load(), "scheduled pushes are never forced")
}

func TestSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy, nil)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no calls after Stop")
}

func TestSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewSyncJob(&spySyncService{}, nil)
	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewSyncJob(&spySyncService{}, nil)

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_Start_DefaultInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		spy := &spySyncService{}
		job := NewSyncJob(spy, nil)

		job.Start(context.Background(), interval)
		time.Sleep(20 * time.Millisecond)
		job.Stop()

		assert.Zero(t, spy.calls.Load(), "interval %s falls back to %s", interval, DefaultSyncInterval)
	}
}

func TestSyncJob_Restart_StopsPrevious(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy, nil)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	callsBefore := spy.calls.Load()
	assert.Positive(t, callsBefore)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), callsBefore, "second Start keeps pushing")
}

func TestSyncJob_ContextCancel_StopsJob(t *testing.T) {
	job := NewSyncJob(&spySyncService{}, nil)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancel")
	}
}

func TestSyncJob_PushError_DoesNotStopJob(t *testing.T) {
	for _, err := range []error{assert.AnError, ErrSyncInProgress} {
		spy := &spySyncService{err: err}
		job := NewSyncJob(spy, nil)

		job.Start(context.Background(), 10*time.Millisecond)
		time.Sleep(55 * time.Millisecond)
		job.Stop()

		assert.GreaterOrEqual(t, spy.calls.Load(), int64(3), "err=%v", err)
	}
}

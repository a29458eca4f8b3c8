// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// funcWorker adapts a function to the Worker interface.
type funcWorker func(ctx context.Context) error

func (f funcWorker) Run(ctx context.Context) error { return f(ctx) }

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	var calls atomic.Int32
	w := funcWorker(func(context.Context) error {
		calls.Add(1)
		return nil
	})

	err := NewWorkers(w, w, w).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, NewWorkers().Run(context.Background()))
	assert.NoError(t, (&Workers{}).Run(context.Background()))
}

func TestWorkers_Run_FirstErrorCancelsOthers(t *testing.T) {
	boom := errors.New("boom")

	failing := funcWorker(func(context.Context) error { return boom })
	blocking := funcWorker(func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})

	done := make(chan error, 1)
	go func() { done <- NewWorkers(blocking, failing).Run(context.Background()) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, boom)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after a worker failed")
	}
}

func TestWorkers_Run_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	blocking := funcWorker(func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})

	done := make(chan error, 1)
	go func() { done <- NewWorkers(blocking, blocking).Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

type spyJob struct {
	started  atomic.Int32
	stopped  atomic.Int32
	interval time.Duration
}

func (s *spyJob) Start(_ context.Context, interval time.Duration) {
	s.interval = interval
	s.started.Add(1)
}

func (s *spyJob) Stop() { s.stopped.Add(1) }

func TestSyncJobWorker_StartsAndStops(t *testing.T) {
	job := &spyJob{}
	w := NewSyncJobWorker(job, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool { return job.started.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Zero(t, job.stopped.Load())

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), job.stopped.Load())
	assert.Equal(t, time.Minute, job.interval)
}

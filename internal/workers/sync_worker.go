// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/service"
)

// syncJobWorker runs a periodic sync job for the lifetime of Run.
type syncJobWorker struct {
	job      service.SyncJob
	interval time.Duration
}

// NewSyncJobWorker adapts job to the [Worker] interface.
func NewSyncJobWorker(job service.SyncJob, interval time.Duration) Worker {
	return &syncJobWorker{job: job, interval: interval}
}

func (w *syncJobWorker) Run(ctx context.Context) error {
	w.job.Start(ctx, w.interval)
	<-ctx.Done()
	w.job.Stop()
	return nil
}

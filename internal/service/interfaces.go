// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service drives synchronization attempts: it collects the local
// change-set, encrypts it, hands it to the server adapter and records the
// acknowledgement in the local store.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService runs synchronization attempts against the local store. At
// most one attempt runs at a time; a concurrent call fails fast with
// [ErrSyncInProgress].
type SyncService interface {
	// Collect builds the plain change-set without encrypting or sending it.
	// Nothing in the store is modified.
	Collect(ctx context.Context, force bool) (*models.ChangeSet, error)

	// Push collects, encrypts and sends one change-set. On acknowledgement
	// the pushed records are marked synced and the checkpoint taken before
	// collection becomes the new last synced time.
	Push(ctx context.Context, force bool) (models.PushResult, error)
}

// SyncJob periodically pushes local changes in the background.
type SyncJob interface {
	// Start launches the background goroutine. It pushes every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package collector

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/collector_mock.go -package=mock

// SnapshotSource returns a stable, fully materialised view of all
// collections. Implementations must not hand out live cursors.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (models.Snapshot, error)
}

// EncryptionKeyProvider returns the symmetric key of the active session.
type EncryptionKeyProvider interface {
	GetEncryptionKey(ctx context.Context) ([]byte, error)
}

// VaultKeyProvider returns the opaque vault key blob. The collector does not
// interpret it.
type VaultKeyProvider interface {
	GetVaultKey(ctx context.Context) ([]byte, error)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CollectionRepository stores items of every collection plus the settings
// object.
type CollectionRepository interface {
	// Snapshot materialises all syncable items. Items keep insertion order
	// within a collection. The result shares nothing with the database and
	// is not affected by later writes.
	Snapshot(ctx context.Context) (models.Snapshot, error)

	// SaveItems inserts or replaces items of one keyed collection.
	SaveItems(ctx context.Context, kind models.Collection, items ...models.Item) error

	// SaveSettings inserts or replaces the settings object.
	SaveSettings(ctx context.Context, settings models.Settings) error

	// MarkSynced sets synced on the referenced items. Items modified since
	// the reference was taken are left untouched. Returns the number of
	// items marked.
	MarkSynced(ctx context.Context, kind models.Collection, refs ...models.ItemRef) (int, error)
}

// VaultRepository stores key material that is not secret on its own.
type VaultRepository interface {
	// VaultKey returns the opaque vault key blob or ErrVaultKeyNotFound.
	VaultKey(ctx context.Context) ([]byte, error)
	SaveVaultKey(ctx context.Context, blob []byte) error

	// KeySalt returns the key derivation salt or ErrKeySaltNotFound.
	KeySalt(ctx context.Context) ([]byte, error)
	SaveKeySalt(ctx context.Context, salt []byte) error
}

// SyncStateRepository stores the synchronization checkpoint.
type SyncStateRepository interface {
	// LastSynced returns the checkpoint in epoch milliseconds, 0 if the
	// store has never been synchronized.
	LastSynced(ctx context.Context) (int64, error)
	SetLastSynced(ctx context.Context, ts int64) error
}

// NotebookRepository edits notebook topics and note membership. Every
// change bumps dateModified and clears synced on the touched items, so the
// next change-set picks them up.
type NotebookRepository interface {
	AddTopic(ctx context.Context, notebookID, topic string) error
	DeleteTopic(ctx context.Context, notebookID, topic string) error
	AddNoteToTopic(ctx context.Context, notebookID, topic, noteID string) error
	DeleteNoteFromTopic(ctx context.Context, notebookID, topic, noteID string) error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package collector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// Builder assembles change-sets from a snapshot source and the session's
// key material. It holds no per-attempt state; concurrent attempts against
// the same local state must be prevented by the caller.
type Builder struct {
	source SnapshotSource
	keys   EncryptionKeyProvider
	vault  VaultKeyProvider
	now    func() time.Time
	logger *logger.Logger
}

// Option customises a [Builder].
type Option func(*Builder)

// WithClock replaces the wall clock used to stamp tombstones.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		b.now = now
	}
}

// NewBuilder constructs a [Builder]. log may be nil.
func NewBuilder(source SnapshotSource, keys EncryptionKeyProvider, vault VaultKeyProvider, log *logger.Logger, opts ...Option) *Builder {
	b := &Builder{
		source: source,
		keys:   keys,
		vault:  vault,
		now:    time.Now,
		logger: logger.OrNop(log),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Collect builds the change-set for one attempt.
//
// lastSynced is the epoch-millisecond time of the previous successful
// synchronization; 0 selects every eligible item. force includes every
// non-local-only item regardless of its synced flag and timestamp.
//
// The encryption key is fetched first, then the snapshot, then the vault
// key. A failure at any step aborts the attempt: the error wraps
// [ErrMissingKeyMaterial] or [ErrSnapshotUnavailable] and no partial
// change-set is returned.
func (b *Builder) Collect(ctx context.Context, lastSynced int64, force bool) (*models.ChangeSet, error) {
	key, err := b.keys.GetEncryptionKey(ctx)
	if err == nil && len(key) == 0 {
		err = errors.New("empty encryption key")
	}
	if err != nil {
		b.logger.Err(err).Str("func", "Builder.Collect").Msg("encryption key unavailable")
		return nil, fmt.Errorf("%w: encryption key: %w", ErrMissingKeyMaterial, err)
	}

	snap, err := b.source.Snapshot(ctx)
	if err != nil {
		b.logger.Err(err).Str("func", "Builder.Collect").Msg("collections snapshot unavailable")
		return nil, fmt.Errorf("%w: %w", ErrSnapshotUnavailable, err)
	}

	entries, stats := Collect(snap, lastSynced, force, b.now().UnixMilli())
	b.logStats(stats, lastSynced, force)

	vaultKey, err := b.vault.GetVaultKey(ctx)
	if err != nil {
		b.logger.Err(err).Str("func", "Builder.Collect").Msg("vault key unavailable")
		return nil, fmt.Errorf("%w: vault key: %w", ErrMissingKeyMaterial, err)
	}

	return &models.ChangeSet{
		Items:         entries,
		VaultKey:      vaultKey,
		EncryptionKey: key,
	}, nil
}

func (b *Builder) logStats(stats []Stats, lastSynced int64, force bool) {
	for _, s := range stats {
		b.logger.Info().
			Str("collection", s.Collection.String()).
			Int("selected", s.Selected()).
			Int("total", s.Total).
			Int("tombstones", s.Tombstones).
			Int64("last_synced", lastSynced).
			Bool("force", force).
			Msgf("collected items: %s (%d/%d)", s.Collection, s.Selected(), s.Total)

		if s.Malformed > 0 {
			b.logger.Warn().
				Err(ErrMalformedItem).
				Str("collection", s.Collection.String()).
				Int("malformed", s.Malformed).
				Msg("skipped items missing id or dateModified")
		}
	}
}

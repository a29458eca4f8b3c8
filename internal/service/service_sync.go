// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/collector"
	"github.com/MKhiriev/go-note-sync/internal/encoder"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

// syncService is the concrete implementation of [SyncService].
type syncService struct {
	builder     *collector.Builder
	encoder     *encoder.Encoder
	adapter     adapter.ServerAdapter
	collections store.CollectionRepository
	state       store.SyncStateRepository

	newID       func() string
	now         func() time.Time
	isRetryable func(error) bool

	// mu serialises attempts against the same local state.
	mu sync.Mutex

	logger *logger.Logger
}

// NewSyncService constructs a [SyncService]. serverAdapter may be nil, in
// which case only Collect works.
func NewSyncService(
	builder *collector.Builder,
	enc *encoder.Encoder,
	serverAdapter adapter.ServerAdapter,
	collections store.CollectionRepository,
	state store.SyncStateRepository,
	log *logger.Logger,
) SyncService {
	return &syncService{
		builder:     builder,
		encoder:     enc,
		adapter:     serverAdapter,
		collections: collections,
		state:       state,
		newID:       utils.NewAttemptID,
		now:         time.Now,
		isRetryable: store.IsRetryable,
		logger:      logger.OrNop(log),
	}
}

// Collect implements [SyncService].
func (s *syncService) Collect(ctx context.Context, force bool) (*models.ChangeSet, error) {
	if !s.mu.TryLock() {
		return nil, ErrSyncInProgress
	}
	defer s.mu.Unlock()

	// Key material missing from a fresh store is generated but not saved.
	ctx = utils.WithDryRun(ctx)
	ctx, log := s.logger.WithAttempt(ctx, s.newID())

	lastSynced, err := s.state.LastSynced(ctx)
	if err != nil {
		s.logStoreError(log, err, "syncService.Collect", "failed to read last synced time")
		return nil, fmt.Errorf("read last synced time: %w", err)
	}

	return s.builder.Collect(ctx, lastSynced, force)
}

// Push implements [SyncService].
//
// The checkpoint is taken before collection: an item edited while the
// attempt runs has a later dateModified and is picked up next time.
func (s *syncService) Push(ctx context.Context, force bool) (models.PushResult, error) {
	if s.adapter == nil {
		return models.PushResult{}, ErrNoRemote
	}
	if !s.mu.TryLock() {
		return models.PushResult{}, ErrSyncInProgress
	}
	defer s.mu.Unlock()

	attemptID := s.newID()
	ctx = utils.WithAttemptID(ctx, attemptID)
	ctx, log := s.logger.WithAttempt(ctx, attemptID)

	result := models.PushResult{AttemptID: attemptID}
	// Selection is strict (dateModified > lastSynced), so the stored
	// checkpoint sits one millisecond back: an edit landing in the same
	// millisecond as the snapshot stays selectable next time.
	checkpoint := s.now().UnixMilli() - 1

	lastSynced, err := s.state.LastSynced(ctx)
	if err != nil {
		s.logStoreError(log, err, "syncService.Push", "failed to read last synced time")
		return result, fmt.Errorf("read last synced time: %w", err)
	}
	result.Checkpoint = lastSynced

	cs, err := s.builder.Collect(ctx, lastSynced, force)
	if err != nil {
		return result, err
	}
	if cs.Len() == 0 {
		log.Info().Str("func", "syncService.Push").Msg("nothing to push")
		return result, nil
	}

	envelopes, tombstones, err := s.encoder.EncodeEntries(ctx, cs.Items, cs.EncryptionKey)
	if err != nil {
		log.Err(err).Str("func", "syncService.Push").Msg("failed to encode change-set")
		return result, err
	}

	req := models.PushRequest{
		Envelopes:  envelopes,
		Tombstones: tombstones,
		VaultKey:   base64.StdEncoding.EncodeToString(cs.VaultKey),
		LastSynced: lastSynced,
	}
	resp, err := s.adapter.Push(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "syncService.Push").Msg("push failed")
		return result, mapAdapterError(err)
	}

	if err = s.markSynced(ctx, cs); err != nil {
		return result, err
	}

	if err = s.state.SetLastSynced(ctx, checkpoint); err != nil {
		s.logStoreError(log, err, "syncService.Push", "failed to store last synced time")
		return result, fmt.Errorf("store last synced time: %w", err)
	}

	result.Records = len(envelopes)
	result.Tombstones = len(tombstones)
	result.Checkpoint = checkpoint

	log.Info().
		Str("func", "syncService.Push").
		Int("records", result.Records).
		Int("tombstones", result.Tombstones).
		Int("accepted", resp.Accepted).
		Int64("checkpoint", checkpoint).
		Msg("change-set pushed")

	return result, nil
}

// markSynced flips synced on every pushed record. Tombstones are skipped:
// a local-only item stays local-only.
func (s *syncService) markSynced(ctx context.Context, cs *models.ChangeSet) error {
	log := logger.FromContext(ctx)
	refs := cs.SyncedRefs()

	var errs []error
	for _, kind := range slices.Concat(models.KeyedCollections, []models.Collection{models.CollectionSettings}) {
		if len(refs[kind]) == 0 {
			continue
		}

		marked, err := s.collections.MarkSynced(ctx, kind, refs[kind]...)
		if err != nil {
			s.logStoreError(log, err, "syncService.markSynced", "failed to mark items synced")
			errs = append(errs, fmt.Errorf("mark %s synced: %w", kind, err))
			continue
		}

		log.Debug().
			Str("func", "syncService.markSynced").
			Str("collection", kind.String()).
			Int("marked", marked).
			Int("pushed", len(refs[kind])).
			Msg("items marked synced")
	}

	return errors.Join(errs...)
}

// logStoreError logs transient store failures at warn level, everything
// else as an error.
func (s *syncService) logStoreError(log *logger.Logger, err error, funcName, msg string) {
	if s.isRetryable(err) {
		log.Warn().Err(err).Str("func", funcName).Bool("retryable", true).Msg(msg)
		return
	}
	log.Err(err).Str("func", funcName).Msg(msg)
}

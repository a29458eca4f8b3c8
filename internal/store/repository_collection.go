// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

const defaultSettingsID = "settings"

type collectionRepository struct {
	*DB
	seq    func() int64
	logger *logger.Logger
}

// NewCollectionRepository constructs a [CollectionRepository] backed by db.
func NewCollectionRepository(db *DB, logger *logger.Logger) CollectionRepository {
	return &collectionRepository{
		DB:     db,
		seq:    func() int64 { return time.Now().UnixNano() },
		logger: logger,
	}
}

func (r *collectionRepository) Snapshot(ctx context.Context) (models.Snapshot, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSnapshotQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "collectionRepository.Snapshot").Msg("failed to create query")
		return models.Snapshot{}, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "collectionRepository.Snapshot").
			Bool("retryable", r.IsRetryable(err)).
			Msg("failed to execute snapshot query")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	snap := models.NewSnapshot()
	for rows.Next() {
		kind, item, scanErr := scanItem(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "collectionRepository.Snapshot").Msg("failed to read item row")
			return models.Snapshot{}, scanErr
		}

		switch {
		case kind == models.CollectionSettings:
			snap.Settings = &models.Settings{Fields: item}
		case kind.Valid():
			snap.Collections[kind] = append(snap.Collections[kind], item)
		default:
			log.Warn().
				Str("func", "collectionRepository.Snapshot").
				Str("collection", kind.String()).
				Msg("skipping item of unknown collection")
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "collectionRepository.Snapshot").
			Msg("error occurred during rows iteration")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return snap, nil
}

func (r *collectionRepository) SaveItems(ctx context.Context, kind models.Collection, items ...models.Item) error {
	if !kind.Valid() || kind == models.CollectionSettings {
		return fmt.Errorf("%w: %q", ErrUnknownCollection, kind)
	}
	return r.upsert(ctx, kind, items...)
}

func (r *collectionRepository) SaveSettings(ctx context.Context, settings models.Settings) error {
	fields := settings.Fields.Clone()
	if fields == nil {
		fields = models.Item{}
	}
	if _, ok := fields.ID(); !ok {
		fields[models.FieldID] = defaultSettingsID
	}
	return r.upsert(ctx, models.CollectionSettings, fields)
}

func (r *collectionRepository) upsert(ctx context.Context, kind models.Collection, items ...models.Item) error {
	log := logger.FromContext(ctx)

	if len(items) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "collectionRepository.upsert").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, item := range items {
		if err = r.upsertTx(ctx, tx, kind, item); err != nil {
			log.Err(err).
				Str("func", "collectionRepository.upsert").
				Str("collection", kind.String()).
				Msg("failed to save item")
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "collectionRepository.upsert").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *collectionRepository) upsertTx(ctx context.Context, tx *sql.Tx, kind models.Collection, item models.Item) error {
	row, err := newItemRow(kind, item, r.seq())
	if err != nil {
		return err
	}

	query, args, err := buildUpsertItemQuery(r.builder, row)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w (id=%s): %w", ErrExecutingStatement, row.ID, err)
	}
	return nil
}

func (r *collectionRepository) MarkSynced(ctx context.Context, kind models.Collection, refs ...models.ItemRef) (int, error) {
	log := logger.FromContext(ctx)

	if len(refs) == 0 {
		return 0, nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "collectionRepository.MarkSynced").Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	marked := 0
	for _, ref := range refs {
		query, args, buildErr := buildMarkSyncedQuery(r.builder, kind, ref)
		if buildErr != nil {
			return 0, buildErr
		}

		res, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "collectionRepository.MarkSynced").
				Str("collection", kind.String()).
				Str("id", ref.ID).
				Msg("failed to mark item synced")
			return 0, fmt.Errorf("%w (id=%s): %w", ErrExecutingStatement, ref.ID, execErr)
		}

		n, _ := res.RowsAffected()
		marked += int(n)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "collectionRepository.MarkSynced").Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	if marked < len(refs) {
		log.Debug().
			Str("func", "collectionRepository.MarkSynced").
			Str("collection", kind.String()).
			Int("marked", marked).
			Int("requested", len(refs)).
			Msg("some items changed after collection and stay unsynced")
	}

	return marked, nil
}

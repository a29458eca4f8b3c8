// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-note-sync/internal/logger"
)

const (
	metaVaultKey   = "vault_key"
	metaKeySalt    = "key_salt"
	metaLastSynced = "last_synced"
)

// metaRepository keeps small named values in sync_meta. It implements both
// [VaultRepository] and [SyncStateRepository].
type metaRepository struct {
	*DB
	logger *logger.Logger
}

func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	return &metaRepository{DB: db, logger: logger}
}

func NewSyncStateRepository(db *DB, logger *logger.Logger) SyncStateRepository {
	return &metaRepository{DB: db, logger: logger}
}

// get returns the value stored under name and whether it exists.
func (r *metaRepository) get(ctx context.Context, name string) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetMetaQuery(r.builder, name)
	if err != nil {
		return "", false, err
	}

	var value string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "metaRepository.get").
			Str("name", name).
			Msg("failed to read sync meta value")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (r *metaRepository) set(ctx context.Context, name, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetMetaQuery(r.builder, name, value)
	if err != nil {
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "metaRepository.set").
			Str("name", name).
			Msg("failed to write sync meta value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *metaRepository) getBytes(ctx context.Context, name string, notFound error) ([]byte, error) {
	value, ok, err := r.get(ctx, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound
	}

	blob, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return blob, nil
}

func (r *metaRepository) VaultKey(ctx context.Context) ([]byte, error) {
	return r.getBytes(ctx, metaVaultKey, ErrVaultKeyNotFound)
}

func (r *metaRepository) SaveVaultKey(ctx context.Context, blob []byte) error {
	return r.set(ctx, metaVaultKey, base64.StdEncoding.EncodeToString(blob))
}

func (r *metaRepository) KeySalt(ctx context.Context) ([]byte, error) {
	return r.getBytes(ctx, metaKeySalt, ErrKeySaltNotFound)
}

func (r *metaRepository) SaveKeySalt(ctx context.Context, salt []byte) error {
	return r.set(ctx, metaKeySalt, base64.StdEncoding.EncodeToString(salt))
}

func (r *metaRepository) LastSynced(ctx context.Context) (int64, error) {
	value, ok, err := r.get(ctx, metaLastSynced)
	if err != nil || !ok {
		return 0, err
	}

	ts, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", metaLastSynced, err)
	}
	return ts, nil
}

func (r *metaRepository) SetLastSynced(ctx context.Context, ts int64) error {
	return r.set(ctx, metaLastSynced, strconv.FormatInt(ts, 10))
}

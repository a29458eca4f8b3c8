// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
)

// Storages groups all repositories over one database connection so they
// can be passed around the service layer as a single value.
type Storages struct {
	Collections CollectionRepository
	Vault       VaultRepository
	SyncState   SyncStateRepository
	Notebooks   NotebookRepository

	db *DB
}

// NewStorages opens the database named by cfg, runs pending migrations and
// wires the repositories.
func NewStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		Collections: NewCollectionRepository(db, logger),
		Vault:       NewVaultRepository(db, logger),
		SyncState:   NewSyncStateRepository(db, logger),
		Notebooks:   NewNotebookRepository(db, logger),
		db:          db,
	}
}

// IsRetryable reports whether err is a transient failure of the
// underlying database.
func (s *Storages) IsRetryable(err error) bool {
	return s.db.IsRetryable(err)
}

// Close closes the database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}

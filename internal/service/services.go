// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/collector"
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/crypto"
	"github.com/MKhiriev/go-note-sync/internal/encoder"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
)

type Services struct {
	SyncService SyncService
	SyncJob     SyncJob
	Notebooks   store.NotebookRepository
}

// NewServices wires the sync pipeline over storages. serverAdapter may be
// nil when no remote endpoint is configured.
func NewServices(storages *store.Storages, serverAdapter adapter.ServerAdapter, cfg config.ClientConfig, logger *logger.Logger) *Services {
	keychain := crypto.NewKeyChainService()

	builder := collector.NewBuilder(
		storages.Collections,
		NewPasswordKeyProvider(storages.Vault, keychain, cfg.App.MasterPassword),
		NewStoreVaultKeyProvider(storages.Vault, keychain),
		logger,
	)
	enc := encoder.New(crypto.NewXChaChaCipher(), encoder.WithConcurrency(cfg.Sync.EncodeConcurrency))

	syncSvc := NewSyncService(builder, enc, serverAdapter, storages.Collections, storages.SyncState, logger)

	return &Services{
		SyncService: syncSvc,
		SyncJob:     NewSyncJob(syncSvc, logger),
		Notebooks:   storages.Notebooks,
	}
}

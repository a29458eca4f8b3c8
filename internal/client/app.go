// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/workers"
)

type App struct {
	Config   *config.ClientConfig
	Storages *store.Storages
	Services *service.Services
	logger   *logger.Logger
}

// NewApp opens local storage and wires the services. The server adapter is
// only created when an address is configured.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	log = logger.OrNop(log)

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	var serverAdapter adapter.ServerAdapter
	if cfg.Adapter.HTTPAddress != "" {
		serverAdapter, err = adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
		if err != nil {
			storages.Close()
			return nil, fmt.Errorf("create server adapter: %w", err)
		}
	}

	return &App{
		Config:   cfg,
		Storages: storages,
		Services: service.NewServices(storages, serverAdapter, *cfg, log),
		logger:   log,
	}, nil
}

// Run pushes every sync interval and, for a SQLite database, whenever the
// database file has been quiet for the watch debounce period.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().
		Dur("sync_interval", a.Config.Workers.SyncInterval).
		Str("driver", a.Config.Storage.DB.Driver).
		Msg("starting background sync")

	err := a.workers().Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *App) workers() *workers.Workers {
	ws := []workers.Worker{
		workers.NewSyncJobWorker(a.Services.SyncJob, a.Config.Workers.SyncInterval),
	}

	if a.Config.Storage.DB.Driver == config.DriverSQLite {
		ws = append(ws, workers.NewWatchWorker(
			a.Config.Storage.DB.DSN,
			a.Config.Workers.WatchDebounce,
			PushTrigger(a.Services.SyncService),
			a.logger,
		))
	}

	return workers.NewWorkers(ws...)
}

// Close releases the database connection.
func (a *App) Close() error {
	return a.Storages.Close()
}

// PushTrigger pushes pending changes. An attempt already running covers
// the change that fired the trigger.
func PushTrigger(svc service.SyncService) workers.TriggerFunc {
	return func(ctx context.Context) error {
		_, err := svc.Push(ctx, false)
		if errors.Is(err, service.ErrSyncInProgress) {
			return nil
		}
		return err
	}
}

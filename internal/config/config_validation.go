// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

func (cfg *ClientConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.WatchDebounce < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Sync.EncodeConcurrency < 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.App.MasterPassword == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

// RequireRemote reports whether the settings needed to reach the sync
// server are present. Commands that stay local skip this check.
func (cfg *ClientConfig) RequireRemote() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.Token == "" {
		return ErrInvalidAdapterConfigs
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	HashKey        string
	MasterPassword string
	LogFile        string
}

// ClientAdapter holds network settings used by the transport layer.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	Token          string
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	Driver string
	DSN    string
}

// ClientStorage groups storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains background worker settings.
type ClientWorkers struct {
	SyncInterval  time.Duration
	WatchDebounce time.Duration
}

// ClientSync contains change-set engine settings.
type ClientSync struct {
	EncodeConcurrency int
}

// ClientConfig is the runtime configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Sync    ClientSync
}

// GetClientConfig builds and validates the runtime config view from the
// merged structured configuration.
func GetClientConfig(flagCfg *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flagCfg)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HashKey:        cfg.App.HashKey,
			MasterPassword: cfg.App.MasterPassword,
			LogFile:        cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				Driver: cfg.Storage.DB.Driver,
				DSN:    cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			SyncInterval:  cfg.Workers.SyncInterval,
			WatchDebounce: cfg.Workers.WatchDebounce,
		},
		Sync: ClientSync{EncodeConcurrency: cfg.Sync.EncodeConcurrency},
	}
}

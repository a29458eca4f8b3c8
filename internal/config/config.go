// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging defaults, a config file, environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds secrets and local application settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote sync endpoint settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Sync holds change-set engine tuning.
	Sync Sync `envPrefix:"SYNC_"`

	// ConfigFilePath is the optional path to a JSON or YAML config file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header). Optional.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// MasterPassword is the password the symmetric encryption key is
	// derived from. Never written to disk by notesync.
	// Env: APP_MASTER_PASSWORD
	MasterPassword string `env:"MASTER_PASSWORD"`

	// LogFile is the path of the log file. Empty means stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds settings of the outbound transport.
type Adapter struct {
	// HTTPAddress is the base address of the sync server, with or without
	// scheme (e.g. "localhost:8080", "https://sync.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single push request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token presented to the sync server.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the collection database.
type DB struct {
	// Driver is the database/sql driver name: "sqlite3" or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name: a file path for sqlite3, a connection
	// URI for pgx.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the background sync job.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// WatchDebounce is the quiet period after the last database file event
	// before the watch worker triggers a push.
	// Env: WORKERS_WATCH_DEBOUNCE
	WatchDebounce time.Duration `env:"WATCH_DEBOUNCE"`
}

// Sync holds change-set engine settings.
type Sync struct {
	// EncodeConcurrency bounds parallel record encryption. 0 uses GOMAXPROCS.
	// Env: SYNC_ENCODE_CONCURRENCY
	EncodeConcurrency int `env:"ENCODE_CONCURRENCY"`
}

// Supported database drivers.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// Defaults applied before any other source.
const (
	DefaultDSN            = "notesync.db"
	DefaultRequestTimeout = 30 * time.Second
	DefaultSyncInterval   = 5 * time.Minute
	DefaultWatchDebounce  = 500 * time.Millisecond
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{RequestTimeout: DefaultRequestTimeout},
		Storage: Storage{DB: DB{Driver: DriverSQLite, DSN: DefaultDSN}},
		Workers: Workers{
			SyncInterval:  DefaultSyncInterval,
			WatchDebounce: DefaultWatchDebounce,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources.
// flagCfg holds the values of already parsed command-line flags and may be
// nil.
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withFile(flagCfg).
		withEnv().
		withFlags(flagCfg).
		build()
}

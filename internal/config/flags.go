// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
)

// BindFlags registers all configuration flags on fs and returns the config
// the parsed values are written to. The result is only meaningful after
// fs.Parse has run.
//
// Flags:
//
//	-a sync server address
//	-t bearer token
//	-request-timeout push request timeout (e.g. "30s")
//	-driver database driver (sqlite3 or pgx)
//	-d database DSN
//	-c/-config config file path (.json, .yaml, .yml)
//	-hash-key transport hash key
//	-log-file log file path
//	-sync-interval background sync period (e.g. "5m")
//	-watch-debounce quiet period before a watch-triggered push
//	-encode-concurrency parallel record encryption limit
//
// The master password has no flag on purpose: command lines are visible to
// other local users.
func BindFlags(fs *flag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", "", "Sync server address")
	fs.StringVar(&cfg.Adapter.Token, "t", "", "Bearer token")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "Database driver: sqlite3 or pgx")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.ConfigFilePath, "c", "", "Config file path (.json, .yaml)")
	fs.StringVar(&cfg.ConfigFilePath, "config", "", "Config file path (alias)")
	fs.StringVar(&cfg.App.HashKey, "hash-key", "", "Transport hash key")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Log file path")
	fs.DurationVar(&cfg.Workers.SyncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")
	fs.DurationVar(&cfg.Workers.WatchDebounce, "watch-debounce", 0, "Watch debounce period (e.g., 500ms)")
	fs.IntVar(&cfg.Sync.EncodeConcurrency, "encode-concurrency", 0, "Parallel record encryption limit")

	return cfg
}

// ParseFlags parses args into a fresh [StructuredConfig].
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("notesync", flag.ContinueOnError)
	cfg := BindFlags(fs)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}

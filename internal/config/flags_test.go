// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "localhost:8080",
		"-t", "token",
		"-request-timeout", "10s",
		"-driver", "pgx",
		"-d", "postgres://localhost/notes",
		"-config", "/etc/notesync.yaml",
		"-hash-key", "hk",
		"-log-file", "notesync.log",
		"-sync-interval", "1m",
		"-watch-debounce", "2s",
		"-encode-concurrency", "8",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "token", cfg.Adapter.Token)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://localhost/notes", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/notesync.yaml", cfg.ConfigFilePath)
	assert.Equal(t, "hk", cfg.App.HashKey)
	assert.Equal(t, "notesync.log", cfg.App.LogFile)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 2*time.Second, cfg.Workers.WatchDebounce)
	assert.Equal(t, 8, cfg.Sync.EncodeConcurrency)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Unknown(t *testing.T) {
	_, err := ParseFlags([]string{"-master-password", "nope"})
	assert.Error(t, err)
}

func TestBindFlags_SharedFlagSet(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := BindFlags(fs)

	require.NoError(t, fs.Parse([]string{"-c", "a.json"}))
	assert.Equal(t, "a.json", cfg.ConfigFilePath)
}

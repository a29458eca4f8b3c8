// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of a config file. The same
// struct serves JSON and YAML.
type StructuredFileConfig struct {
	App struct {
		HashKey        string `json:"hash_key" yaml:"hash_key"`
		MasterPassword string `json:"master_password" yaml:"master_password"`
		LogFile        string `json:"log_file" yaml:"log_file"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		Token          string   `json:"token" yaml:"token"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver" yaml:"driver"`
			DSN    string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Workers struct {
		SyncInterval  Duration `json:"sync_interval" yaml:"sync_interval"`
		WatchDebounce Duration `json:"watch_debounce" yaml:"watch_debounce"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`

	Sync struct {
		EncodeConcurrency int `json:"encode_concurrency" yaml:"encode_concurrency"`
	} `json:"sync,omitempty" yaml:"sync,omitempty"`
}

// parseFile reads a config file. The format is picked by extension:
// .yaml and .yml are YAML, everything else is JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			HashKey:        fileCfg.App.HashKey,
			MasterPassword: fileCfg.App.MasterPassword,
			LogFile:        fileCfg.App.LogFile,
		},
		Adapter: Adapter{
			HTTPAddress:    fileCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
			Token:          fileCfg.Adapter.Token,
		},
		Storage: Storage{
			DB: DB{
				Driver: fileCfg.Storage.DB.Driver,
				DSN:    fileCfg.Storage.DB.DSN,
			},
		},
		Workers: Workers{
			SyncInterval:  time.Duration(fileCfg.Workers.SyncInterval),
			WatchDebounce: time.Duration(fileCfg.Workers.WatchDebounce),
		},
		Sync: Sync{EncodeConcurrency: fileCfg.Sync.EncodeConcurrency},
	}, nil
}

// Duration is a wrapper around time.Duration that supports unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	return d.set(v)
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	return d.set(v)
}

func (d *Duration) set(v any) error {
	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
	case int:
		*d = Duration(time.Duration(value))
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
	case nil:
		*d = 0
	default:
		return fmt.Errorf("invalid duration %v", v)
	}
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

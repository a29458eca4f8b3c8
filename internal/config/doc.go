// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for notesync.
//
// Configuration is assembled from multiple sources. Later sources override
// earlier non-zero fields:
//  1. Built-in defaults
//  2. Config file (JSON or YAML, path from CONFIG or -c/-config)
//  3. Environment variables
//  4. Command-line flags
//
// The main entry point is [GetClientConfig].
package config

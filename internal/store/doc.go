// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the local collections and sync metadata in a SQL
// database. SQLite is the default for a single device; PostgreSQL serves
// hosted deployments. Both share one schema, managed by package migrations.
//
// Items are stored as their JSON field map. id, dateModified, synced and
// localOnly are mirrored into columns; the synced column is authoritative.
package store

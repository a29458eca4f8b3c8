// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the notesync application runtime.
//
// It wires local storage, the server adapter, the sync services and the
// background workers into a single process lifecycle.
package client

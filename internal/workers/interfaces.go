// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background workers of the sync daemon and a
// Workers aggregate that runs them together.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker fails. A worker stopped
// through ctx returns nil.
type Worker interface {
	Run(ctx context.Context) error
}

// TriggerFunc is invoked by workers that react to events.
type TriggerFunc func(ctx context.Context) error

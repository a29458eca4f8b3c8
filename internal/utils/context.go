// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across
// notesync: type-safe context keys, HMAC hashing, the HTTP client, JWT
// inspection and identifier generation.
package utils

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// AttemptIDCtxKey is the key used to store the sync attempt identifier in
// the context.
var AttemptIDCtxKey = contextKey("attemptID")

// DryRunCtxKey marks a context whose work must not persist anything.
var DryRunCtxKey = contextKey("dryRun")

// WithDryRun returns a copy of ctx marked as a dry run.
func WithDryRun(ctx context.Context) context.Context {
	return context.WithValue(ctx, DryRunCtxKey, true)
}

// IsDryRun reports whether ctx was marked by [WithDryRun].
func IsDryRun(ctx context.Context) bool {
	dry, _ := ctx.Value(DryRunCtxKey).(bool)
	return dry
}

// WithAttemptID returns a copy of ctx carrying the sync attempt identifier.
func WithAttemptID(ctx context.Context, attemptID string) context.Context {
	return context.WithValue(ctx, AttemptIDCtxKey, attemptID)
}

// GetAttemptIDFromContext retrieves the sync attempt identifier from ctx.
// ok is false when the value is missing, empty or of an unexpected type.
func GetAttemptIDFromContext(ctx context.Context) (string, bool) {
	attemptID, ok := ctx.Value(AttemptIDCtxKey).(string)
	return attemptID, ok && attemptID != ""
}

// NewAttemptID returns a time-ordered identifier for a sync attempt or an
// outgoing request. A random v4 is used when the v7 clock source fails.
func NewAttemptID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

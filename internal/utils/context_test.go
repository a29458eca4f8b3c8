// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestGetAttemptIDFromContext_Success(t *testing.T) {
	ctx := WithAttemptID(context.Background(), "attempt-1")

	id, ok := GetAttemptIDFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if id != "attempt-1" {
		t.Errorf("expected attempt-1, got %s", id)
	}
}

func TestGetAttemptIDFromContext_Missing(t *testing.T) {
	id, ok := GetAttemptIDFromContext(context.Background())
	if ok || id != "" {
		t.Fatalf("expected empty result, got %q, %v", id, ok)
	}
}

func TestGetAttemptIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), AttemptIDCtxKey, 42)

	if _, ok := GetAttemptIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetAttemptIDFromContext_Empty(t *testing.T) {
	ctx := WithAttemptID(context.Background(), "")

	if _, ok := GetAttemptIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty id, got true")
	}
}

func TestNewAttemptID(t *testing.T) {
	a, b := NewAttemptID(), NewAttemptID()
	if a == b {
		t.Fatalf("expected distinct ids, got %s twice", a)
	}

	parsed, err := uuid.Parse(a)
	if err != nil {
		t.Fatalf("expected a valid uuid, got %v", err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
}

func TestIsDryRun(t *testing.T) {
	if IsDryRun(context.Background()) {
		t.Fatal("expected a plain context not to be a dry run")
	}
	if !IsDryRun(WithDryRun(context.Background())) {
		t.Fatal("expected WithDryRun to mark the context")
	}

	ctx := context.WithValue(context.Background(), DryRunCtxKey, "yes")
	if IsDryRun(ctx) {
		t.Fatal("expected ok=false for wrong type")
	}
}

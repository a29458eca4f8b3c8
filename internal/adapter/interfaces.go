// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter sends encrypted change-sets to the remote sync endpoint.
//
// [ServerAdapter] decouples the sync service from the protocol. The package
// ships an HTTP/REST implementation ([NewHTTPServerAdapter]).
//
// Non-2xx responses are mapped to the sentinel errors in errors.go by
// mapHTTPError, so callers can use [errors.Is] (e.g. [ErrUnauthorized] for
// 401, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the remote
// sync endpoint.
type ServerAdapter interface {
	// SetToken replaces the bearer token attached to every push.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if none has been set.
	Token() string

	// Push transmits one change-set. Hash and Length of req are filled in
	// by the adapter. A push is attempted exactly once; the caller decides
	// whether to try again. A token that is already expired is rejected
	// with [ErrTokenExpired] before any network traffic.
	Push(ctx context.Context, req models.PushRequest) (models.PushResponse, error)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Errors mapped from HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// Client-side failures detected before a request is sent.
var (
	// ErrNoToken is returned by Push when no bearer token is configured.
	ErrNoToken = errors.New("no bearer token configured")

	// ErrTokenExpired is returned by Push when the bearer token's exp claim
	// is in the past.
	ErrTokenExpired = errors.New("bearer token expired")
)

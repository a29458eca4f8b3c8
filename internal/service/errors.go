// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrSyncInProgress is returned when another attempt holds the sync lock.
	ErrSyncInProgress = errors.New("synchronization already in progress")

	// ErrNoRemote is returned by Push when no server adapter is configured.
	ErrNoRemote = errors.New("no remote endpoint configured")

	// ErrNoMasterPassword is returned when the encryption key is requested
	// without a master password.
	ErrNoMasterPassword = errors.New("master password is not set")

	// ErrTokenIsExpired is returned when the remote side rejects or the
	// client detects an expired bearer token.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrRemoteRejected is returned when the remote side refuses the
	// change-set itself (malformed, too large, conflicting).
	ErrRemoteRejected = errors.New("remote rejected change-set")

	// ErrRemoteUnavailable is returned for failures on the remote side that
	// may clear up by themselves.
	ErrRemoteUnavailable = errors.New("remote unavailable")
)

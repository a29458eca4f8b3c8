// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package collector

import "errors"

var (
	// ErrMissingKeyMaterial is returned when the encryption key or the vault
	// key cannot be retrieved. The whole attempt fails and no change-set is
	// returned.
	ErrMissingKeyMaterial = errors.New("missing key material")

	// ErrSnapshotUnavailable is returned when the collections snapshot
	// cannot be materialised.
	ErrSnapshotUnavailable = errors.New("collections snapshot unavailable")

	// ErrMalformedItem marks an item without id or dateModified. Such items
	// are skipped and only show up in diagnostics; callers never see it.
	ErrMalformedItem = errors.New("malformed item")
)

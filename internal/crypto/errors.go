// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrUnsupportedAlgorithm is returned by Decrypt for an unknown alg label.
	ErrUnsupportedAlgorithm = errors.New("unsupported cipher algorithm")

	// ErrInvalidNonce is returned when the decoded iv has the wrong length.
	ErrInvalidNonce = errors.New("invalid nonce length")

	// ErrLengthMismatch is returned when the declared plaintext length does
	// not match the decrypted plaintext.
	ErrLengthMismatch = errors.New("plaintext length mismatch")
)

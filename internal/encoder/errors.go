// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package encoder

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-sync/models"
)

var (
	// ErrEncodingFailure is wrapped by every error returned for a record that
	// could not be serialised or encrypted.
	ErrEncodingFailure = errors.New("encoding failure")

	// ErrEmptyKey is returned when an encoding is attempted without a key.
	ErrEmptyKey = errors.New("empty encryption key")

	// ErrSchemaVersion is returned by Decode for envelopes written with a
	// schema version this build cannot read.
	ErrSchemaVersion = errors.New("unsupported envelope schema version")
)

// EncodingError identifies the record that failed to encode.
type EncodingError struct {
	ID         string
	Collection models.Collection
	Err        error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: %s/%s: %v", ErrEncodingFailure, e.Collection, e.ID, e.Err)
}

// Unwrap exposes both the cause and ErrEncodingFailure to errors.Is.
func (e *EncodingError) Unwrap() []error {
	return []error{ErrEncodingFailure, e.Err}
}

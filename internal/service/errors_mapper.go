// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// error. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrTokenExpired),
		errors.Is(err, adapter.ErrNoToken),
		errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrTokenIsExpired, err)

	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrConflict),
		errors.Is(err, adapter.ErrPayloadTooLarge),
		errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrRemoteRejected, err)

	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable):
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	return err
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyItem           = errors.New("item is empty")
	ErrInvalidID           = errors.New("invalid id")
	ErrInvalidDateModified = errors.New("invalid dateModified")
	ErrInvalidFlag         = errors.New("flag must be a boolean")
	ErrEmptyItems          = errors.New("items list cannot be empty")
)

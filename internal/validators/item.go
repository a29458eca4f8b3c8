// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-sync/models"
)

// Field names accepted by [ItemValidator].
const (
	FieldID           = models.FieldID
	FieldDateModified = models.FieldDateModified
	FieldSynced       = models.FieldSynced
	FieldLocalOnly    = models.FieldLocalOnly
)

// ItemValidator validates items of keyed collections and the settings
// object. An item that passes is selectable by the change-set builder.
type ItemValidator struct{}

func NewItemValidator() Validator {
	return &ItemValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.Item
//   - []models.Item (must not be empty; errors carry the index)
//   - models.Settings / *models.Settings (id is optional)
func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Item:
		return v.validateItem(ctx, value, fields...)
	case []models.Item:
		return v.validateItems(ctx, value, fields...)
	case models.Settings:
		return v.validateSettings(ctx, value, fields...)
	case *models.Settings:
		if value == nil {
			return ErrEmptyItem
		}
		return v.validateSettings(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ItemValidator) validateItem(_ context.Context, item models.Item, fields ...string) error {
	if len(item) == 0 {
		return ErrEmptyItem
	}
	if len(fields) == 0 {
		fields = []string{FieldID, FieldDateModified, FieldSynced, FieldLocalOnly}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if _, ok := item.ID(); !ok {
				return ErrInvalidID
			}
		case FieldDateModified:
			if ts, ok := item.DateModified(); !ok || ts < 0 {
				return ErrInvalidDateModified
			}
		case FieldSynced, FieldLocalOnly:
			if raw, present := item[f]; present {
				if _, ok := raw.(bool); !ok {
					return fmt.Errorf("%w: %s", ErrInvalidFlag, f)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ItemValidator) validateItems(ctx context.Context, items []models.Item, fields ...string) error {
	if len(items) == 0 {
		return ErrEmptyItems
	}
	for i, item := range items {
		if err := v.validateItem(ctx, item, fields...); err != nil {
			id, _ := item.ID()
			return fmt.Errorf("validation error at index %d (id=%q): %w", i, id, err)
		}
	}
	return nil
}

func (v *ItemValidator) validateSettings(ctx context.Context, settings models.Settings, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDateModified, FieldSynced}
	}
	if err := v.validateItem(ctx, settings.Fields, fields...); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	return nil
}

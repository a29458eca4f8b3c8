// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/models"
)

func TestNewItemValidator(t *testing.T) {
	require.NotNil(t, NewItemValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewItemValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Item{"id": "n1", "dateModified": 1}))
	assert.NoError(t, v.Validate(ctx, []models.Item{{"id": "n1", "dateModified": 1}}))
	assert.NoError(t, v.Validate(ctx, models.Settings{Fields: models.Item{"dateModified": 1}}))
	assert.NoError(t, v.Validate(ctx, &models.Settings{Fields: models.Item{"dateModified": 1}}))

	assert.ErrorIs(t, v.Validate(ctx, (*models.Settings)(nil)), ErrEmptyItem)
	assert.ErrorIs(t, v.Validate(ctx, "note"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
}

func TestValidateItem(t *testing.T) {
	tests := []struct {
		name    string
		item    models.Item
		fields  []string
		wantErr error
	}{
		{
			name: "valid",
			item: models.Item{"id": "n1", "dateModified": int64(1700000000000), "synced": false, "localOnly": true},
		},
		{
			name: "json number timestamp",
			item: models.Item{"id": "n1", "dateModified": json.Number("1700000000000")},
		},
		{
			name:    "empty item",
			item:    models.Item{},
			wantErr: ErrEmptyItem,
		},
		{
			name:    "missing id",
			item:    models.Item{"dateModified": 1},
			wantErr: ErrInvalidID,
		},
		{
			name:    "blank id",
			item:    models.Item{"id": "", "dateModified": 1},
			wantErr: ErrInvalidID,
		},
		{
			name:    "numeric id",
			item:    models.Item{"id": 7, "dateModified": 1},
			wantErr: ErrInvalidID,
		},
		{
			name:    "missing dateModified",
			item:    models.Item{"id": "n1"},
			wantErr: ErrInvalidDateModified,
		},
		{
			name:    "negative dateModified",
			item:    models.Item{"id": "n1", "dateModified": -5},
			wantErr: ErrInvalidDateModified,
		},
		{
			name:    "string flag",
			item:    models.Item{"id": "n1", "dateModified": 1, "localOnly": "yes"},
			wantErr: ErrInvalidFlag,
		},
		{
			name:   "scoped to id only",
			item:   models.Item{"id": "n1"},
			fields: []string{FieldID},
		},
		{
			name:    "unknown field",
			item:    models.Item{"id": "n1", "dateModified": 1},
			fields:  []string{"title"},
			wantErr: ErrUnknownField,
		},
	}

	v := NewItemValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.item, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateItems(t *testing.T) {
	v := NewItemValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, []models.Item{}), ErrEmptyItems)

	err := v.Validate(ctx, []models.Item{
		{"id": "n1", "dateModified": 1},
		{"id": "n2"},
	})
	require.ErrorIs(t, err, ErrInvalidDateModified)
	assert.Contains(t, err.Error(), "index 1")
	assert.Contains(t, err.Error(), `id="n2"`)
}

func TestValidateSettings(t *testing.T) {
	v := NewItemValidator()
	ctx := context.Background()

	err := v.Validate(ctx, models.Settings{Fields: models.Item{"theme": "dark"}})
	require.ErrorIs(t, err, ErrInvalidDateModified)
	assert.Contains(t, err.Error(), "settings")

	assert.ErrorIs(t, v.Validate(ctx, models.Settings{}), ErrEmptyItem)
}

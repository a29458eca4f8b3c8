// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"maps"
)

// Well-known item field names. Any other field is collection-specific
// payload and is carried through untouched.
const (
	FieldID           = "id"
	FieldDateModified = "dateModified"
	FieldSynced       = "synced"
	FieldLocalOnly    = "localOnly"
	FieldResolved     = "resolved"
	FieldCollectionID = "collectionId"
	FieldDeleted      = "deleted"
)

// Item is a point-in-time snapshot of one locally stored record.
//
// Field shapes differ between collections, so an Item is a plain field map.
// Only id, dateModified, synced and localOnly have a meaning for the sync
// engine; the rest is opaque payload that ends up encrypted.
//
// Item values taken from a [Snapshot] are shared with the collection store
// and must be treated as read-only. Use [Item.Clone] before changing fields.
type Item map[string]any

// ID returns the item identifier and whether it is present and non-empty.
func (i Item) ID() (string, bool) {
	id, ok := i[FieldID].(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// DateModified returns the epoch-millisecond modification time and whether
// it is present. JSON decoding yields float64 or json.Number, stores yield
// int64, tests often use int: all of them are accepted.
func (i Item) DateModified() (int64, bool) {
	switch v := i[FieldDateModified].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case float64:
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			f, ferr := v.Float64()
			if ferr != nil {
				return 0, false
			}
			return int64(f), true
		}
		return n, true
	}
	return 0, false
}

// Synced reports whether the item has already been pushed and acknowledged.
// A missing flag means not synced.
func (i Item) Synced() bool {
	synced, _ := i[FieldSynced].(bool)
	return synced
}

// LocalOnly reports whether the item must never leave the device.
func (i Item) LocalOnly() bool {
	localOnly, _ := i[FieldLocalOnly].(bool)
	return localOnly
}

// Clone returns a shallow copy of the item. Nested values are shared.
func (i Item) Clone() Item {
	if i == nil {
		return nil
	}
	return maps.Clone(i)
}

// Without returns a shallow copy of the item with the given fields removed.
func (i Item) Without(fields ...string) Item {
	out := i.Clone()
	for _, f := range fields {
		delete(out, f)
	}
	return out
}

// ItemRef identifies one version of an item: its id and the modification
// time it had when it was read.
type ItemRef struct {
	ID           string
	DateModified int64
}

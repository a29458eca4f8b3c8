// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-note-sync/models"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// scanItem reads one row selected with itemColumns and returns the decoded
// item. Numbers are kept as json.Number so integers survive unchanged.
func scanItem(s rowScanner) (models.Collection, models.Item, error) {
	var (
		kind, id, data    string
		dateModified      int64
		synced, localOnly bool
	)
	if err := s.Scan(&kind, &id, &dateModified, &synced, &localOnly, &data); err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	item, err := decodeItem(data)
	if err != nil {
		return "", nil, fmt.Errorf("%s/%s: %w", kind, id, err)
	}
	item[models.FieldID] = id
	item[models.FieldSynced] = synced

	return models.Collection(kind), item, nil
}

func decodeItem(data string) (models.Item, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(data)))
	dec.UseNumber()

	var item models.Item
	if err := dec.Decode(&item); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingItem, err)
	}
	if item == nil {
		item = models.Item{}
	}
	return item, nil
}

// newItemRow converts an item into its stored form. The synced field is
// not part of the stored JSON; the column holds it.
func newItemRow(kind models.Collection, item models.Item, seq int64) (itemRow, error) {
	id, ok := item.ID()
	if !ok {
		return itemRow{}, ErrItemWithoutID
	}

	data, err := json.Marshal(item.Without(models.FieldSynced))
	if err != nil {
		return itemRow{}, fmt.Errorf("encode item %s/%s: %w", kind, id, err)
	}

	dateModified, _ := item.DateModified()
	failed, _ := item["failed"].(bool)

	return itemRow{
		Collection:   kind,
		ID:           id,
		Seq:          seq,
		DateModified: dateModified,
		Synced:       item.Synced(),
		LocalOnly:    item.LocalOnly(),
		Failed:       failed,
		Data:         string(data),
	}, nil
}

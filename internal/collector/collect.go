// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package collector

import (
	"sync"

	"github.com/MKhiriev/go-note-sync/models"
)

// Stats describes the selection outcome for one collection.
type Stats struct {
	Collection models.Collection
	Total      int
	Records    int
	Tombstones int
	Malformed  int
	Holes      int
}

// Selected returns the number of entries emitted for the collection.
func (s Stats) Selected() int {
	return s.Records + s.Tombstones
}

// Collect applies [Select] to every item of snap and returns the resulting
// entries and per-collection statistics.
//
// Keyed collections are processed in [models.KeyedCollections] order and
// settings last. Collections are processed concurrently; each writes into
// its own slot, so the output order does not depend on scheduling. now is
// the epoch-millisecond timestamp stamped on every tombstone.
func Collect(snap models.Snapshot, lastSynced int64, force bool, now int64) ([]models.Entry, []Stats) {
	kinds := make([]models.Collection, 0, len(models.KeyedCollections)+1)
	inputs := make([][]models.Item, 0, len(models.KeyedCollections)+1)
	for _, kind := range models.KeyedCollections {
		kinds = append(kinds, kind)
		inputs = append(inputs, snap.Items(kind))
	}

	kinds = append(kinds, models.CollectionSettings)
	if snap.Settings != nil {
		inputs = append(inputs, []models.Item{snap.Settings.Fields})
	} else {
		inputs = append(inputs, nil)
	}

	slots := make([][]models.Entry, len(kinds))
	stats := make([]Stats, len(kinds))

	var wg sync.WaitGroup
	for i := range kinds {
		wg.Go(func() {
			slots[i], stats[i] = collectCollection(kinds[i], inputs[i], lastSynced, force, now)
		})
	}
	wg.Wait()

	total := 0
	for _, s := range slots {
		total += len(s)
	}
	entries := make([]models.Entry, 0, total)
	for _, s := range slots {
		entries = append(entries, s...)
	}

	return entries, stats
}

func collectCollection(kind models.Collection, items []models.Item, lastSynced int64, force bool, now int64) ([]models.Entry, Stats) {
	stats := Stats{Collection: kind, Total: len(items)}
	if len(items) == 0 {
		return nil, stats
	}

	entries := make([]models.Entry, 0, len(items))
	for _, item := range items {
		if item == nil {
			stats.Holes++
			continue
		}

		switch Select(item, lastSynced, force) {
		case DecisionTombstone:
			id, _ := item.ID()
			entries = append(entries, models.NewTombstone(kind, id, now))
			stats.Tombstones++
		case DecisionFull:
			entries = append(entries, models.NewRecord(kind, item))
			stats.Records++
		case DecisionMalformed:
			stats.Malformed++
		}
	}

	return entries, stats
}

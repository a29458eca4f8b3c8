// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Settings is the single user settings object. Unlike keyed collections it
// is never a list: a store either has one settings object or none.
type Settings struct {
	// Fields holds the raw settings object, including id and dateModified.
	Fields Item
}

// Snapshot is a stable, already materialised view of every collection taken
// at the start of a synchronization attempt. The sync engine only reads it.
type Snapshot struct {
	// Collections maps each keyed collection to its items in store order.
	// A missing kind is treated as an empty collection and a nil Item is a
	// hole that is skipped.
	Collections map[Collection][]Item

	// Settings is the settings object, or nil when the store has none.
	Settings *Settings
}

// NewSnapshot returns an empty snapshot with all keyed collections present.
func NewSnapshot() Snapshot {
	collections := make(map[Collection][]Item, len(KeyedCollections))
	for _, kind := range KeyedCollections {
		collections[kind] = []Item{}
	}
	return Snapshot{Collections: collections}
}

// Items returns the snapshot items of a keyed collection.
func (s Snapshot) Items(kind Collection) []Item {
	return s.Collections[kind]
}

// Len returns the total number of items across all collections, settings
// included.
func (s Snapshot) Len() int {
	n := 0
	for _, items := range s.Collections {
		n += len(items)
	}
	if s.Settings != nil {
		n++
	}
	return n
}

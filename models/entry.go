// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Entry is one element of a change-set. It is either a [Tombstone] or a
// [Record]; no other implementations exist.
type Entry interface {
	// EntryID returns the identifier of the underlying item.
	EntryID() string

	// Collection returns the collection the entry belongs to.
	Collection() Collection

	isEntry()
}

// Tombstone reports the deletion (or local-only exclusion) of an item.
// It carries no confidential payload and is never encrypted.
type Tombstone struct {
	ID           string     `json:"id"`
	CollectionID Collection `json:"collectionId"`
	Deleted      bool       `json:"deleted"`

	// DateModified is the wall-clock time of collection in epoch
	// milliseconds, not the item's own modification time.
	DateModified int64 `json:"dateModified"`
}

// NewTombstone builds a tombstone for id stamped with now (epoch ms).
func NewTombstone(kind Collection, id string, now int64) Tombstone {
	return Tombstone{
		ID:           id,
		CollectionID: kind,
		Deleted:      true,
		DateModified: now,
	}
}

// EntryID implements [Entry].
func (t Tombstone) EntryID() string { return t.ID }

// Collection implements [Entry].
func (t Tombstone) Collection() Collection { return t.CollectionID }

func (Tombstone) isEntry() {}

// Record is a full, still unencrypted item selected for transmission.
// Fields is a private copy of the item: synced is already removed and
// collectionId merged in.
type Record struct {
	CollectionID Collection
	Fields       Item
}

// NewRecord copies item into a Record for the given collection. The source
// item is not modified.
func NewRecord(kind Collection, item Item) Record {
	fields := item.Without(FieldSynced)
	if fields == nil {
		fields = Item{}
	}
	fields[FieldCollectionID] = string(kind)
	return Record{CollectionID: kind, Fields: fields}
}

// EntryID implements [Entry].
func (r Record) EntryID() string {
	id, _ := r.Fields.ID()
	return id
}

// Collection implements [Entry].
func (r Record) Collection() Collection { return r.CollectionID }

func (Record) isEntry() {}

// DateModified returns the record modification time, or 0 when absent.
func (r Record) DateModified() int64 {
	ts, _ := r.Fields.DateModified()
	return ts
}

// MarshalJSON renders the record as its flat field map, the same shape the
// item has in its store plus collectionId.
func (r Record) MarshalJSON() ([]byte, error) {
	fields := r.Fields.Clone()
	if fields == nil {
		fields = Item{}
	}
	fields[FieldCollectionID] = string(r.CollectionID)
	return json.Marshal(fields)
}

// SplitEntries separates records from tombstones, keeping relative order
// within each group.
func SplitEntries(entries []Entry) ([]Record, []Tombstone) {
	records := make([]Record, 0, len(entries))
	tombstones := make([]Tombstone, 0)
	for _, e := range entries {
		switch v := e.(type) {
		case Record:
			records = append(records, v)
		case Tombstone:
			tombstones = append(tombstones, v)
		}
	}
	return records, tombstones
}

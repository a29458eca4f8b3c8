// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChangeSet is the outbound result of one collection attempt.
// It is built fresh per attempt and discarded after transmission.
type ChangeSet struct {
	// Items holds records and tombstones in collection processing order,
	// then snapshot order within a collection. The order carries no meaning
	// for the remote peer, which keys entries by (collectionId, id).
	Items []Entry `json:"items"`

	// VaultKey is the opaque vault key blob the remote peer needs to open
	// vault-protected note content. encoding/json renders it as base64.
	VaultKey []byte `json:"vaultKey"`

	// EncryptionKey is the symmetric key fetched for this attempt. It is
	// handed to the envelope encoder and never serialised.
	EncryptionKey []byte `json:"-"`
}

// Len returns the number of entries in the change-set.
func (c *ChangeSet) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Items)
}

// IDs returns the (collection, id) keys of all entries.
func (c *ChangeSet) IDs() map[Collection][]string {
	out := make(map[Collection][]string)
	if c == nil {
		return out
	}
	for _, e := range c.Items {
		out[e.Collection()] = append(out[e.Collection()], e.EntryID())
	}
	return out
}

// SyncedRefs returns, per collection, the item versions a successful push
// makes synced. Tombstones are skipped: local-only items keep their flags.
func (c *ChangeSet) SyncedRefs() map[Collection][]ItemRef {
	out := make(map[Collection][]ItemRef)
	if c == nil {
		return out
	}
	for _, e := range c.Items {
		rec, ok := e.(Record)
		if !ok {
			continue
		}
		out[rec.CollectionID] = append(out[rec.CollectionID], ItemRef{
			ID:           rec.EntryID(),
			DateModified: rec.DateModified(),
		})
	}
	return out
}

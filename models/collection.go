// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Collection names a logical category of locally stored records.
// The value is transmitted as the collectionId of every change-set entry.
type Collection string

const (
	// CollectionNote holds note headers (title, flags, hierarchy references).
	CollectionNote Collection = "note"

	// CollectionShortcut holds user-pinned shortcuts to notes and notebooks.
	CollectionShortcut Collection = "shortcut"

	// CollectionNotebook holds notebooks together with their topics.
	CollectionNotebook Collection = "notebook"

	// CollectionContent holds note bodies stored separately from note headers.
	CollectionContent Collection = "content"

	// CollectionAttachment holds attachment metadata. The binary blobs
	// themselves are uploaded out of band.
	CollectionAttachment Collection = "attachment"

	// CollectionSettings is the single settings object. It is not a keyed
	// collection and is carried by [Snapshot.Settings].
	CollectionSettings Collection = "settings"
)

// KeyedCollections lists the keyed collections in change-set processing
// order. Settings are processed after all of them.
var KeyedCollections = []Collection{
	CollectionNote,
	CollectionShortcut,
	CollectionNotebook,
	CollectionContent,
	CollectionAttachment,
}

// String implements [fmt.Stringer].
func (c Collection) String() string {
	return string(c)
}

// Valid reports whether c is one of the recognised collection kinds.
func (c Collection) Valid() bool {
	switch c {
	case CollectionNote, CollectionShortcut, CollectionNotebook,
		CollectionContent, CollectionAttachment, CollectionSettings:
		return true
	}
	return false
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package collector

import "github.com/MKhiriev/go-note-sync/models"

// Decision is the outcome of [Select] for a single item.
type Decision int

const (
	// DecisionExclude leaves the item out of the change-set.
	DecisionExclude Decision = iota

	// DecisionFull emits the item as a full record.
	DecisionFull

	// DecisionTombstone emits a tombstone in place of the item.
	DecisionTombstone

	// DecisionMalformed skips the item because a required field is missing.
	DecisionMalformed
)

// String implements [fmt.Stringer].
func (d Decision) String() string {
	switch d {
	case DecisionExclude:
		return "exclude"
	case DecisionFull:
		return "full"
	case DecisionTombstone:
		return "tombstone"
	case DecisionMalformed:
		return "malformed"
	}
	return "unknown"
}

// Select decides how item enters the change-set.
//
// A local-only item always becomes a tombstone, whatever its timestamps or
// flags. Any other item becomes a full record when it is syncable
// (!synced || force) and modified after lastSynced (or force). Everything
// else is excluded. An item without id, or a non-local-only item without
// dateModified, is malformed.
func Select(item models.Item, lastSynced int64, force bool) Decision {
	if _, ok := item.ID(); !ok {
		return DecisionMalformed
	}

	if item.LocalOnly() {
		return DecisionTombstone
	}

	dateModified, ok := item.DateModified()
	if !ok {
		return DecisionMalformed
	}

	isSyncable := !item.Synced() || force
	isUnsynced := dateModified > lastSynced || force

	if isSyncable && isUnsynced {
		return DecisionFull
	}
	return DecisionExclude
}

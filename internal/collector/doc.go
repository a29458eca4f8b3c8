// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package collector builds the outbound change-set of a synchronization
// attempt.
//
// Selection is a stateless predicate ([Select]) applied independently to
// every item of every collection. [Collect] runs it over a materialised
// [models.Snapshot] and returns entries in a fixed order: note, shortcut,
// notebook, content, attachment, settings, then snapshot order within each
// collection. [Builder] wraps it with the key material lookups that make a
// change-set usable; if either key lookup fails no change-set is returned.
//
// The package never mutates the snapshot it reads.
package collector

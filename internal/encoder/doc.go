// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package encoder turns full records into encrypted, versioned envelopes.
//
// Only the id and dateModified of a record stay readable; every other field,
// collectionId included, travels inside the ciphertext. Local cache fields
// (resolved, synced) are stripped before serialisation.
package encoder

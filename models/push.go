// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PushRequest is the body sent to the remote endpoint for one attempt.
type PushRequest struct {
	// Envelopes holds the encrypted records.
	Envelopes []Envelope `json:"envelopes"`

	// Tombstones are sent in the clear, they carry no payload.
	Tombstones []Tombstone `json:"tombstones"`

	// VaultKey is the base64 encoded vault key blob.
	VaultKey string `json:"vaultKey"`

	// LastSynced is the checkpoint the change-set was computed against.
	LastSynced int64 `json:"lastSynced"`

	// Hash is the HMAC of the serialized Envelopes, a transport integrity check.
	Hash string `json:"hash"`

	// Length is Envelopes plus Tombstones.
	Length int `json:"length"`
}

// PushResponse is the acknowledgement returned by the remote endpoint.
type PushResponse struct {
	// Accepted is the number of entries the remote side stored.
	Accepted int `json:"accepted"`

	// ServerTime is the remote clock at acknowledgement, epoch ms.
	ServerTime int64 `json:"serverTime"`
}

// PushResult summarises a completed push attempt.
type PushResult struct {
	AttemptID  string `json:"attemptId"`
	Records    int    `json:"records"`
	Tombstones int    `json:"tombstones"`
	Checkpoint int64  `json:"checkpoint"`
}

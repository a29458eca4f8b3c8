// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-note-sync/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// Cipher is the symmetric encryption primitive used by the envelope encoder.
// It knows nothing about items, collections or the network.
type Cipher interface {
	// Encrypt seals plaintext under key. Every call draws a fresh nonce, so
	// encrypting the same plaintext twice yields different ciphertext.
	// Returns an error if the key is invalid or the nonce cannot be drawn.
	Encrypt(key, plaintext []byte) (models.Cipher, error)

	// Decrypt opens c with key and returns the plaintext. Returns an error
	// if the algorithm is unknown, the encoding is broken, or authentication
	// fails (wrong key or tampered ciphertext).
	Decrypt(key []byte, c models.Cipher) ([]byte, error)
}

// KeyChainService generates and derives key material on the client.
//
//	Salt = GenerateEncryptionSalt()          (once per account, stored openly)
//	Key  = DeriveKey(masterPassword, Salt)   (kept in memory only)
type KeyChainService interface {
	// GenerateEncryptionSalt returns 16 random bytes. The salt is not a
	// secret; it makes equal passwords derive different keys.
	GenerateEncryptionSalt() ([]byte, error)

	// DeriveKey derives the 256-bit symmetric key from the master password
	// and salt with Argon2id. Deterministic for equal inputs.
	DeriveKey(masterPassword string, salt []byte) []byte

	// GenerateVaultKey returns a fresh random 32-byte vault key.
	GenerateVaultKey() ([]byte, error)
}

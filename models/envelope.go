// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CurrentSchemaVersion is embedded in every envelope. It must be bumped
// whenever the envelope field set or the plaintext serialisation changes;
// pull-side merge logic branches on it.
const CurrentSchemaVersion = 5

// Cipher is the output of the encryption primitive.
type Cipher struct {
	// IV is the base64 encoded nonce. A fresh one is drawn for every call.
	IV string `json:"iv"`

	// Cipher is the base64 encoded ciphertext including the auth tag.
	Cipher string `json:"cipher"`

	// Length is the plaintext length in bytes.
	Length int `json:"length"`

	// Alg identifies the algorithm and encoding used.
	Alg string `json:"alg"`
}

// Envelope is an encrypted record ready for transmission. Only id and
// dateModified are readable without the key.
type Envelope struct {
	ID           string `json:"id"`
	V            int    `json:"v"`
	IV           string `json:"iv"`
	Cipher       string `json:"cipher"`
	Length       int    `json:"length"`
	Alg          string `json:"alg"`
	DateModified int64  `json:"dateModified"`
}

// CipherData returns the cipher part of the envelope.
func (e Envelope) CipherData() Cipher {
	return Cipher{IV: e.IV, Cipher: e.Cipher, Length: e.Length, Alg: e.Alg}
}

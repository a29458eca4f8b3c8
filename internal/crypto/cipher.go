// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/MKhiriev/go-note-sync/models"
)

const (
	// KeySize is the symmetric key length in bytes.
	KeySize = chacha20poly1305.KeySize

	// AlgXChaCha20Poly1305 labels ciphers produced by [NewXChaChaCipher]:
	// XChaCha20-Poly1305 with standard base64 for iv and cipher.
	AlgXChaCha20Poly1305 = "xcha20poly1305-base64"
)

type xchachaCipher struct {
	rand io.Reader
}

// NewXChaChaCipher returns the default [Cipher]: XChaCha20-Poly1305 with a
// random 24-byte nonce per call. The extended nonce makes random nonces
// safe for any realistic number of messages under one key.
func NewXChaChaCipher() Cipher {
	return &xchachaCipher{rand: rand.Reader}
}

// Encrypt implements [Cipher].
func (x *xchachaCipher) Encrypt(key, plaintext []byte) (models.Cipher, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return models.Cipher{}, fmt.Errorf("create aead: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err = io.ReadFull(x.rand, nonce); err != nil {
		return models.Cipher{}, fmt.Errorf("generate nonce: %w", err)
	}

	sealed := aead.Seal(nil, nonce, plaintext, nil)

	return models.Cipher{
		IV:     base64.StdEncoding.EncodeToString(nonce),
		Cipher: base64.StdEncoding.EncodeToString(sealed),
		Length: len(plaintext),
		Alg:    AlgXChaCha20Poly1305,
	}, nil
}

// Decrypt implements [Cipher].
func (x *xchachaCipher) Decrypt(key []byte, c models.Cipher) ([]byte, error) {
	if c.Alg != AlgXChaCha20Poly1305 {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, c.Alg)
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create aead: %w", err)
	}

	nonce, err := base64.StdEncoding.DecodeString(c.IV)
	if err != nil {
		return nil, fmt.Errorf("decode iv: %w", err)
	}
	if len(nonce) != aead.NonceSize() {
		return nil, ErrInvalidNonce
	}

	sealed, err := base64.StdEncoding.DecodeString(c.Cipher)
	if err != nil {
		return nil, fmt.Errorf("decode cipher: %w", err)
	}

	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypt data: %w", err)
	}
	if c.Length != len(plaintext) {
		return nil, ErrLengthMismatch
	}

	return plaintext, nil
}

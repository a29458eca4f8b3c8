// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package encoder

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-note-sync/internal/crypto"
	"github.com/MKhiriev/go-note-sync/models"
)

// strippedFields never leave the device, not even encrypted.
var strippedFields = []string{models.FieldResolved, models.FieldSynced}

// Encoder converts records into envelopes. It is safe for concurrent use
// as long as the underlying cipher is.
type Encoder struct {
	cipher      crypto.Cipher
	concurrency int
}

// Option customises an [Encoder].
type Option func(*Encoder)

// WithConcurrency bounds the number of records encrypted in parallel by
// EncodeAll. Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(e *Encoder) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// New returns an Encoder using cipher. The default concurrency is
// runtime.GOMAXPROCS(0).
func New(cipher crypto.Cipher, opts ...Option) *Encoder {
	e := &Encoder{
		cipher:      cipher,
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode encrypts a single record under key. The record is not modified.
func (e *Encoder) Encode(record models.Record, key []byte) (models.Envelope, error) {
	env, err := e.encode(record, key)
	if err != nil {
		return models.Envelope{}, &EncodingError{
			ID:         record.EntryID(),
			Collection: record.Collection(),
			Err:        err,
		}
	}
	return env, nil
}

func (e *Encoder) encode(record models.Record, key []byte) (models.Envelope, error) {
	if len(key) == 0 {
		return models.Envelope{}, ErrEmptyKey
	}

	plaintext, err := Canonical(record)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("serialize record: %w", err)
	}

	sealed, err := e.cipher.Encrypt(key, plaintext)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("encrypt record: %w", err)
	}

	return models.Envelope{
		ID:           record.EntryID(),
		V:            models.CurrentSchemaVersion,
		IV:           sealed.IV,
		Cipher:       sealed.Cipher,
		Length:       sealed.Length,
		Alg:          sealed.Alg,
		DateModified: record.DateModified(),
	}, nil
}

// EncodeAll encodes records concurrently and returns the envelopes in input
// order. The first failure cancels the batch; no partial result is returned.
func (e *Encoder) EncodeAll(ctx context.Context, records []models.Record, key []byte) ([]models.Envelope, error) {
	if len(records) == 0 {
		return []models.Envelope{}, nil
	}

	envelopes := make([]models.Envelope, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i := range records {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			env, err := e.Encode(records[i], key)
			if err != nil {
				return err
			}
			envelopes[i] = env
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return envelopes, nil
}

// EncodeEntries encodes the records of entries and passes tombstones through
// unchanged, in their original relative order.
func (e *Encoder) EncodeEntries(ctx context.Context, entries []models.Entry, key []byte) ([]models.Envelope, []models.Tombstone, error) {
	records, tombstones := models.SplitEntries(entries)

	envelopes, err := e.EncodeAll(ctx, records, key)
	if err != nil {
		return nil, nil, err
	}
	return envelopes, tombstones, nil
}

// Decode opens env with key and returns the item fields it carries.
func (e *Encoder) Decode(env models.Envelope, key []byte) (models.Item, error) {
	if env.V > models.CurrentSchemaVersion {
		return nil, fmt.Errorf("%w: %d", ErrSchemaVersion, env.V)
	}

	plaintext, err := e.cipher.Decrypt(key, env.CipherData())
	if err != nil {
		return nil, fmt.Errorf("decrypt envelope %s: %w", env.ID, err)
	}

	var item models.Item
	if err = json.Unmarshal(plaintext, &item); err != nil {
		return nil, fmt.Errorf("unmarshal envelope %s: %w", env.ID, err)
	}
	return item, nil
}

// Canonical returns the plaintext form of record: its fields without the
// local cache fields, with collectionId set, marshalled with sorted keys.
func Canonical(record models.Record) ([]byte, error) {
	fields := record.Fields.Without(strippedFields...)
	if fields == nil {
		fields = models.Item{}
	}
	fields[models.FieldCollectionID] = string(record.CollectionID)
	return json.Marshal(fields)
}

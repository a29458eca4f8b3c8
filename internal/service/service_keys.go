// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-note-sync/internal/collector"
	"github.com/MKhiriev/go-note-sync/internal/crypto"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
)

// passwordKeyProvider derives the session key from the master password and
// the stored salt. The key is derived once and then kept in memory.
type passwordKeyProvider struct {
	vault    store.VaultRepository
	keychain crypto.KeyChainService
	password string

	mu  sync.Mutex
	key []byte
}

// NewPasswordKeyProvider returns a [collector.EncryptionKeyProvider] backed
// by the master password. A salt is generated and stored on first use.
// Under a dry-run context a missing salt is generated for that call only:
// nothing is saved and the resulting key is not cached.
func NewPasswordKeyProvider(vault store.VaultRepository, keychain crypto.KeyChainService, masterPassword string) collector.EncryptionKeyProvider {
	return &passwordKeyProvider{
		vault:    vault,
		keychain: keychain,
		password: masterPassword,
	}
}

func (p *passwordKeyProvider) GetEncryptionKey(ctx context.Context) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.key != nil {
		return slices.Clone(p.key), nil
	}
	if p.password == "" {
		return nil, ErrNoMasterPassword
	}

	salt, err := p.vault.KeySalt(ctx)
	if errors.Is(err, store.ErrKeySaltNotFound) {
		if utils.IsDryRun(ctx) {
			salt, err = p.keychain.GenerateEncryptionSalt()
			if err != nil {
				return nil, fmt.Errorf("generate salt: %w", err)
			}
			return p.keychain.DeriveKey(p.password, salt), nil
		}
		salt, err = p.initSalt(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("key salt: %w", err)
	}

	p.key = p.keychain.DeriveKey(p.password, salt)
	return slices.Clone(p.key), nil
}

func (p *passwordKeyProvider) initSalt(ctx context.Context) ([]byte, error) {
	salt, err := p.keychain.GenerateEncryptionSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	if err = p.vault.SaveKeySalt(ctx, salt); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "passwordKeyProvider.initSalt").
		Msg("generated new key derivation salt")
	return salt, nil
}

// storeVaultKeyProvider reads the vault key blob from the store. A store
// without one gets a fresh random key on first use.
type storeVaultKeyProvider struct {
	vault    store.VaultRepository
	keychain crypto.KeyChainService

	mu sync.Mutex
}

// NewStoreVaultKeyProvider returns a [collector.VaultKeyProvider] backed by
// the vault repository. A key generated under a dry-run context is not
// saved.
func NewStoreVaultKeyProvider(vault store.VaultRepository, keychain crypto.KeyChainService) collector.VaultKeyProvider {
	return &storeVaultKeyProvider{vault: vault, keychain: keychain}
}

func (p *storeVaultKeyProvider) GetVaultKey(ctx context.Context) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	blob, err := p.vault.VaultKey(ctx)
	if err == nil {
		return blob, nil
	}
	if !errors.Is(err, store.ErrVaultKeyNotFound) {
		return nil, err
	}

	blob, err = p.keychain.GenerateVaultKey()
	if err != nil {
		return nil, fmt.Errorf("generate vault key: %w", err)
	}
	if utils.IsDryRun(ctx) {
		return blob, nil
	}
	if err = p.vault.SaveVaultKey(ctx, blob); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "storeVaultKeyProvider.GetVaultKey").
		Msg("generated new vault key")
	return blob, nil
}

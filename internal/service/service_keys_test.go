// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-sync/internal/mock"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
)

func TestPasswordKeyProvider_DerivesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultRepository(ctrl)
	keychain := mock.NewMockKeyChainService(ctrl)
	ctx := context.Background()

	vault.EXPECT().KeySalt(ctx).Return([]byte("salt"), nil).Times(1)
	keychain.EXPECT().DeriveKey("secret", []byte("salt")).Return([]byte("derived")).Times(1)

	p := NewPasswordKeyProvider(vault, keychain, "secret")

	for range 3 {
		key, err := p.GetEncryptionKey(ctx)
		require.NoError(t, err)
		assert.Equal(t, []byte("derived"), key)
	}
}

func TestPasswordKeyProvider_ReturnsCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultRepository(ctrl)
	keychain := mock.NewMockKeyChainService(ctrl)

	vault.EXPECT().KeySalt(gomock.Any()).Return([]byte("salt"), nil)
	keychain.EXPECT().DeriveKey(gomock.Any(), gomock.Any()).Return([]byte{1, 2, 3})

	p := NewPasswordKeyProvider(vault, keychain, "secret")
	key, err := p.GetEncryptionKey(context.Background())
	require.NoError(t, err)
	key[0] = 99

	again, err := p.GetEncryptionKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, again)
}

func TestPasswordKeyProvider_GeneratesSaltOnFirstUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultRepository(ctrl)
	keychain := mock.NewMockKeyChainService(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		vault.EXPECT().KeySalt(ctx).Return(nil, store.ErrKeySaltNotFound),
		keychain.EXPECT().GenerateEncryptionSalt().Return([]byte("fresh"), nil),
		vault.EXPECT().SaveKeySalt(ctx, []byte("fresh")).Return(nil),
		keychain.EXPECT().DeriveKey("secret", []byte("fresh")).Return([]byte("derived")),
	)

	key, err := NewPasswordKeyProvider(vault, keychain, "secret").GetEncryptionKey(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("derived"), key)
}

func TestPasswordKeyProvider_DryRunLeavesFreshStoreUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultRepository(ctrl)
	keychain := mock.NewMockKeyChainService(ctrl)
	p := NewPasswordKeyProvider(vault, keychain, "secret")

	vault.EXPECT().KeySalt(gomock.Any()).Return(nil, store.ErrKeySaltNotFound).Times(2)
	keychain.EXPECT().GenerateEncryptionSalt().Return([]byte("temp"), nil)
	keychain.EXPECT().DeriveKey("secret", []byte("temp")).Return([]byte("throwaway"))
	vault.EXPECT().SaveKeySalt(gomock.Any(), []byte("temp")).Times(0)

	key, err := p.GetEncryptionKey(utils.WithDryRun(context.Background()))
	require.NoError(t, err)
	assert.Equal(t, []byte("throwaway"), key)

	// The throwaway key must not be cached: a real attempt stores a salt.
	keychain.EXPECT().GenerateEncryptionSalt().Return([]byte("kept"), nil)
	vault.EXPECT().SaveKeySalt(gomock.Any(), []byte("kept")).Return(nil)
	keychain.EXPECT().DeriveKey("secret", []byte("kept")).Return([]byte("derived"))

	key, err = p.GetEncryptionKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("derived"), key)
}

func TestPasswordKeyProvider_Errors(t *testing.T) {
	t.Run("no master password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		vault := mock.NewMockVaultRepository(ctrl)
		vault.EXPECT().KeySalt(gomock.Any()).Times(0)

		_, err := NewPasswordKeyProvider(vault, mock.NewMockKeyChainService(ctrl), "").GetEncryptionKey(context.Background())
		assert.ErrorIs(t, err, ErrNoMasterPassword)
	})

	t.Run("salt read fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		vault := mock.NewMockVaultRepository(ctrl)
		boom := errors.New("database is locked")
		vault.EXPECT().KeySalt(gomock.Any()).Return(nil, boom)

		_, err := NewPasswordKeyProvider(vault, mock.NewMockKeyChainService(ctrl), "secret").GetEncryptionKey(context.Background())
		assert.ErrorIs(t, err, boom)
	})

	t.Run("salt save fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		vault := mock.NewMockVaultRepository(ctrl)
		keychain := mock.NewMockKeyChainService(ctrl)
		boom := errors.New("read-only")

		vault.EXPECT().KeySalt(gomock.Any()).Return(nil, store.ErrKeySaltNotFound)
		keychain.EXPECT().GenerateEncryptionSalt().Return([]byte("fresh"), nil)
		vault.EXPECT().SaveKeySalt(gomock.Any(), gomock.Any()).Return(boom)
		keychain.EXPECT().DeriveKey(gomock.Any(), gomock.Any()).Times(0)

		_, err := NewPasswordKeyProvider(vault, keychain, "secret").GetEncryptionKey(context.Background())
		assert.ErrorIs(t, err, boom)
	})
}

func TestStoreVaultKeyProvider(t *testing.T) {
	t.Run("stored key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		vault := mock.NewMockVaultRepository(ctrl)
		keychain := mock.NewMockKeyChainService(ctrl)

		vault.EXPECT().VaultKey(gomock.Any()).Return([]byte("blob"), nil)
		keychain.EXPECT().GenerateVaultKey().Times(0)

		blob, err := NewStoreVaultKeyProvider(vault, keychain).GetVaultKey(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []byte("blob"), blob)
	})

	t.Run("generated on first use", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		vault := mock.NewMockVaultRepository(ctrl)
		keychain := mock.NewMockKeyChainService(ctrl)

		vault.EXPECT().VaultKey(gomock.Any()).Return(nil, store.ErrVaultKeyNotFound)
		keychain.EXPECT().GenerateVaultKey().Return([]byte("new"), nil)
		vault.EXPECT().SaveVaultKey(gomock.Any(), []byte("new")).Return(nil)

		blob, err := NewStoreVaultKeyProvider(vault, keychain).GetVaultKey(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []byte("new"), blob)
	})

	t.Run("dry run does not save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		vault := mock.NewMockVaultRepository(ctrl)
		keychain := mock.NewMockKeyChainService(ctrl)

		vault.EXPECT().VaultKey(gomock.Any()).Return(nil, store.ErrVaultKeyNotFound)
		keychain.EXPECT().GenerateVaultKey().Return([]byte("new"), nil)
		vault.EXPECT().SaveVaultKey(gomock.Any(), gomock.Any()).Times(0)

		blob, err := NewStoreVaultKeyProvider(vault, keychain).GetVaultKey(utils.WithDryRun(context.Background()))
		require.NoError(t, err)
		assert.Equal(t, []byte("new"), blob)
	})

	t.Run("read error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		vault := mock.NewMockVaultRepository(ctrl)
		keychain := mock.NewMockKeyChainService(ctrl)
		boom := errors.New("disk I/O error")

		vault.EXPECT().VaultKey(gomock.Any()).Return(nil, boom)
		keychain.EXPECT().GenerateVaultKey().Times(0)

		_, err := NewStoreVaultKeyProvider(vault, keychain).GetVaultKey(context.Background())
		assert.ErrorIs(t, err, boom)
	})

	t.Run("generation fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		vault := mock.NewMockVaultRepository(ctrl)
		keychain := mock.NewMockKeyChainService(ctrl)

		vault.EXPECT().VaultKey(gomock.Any()).Return(nil, store.ErrVaultKeyNotFound)
		keychain.EXPECT().GenerateVaultKey().Return(nil, errors.New("entropy exhausted"))
		vault.EXPECT().SaveVaultKey(gomock.Any(), gomock.Any()).Times(0)

		_, err := NewStoreVaultKeyProvider(vault, keychain).GetVaultKey(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "generate vault key")
	})
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-key"))
	require.NoError(t, err)
	return s
}

func TestTokenExpiresAt(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)})

	got, err := TokenExpiresAt(token)
	require.NoError(t, err)
	assert.True(t, exp.Equal(got))
}

func TestTokenExpiresAt_NoClaim(t *testing.T) {
	token := signedToken(t, jwt.RegisteredClaims{Subject: "42"})

	_, err := TokenExpiresAt(token)
	assert.ErrorIs(t, err, ErrNoExpiry)
}

func TestTokenExpiresAt_Garbage(t *testing.T) {
	_, err := TokenExpiresAt("not-a-jwt")
	assert.Error(t, err)
}

func TestIsTokenExpired(t *testing.T) {
	now := time.Now()
	past := signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))})
	future := signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute))})
	forever := signedToken(t, jwt.RegisteredClaims{Subject: "1"})

	assert.True(t, IsTokenExpired(past, now))
	assert.False(t, IsTokenExpired(future, now))
	assert.False(t, IsTokenExpired(forever, now))
	assert.False(t, IsTokenExpired("opaque-api-token", now))
}

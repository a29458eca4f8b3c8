// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned by TokenExpiresAt for tokens without an exp claim.
var ErrNoExpiry = errors.New("token has no expiration claim")

// TokenExpiresAt returns the exp claim of a JWT without verifying its
// signature. The client cannot verify server-issued tokens; it only reads
// the expiry to avoid pointless round trips.
func TokenExpiresAt(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("error parsing token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("error reading token expiration: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}

	return exp.Time, nil
}

// IsTokenExpired reports whether the token is expired at now. Tokens
// without an exp claim never expire; opaque (non-JWT) tokens are left to
// the server and reported as not expired.
func IsTokenExpired(tokenString string, now time.Time) bool {
	exp, err := TokenExpiresAt(tokenString)
	if err != nil {
		return false
	}
	return !now.Before(exp)
}

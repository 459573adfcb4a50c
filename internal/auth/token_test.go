// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testSecret = "x7K!mP9$qR2@wN5^vB8&zL4*hT6#yU3%"

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokens(testSecret)

	signed, err := tokens.Issue("6ba7b810-9dad-11d1-80b4-00c04fd430c8", time.Hour)
	require.NoError(t, err)

	sub, err := tokens.Verify(signed)
	require.NoError(t, err)
	require.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", sub)
}

func TestTokenExpired(t *testing.T) {
	tokens := NewTokens(testSecret)

	signed, err := tokens.Issue("some-id", -time.Minute)
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	require.Error(t, err)
}

func TestTokenWrongSecret(t *testing.T) {
	signed, err := NewTokens(testSecret).Issue("some-id", time.Hour)
	require.NoError(t, err)

	_, err = NewTokens("A-completely-different-32b-secret!!").Verify(signed)
	require.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	tokens := NewTokens(testSecret)

	for _, garbage := range []string{"", "x", "a.b.c", "eyJhbGciOiJub25lIn0.e30."} {
		_, err := tokens.Verify(garbage)
		require.Error(t, err, "token %q should not verify", garbage)
	}
}

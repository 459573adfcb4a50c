// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGlobalRateLimiterPerIP(t *testing.T) {
	rl := NewGlobalRateLimiter(100, 2)
	h := rl.Middleware()(okHandler())

	get := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/ventures", nil)
		req.Header.Set("X-Real-IP", ip)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, get("203.0.113.1"))
	require.Equal(t, http.StatusOK, get("203.0.113.1"))
	require.Equal(t, http.StatusTooManyRequests, get("203.0.113.1"))

	// A different client has its own bucket
	require.Equal(t, http.StatusOK, get("203.0.113.2"))
}

func TestLimiterCacheClearIfExceeds(t *testing.T) {
	lc := newLimiterCache[string](1, 1)
	lc.get("a")
	lc.get("b")
	lc.get("c")

	require.False(t, lc.clearIfExceeds(10))
	require.True(t, lc.clearIfExceeds(2))
	require.False(t, lc.clearIfExceeds(2))
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication,
// authorization, rate limiting and response headers.
package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/veridianlabs/veridian-go/internal/auth"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyAuth is the context key for the resolved authentication state.
const ContextKeyAuth ContextKey = "auth"

// APIError is the JSON error envelope for API responses.
type APIError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// WriteAPIError writes a JSON error response.
func WriteAPIError(w http.ResponseWriter, statusCode int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	var apiErr APIError
	apiErr.Error.Code = code
	apiErr.Error.Message = message
	_ = json.NewEncoder(w).Encode(apiErr)
}

// WithAuth resolves the request's session cookies once and stores the
// result in the context. Resolution never fails the request; anonymous
// requests carry a zero AuthResult.
func WithAuth(resolver *auth.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := resolver.VerifyAuth(r)
			ctx := context.WithValue(r.Context(), ContextKeyAuth, res)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAuth retrieves the resolved authentication state from the context.
// Returns a zero result when WithAuth did not run.
func GetAuth(r *http.Request) auth.AuthResult {
	res, ok := r.Context().Value(ContextKeyAuth).(auth.AuthResult)
	if !ok {
		return auth.AuthResult{}
	}
	return res
}

// RequireAuth rejects unauthenticated requests with a JSON 401.
// Must run after WithAuth.
func RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !GetAuth(r).Authenticated {
				WriteAPIError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin rejects requests without an admin session: 401 for
// anonymous callers, 403 for authenticated non-admins. Must run after
// WithAuth.
func RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := GetAuth(r)
			if !res.Authenticated {
				WriteAPIError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
				return
			}
			if !res.IsAdmin {
				slog.Warn("access denied",
					"status", http.StatusForbidden,
					"method", r.Method,
					"path", r.URL.Path,
					"subject", res.Identity.ID(),
					"remote_addr", r.RemoteAddr,
				)
				WriteAPIError(w, http.StatusForbidden, "forbidden", "Admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

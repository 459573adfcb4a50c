// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/veridianlabs/veridian-go/internal/model"
)

// AccountSource provides the account lookups the resolver needs.
// *store.Store satisfies it; tests substitute a stub.
type AccountSource interface {
	GetAdminByID(ctx context.Context, id string) (model.Admin, error)
	GetUserByID(ctx context.Context, id string) (model.User, error)
}

// AuthResult is the normalized outcome of resolving a request's session
// cookies. Identity is nil unless Authenticated is true.
type AuthResult struct {
	Authenticated bool
	IsAdmin       bool
	Identity      model.Identity
}

// Resolver determines per request whether the caller is an authenticated
// user, an authenticated admin, or anonymous. It is read-only and fails
// closed: any verification or lookup failure collapses into "unauthenticated"
// and no error ever reaches the caller.
type Resolver struct {
	tokens   *Tokens
	accounts AccountSource
}

// NewResolver creates a Resolver. accounts may be nil when no store is
// configured; every token then resolves as unauthenticated.
func NewResolver(tokens *Tokens, accounts AccountSource) *Resolver {
	return &Resolver{tokens: tokens, accounts: accounts}
}

// VerifyAuth resolves the session cookies on the request.
// The admin token takes precedence: when it verifies and its account
// exists, the user token is never examined.
func (rs *Resolver) VerifyAuth(r *http.Request) AuthResult {
	adminToken := cookieValue(r, AdminCookieName)
	userToken := cookieValue(r, UserCookieName)

	if adminToken == "" && userToken == "" {
		return AuthResult{}
	}

	ctx := r.Context()

	if adminToken != "" {
		if res, ok := rs.resolveAdmin(ctx, adminToken); ok {
			return res
		}
	}

	if userToken != "" {
		if res, ok := rs.resolveUser(ctx, userToken); ok {
			return res
		}
	}

	return AuthResult{}
}

func (rs *Resolver) resolveAdmin(ctx context.Context, token string) (AuthResult, bool) {
	sub, err := rs.tokens.Verify(token)
	if err != nil || rs.accounts == nil {
		return AuthResult{}, false
	}

	admin, err := rs.lookupAdmin(ctx, sub)
	if err != nil {
		return AuthResult{}, false
	}

	return AuthResult{
		Authenticated: true,
		IsAdmin:       true,
		Identity:      model.AdminIdentity{AdminID: admin.ID, Username: admin.Username},
	}, true
}

func (rs *Resolver) resolveUser(ctx context.Context, token string) (AuthResult, bool) {
	sub, err := rs.tokens.Verify(token)
	if err != nil || rs.accounts == nil {
		return AuthResult{}, false
	}

	user, err := rs.lookupUser(ctx, sub)
	if err != nil {
		return AuthResult{}, false
	}

	return AuthResult{
		Authenticated: true,
		IsAdmin:       false,
		Identity:      model.UserIdentity{UserID: user.ID, Email: user.Email},
	}, true
}

// lookupAdmin tries the canonical UUID form of the subject first, then the
// raw string. Token claims may carry an identifier form that does not
// round-trip (braces, urn prefix, missing hyphens).
func (rs *Resolver) lookupAdmin(ctx context.Context, sub string) (model.Admin, error) {
	if id, err := uuid.Parse(sub); err == nil {
		canonical := id.String()
		admin, err := rs.accounts.GetAdminByID(ctx, canonical)
		if err == nil || canonical == sub {
			return admin, err
		}
	}
	return rs.accounts.GetAdminByID(ctx, sub)
}

func (rs *Resolver) lookupUser(ctx context.Context, sub string) (model.User, error) {
	if id, err := uuid.Parse(sub); err == nil {
		canonical := id.String()
		user, err := rs.accounts.GetUserByID(ctx, canonical)
		if err == nil || canonical == sub {
			return user, err
		}
	}
	return rs.accounts.GetUserByID(ctx, sub)
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

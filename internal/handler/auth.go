// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/veridianlabs/veridian-go/internal/auth"
	"github.com/veridianlabs/veridian-go/internal/middleware"
	"github.com/veridianlabs/veridian-go/internal/model"
	"github.com/veridianlabs/veridian-go/internal/store"
)

// AuthHandler handles login, logout and session introspection.
type AuthHandler struct {
	store      *store.Store
	tokens     *auth.Tokens
	protection *middleware.LoginProtection
	userTTL    time.Duration
	adminTTL   time.Duration
	secure     bool
}

// NewAuthHandler creates an auth handler. st may be nil when no database
// is configured; every login then fails with 503.
func NewAuthHandler(st *store.Store, tokens *auth.Tokens, protection *middleware.LoginProtection, userTTL, adminTTL time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		store:      st,
		tokens:     tokens,
		protection: protection,
		userTTL:    userTTL,
		adminTTL:   adminTTL,
		secure:     secureCookies,
	}
}

type loginRequest struct {
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

// UserLogin handles POST /api/auth/login.
func (h *AuthHandler) UserLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		writeJSONError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	if !h.ready(w) {
		return
	}
	if h.locked(w, email) {
		return
	}

	user, err := h.store.GetUserByEmail(r.Context(), email)
	if err != nil || !h.passwordOK(req.Password, user.PasswordHash) {
		h.failLogin(w, email)
		return
	}

	token, err := h.tokens.Issue(user.ID, h.userTTL)
	if err != nil {
		slog.Error("issuing user token failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	h.protection.RecordSuccessfulLogin(email)
	h.setCookie(w, auth.UserCookieName, token, h.userTTL)
	slog.Info("user logged in", "user_id", user.ID)

	writeJSONSuccess(w, map[string]any{
		"user": map[string]any{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

// AdminLogin handles POST /api/admin/login.
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		writeJSONError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	if !h.ready(w) {
		return
	}
	if h.locked(w, "admin:"+username) {
		return
	}

	admin, err := h.store.GetAdminByUsername(r.Context(), username)
	if err != nil || !h.passwordOK(req.Password, admin.PasswordHash) {
		h.failLogin(w, "admin:"+username)
		return
	}

	token, err := h.tokens.Issue(admin.ID, h.adminTTL)
	if err != nil {
		slog.Error("issuing admin token failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	h.protection.RecordSuccessfulLogin("admin:" + username)
	h.setCookie(w, auth.AdminCookieName, token, h.adminTTL)
	slog.Info("admin logged in", "admin_id", admin.ID, "username", admin.Username)

	writeJSONSuccess(w, map[string]any{
		"admin": map[string]any{
			"id":       admin.ID,
			"username": admin.Username,
		},
	})
}

// Logout handles POST /api/auth/logout. Both session cookies are cleared
// regardless of which one was present.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.setCookie(w, auth.UserCookieName, "", -time.Hour)
	h.setCookie(w, auth.AdminCookieName, "", -time.Hour)
	writeJSONSuccess(w, nil)
}

// Me handles GET /api/auth/me, reporting the resolved session state.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	res := middleware.GetAuth(r)
	if !res.Authenticated {
		writeJSONSuccess(w, map[string]any{"authenticated": false})
		return
	}

	identity := map[string]any{
		"id":   res.Identity.ID(),
		"role": string(res.Identity.Role()),
	}
	switch id := res.Identity.(type) {
	case model.UserIdentity:
		identity["email"] = id.Email
	case model.AdminIdentity:
		identity["username"] = id.Username
	}

	writeJSONSuccess(w, map[string]any{
		"authenticated": true,
		"isAdmin":       res.IsAdmin,
		"identity":      identity,
	})
}

func (h *AuthHandler) ready(w http.ResponseWriter) bool {
	if h.store == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "Authentication is not configured")
		return false
	}
	return true
}

func (h *AuthHandler) locked(w http.ResponseWriter, account string) bool {
	if locked, remaining := h.protection.IsAccountLocked(account); locked {
		writeJSONError(w, http.StatusTooManyRequests,
			"Account temporarily locked. Try again in "+remaining.Round(time.Second).String())
		return true
	}
	return false
}

func (h *AuthHandler) passwordOK(password, hash string) bool {
	ok, err := auth.CheckPassword(password, hash)
	return err == nil && ok
}

// failLogin records the failure and answers with the same generic error
// for unknown accounts and wrong passwords.
func (h *AuthHandler) failLogin(w http.ResponseWriter, account string) {
	if nowLocked, duration := h.protection.RecordFailedAttempt(account); nowLocked {
		writeJSONError(w, http.StatusTooManyRequests,
			"Account temporarily locked. Try again in "+duration.Round(time.Second).String())
		return
	}
	writeJSONError(w, http.StatusUnauthorized, "Invalid credentials")
}

func (h *AuthHandler) setCookie(w http.ResponseWriter, name, value string, ttl time.Duration) {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl > 0 {
		cookie.MaxAge = int(ttl.Seconds())
	} else {
		cookie.MaxAge = -1
	}
	http.SetCookie(w, cookie)
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/veridianlabs/veridian-go/internal/auth"
	"github.com/veridianlabs/veridian-go/internal/model"
)

// EnsureAdmin creates the initial admin account if it does not exist yet.
// When password is empty, seeding is skipped entirely: the deployment is
// expected to provision its own admin.
func EnsureAdmin(ctx context.Context, s *Store, username, password string) error {
	if password == "" {
		slog.Info("no seed admin password configured, skipping admin seed")
		return nil
	}

	_, err := s.GetAdminByUsername(ctx, username)
	if err == nil {
		slog.Info("admin account already exists, skipping seed", "username", username)
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking for admin account: %w", err)
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing seed admin password: %w", err)
	}

	now := time.Now()
	admin := model.Admin{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.CreateAdmin(ctx, admin); err != nil {
		return fmt.Errorf("creating seed admin: %w", err)
	}

	slog.Info("created seed admin account", "id", admin.ID, "username", username)
	return nil
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"

	"github.com/veridianlabs/veridian-go/internal/model"
)

// GetAdminByID fetches an admin account by identifier.
// Returns sql.ErrNoRows when no account matches.
func (s *Store) GetAdminByID(ctx context.Context, id string) (model.Admin, error) {
	var a model.Admin
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash, created_at, updated_at FROM admins WHERE id = ?", id).
		Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// GetAdminByUsername fetches an admin account by username.
// Returns sql.ErrNoRows when no account matches.
func (s *Store) GetAdminByUsername(ctx context.Context, username string) (model.Admin, error) {
	var a model.Admin
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash, created_at, updated_at FROM admins WHERE username = ?", username).
		Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// CreateAdmin inserts a new admin account.
func (s *Store) CreateAdmin(ctx context.Context, a model.Admin) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO admins (id, username, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		a.ID, a.Username, a.PasswordHash, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating admin %s: %w", a.Username, err)
	}
	return nil
}

// GetUserByID fetches a user account by identifier.
// Returns sql.ErrNoRows when no account matches.
func (s *Store) GetUserByID(ctx context.Context, id string) (model.User, error) {
	var u model.User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, email, name, password_hash, created_at, updated_at FROM users WHERE id = ?", id).
		Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetUserByEmail fetches a user account by email.
// Returns sql.ErrNoRows when no account matches.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, email, name, password_hash, created_at, updated_at FROM users WHERE email = ?", email).
		Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// CreateUser inserts a new user account.
func (s *Store) CreateUser(ctx context.Context, u model.User) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, email, name, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		u.ID, u.Email, u.Name, u.PasswordHash, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating user %s: %w", u.Email, err)
	}
	return nil
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the domain types shared across the application:
// session identities, account records, and the render-safe content view
// models produced by the content access layer.
package model

// Role identifies the kind of authenticated caller.
type Role string

// Roles
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Identity is the resolved session identity of a request. It is a closed
// union over UserIdentity and AdminIdentity so that role-specific fields
// (email vs username) cannot be reached through the wrong variant.
type Identity interface {
	// ID returns the store-assigned account identifier.
	ID() string
	// Role returns the identity's role discriminant.
	Role() Role
}

// UserIdentity is the identity of an authenticated end-user.
type UserIdentity struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
}

// ID implements Identity.
func (u UserIdentity) ID() string { return u.UserID }

// Role implements Identity.
func (u UserIdentity) Role() Role { return RoleUser }

// AdminIdentity is the identity of an authenticated administrator.
type AdminIdentity struct {
	AdminID  string `json:"id"`
	Username string `json:"username"`
}

// ID implements Identity.
func (a AdminIdentity) ID() string { return a.AdminID }

// Role implements Identity.
func (a AdminIdentity) Role() Role { return RoleAdmin }

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "testing"

func TestIdentityVariants(t *testing.T) {
	var id Identity = UserIdentity{UserID: "u-1", Email: "user@example.com"}
	if id.Role() != RoleUser {
		t.Errorf("Role() = %q, want %q", id.Role(), RoleUser)
	}
	if id.ID() != "u-1" {
		t.Errorf("ID() = %q, want u-1", id.ID())
	}

	id = AdminIdentity{AdminID: "a-1", Username: "root"}
	if id.Role() != RoleAdmin {
		t.Errorf("Role() = %q, want %q", id.Role(), RoleAdmin)
	}

	// Role-specific fields only exist on the matching variant
	if admin, ok := id.(AdminIdentity); !ok || admin.Username != "root" {
		t.Errorf("admin variant not recoverable: %+v", id)
	}
	if _, ok := id.(UserIdentity); ok {
		t.Error("admin identity must not assert as user identity")
	}
}

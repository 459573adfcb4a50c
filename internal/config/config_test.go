// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"strings"
	"testing"
)

const testSecret = "x7K!mP9$qR2@wN5^vB8&zL4*hT6#yU3%"

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("VERIDIAN_AUTH_SECRET", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() with empty secret should fail")
	}
}

func TestLoadRejectsShortSecret(t *testing.T) {
	t.Setenv("VERIDIAN_AUTH_SECRET", "too-short")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() with short secret should fail")
	}
	if !strings.Contains(err.Error(), "at least") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadRejectsKnownWeakSecret(t *testing.T) {
	t.Setenv("VERIDIAN_AUTH_SECRET", "change-me-to-32-byte-secret-key!")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() with known default secret should fail")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("VERIDIAN_AUTH_SECRET", testSecret)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.ServerAddr() != "localhost:8080" {
		t.Errorf("ServerAddr() = %q, want localhost:8080", cfg.ServerAddr())
	}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() should default to true")
	}
	if cfg.StoreConfigured() {
		t.Error("StoreConfigured() should be false when VERIDIAN_DB_PATH is unset")
	}
	if cfg.UseRedisCache() {
		t.Error("UseRedisCache() should be false when VERIDIAN_REDIS_URL is unset")
	}
}

func TestStoreConfigured(t *testing.T) {
	t.Setenv("VERIDIAN_AUTH_SECRET", testSecret)
	t.Setenv("VERIDIAN_DB_PATH", "/tmp/veridian.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.StoreConfigured() {
		t.Error("StoreConfigured() = false, want true")
	}
}

func TestHasMinimumEntropy(t *testing.T) {
	if hasMinimumEntropy("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa") {
		t.Error("single character class should not pass")
	}
	if !hasMinimumEntropy(testSecret) {
		t.Error("mixed-class secret should pass")
	}
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
	"your-secret-key-change-in-production",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	// DBPath is the SQLite database path. When empty the application runs
	// without a store and the content layer serves its sample datasets.
	DBPath     string `env:"VERIDIAN_DB_PATH"`
	AuthSecret string `env:"VERIDIAN_AUTH_SECRET,required"`
	ServerHost string `env:"VERIDIAN_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"VERIDIAN_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"VERIDIAN_ENV" envDefault:"development"`
	LogLevel   string `env:"VERIDIAN_LOG_LEVEL" envDefault:"info"`
	UploadsDir string `env:"VERIDIAN_UPLOADS_DIR" envDefault:"./uploads"`

	// Token lifetimes
	UserTokenTTL  time.Duration `env:"VERIDIAN_USER_TOKEN_TTL" envDefault:"168h"`
	AdminTokenTTL time.Duration `env:"VERIDIAN_ADMIN_TOKEN_TTL" envDefault:"24h"`

	// Cache configuration
	RedisURL     string `env:"VERIDIAN_REDIS_URL"`                         // Optional Redis URL for distributed caching
	CachePrefix  string `env:"VERIDIAN_CACHE_PREFIX" envDefault:"veridian:"` // Redis key prefix
	CacheTTL     int    `env:"VERIDIAN_CACHE_TTL" envDefault:"300"`        // Content cache TTL in seconds
	CacheMaxSize int    `env:"VERIDIAN_CACHE_MAX_SIZE" envDefault:"1000"`  // Max memory cache entries

	// Seeding configuration
	SeedAdminUsername string `env:"VERIDIAN_SEED_ADMIN_USERNAME" envDefault:"admin"`
	SeedAdminPassword string `env:"VERIDIAN_SEED_ADMIN_PASSWORD"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// StoreConfigured returns true if a database path is set. When false the
// content layer never attempts I/O and serves sample data.
func (c Config) StoreConfigured() bool {
	return c.DBPath != ""
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// MinAuthSecretLength is the minimum required length for the signing secret.
const MinAuthSecretLength = 32

// Load parses environment variables and returns a Config struct.
// A missing, short, or known-default auth secret is a startup error:
// tokens signed with a guessable secret are forgeable.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.AuthSecret) < MinAuthSecretLength {
		return nil, fmt.Errorf("VERIDIAN_AUTH_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinAuthSecretLength, len(cfg.AuthSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.AuthSecret == weak {
			return nil, fmt.Errorf("VERIDIAN_AUTH_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if !hasMinimumEntropy(cfg.AuthSecret) {
		slog.Warn("VERIDIAN_AUTH_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}

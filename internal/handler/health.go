// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/veridianlabs/veridian-go/internal/middleware"
	"github.com/veridianlabs/veridian-go/internal/version"
)

// HealthHandler handles health check requests. db may be nil when the
// service runs in sample-data mode without a database.
type HealthHandler struct {
	db        *sql.DB
	startTime time.Time
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db, startTime: time.Now()}
}

// Check represents a single health check result.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// healthStatus is the detailed response for admin callers.
type healthStatus struct {
	Status    string           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   version.Info     `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

// Health handles GET /health. Unauthenticated callers get only the
// overall status; admins get check details and version information.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	dbCheck := h.checkDatabase()

	overall := "healthy"
	if dbCheck.Status == "unhealthy" {
		overall = "degraded"
	}

	w.Header().Set("Content-Type", "application/json")
	if overall != "healthy" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	res := middleware.GetAuth(r)
	if !res.Authenticated || !res.IsAdmin {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": overall})
		return
	}

	_ = json.NewEncoder(w).Encode(healthStatus{
		Status:    overall,
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Version:   version.Current(),
		Checks: map[string]Check{
			"database": dbCheck,
		},
	})
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "alive"})
}

// Readiness handles GET /health/ready. Sample-data mode is always ready.
func (h *HealthHandler) Readiness(w http.ResponseWriter, _ *http.Request) {
	dbCheck := h.checkDatabase()

	w.Header().Set("Content-Type", "application/json")
	if dbCheck.Status == "unhealthy" {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "not_ready"})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
}

func (h *HealthHandler) checkDatabase() Check {
	if h.db == nil {
		return Check{Status: "healthy", Message: "No database configured, serving sample data"}
	}

	start := time.Now()
	err := h.db.Ping()
	latency := time.Since(start)

	if err != nil {
		return Check{Status: "unhealthy", Message: err.Error(), Latency: latency.String()}
	}
	return Check{Status: "healthy", Message: "Connected", Latency: latency.String()}
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Event log levels
const (
	EventLevelInfo    = "info"
	EventLevelWarning = "warning"
	EventLevelError   = "error"
)

// Event log categories
const (
	EventCategoryAuth    = "auth"
	EventCategoryContent = "content"
	EventCategoryMedia   = "media"
	EventCategorySystem  = "system"
)

// Event is an audit log entry mirrored from WARN+ application logs
// and recorded by admin mutations.
type Event struct {
	ID        int64     `json:"id"`
	Level     string    `json:"level"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	Metadata  string    `json:"metadata"`
	CreatedAt time.Time `json:"created_at"`
}

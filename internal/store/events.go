// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"

	"github.com/veridianlabs/veridian-go/internal/model"
)

// CreateEvent appends an entry to the event log.
func (s *Store) CreateEvent(ctx context.Context, e model.Event) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO events (level, category, message, metadata, created_at) VALUES (?, ?, ?, ?, ?)",
		e.Level, e.Category, e.Message, e.Metadata, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating event: %w", err)
	}
	return nil
}

// ListEvents returns the most recent event log entries, newest first.
func (s *Store) ListEvents(ctx context.Context, limit int) ([]model.Event, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, level, category, message, metadata, created_at FROM events ORDER BY created_at DESC, id DESC LIMIT ?",
		limit)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Level, &e.Category, &e.Message, &e.Metadata, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return events, nil
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging provides a slog handler that mirrors WARN and ERROR
// level records into the database-backed event log for admin auditing.
package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/veridianlabs/veridian-go/internal/model"
	"github.com/veridianlabs/veridian-go/internal/store"
)

// EventLogHandler wraps another slog.Handler and additionally writes
// records at or above its threshold to the event log.
type EventLogHandler struct {
	inner slog.Handler
	store *store.Store
	level slog.Level
}

// NewEventLogHandler wraps inner, mirroring WARN and above to st.
func NewEventLogHandler(inner slog.Handler, st *store.Store) *EventLogHandler {
	return NewEventLogHandlerWithLevel(inner, st, slog.LevelWarn)
}

// NewEventLogHandlerWithLevel wraps inner with a custom mirror threshold.
func NewEventLogHandlerWithLevel(inner slog.Handler, st *store.Store, level slog.Level) *EventLogHandler {
	return &EventLogHandler{
		inner: inner,
		store: st,
		level: level,
	}
}

func (h *EventLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *EventLogHandler) Handle(ctx context.Context, r slog.Record) error {
	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}
	if r.Level >= h.level {
		h.record(r)
	}
	return nil
}

func (h *EventLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &EventLogHandler{
		inner: h.inner.WithAttrs(attrs),
		store: h.store,
		level: h.level,
	}
}

func (h *EventLogHandler) WithGroup(name string) slog.Handler {
	return &EventLogHandler{
		inner: h.inner.WithGroup(name),
		store: h.store,
		level: h.level,
	}
}

// record writes one event. A background context is used so events survive
// cancelled request contexts; a failed write only reaches the inner handler,
// anything louder would recurse.
func (h *EventLogHandler) record(r slog.Record) {
	_ = h.store.CreateEvent(context.Background(), model.Event{
		Level:     eventLevel(r.Level),
		Category:  eventCategory(r),
		Message:   r.Message,
		Metadata:  metadataJSON(r),
		CreatedAt: r.Time,
	})
}

func eventLevel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return model.EventLevelError
	case level >= slog.LevelWarn:
		return model.EventLevelWarning
	default:
		return model.EventLevelInfo
	}
}

// eventCategory uses an explicit "category" attribute when present and
// otherwise infers one from the message text.
func eventCategory(r slog.Record) string {
	var category string
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "category" {
			category = a.Value.String()
			return false
		}
		return true
	})
	if category != "" {
		return category
	}

	msg := strings.ToLower(r.Message)
	switch {
	case strings.Contains(msg, "auth") || strings.Contains(msg, "login") || strings.Contains(msg, "logout") || strings.Contains(msg, "token"):
		return model.EventCategoryAuth
	case strings.Contains(msg, "content") || strings.Contains(msg, "document") || strings.Contains(msg, "blog") || strings.Contains(msg, "venture"):
		return model.EventCategoryContent
	case strings.Contains(msg, "media") || strings.Contains(msg, "upload") || strings.Contains(msg, "image") || strings.Contains(msg, "thumbnail"):
		return model.EventCategoryMedia
	default:
		return model.EventCategorySystem
	}
}

// metadataJSON collects the record attributes into a JSON object string.
func metadataJSON(r slog.Record) string {
	attrs := make(map[string]string, r.NumAttrs())
	r.Attrs(func(a slog.Attr) bool {
		if a.Key != "category" {
			attrs[a.Key] = a.Value.String()
		}
		return true
	})
	if len(attrs) == 0 {
		return "{}"
	}

	data, err := json.Marshal(attrs)
	if err != nil {
		return "{}"
	}
	return string(data)
}

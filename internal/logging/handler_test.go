// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veridianlabs/veridian-go/internal/model"
	"github.com/veridianlabs/veridian-go/internal/store"
	"github.com/veridianlabs/veridian-go/internal/testutil"
)

type discardHandler struct{}

func (h discardHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (h discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return h }
func (h discardHandler) WithGroup(string) slog.Handler             { return h }

func lastEvents(t *testing.T, st *store.Store, n int) []model.Event {
	t.Helper()
	events, err := st.ListEvents(context.Background(), n)
	require.NoError(t, err)
	return events
}

func TestEventLogHandlerMirrorsWarnAndAbove(t *testing.T) {
	st, cleanup := testutil.TestStore(t)
	defer cleanup()

	logger := slog.New(NewEventLogHandler(discardHandler{}, st))
	logger.Error("database connection failed", "host", "localhost")
	logger.Warn("slow query detected", "duration_ms", 5000)
	logger.Info("server started", "port", 8080)
	logger.Debug("processing request")

	events := lastEvents(t, st, 10)
	require.Len(t, events, 2)

	byMessage := map[string]model.Event{}
	for _, e := range events {
		byMessage[e.Message] = e
	}
	require.Equal(t, model.EventLevelError, byMessage["database connection failed"].Level)
	require.Equal(t, model.EventLevelWarning, byMessage["slow query detected"].Level)
}

func TestEventLogHandlerCustomLevel(t *testing.T) {
	st, cleanup := testutil.TestStore(t)
	defer cleanup()

	logger := slog.New(NewEventLogHandlerWithLevel(discardHandler{}, st, slog.LevelInfo))
	logger.Info("server started", "port", 8080)

	require.Len(t, lastEvents(t, st, 10), 1)
}

func TestEventLogHandlerCategoryInference(t *testing.T) {
	st, cleanup := testutil.TestStore(t)
	defer cleanup()
	logger := slog.New(NewEventLogHandler(discardHandler{}, st))

	cases := []struct {
		message  string
		category string
	}{
		{"login attempt blocked", model.EventCategoryAuth},
		{"verifying token failed", model.EventCategoryAuth},
		{"listing content failed, serving samples", model.EventCategoryContent},
		{"thumbnail generation failed", model.EventCategoryMedia},
		{"unexpected shutdown", model.EventCategorySystem},
	}

	for _, tc := range cases {
		logger.Error(tc.message)
		events := lastEvents(t, st, 1)
		require.Len(t, events, 1)
		require.Equal(t, tc.category, events[0].Category, "message %q", tc.message)
	}
}

func TestEventLogHandlerExplicitCategory(t *testing.T) {
	st, cleanup := testutil.TestStore(t)
	defer cleanup()
	logger := slog.New(NewEventLogHandler(discardHandler{}, st))

	logger.Error("something happened", "category", model.EventCategoryMedia)

	events := lastEvents(t, st, 1)
	require.Len(t, events, 1)
	require.Equal(t, model.EventCategoryMedia, events[0].Category)
}

func TestEventLogHandlerMetadata(t *testing.T) {
	st, cleanup := testutil.TestStore(t)
	defer cleanup()
	logger := slog.New(NewEventLogHandler(discardHandler{}, st))

	logger.Error("request failed",
		"status_code", 500,
		"path", `C:\Users\test with "quotes"`,
		"category", model.EventCategorySystem,
	)

	events := lastEvents(t, st, 1)
	require.Len(t, events, 1)

	var meta map[string]string
	require.NoError(t, json.Unmarshal([]byte(events[0].Metadata), &meta))
	require.Equal(t, "500", meta["status_code"])
	require.Equal(t, `C:\Users\test with "quotes"`, meta["path"])
	require.NotContains(t, meta, "category")
}

func TestEventLogHandlerWithAttrsAndGroup(t *testing.T) {
	st, cleanup := testutil.TestStore(t)
	defer cleanup()

	base := NewEventLogHandler(discardHandler{}, st)
	logger := slog.New(base.WithAttrs([]slog.Attr{slog.String("service", "api")}).WithGroup("request"))
	logger.Error("service error", "id", "abc123")

	events := lastEvents(t, st, 1)
	require.Len(t, events, 1)
	require.Equal(t, "service error", events[0].Message)
}

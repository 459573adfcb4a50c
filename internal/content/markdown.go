// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"bytes"
	"log/slog"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	markdown  = goldmark.New()
	sanitizer = bluemonday.UGCPolicy()
)

// renderMarkdown converts authored markdown to sanitized HTML.
// Authored content is admin-provided but sanitized anyway; a compromised
// admin account must not turn into stored XSS on the public site.
func renderMarkdown(src string) string {
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		slog.Warn("rendering markdown failed", "error", err)
		return ""
	}
	return sanitizer.Sanitize(buf.String())
}

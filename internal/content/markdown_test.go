// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown(t *testing.T) {
	html := renderMarkdown("# Title\n\nSome **bold** text.")
	require.Contains(t, html, "<h1>")
	require.Contains(t, html, "<strong>bold</strong>")
}

func TestRenderMarkdownEmpty(t *testing.T) {
	require.Empty(t, renderMarkdown(""))
}

func TestRenderMarkdownStripsScripts(t *testing.T) {
	html := renderMarkdown("hello <script>alert(1)</script> world")
	require.NotContains(t, html, "<script")
	require.Contains(t, html, "hello")
}

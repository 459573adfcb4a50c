// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/veridianlabs/veridian-go/internal/model"
	"github.com/veridianlabs/veridian-go/internal/store"
)

// Placeholder text for required fields the author left empty.
const (
	noDescription = "No description available"
	noExcerpt     = "No excerpt available"
	noBio         = "No bio available"
	noSummary     = "No summary available"
)

// defaultBlogTags is applied when a blog post has no tags of its own.
var defaultBlogTags = []string{"Technology", "Innovation"}

// fields is a decoded document data payload. Its accessors are total:
// missing or mistyped values yield the supplied default, so a malformed
// document still produces a fully render-safe view model.
type fields map[string]any

func parseFields(data []byte) fields {
	var m map[string]any
	if len(data) == 0 || json.Unmarshal(data, &m) != nil {
		return fields{}
	}
	return m
}

// text returns the string under key, or def when absent or not a string.
// Numbers are stringified: authored documents are not consistent about
// quoting numeric values.
func (f fields) text(key, def string) string {
	if s := stringify(f[key]); s != "" {
		return s
	}
	return def
}

// firstText returns the first non-empty value among keys, or def.
func (f fields) firstText(keys []string, def string) string {
	for _, key := range keys {
		if s := stringify(f[key]); s != "" {
			return s
		}
	}
	return def
}

// list coerces the value under key to a string list. Non-list values and
// absent fields yield def (never nil), mirroring the Array.isArray guard
// the page templates rely on.
func (f fields) list(key string, def []string) []string {
	raw, ok := f[key].([]any)
	if !ok {
		if def == nil {
			return []string{}
		}
		return clone(def)
	}

	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s := stringify(item); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		if def == nil {
			return []string{}
		}
		return clone(def)
	}
	return out
}

// integer returns the number under key, or def.
func (f fields) integer(key string, def int) int {
	switch v := f[key].(type) {
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// size returns the int64 under key, or 0.
func (f fields) size(key string) int64 {
	if v, ok := f[key].(float64); ok {
		return int64(v)
	}
	return 0
}

// when parses a date-like string under key, falling back to def.
func (f fields) when(key string, def time.Time) time.Time {
	s, ok := f[key].(string)
	if !ok {
		return def
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return def
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		// JSON numbers arrive as float64; render integers without a decimal
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

// timestamp formats a stored time, substituting "now" for zero values so
// required dates always render.
func timestamp(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(time.RFC3339)
}

// placeholderImage builds an image URL templated with the entity's title.
func placeholderImage(title string) string {
	return fmt.Sprintf("https://placehold.co/800x450/0f172a/e2e8f0?text=%s", url.QueryEscape(title))
}

func titleOr(title, def string) string {
	if strings.TrimSpace(title) != "" {
		return title
	}
	return def
}

func statusOr(status, def string) string {
	if status != "" {
		return status
	}
	return def
}

// truncate shortens s to at most n runes for derived summary fields.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n])) + "…"
}

func decodeJob(d store.Document) model.Job {
	f := parseFields(d.Data)
	title := titleOr(d.Title, "Untitled Role")
	return model.Job{
		ID:           d.ID,
		Title:        title,
		Slug:         d.Slug,
		Department:   f.text("department", "General"),
		Location:     f.text("location", "Remote"),
		Type:         f.text("type", "Full-time"),
		Description:  f.text("description", noDescription),
		Requirements: f.list("requirements", nil),
		Technologies: f.list("technologies", nil),
		Salary:       f.text("salary", "Competitive"),
		Status:       statusOr(d.Status, model.JobStatusOpen),
		CreatedAt:    timestamp(d.CreatedAt),
		UpdatedAt:    timestamp(d.UpdatedAt),
	}
}

func decodeBlogPost(d store.Document) model.BlogPost {
	f := parseFields(d.Data)
	title := titleOr(d.Title, "Untitled Post")
	content := f.text("content", "")
	return model.BlogPost{
		ID:          d.ID,
		Title:       title,
		Slug:        d.Slug,
		Excerpt:     f.text("excerpt", noExcerpt),
		Content:     content,
		HTML:        renderMarkdown(content),
		Author:      f.text("author", "Veridian Labs Team"),
		Category:    f.text("category", "News"),
		Tags:        f.list("tags", defaultBlogTags),
		Image:       f.text("image", placeholderImage(title)),
		Status:      statusOr(d.Status, model.PostStatusPublished),
		PublishedAt: timestamp(f.when("publishedAt", d.CreatedAt)),
		CreatedAt:   timestamp(d.CreatedAt),
	}
}

func decodeService(d store.Document) model.Service {
	f := parseFields(d.Data)
	return model.Service{
		ID:          d.ID,
		Title:       titleOr(d.Title, "Untitled Service"),
		Slug:        d.Slug,
		Description: f.text("description", noDescription),
		Icon:        f.text("icon", ""),
		Features:    f.list("features", nil),
		Status:      statusOr(d.Status, model.EntityStatusActive),
		Order:       f.integer("order", 0),
	}
}

// decodeVenture bridges the inconsistent field names authored documents
// have used for the same concept over the years; each derived field reads
// its source names in fixed priority order.
func decodeVenture(d store.Document) model.Venture {
	f := parseFields(d.Data)
	name := titleOr(d.Title, "Unnamed Venture")
	description := f.text("description", noDescription)
	short := f.firstText([]string{"shortDescription", "tagline", "summary"}, "")
	if short == "" {
		short = truncate(description, 140)
	}
	return model.Venture{
		ID:               d.ID,
		Name:             name,
		Slug:             d.Slug,
		Description:      description,
		ShortDescription: short,
		Industry:         f.text("industry", "Technology"),
		Stage:            f.text("stage", "Growth"),
		Website:          f.text("website", ""),
		Logo:             f.text("logo", placeholderImage(name)),
		Growth:           f.firstText([]string{"growth", "growthRate", "yoyGrowth"}, "N/A"),
		TeamSize:         f.firstText([]string{"teamSize", "team_size", "employees"}, "N/A"),
		Technologies:     f.list("technologies", nil),
		FoundedYear:      f.firstText([]string{"foundedYear", "founded"}, ""),
		Status:           statusOr(d.Status, model.EntityStatusActive),
	}
}

func decodeCaseStudy(d store.Document) model.CaseStudy {
	f := parseFields(d.Data)
	title := titleOr(d.Title, "Untitled Case Study")
	return model.CaseStudy{
		ID:           d.ID,
		Title:        title,
		Slug:         d.Slug,
		Client:       f.text("client", "Confidential"),
		Industry:     f.text("industry", "Technology"),
		Challenge:    f.text("challenge", noDescription),
		Solution:     f.text("solution", noDescription),
		Results:      f.list("results", nil),
		Technologies: f.list("technologies", nil),
		Gallery:      f.list("gallery", nil),
		Image:        f.text("image", placeholderImage(title)),
		// completionDate is optional; absent stays absent
		CompletionDate: f.text("completionDate", ""),
		Status:         statusOr(d.Status, model.PostStatusPublished),
	}
}

func decodeTeamMember(d store.Document) model.TeamMember {
	f := parseFields(d.Data)
	name := titleOr(d.Title, "Team Member")
	return model.TeamMember{
		ID:       d.ID,
		Name:     name,
		Slug:     d.Slug,
		Position: f.text("position", "Team Member"),
		Bio:      f.text("bio", noBio),
		Image:    f.text("image", placeholderImage(name)),
		Skills:   f.list("skills", nil),
		LinkedIn: f.text("linkedin", ""),
		Twitter:  f.text("twitter", ""),
		Status:   statusOr(d.Status, model.EntityStatusActive),
		Order:    f.integer("order", 0),
	}
}

func decodePressRelease(d store.Document) model.PressRelease {
	f := parseFields(d.Data)
	return model.PressRelease{
		ID:          d.ID,
		Title:       titleOr(d.Title, "Untitled Release"),
		Slug:        d.Slug,
		Summary:     f.text("summary", noSummary),
		Content:     f.text("content", ""),
		Source:      f.text("source", "Veridian Labs"),
		URL:         f.text("url", ""),
		PublishedAt: timestamp(f.when("publishedAt", d.CreatedAt)),
		Status:      statusOr(d.Status, model.PostStatusPublished),
	}
}

func decodeMediaAsset(d store.Document) model.MediaAsset {
	f := parseFields(d.Data)
	title := titleOr(d.Title, "Untitled Asset")
	assetURL := f.text("url", placeholderImage(title))
	return model.MediaAsset{
		ID:           d.ID,
		Title:        title,
		FileName:     f.text("fileName", ""),
		URL:          assetURL,
		ThumbnailURL: f.text("thumbnailUrl", assetURL),
		MimeType:     f.text("mimeType", "application/octet-stream"),
		Size:         f.size("size"),
		Width:        f.integer("width", 0),
		Height:       f.integer("height", 0),
		Alt:          f.text("alt", title),
		UploadedAt:   timestamp(d.CreatedAt),
	}
}

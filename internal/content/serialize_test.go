// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/veridianlabs/veridian-go/internal/model"
	"github.com/veridianlabs/veridian-go/internal/store"
)

func doc(collection, slug, status, title, data string) store.Document {
	return store.Document{
		ID:         "00000000-0000-0000-0000-000000000001",
		Collection: collection,
		Slug:       slug,
		Status:     status,
		Title:      title,
		Data:       []byte(data),
		CreatedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:  time.Date(2026, 1, 3, 3, 4, 5, 0, time.UTC),
	}
}

func TestDecodeJobDefaults(t *testing.T) {
	j := decodeJob(doc(CollectionJobs, "role", "", "", ""))

	require.Equal(t, "Untitled Role", j.Title)
	require.Equal(t, "General", j.Department)
	require.Equal(t, "Remote", j.Location)
	require.Equal(t, "Full-time", j.Type)
	require.Equal(t, noDescription, j.Description)
	require.NotNil(t, j.Requirements)
	require.Empty(t, j.Requirements)
	require.Equal(t, "Competitive", j.Salary)
	require.Equal(t, model.JobStatusOpen, j.Status)
	require.Equal(t, "2026-01-02T03:04:05Z", j.CreatedAt)
}

func TestDecodeJobMalformedData(t *testing.T) {
	j := decodeJob(doc(CollectionJobs, "role", model.JobStatusOpen, "Engineer", `{"requirements": "not a list", "salary": 90000`))

	// Broken JSON decodes to an all-defaults job, never a panic.
	require.Equal(t, "Engineer", j.Title)
	require.Empty(t, j.Requirements)
	require.Equal(t, "Competitive", j.Salary)
}

func TestDecodeBlogPostDefaults(t *testing.T) {
	p := decodeBlogPost(doc(CollectionBlog, "post", "", "", `{"content": "# Hi\n\ntext"}`))

	require.Equal(t, "Untitled Post", p.Title)
	require.Equal(t, noExcerpt, p.Excerpt)
	require.Equal(t, "Veridian Labs Team", p.Author)
	require.Equal(t, []string{"Technology", "Innovation"}, p.Tags)
	require.Contains(t, p.Image, "placehold.co")
	require.Contains(t, p.Image, "Untitled+Post")
	require.Equal(t, model.PostStatusPublished, p.Status)
	// publishedAt falls back to the document creation time
	require.Equal(t, "2026-01-02T03:04:05Z", p.PublishedAt)
	require.Contains(t, p.HTML, "<h1>")
}

func TestDecodeBlogPostExplicitPublishedAt(t *testing.T) {
	p := decodeBlogPost(doc(CollectionBlog, "post", model.PostStatusPublished, "Post",
		`{"publishedAt": "2026-02-10"}`))
	require.Equal(t, "2026-02-10T00:00:00Z", p.PublishedAt)
}

func TestDecodeVentureFieldPriorities(t *testing.T) {
	v := decodeVenture(doc(CollectionVentures, "acme", model.EntityStatusActive, "Acme",
		`{"tagline": "Tools for builders", "growthRate": "+40% YoY", "employees": 12, "founded": 2021}`))

	require.Equal(t, "Tools for builders", v.ShortDescription)
	require.Equal(t, "+40% YoY", v.Growth)
	require.Equal(t, "12", v.TeamSize)
	require.Equal(t, "2021", v.FoundedYear)
}

func TestDecodeVentureDerivedShortDescription(t *testing.T) {
	long := `{"description": "Acme builds industrial tooling marketplaces for small manufacturers across Europe, handling sourcing, payment, and logistics so that plant owners can focus on production instead of procurement overhead."}`
	v := decodeVenture(doc(CollectionVentures, "acme", model.EntityStatusActive, "Acme", long))

	require.LessOrEqual(t, len([]rune(v.ShortDescription)), 141)
	require.Contains(t, v.ShortDescription, "Acme builds")
}

func TestDecodeVentureDefaults(t *testing.T) {
	v := decodeVenture(doc(CollectionVentures, "acme", "", "", ""))

	require.Equal(t, "Unnamed Venture", v.Name)
	require.Equal(t, noDescription, v.Description)
	require.Equal(t, "N/A", v.Growth)
	require.Equal(t, "N/A", v.TeamSize)
	require.Equal(t, model.EntityStatusActive, v.Status)
}

func TestDecodeCaseStudyOptionalCompletionDate(t *testing.T) {
	c := decodeCaseStudy(doc(CollectionCaseStudies, "cs", model.PostStatusPublished, "Engagement", ""))
	require.Empty(t, c.CompletionDate)
	require.NotNil(t, c.Gallery)

	withDate := decodeCaseStudy(doc(CollectionCaseStudies, "cs", model.PostStatusPublished, "Engagement",
		`{"completionDate": "2025-09-30"}`))
	require.Equal(t, "2025-09-30", withDate.CompletionDate)
}

func TestDecodeMediaAssetThumbnailFallback(t *testing.T) {
	m := decodeMediaAsset(doc(CollectionMedia, "shot", "", "Shot",
		`{"url": "https://cdn.example.com/shot.jpg", "size": 1024, "width": 800, "height": 600}`))

	require.Equal(t, "https://cdn.example.com/shot.jpg", m.URL)
	require.Equal(t, m.URL, m.ThumbnailURL)
	require.Equal(t, int64(1024), m.Size)
	require.Equal(t, 800, m.Width)
	require.Equal(t, "Shot", m.Alt)
}

func TestFieldsListGuardsNonArrays(t *testing.T) {
	f := fields{"skills": "Go, SQL", "tags": []any{"a", float64(2), true}}

	require.Equal(t, []string{}, f.list("skills", nil))
	require.Equal(t, []string{"a", "2", "true"}, f.list("tags", nil))
	require.Equal(t, []string{"x"}, f.list("missing", []string{"x"}))
}

func TestTimestampZeroMeansNow(t *testing.T) {
	before := time.Now().Add(-time.Minute)
	got, err := time.Parse(time.RFC3339, timestamp(time.Time{}))
	require.NoError(t, err)
	require.True(t, got.After(before))
}

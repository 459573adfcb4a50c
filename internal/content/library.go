// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content implements the content access layer: per-entity fetchers
// that query the document store, decode documents into render-safe view
// models, and substitute bundled sample data when no store is configured,
// the store fails, or a live query comes back empty.
//
// Every exported fetcher is total: it logs failures internally and always
// returns a usable value, never an error.
package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/veridianlabs/veridian-go/internal/cache"
	"github.com/veridianlabs/veridian-go/internal/model"
	"github.com/veridianlabs/veridian-go/internal/store"
)

// Collection names in the document store. "blog" and "blog_posts" both
// exist because of a historical migration between collection names; the
// blog fetchers bridge the two.
const (
	CollectionJobs        = "jobs"
	CollectionBlog        = "blog"
	CollectionBlogPosts   = "blog_posts"
	CollectionServices    = "services"
	CollectionVentures    = "ventures"
	CollectionCaseStudies = "case_studies"
	CollectionTeamMembers = "team_members"
	CollectionPress       = "press_releases"
	CollectionMedia       = "media_assets"
)

// Collections lists every valid collection name, for admin CRUD validation.
func Collections() []string {
	return []string{
		CollectionJobs,
		CollectionBlog,
		CollectionBlogPosts,
		CollectionServices,
		CollectionVentures,
		CollectionCaseStudies,
		CollectionTeamMembers,
		CollectionPress,
		CollectionMedia,
	}
}

// IsCollection reports whether name is a known collection.
func IsCollection(name string) bool {
	for _, c := range Collections() {
		if c == name {
			return true
		}
	}
	return false
}

// Library is the content access layer. The store is injected explicitly:
// a nil store means "not configured" and every fetcher serves its sample
// dataset without attempting I/O.
type Library struct {
	store     *store.Store
	cache     cache.Cache
	cacheTTL  time.Duration
	keepEmpty map[string]bool
}

// Option configures a Library.
type Option func(*Library)

// WithCache enables caching of decoded list results.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(l *Library) {
		l.cache = c
		l.cacheTTL = ttl
	}
}

// WithEmptyResults marks collections where an empty live result is a
// legitimate state to render (e.g. zero open jobs on a careers page)
// rather than a reason to substitute samples.
func WithEmptyResults(collections ...string) Option {
	return func(l *Library) {
		for _, c := range collections {
			l.keepEmpty[c] = true
		}
	}
}

// NewLibrary creates a Library over the given store. st may be nil when
// no database is configured.
func NewLibrary(st *store.Store, opts ...Option) *Library {
	l := &Library{
		store:     st,
		keepEmpty: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Jobs returns open job listings.
func (l *Library) Jobs(ctx context.Context) []model.Job {
	return fetchList(ctx, l, CollectionJobs, model.JobStatusOpen, sampleJobs, decodeJob)
}

// JobBySlug returns a job by slug or identifier, or nil if not found.
func (l *Library) JobBySlug(ctx context.Context, key string) *model.Job {
	return fetchOne(ctx, l, []string{CollectionJobs}, key, sampleJobs,
		func(j model.Job) string { return j.Slug }, decodeJob)
}

// BlogPosts returns blog articles, bridging the legacy "blog" collection
// and its "blog_posts" successor: published posts from either collection
// first, any-status posts second, samples last.
func (l *Library) BlogPosts(ctx context.Context) []model.BlogPost {
	if l.store == nil {
		return clone(sampleBlogPosts)
	}

	const key = "content:list:blog"
	if posts, ok := cacheGet[[]model.BlogPost](ctx, l, key); ok {
		return posts
	}

	passes := []struct {
		collection string
		status     string
	}{
		{CollectionBlog, model.PostStatusPublished},
		{CollectionBlogPosts, model.PostStatusPublished},
		{CollectionBlog, ""},
		{CollectionBlogPosts, ""},
	}

	for _, pass := range passes {
		docs, err := l.store.ListDocuments(ctx, pass.collection, pass.status)
		if err != nil {
			slog.Error("listing blog posts failed, serving samples",
				"collection", pass.collection, "error", err)
			return clone(sampleBlogPosts)
		}
		if len(docs) == 0 {
			continue
		}

		posts := make([]model.BlogPost, 0, len(docs))
		for _, d := range docs {
			posts = append(posts, decodeBlogPost(d))
		}
		cacheSet(ctx, l, key, posts)
		return posts
	}

	if l.keepEmpty[CollectionBlog] || l.keepEmpty[CollectionBlogPosts] {
		return []model.BlogPost{}
	}
	return clone(sampleBlogPosts)
}

// BlogPostBySlug returns a blog post by slug or identifier from either
// blog collection, or nil if not found.
func (l *Library) BlogPostBySlug(ctx context.Context, key string) *model.BlogPost {
	return fetchOne(ctx, l, []string{CollectionBlog, CollectionBlogPosts}, key, sampleBlogPosts,
		func(p model.BlogPost) string { return p.Slug }, decodeBlogPost)
}

// Services returns active service offerings ordered by their display order.
func (l *Library) Services(ctx context.Context) []model.Service {
	services := fetchList(ctx, l, CollectionServices, model.EntityStatusActive, sampleServices, decodeService)
	sort.SliceStable(services, func(i, j int) bool { return services[i].Order < services[j].Order })
	return services
}

// ServiceBySlug returns a service by slug or identifier, or nil if not found.
func (l *Library) ServiceBySlug(ctx context.Context, key string) *model.Service {
	return fetchOne(ctx, l, []string{CollectionServices}, key, sampleServices,
		func(s model.Service) string { return s.Slug }, decodeService)
}

// Ventures returns active portfolio companies.
func (l *Library) Ventures(ctx context.Context) []model.Venture {
	return fetchList(ctx, l, CollectionVentures, model.EntityStatusActive, sampleVentures, decodeVenture)
}

// VentureBySlug returns a venture by slug or identifier, or nil if not found.
func (l *Library) VentureBySlug(ctx context.Context, key string) *model.Venture {
	return fetchOne(ctx, l, []string{CollectionVentures}, key, sampleVentures,
		func(v model.Venture) string { return v.Slug }, decodeVenture)
}

// CaseStudies returns published case studies.
func (l *Library) CaseStudies(ctx context.Context) []model.CaseStudy {
	return fetchList(ctx, l, CollectionCaseStudies, model.PostStatusPublished, sampleCaseStudies, decodeCaseStudy)
}

// CaseStudyBySlug returns a case study by slug or identifier, or nil if not found.
func (l *Library) CaseStudyBySlug(ctx context.Context, key string) *model.CaseStudy {
	return fetchOne(ctx, l, []string{CollectionCaseStudies}, key, sampleCaseStudies,
		func(c model.CaseStudy) string { return c.Slug }, decodeCaseStudy)
}

// TeamMembers returns active team profiles ordered by their display order.
func (l *Library) TeamMembers(ctx context.Context) []model.TeamMember {
	members := fetchList(ctx, l, CollectionTeamMembers, model.EntityStatusActive, sampleTeamMembers, decodeTeamMember)
	sort.SliceStable(members, func(i, j int) bool { return members[i].Order < members[j].Order })
	return members
}

// PressReleases returns published press releases.
func (l *Library) PressReleases(ctx context.Context) []model.PressRelease {
	return fetchList(ctx, l, CollectionPress, model.PostStatusPublished, samplePressReleases, decodePressRelease)
}

// MediaAssets returns uploaded media records.
func (l *Library) MediaAssets(ctx context.Context) []model.MediaAsset {
	return fetchList(ctx, l, CollectionMedia, "", sampleMediaAssets, decodeMediaAsset)
}

// Invalidate drops cached results for a collection after an admin write.
func (l *Library) Invalidate(ctx context.Context, collection string) {
	if l.cache == nil {
		return
	}

	keys := []string{listCacheKey(collection)}
	if collection == CollectionBlog || collection == CollectionBlogPosts {
		keys = []string{"content:list:blog"}
	}
	for _, key := range keys {
		if err := l.cache.Delete(ctx, key); err != nil {
			slog.Warn("invalidating content cache failed", "key", key, "error", err)
		}
	}
}

// fetchList implements the shared list algorithm: samples when
// unconfigured, samples on store error, samples on empty result (unless
// the collection opted into empty results), decoded documents otherwise.
func fetchList[T any](ctx context.Context, l *Library, collection, status string, samples []T, decode func(store.Document) T) []T {
	if l.store == nil {
		return clone(samples)
	}

	key := listCacheKey(collection)
	if items, ok := cacheGet[[]T](ctx, l, key); ok {
		return items
	}

	docs, err := l.store.ListDocuments(ctx, collection, status)
	if err != nil {
		slog.Error("listing content failed, serving samples", "collection", collection, "error", err)
		return clone(samples)
	}
	if len(docs) == 0 {
		if l.keepEmpty[collection] {
			return []T{}
		}
		return clone(samples)
	}

	items := make([]T, 0, len(docs))
	for _, d := range docs {
		items = append(items, decode(d))
	}
	cacheSet(ctx, l, key, items)
	return items
}

// fetchOne implements the shared single-item algorithm. Sample data is
// only consulted when no store is configured; a genuine miss against a
// live store returns nil, and so does a store error. An admin looking at
// a real, now-broken document must not silently see sample content.
func fetchOne[T any](ctx context.Context, l *Library, collections []string, key string, samples []T, slugOf func(T) string, decode func(store.Document) T) *T {
	if l.store == nil {
		for _, s := range samples {
			if slugOf(s) == key {
				v := s
				return &v
			}
		}
		return nil
	}

	for _, collection := range collections {
		doc, err := l.store.GetDocumentBySlug(ctx, collection, key)
		if errors.Is(err, sql.ErrNoRows) {
			// Internal links are built from slugs in some places and raw
			// identifiers in others; accept either.
			if id, parseErr := uuid.Parse(key); parseErr == nil {
				doc, err = l.store.GetDocumentByID(ctx, collection, id.String())
			}
		}
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			slog.Error("fetching content document failed", "collection", collection, "key", key, "error", err)
			return nil
		}

		v := decode(doc)
		return &v
	}
	return nil
}

func listCacheKey(collection string) string {
	return "content:list:" + collection
}

func cacheGet[T any](ctx context.Context, l *Library, key string) (T, bool) {
	var zero T
	if l.cache == nil {
		return zero, false
	}

	data, err := l.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			slog.Warn("content cache read failed", "key", key, "error", err)
		}
		return zero, false
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return zero, false
	}
	return v, true
}

func cacheSet[T any](ctx context.Context, l *Library, key string, v T) {
	if l.cache == nil {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := l.cache.Set(ctx, key, data, l.cacheTTL); err != nil {
		slog.Warn("content cache write failed", "key", key, "error", err)
	}
}

func clone[T any](items []T) []T {
	return append([]T(nil), items...)
}

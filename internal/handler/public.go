// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/veridianlabs/veridian-go/internal/content"
)

// PublicHandler serves the public, read-only content endpoints. All
// responses are render-safe: the underlying library substitutes sample
// data rather than failing.
type PublicHandler struct {
	library *content.Library
}

func NewPublicHandler(library *content.Library) *PublicHandler {
	return &PublicHandler{library: library}
}

func (h *PublicHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs := h.library.Jobs(r.Context())
	writeJSONSuccess(w, map[string]any{"data": jobs, "count": len(jobs)})
}

func (h *PublicHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	writeItem(w, h.library.JobBySlug(r.Context(), chi.URLParam(r, "slug")))
}

func (h *PublicHandler) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	posts := h.library.BlogPosts(r.Context())
	writeJSONSuccess(w, map[string]any{"data": posts, "count": len(posts)})
}

func (h *PublicHandler) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	writeItem(w, h.library.BlogPostBySlug(r.Context(), chi.URLParam(r, "slug")))
}

func (h *PublicHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services := h.library.Services(r.Context())
	writeJSONSuccess(w, map[string]any{"data": services, "count": len(services)})
}

func (h *PublicHandler) GetService(w http.ResponseWriter, r *http.Request) {
	writeItem(w, h.library.ServiceBySlug(r.Context(), chi.URLParam(r, "slug")))
}

func (h *PublicHandler) ListVentures(w http.ResponseWriter, r *http.Request) {
	ventures := h.library.Ventures(r.Context())
	writeJSONSuccess(w, map[string]any{"data": ventures, "count": len(ventures)})
}

func (h *PublicHandler) GetVenture(w http.ResponseWriter, r *http.Request) {
	writeItem(w, h.library.VentureBySlug(r.Context(), chi.URLParam(r, "slug")))
}

func (h *PublicHandler) ListCaseStudies(w http.ResponseWriter, r *http.Request) {
	studies := h.library.CaseStudies(r.Context())
	writeJSONSuccess(w, map[string]any{"data": studies, "count": len(studies)})
}

func (h *PublicHandler) GetCaseStudy(w http.ResponseWriter, r *http.Request) {
	writeItem(w, h.library.CaseStudyBySlug(r.Context(), chi.URLParam(r, "slug")))
}

func (h *PublicHandler) ListTeamMembers(w http.ResponseWriter, r *http.Request) {
	members := h.library.TeamMembers(r.Context())
	writeJSONSuccess(w, map[string]any{"data": members, "count": len(members)})
}

func (h *PublicHandler) ListPressReleases(w http.ResponseWriter, r *http.Request) {
	releases := h.library.PressReleases(r.Context())
	writeJSONSuccess(w, map[string]any{"data": releases, "count": len(releases)})
}

func (h *PublicHandler) ListMediaAssets(w http.ResponseWriter, r *http.Request) {
	assets := h.library.MediaAssets(r.Context())
	writeJSONSuccess(w, map[string]any{"data": assets, "count": len(assets)})
}

// writeItem writes a single fetched entity or a 404 when the pointer is nil.
func writeItem[T any](w http.ResponseWriter, item *T) {
	if item == nil {
		writeJSONError(w, http.StatusNotFound, "Not found")
		return
	}
	writeJSONSuccess(w, map[string]any{"data": item})
}

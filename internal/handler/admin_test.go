// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/veridianlabs/veridian-go/internal/content"
	"github.com/veridianlabs/veridian-go/internal/imaging"
	"github.com/veridianlabs/veridian-go/internal/store"
	"github.com/veridianlabs/veridian-go/internal/testutil"
)

func adminRouter(h *AdminHandler) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/admin", func(r chi.Router) {
		r.Get("/content/{collection}", h.ListDocuments)
		r.Post("/content/{collection}", h.CreateDocument)
		r.Get("/content/{collection}/{id}", h.GetDocument)
		r.Put("/content/{collection}/{id}", h.UpdateDocument)
		r.Delete("/content/{collection}/{id}", h.DeleteDocument)
		r.Get("/events", h.ListEvents)
		r.Post("/media", h.UploadMedia)
	})
	return r
}

func newAdminFixture(t *testing.T) (http.Handler, *store.Store) {
	t.Helper()

	st, cleanup := testutil.TestStore(t)
	t.Cleanup(cleanup)

	library := content.NewLibrary(st)
	processor := imaging.NewProcessor(t.TempDir())
	return adminRouter(NewAdminHandler(st, library, processor)), st
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var parsed map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	}
	return rec, parsed
}

func TestAdminDocumentLifecycle(t *testing.T) {
	router, _ := newAdminFixture(t)

	// Create with a generated slug
	rec, body := doJSON(t, router, http.MethodPost, "/api/admin/content/ventures",
		`{"title": "Fieldnote GmbH", "status": "active", "data": {"industry": "Industrial SaaS"}}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	doc := body["data"].(map[string]any)
	require.Equal(t, "fieldnote-gmbh", doc["slug"])
	id := doc["id"].(string)

	// Fetch it back
	rec, body = doJSON(t, router, http.MethodGet, "/api/admin/content/ventures/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Fieldnote GmbH", body["data"].(map[string]any)["title"])

	// Update status and data
	rec, body = doJSON(t, router, http.MethodPut, "/api/admin/content/ventures/"+id,
		`{"status": "active", "data": {"industry": "Manufacturing", "stage": "Series A"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := body["data"].(map[string]any)
	require.Equal(t, "Series A", updated["data"].(map[string]any)["stage"])

	// Appears in the listing
	rec, body = doJSON(t, router, http.MethodGet, "/api/admin/content/ventures", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, float64(1), body["count"])

	// Delete, then 404
	rec, _ = doJSON(t, router, http.MethodDelete, "/api/admin/content/ventures/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = doJSON(t, router, http.MethodGet, "/api/admin/content/ventures/"+id, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminCreateValidation(t *testing.T) {
	router, _ := newAdminFixture(t)

	rec, _ := doJSON(t, router, http.MethodPost, "/api/admin/content/ventures", `{"title": ""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(t, router, http.MethodPost, "/api/admin/content/ventures",
		`{"title": "X", "slug": "Not A Slug!"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(t, router, http.MethodPost, "/api/admin/content/nonsense", `{"title": "X"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminDuplicateSlugConflicts(t *testing.T) {
	router, _ := newAdminFixture(t)

	rec, _ := doJSON(t, router, http.MethodPost, "/api/admin/content/jobs",
		`{"title": "Backend Engineer"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = doJSON(t, router, http.MethodPost, "/api/admin/content/jobs",
		`{"title": "Backend Engineer"}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	// Same slug in another collection is fine
	rec, _ = doJSON(t, router, http.MethodPost, "/api/admin/content/team_members",
		`{"title": "Backend Engineer"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestAdminStatusFilter(t *testing.T) {
	router, _ := newAdminFixture(t)

	_, _ = doJSON(t, router, http.MethodPost, "/api/admin/content/blog",
		`{"title": "Published Post", "status": "published"}`)
	_, _ = doJSON(t, router, http.MethodPost, "/api/admin/content/blog",
		`{"title": "Draft Post"}`)

	rec, body := doJSON(t, router, http.MethodGet, "/api/admin/content/blog?status=published", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, float64(1), body["count"])

	rec, body = doJSON(t, router, http.MethodGet, "/api/admin/content/blog", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, float64(2), body["count"])
}

func TestAdminMutationsAreAudited(t *testing.T) {
	router, _ := newAdminFixture(t)

	_, body := doJSON(t, router, http.MethodPost, "/api/admin/content/services",
		`{"title": "Venture Building"}`)
	id := body["data"].(map[string]any)["id"].(string)
	_, _ = doJSON(t, router, http.MethodDelete, "/api/admin/content/services/"+id, "")

	rec, body := doJSON(t, router, http.MethodGet, "/api/admin/events", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, float64(2), body["count"])

	raw, err := json.Marshal(body["data"])
	require.NoError(t, err)
	require.Contains(t, string(raw), "content document created")
	require.Contains(t, string(raw), "content document deleted")
}

func uploadRequest(t *testing.T, path, fileName string, fileData []byte, fields map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = fw.Write(fileData)
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func smallPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for x := 0; x < 64; x++ {
		for y := 0; y < 48; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestAdminMediaUpload(t *testing.T) {
	router, st := newAdminFixture(t)

	req := uploadRequest(t, "/api/admin/media", "team-photo.png", smallPNG(t),
		map[string]string{"title": "Team Photo", "alt": "The team at the Berlin office"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	doc := body["data"].(map[string]any)
	require.Equal(t, "Team Photo", doc["title"])

	data := doc["data"].(map[string]any)
	require.Equal(t, "image/png", data["mimeType"])
	require.Equal(t, float64(64), data["width"])
	require.Equal(t, float64(48), data["height"])
	require.Equal(t, "The team at the Berlin office", data["alt"])
	require.True(t, strings.HasPrefix(data["url"].(string), "/uploads/originals/"))
	require.True(t, strings.HasPrefix(data["thumbnailUrl"].(string), "/uploads/thumbnails/"))

	// The record shows up via the public media listing
	library := content.NewLibrary(st)
	assets := library.MediaAssets(req.Context())
	require.Len(t, assets, 1)
	require.Equal(t, "Team Photo", assets[0].Title)
}

func TestAdminMediaUploadRejectsNonImage(t *testing.T) {
	router, _ := newAdminFixture(t)

	req := uploadRequest(t, "/api/admin/media", "notes.txt", []byte("just some text"), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestAdminMediaDeleteRemovesFiles(t *testing.T) {
	st, cleanup := testutil.TestStore(t)
	t.Cleanup(cleanup)

	dir := t.TempDir()
	processor := imaging.NewProcessor(dir)
	router := adminRouter(NewAdminHandler(st, content.NewLibrary(st), processor))

	req := uploadRequest(t, "/api/admin/media", "shot.png", smallPNG(t), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	doc := body["data"].(map[string]any)
	id := doc["id"].(string)
	fileName := doc["data"].(map[string]any)["fileName"].(string)

	originalPath := fmt.Sprintf("%s/originals/%s", dir, fileName)
	require.FileExists(t, originalPath)

	rec, _ = doJSON(t, router, http.MethodDelete, "/api/admin/content/media_assets/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoFileExists(t, originalPath)
}

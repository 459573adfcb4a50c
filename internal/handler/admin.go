// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/veridianlabs/veridian-go/internal/content"
	"github.com/veridianlabs/veridian-go/internal/imaging"
	"github.com/veridianlabs/veridian-go/internal/model"
	"github.com/veridianlabs/veridian-go/internal/store"
	"github.com/veridianlabs/veridian-go/internal/util"
)

// maxUploadSize caps media uploads.
const maxUploadSize = 32 << 20

// AdminHandler implements the admin content management API: document CRUD
// across all collections, the event log, and media uploads.
type AdminHandler struct {
	store     *store.Store
	library   *content.Library
	processor *imaging.Processor
}

func NewAdminHandler(st *store.Store, library *content.Library, processor *imaging.Processor) *AdminHandler {
	return &AdminHandler{store: st, library: library, processor: processor}
}

// documentView is the admin-facing document representation. Data is
// emitted as the raw JSON object instead of base64 bytes.
type documentView struct {
	ID         string          `json:"id"`
	Collection string          `json:"collection"`
	Slug       string          `json:"slug"`
	Status     string          `json:"status"`
	Title      string          `json:"title"`
	Data       json.RawMessage `json:"data"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

func viewOf(d store.Document) documentView {
	data := d.Data
	if len(data) == 0 {
		data = []byte("{}")
	}
	return documentView{
		ID:         d.ID,
		Collection: d.Collection,
		Slug:       d.Slug,
		Status:     d.Status,
		Title:      d.Title,
		Data:       data,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

type documentRequest struct {
	Title  string         `json:"title"`
	Slug   string         `json:"slug,omitempty"`
	Status string         `json:"status,omitempty"`
	Data   map[string]any `json:"data,omitempty"`
}

// ListDocuments handles GET /api/admin/content/{collection}.
func (h *AdminHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	collection, ok := h.collection(w, r)
	if !ok {
		return
	}

	docs, err := h.store.ListDocuments(r.Context(), collection, r.URL.Query().Get("status"))
	if err != nil {
		slog.Error("listing documents failed", "collection", collection, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to list documents")
		return
	}

	views := make([]documentView, 0, len(docs))
	for _, d := range docs {
		views = append(views, viewOf(d))
	}
	writeJSONSuccess(w, map[string]any{"data": views, "count": len(views)})
}

// GetDocument handles GET /api/admin/content/{collection}/{id}.
func (h *AdminHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	collection, ok := h.collection(w, r)
	if !ok {
		return
	}

	doc, err := h.store.GetDocumentByID(r.Context(), collection, chi.URLParam(r, "id"))
	if errors.Is(err, sql.ErrNoRows) {
		writeJSONError(w, http.StatusNotFound, "Document not found")
		return
	}
	if err != nil {
		slog.Error("fetching document failed", "collection", collection, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to fetch document")
		return
	}
	writeJSONSuccess(w, map[string]any{"data": viewOf(doc)})
}

// CreateDocument handles POST /api/admin/content/{collection}.
func (h *AdminHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	collection, ok := h.collection(w, r)
	if !ok {
		return
	}

	var req documentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeJSONError(w, http.StatusBadRequest, "Title is required")
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = util.Slugify(req.Title)
	}
	if !util.IsValidSlug(slug) {
		writeJSONError(w, http.StatusBadRequest, "Invalid slug")
		return
	}

	status := req.Status
	if status == "" {
		status = model.PostStatusDraft
	}

	data, err := json.Marshal(req.Data)
	if err != nil || req.Data == nil {
		data = []byte("{}")
	}

	now := time.Now().UTC()
	doc := store.Document{
		ID:         uuid.NewString(),
		Collection: collection,
		Slug:       slug,
		Status:     status,
		Title:      req.Title,
		Data:       data,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := h.store.CreateDocument(r.Context(), doc); err != nil {
		if isUniqueViolation(err) {
			writeJSONError(w, http.StatusConflict, "Slug already exists in this collection")
			return
		}
		slog.Error("creating document failed", "collection", collection, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to create document")
		return
	}

	h.library.Invalidate(r.Context(), collection)
	h.audit(r, "content document created", collection, doc.ID)

	writeJSONSuccessStatus(w, http.StatusCreated, map[string]any{"data": viewOf(doc)})
}

// UpdateDocument handles PUT /api/admin/content/{collection}/{id}.
func (h *AdminHandler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	collection, ok := h.collection(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	var req documentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	existing, err := h.store.GetDocumentByID(r.Context(), collection, id)
	if errors.Is(err, sql.ErrNoRows) {
		writeJSONError(w, http.StatusNotFound, "Document not found")
		return
	}
	if err != nil {
		slog.Error("fetching document failed", "collection", collection, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to fetch document")
		return
	}

	doc := existing
	if req.Title != "" {
		doc.Title = req.Title
	}
	if req.Slug != "" {
		if !util.IsValidSlug(req.Slug) {
			writeJSONError(w, http.StatusBadRequest, "Invalid slug")
			return
		}
		doc.Slug = req.Slug
	}
	if req.Status != "" {
		doc.Status = req.Status
	}
	if req.Data != nil {
		data, err := json.Marshal(req.Data)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "Invalid document data")
			return
		}
		doc.Data = data
	}
	doc.UpdatedAt = time.Now().UTC()

	if err := h.store.UpdateDocument(r.Context(), doc); err != nil {
		if isUniqueViolation(err) {
			writeJSONError(w, http.StatusConflict, "Slug already exists in this collection")
			return
		}
		slog.Error("updating document failed", "collection", collection, "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to update document")
		return
	}

	h.library.Invalidate(r.Context(), collection)
	h.audit(r, "content document updated", collection, id)

	writeJSONSuccess(w, map[string]any{"data": viewOf(doc)})
}

// DeleteDocument handles DELETE /api/admin/content/{collection}/{id}.
func (h *AdminHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	collection, ok := h.collection(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	// Media documents also own files on disk
	var fileName string
	if collection == content.CollectionMedia {
		if doc, err := h.store.GetDocumentByID(r.Context(), collection, id); err == nil {
			var data struct {
				FileName string `json:"fileName"`
			}
			_ = json.Unmarshal(doc.Data, &data)
			fileName = data.FileName
		}
	}

	err := h.store.DeleteDocument(r.Context(), collection, id)
	if errors.Is(err, sql.ErrNoRows) {
		writeJSONError(w, http.StatusNotFound, "Document not found")
		return
	}
	if err != nil {
		slog.Error("deleting document failed", "collection", collection, "id", id, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to delete document")
		return
	}

	if fileName != "" && h.processor != nil {
		if err := h.processor.Remove(fileName); err != nil {
			slog.Warn("removing media files failed", "file", fileName, "error", err)
		}
	}

	h.library.Invalidate(r.Context(), collection)
	h.audit(r, "content document deleted", collection, id)

	writeJSONSuccess(w, nil)
}

// ListEvents handles GET /api/admin/events.
func (h *AdminHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	events, err := h.store.ListEvents(r.Context(), limit)
	if err != nil {
		slog.Error("listing events failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to list events")
		return
	}
	writeJSONSuccess(w, map[string]any{"data": events, "count": len(events)})
}

// UploadMedia handles POST /api/admin/media. It accepts a multipart form
// with a "file" field plus optional "title" and "alt" fields, stores the
// processed image and thumbnail, and records a media_assets document.
func (h *AdminHandler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	if h.processor == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "Media uploads are not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	sniff := make([]byte, 512)
	n, err := io.ReadFull(file, sniff)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		writeJSONError(w, http.StatusBadRequest, "Failed to read upload")
		return
	}
	if !h.processor.IsSupported(imaging.DetectMimeType(sniff[:n])) {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Unsupported file type")
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to read upload")
		return
	}

	id := uuid.NewString()
	storedName := id + strings.ToLower(filepath.Ext(header.Filename))

	res, err := h.processor.Process(file, storedName)
	if err != nil {
		slog.Error("processing media upload failed", "file", header.Filename, "error", err)
		writeJSONError(w, http.StatusUnprocessableEntity, "Failed to process image")
		return
	}

	title := r.FormValue("title")
	if title == "" {
		title = strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename))
	}
	alt := r.FormValue("alt")
	if alt == "" {
		alt = title
	}

	data, _ := json.Marshal(map[string]any{
		"fileName":     res.FileName,
		"url":          "/uploads/originals/" + res.FileName,
		"thumbnailUrl": "/uploads/thumbnails/" + res.FileName,
		"mimeType":     res.MimeType,
		"size":         res.Size,
		"width":        res.Width,
		"height":       res.Height,
		"alt":          alt,
	})

	now := time.Now().UTC()
	doc := store.Document{
		ID:         id,
		Collection: content.CollectionMedia,
		Slug:       fmt.Sprintf("%s-%s", util.Slugify(title), id[:8]),
		Status:     model.EntityStatusActive,
		Title:      title,
		Data:       data,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := h.store.CreateDocument(r.Context(), doc); err != nil {
		slog.Error("recording media upload failed", "error", err)
		if removeErr := h.processor.Remove(res.FileName); removeErr != nil {
			slog.Warn("cleaning up media files failed", "file", res.FileName, "error", removeErr)
		}
		writeJSONError(w, http.StatusInternalServerError, "Failed to record upload")
		return
	}

	h.library.Invalidate(r.Context(), content.CollectionMedia)
	h.audit(r, "media uploaded", content.CollectionMedia, id)

	writeJSONSuccessStatus(w, http.StatusCreated, map[string]any{"data": viewOf(doc)})
}

// collection validates the {collection} URL parameter.
func (h *AdminHandler) collection(w http.ResponseWriter, r *http.Request) (string, bool) {
	collection := chi.URLParam(r, "collection")
	if !content.IsCollection(collection) {
		writeJSONError(w, http.StatusNotFound, "Unknown collection")
		return "", false
	}
	return collection, true
}

// audit records an admin mutation in the event log.
func (h *AdminHandler) audit(r *http.Request, message, collection, id string) {
	category := model.EventCategoryContent
	if collection == content.CollectionMedia {
		category = model.EventCategoryMedia
	}
	metadata, _ := json.Marshal(map[string]string{
		"collection": collection,
		"id":         id,
	})
	if err := h.store.CreateEvent(r.Context(), model.Event{
		Level:     model.EventLevelInfo,
		Category:  category,
		Message:   message,
		Metadata:  string(metadata),
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		slog.Warn("recording audit event failed", "error", err)
	}
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Document is a raw content document as stored. Data holds the
// entity-specific fields as a JSON object; the content layer's decoders
// turn it into a render-safe view model.
type Document struct {
	ID         string
	Collection string
	Slug       string
	Status     string
	Title      string
	Data       []byte
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

const documentColumns = "id, collection, slug, status, title, data, created_at, updated_at"

func scanDocument(row interface{ Scan(dest ...any) error }) (Document, error) {
	var d Document
	err := row.Scan(&d.ID, &d.Collection, &d.Slug, &d.Status, &d.Title, &d.Data, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

// ListDocuments returns all documents in a collection, newest first.
// An empty status matches any status.
func (s *Store) ListDocuments(ctx context.Context, collection, status string) ([]Document, error) {
	query := "SELECT " + documentColumns + " FROM documents WHERE collection = ?"
	args := []any{collection}
	if status != "" {
		query += " AND status = ?"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing %s documents: %w", collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning %s document: %w", collection, err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s documents: %w", collection, err)
	}
	return docs, nil
}

// GetDocumentBySlug fetches a single document by collection and slug.
// Returns sql.ErrNoRows when no document matches.
func (s *Store) GetDocumentBySlug(ctx context.Context, collection, slug string) (Document, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+documentColumns+" FROM documents WHERE collection = ? AND slug = ?",
		collection, slug)
	return scanDocument(row)
}

// GetDocumentByID fetches a single document by collection and identifier.
// Returns sql.ErrNoRows when no document matches.
func (s *Store) GetDocumentByID(ctx context.Context, collection, id string) (Document, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+documentColumns+" FROM documents WHERE collection = ? AND id = ?",
		collection, id)
	return scanDocument(row)
}

// CreateDocument inserts a new document.
func (s *Store) CreateDocument(ctx context.Context, d Document) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO documents ("+documentColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		d.ID, d.Collection, d.Slug, d.Status, d.Title, d.Data, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating %s document: %w", d.Collection, err)
	}
	return nil
}

// UpdateDocument updates slug, status, title and data of an existing document.
// Returns sql.ErrNoRows when the document does not exist.
func (s *Store) UpdateDocument(ctx context.Context, d Document) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE documents SET slug = ?, status = ?, title = ?, data = ?, updated_at = ? WHERE collection = ? AND id = ?",
		d.Slug, d.Status, d.Title, d.Data, d.UpdatedAt, d.Collection, d.ID)
	if err != nil {
		return fmt.Errorf("updating %s document %s: %w", d.Collection, d.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating %s document %s: %w", d.Collection, d.ID, err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteDocument removes a document. Returns sql.ErrNoRows when the
// document does not exist.
func (s *Store) DeleteDocument(ctx context.Context, collection, id string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM documents WHERE collection = ? AND id = ?", collection, id)
	if err != nil {
		return fmt.Errorf("deleting %s document %s: %w", collection, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting %s document %s: %w", collection, id, err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

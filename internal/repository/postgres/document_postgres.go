package postgres

import (
	"context"
	"database/sql"
	"errors"

	"docsearch/internal/model"
	"docsearch/internal/repository"
)

// DocumentPostgres is a read-only PostgreSQL catalog provider.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const columns = `id, title, type, size_bytes, last_modified, content, locator`

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(s scanner) (model.Document, error) {
	var (
		d   model.Document
		typ string
	)
	if err := s.Scan(
		&d.ID,
		&d.Title,
		&typ,
		&d.SizeBytes,
		&d.LastModified,
		&d.Content,
		&d.Locator,
	); err != nil {
		return model.Document{}, err
	}
	d.Type = model.ParseType(typ)
	return d, nil
}

// List returns the whole catalog ordered by its catalog position.
func (r *DocumentPostgres) List(ctx context.Context) ([]model.Document, error) {
	const q = `SELECT ` + columns + ` FROM documents ORDER BY position ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID fetches a single document by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `SELECT ` + columns + ` FROM documents WHERE id = $1`

	d, err := scanDocument(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

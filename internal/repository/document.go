package repository

import (
	"context"
	"errors"

	"docsearch/internal/model"
)

// ErrNotFound is returned by FindByID when no document has the given ID.
var ErrNotFound = errors.New("document not found")

// DocumentRepository is the read-only catalog provider consumed by search and preview.
// Population and ingestion of the catalog belong to whoever owns the backing store.
type DocumentRepository interface {
	// List returns the whole catalog in catalog order.
	List(ctx context.Context) ([]model.Document, error)

	// FindByID returns a document by its ID or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.Document, error)
}

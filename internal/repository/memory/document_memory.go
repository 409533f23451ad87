package memory

import (
	"context"
	"fmt"

	"docsearch/internal/model"
	"docsearch/internal/repository"
)

// DocumentMemory is an in-memory catalog provider over a fixed document list.
// The list is copied on construction and on every read, so callers can never
// mutate the catalog it serves.
type DocumentMemory struct {
	docs []model.Document
	byID map[string]int
}

var _ repository.DocumentRepository = (*DocumentMemory)(nil)

// NewDocumentMemory builds a provider from docs. IDs must be non-empty and unique;
// types are normalized so unknown kinds become model.TypeOther.
func NewDocumentMemory(docs []model.Document) (*DocumentMemory, error) {
	m := &DocumentMemory{
		docs: make([]model.Document, 0, len(docs)),
		byID: make(map[string]int, len(docs)),
	}
	for _, d := range docs {
		if d.ID == "" {
			return nil, fmt.Errorf("document %q: id is required", d.Title)
		}
		if _, dup := m.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate document id %q", d.ID)
		}
		d.Type = model.ParseType(string(d.Type))
		m.byID[d.ID] = len(m.docs)
		m.docs = append(m.docs, d)
	}
	return m, nil
}

// List returns a copy of the catalog in insertion order.
func (m *DocumentMemory) List(ctx context.Context) ([]model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]model.Document, len(m.docs))
	copy(out, m.docs)
	return out, nil
}

// FindByID returns a copy of the document with the given id.
func (m *DocumentMemory) FindByID(ctx context.Context, id string) (*model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	d := m.docs[i]
	return &d, nil
}

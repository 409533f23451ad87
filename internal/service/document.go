package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"docsearch/internal/model"
	"docsearch/internal/render"
	"docsearch/internal/repository"
	"docsearch/internal/search"
	"docsearch/internal/storage"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("document not found")
)

const defaultPresignExpiry = 15 * time.Minute

// SearchResult is the service-level DTO for a query over the catalog.
type SearchResult struct {
	Items []model.Document `json:"data"`
	Total int              `json:"total"`
	Query string           `json:"query"`
}

// DocumentService defines the use cases exposed to the presentation layer.
type DocumentService interface {
	// Search runs query and filters against the current catalog. An empty query with
	// no filters browses the whole catalog.
	Search(ctx context.Context, query string, filters model.QueryFilters) (*SearchResult, error)

	// Get returns a single document by its ID.
	Get(ctx context.Context, id string) (*model.Document, error)

	// OpenURL returns a URL the client can hand to a browser or OS opener.
	OpenURL(ctx context.Context, id string) (string, error)
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	repo   repository.DocumentRepository
	store  storage.Storage
	expiry time.Duration
}

// NewDocumentService constructs a new DocumentService. store may be nil, in which
// case OpenURL returns locators unchanged.
func NewDocumentService(repo repository.DocumentRepository, store storage.Storage, presignExpiry time.Duration) DocumentService {
	if presignExpiry <= 0 {
		presignExpiry = defaultPresignExpiry
	}
	return &documentService{repo: repo, store: store, expiry: presignExpiry}
}

func (s *documentService) Search(ctx context.Context, query string, filters model.QueryFilters) (*SearchResult, error) {
	catalog, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	items := search.Search(query, filters, catalog)
	return &SearchResult{Items: items, Total: len(items), Query: query}, nil
}

// Get returns a document by ID.
func (s *documentService) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// OpenURL resolves the document locator into something a browser can open.
func (s *documentService) OpenURL(ctx context.Context, id string) (string, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if render.IsURL(doc.Locator) || s.store == nil {
		return doc.Locator, nil
	}
	u, err := s.store.PresignGet(ctx, doc.Locator, s.expiry)
	if err != nil {
		return "", fmt.Errorf("presign: %w", err)
	}
	return u, nil
}

package memory

import (
	"context"
	"testing"

	"docsearch/internal/model"
	"docsearch/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentMemory(t *testing.T) {
	t.Run("normalizes types", func(t *testing.T) {
		repo, err := NewDocumentMemory([]model.Document{{ID: "a", Type: "PPTX"}, {ID: "b", Type: "Pdf"}})
		require.NoError(t, err)

		docs, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, model.TypeOther, docs[0].Type)
		assert.Equal(t, model.TypePDF, docs[1].Type)
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := NewDocumentMemory([]model.Document{{ID: "a"}, {ID: "a"}})
		assert.ErrorContains(t, err, "duplicate document id")
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := NewDocumentMemory([]model.Document{{Title: "untitled"}})
		assert.ErrorContains(t, err, "id is required")
	})
}

func TestDocumentMemory_List(t *testing.T) {
	repo, err := NewDocumentMemory(Fixtures())
	require.NoError(t, err)
	ctx := context.Background()

	docs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 7)
	for i, d := range docs {
		assert.Equal(t, Fixtures()[i].ID, d.ID)
	}

	// Mutating the returned slice must not leak into the catalog.
	docs[0].Title = "changed"
	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Reglamento Académico 2024", again[0].Title)
}

func TestDocumentMemory_FindByID(t *testing.T) {
	repo, err := NewDocumentMemory(Fixtures())
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		doc, err := repo.FindByID(ctx, "7")
		require.NoError(t, err)
		assert.Equal(t, model.TypePDF, doc.Type)
	})

	t.Run("not found", func(t *testing.T) {
		doc, err := repo.FindByID(ctx, "missing")
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, doc)
	})

	t.Run("canceled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := repo.FindByID(cctx, "1")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFixtures(t *testing.T) {
	counts := map[model.Type]int{}
	for _, d := range Fixtures() {
		counts[d.Type]++
	}
	assert.Equal(t, map[model.Type]int{
		model.TypeDOCX: 3,
		model.TypeXLSX: 2,
		model.TypeTXT:  1,
		model.TypePDF:  1,
	}, counts)

	a := Fixtures()
	a[0].Title = "mutated"
	assert.NotEqual(t, "mutated", Fixtures()[0].Title)
}

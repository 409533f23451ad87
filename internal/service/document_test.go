package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"docsearch/internal/model"
	"docsearch/internal/repository"
	repoMocks "docsearch/internal/repository/mocks"
	"docsearch/internal/repository/memory"
	storeMocks "docsearch/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDocumentService_Search(t *testing.T) {
	ctx := context.Background()
	pdf := model.TypePDF
	xlsx := model.TypeXLSX

	tests := []struct {
		name       string
		query      string
		filters    model.QueryFilters
		setupMocks func(mRepo *repoMocks.MockDocumentRepository)
		wantIDs    []string
		wantErrMsg string
	}{
		{
			name: "browse mode returns whole catalog",
			setupMocks: func(mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("List", ctx).Return(memory.Fixtures(), nil)
			},
			wantIDs: []string{"1", "2", "3", "4", "5", "6", "7"},
		},
		{
			name:  "query",
			query: "inscripción",
			setupMocks: func(mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("List", ctx).Return(memory.Fixtures(), nil)
			},
			wantIDs: []string{"3"},
		},
		{
			name:    "type filter",
			filters: model.QueryFilters{FileType: &pdf},
			setupMocks: func(mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("List", ctx).Return(memory.Fixtures(), nil)
			},
			wantIDs: []string{"7"},
		},
		{
			name:    "query and type conjunction",
			query:   "plan",
			filters: model.QueryFilters{FileType: &xlsx},
			setupMocks: func(mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("List", ctx).Return(memory.Fixtures(), nil)
			},
			wantIDs: []string{},
		},
		{
			name: "catalog error",
			setupMocks: func(mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("List", ctx).Return(nil, errors.New("db fail"))
			},
			wantErrMsg: "load catalog: db fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockDocumentRepository)
			svc := NewDocumentService(mRepo, nil, 0)
			tt.setupMocks(mRepo)

			res, err := svc.Search(ctx, tt.query, tt.filters)

			if tt.wantErrMsg != "" {
				assert.ErrorContains(t, err, tt.wantErrMsg)
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				ids := make([]string, 0, len(res.Items))
				for _, d := range res.Items {
					ids = append(ids, d.ID)
				}
				assert.Equal(t, tt.wantIDs, ids)
				assert.Equal(t, len(tt.wantIDs), res.Total)
				assert.Equal(t, tt.query, res.Query)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestDocumentService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		setupMocks func(mRepo *repoMocks.MockDocumentRepository)
		wantErr    error
	}{
		{
			name: "happy path",
			id:   "1",
			setupMocks: func(mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("FindByID", ctx, "1").Return(&model.Document{ID: "1"}, nil)
			},
		},
		{
			name:       "empty id",
			id:         "",
			setupMocks: func(mRepo *repoMocks.MockDocumentRepository) {},
			wantErr:    ErrIDRequired,
		},
		{
			name: "not found",
			id:   "404",
			setupMocks: func(mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("FindByID", ctx, "404").Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockDocumentRepository)
			svc := NewDocumentService(mRepo, nil, 0)
			tt.setupMocks(mRepo)

			doc, err := svc.Get(ctx, tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, doc)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, doc.ID)
			}
			mRepo.AssertExpectations(t)
		})
	}

	t.Run("other repository error passes through", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		mRepo.On("FindByID", ctx, "1").Return(nil, errors.New("db fail"))

		_, err := NewDocumentService(mRepo, nil, 0).Get(ctx, "1")
		assert.EqualError(t, err, "db fail")
	})
}

func TestDocumentService_OpenURL(t *testing.T) {
	ctx := context.Background()
	expiry := 5 * time.Minute

	t.Run("object key is presigned", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		mStore := new(storeMocks.MockStorage)
		mRepo.On("FindByID", ctx, "7").Return(&model.Document{ID: "7", Locator: "documents/cal.pdf"}, nil)
		mStore.On("PresignGet", ctx, "documents/cal.pdf", expiry).Return("https://minio/cal.pdf?sig=1", nil)

		u, err := NewDocumentService(mRepo, mStore, expiry).OpenURL(ctx, "7")

		require.NoError(t, err)
		assert.Equal(t, "https://minio/cal.pdf?sig=1", u)
		mStore.AssertExpectations(t)
	})

	t.Run("absolute url is returned as-is", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		mStore := new(storeMocks.MockStorage)
		mRepo.On("FindByID", ctx, "8").Return(&model.Document{ID: "8", Locator: "https://example.org/a.pdf"}, nil)

		u, err := NewDocumentService(mRepo, mStore, expiry).OpenURL(ctx, "8")

		require.NoError(t, err)
		assert.Equal(t, "https://example.org/a.pdf", u)
		mStore.AssertNotCalled(t, "PresignGet", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no storage configured", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		mRepo.On("FindByID", ctx, "1").Return(&model.Document{ID: "1", Locator: "documents/a.docx"}, nil)

		u, err := NewDocumentService(mRepo, nil, expiry).OpenURL(ctx, "1")

		require.NoError(t, err)
		assert.Equal(t, "documents/a.docx", u)
	})

	t.Run("presign error", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		mStore := new(storeMocks.MockStorage)
		mRepo.On("FindByID", ctx, "7").Return(&model.Document{ID: "7", Locator: "documents/cal.pdf"}, nil)
		mStore.On("PresignGet", ctx, "documents/cal.pdf", expiry).Return("", errors.New("minio down"))

		_, err := NewDocumentService(mRepo, mStore, expiry).OpenURL(ctx, "7")
		assert.ErrorContains(t, err, "presign: minio down")
	})

	t.Run("not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		mRepo.On("FindByID", ctx, "x").Return(nil, repository.ErrNotFound)

		_, err := NewDocumentService(mRepo, nil, expiry).OpenURL(ctx, "x")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

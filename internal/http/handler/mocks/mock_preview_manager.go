package mocks

import (
	"context"

	"docsearch/internal/model"
	"docsearch/internal/preview"
	"github.com/stretchr/testify/mock"
)

type MockPreviewManager struct {
	mock.Mock
}

func (m *MockPreviewManager) Open(ctx context.Context, doc model.Document) (preview.Snapshot, error) {
	args := m.Called(ctx, doc)
	return args.Get(0).(preview.Snapshot), args.Error(1)
}

func (m *MockPreviewManager) Reload(ctx context.Context, id string) (preview.Snapshot, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(preview.Snapshot), args.Error(1)
}

func (m *MockPreviewManager) Get(id string) (preview.Snapshot, error) {
	args := m.Called(id)
	return args.Get(0).(preview.Snapshot), args.Error(1)
}

func (m *MockPreviewManager) SetPage(id string, n int) (preview.Snapshot, error) {
	args := m.Called(id, n)
	return args.Get(0).(preview.Snapshot), args.Error(1)
}

func (m *MockPreviewManager) SetZoom(id string, delta float64) (preview.Snapshot, error) {
	args := m.Called(id, delta)
	return args.Get(0).(preview.Snapshot), args.Error(1)
}

func (m *MockPreviewManager) Close(id string) {
	m.Called(id)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) PageCount(ctx context.Context, locator string) (int, error) {
	args := m.Called(ctx, locator)
	return args.Int(0), args.Error(1)
}

package mocks

import (
	"context"

	"sitedocs/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockDocumentCache struct {
	mock.Mock
}

func (m *MockDocumentCache) GetDocuments(ctx context.Context) ([]model.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentCache) SetDocuments(ctx context.Context, docs []model.Document) error {
	args := m.Called(ctx, docs)
	return args.Error(0)
}

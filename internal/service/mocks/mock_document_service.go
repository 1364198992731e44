package mocks

import (
	"context"

	"sitedocs/internal/model"
	"sitedocs/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) List(ctx context.Context, filter model.DocumentFilter, limit, offset int) (*service.DocumentListResult, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentListResult), args.Error(1)
}

func (m *MockDocumentService) Get(ctx context.Context, id string) (*model.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) Related(ctx context.Context, id string) (*model.RelatedDocuments, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RelatedDocuments), args.Error(1)
}

func (m *MockDocumentService) Groups(ctx context.Context, filter model.DocumentFilter, by model.GroupBy) ([]model.DocumentGroup, error) {
	args := m.Called(ctx, filter, by)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DocumentGroup), args.Error(1)
}

func (m *MockDocumentService) Stats(ctx context.Context, filter model.DocumentFilter) (*model.DocumentStats, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DocumentStats), args.Error(1)
}

func (m *MockDocumentService) Export(ctx context.Context, filter model.DocumentFilter, format model.ExportFormat) (*service.ExportResult, error) {
	args := m.Called(ctx, filter, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportResult), args.Error(1)
}

func (m *MockDocumentService) PublishExport(ctx context.Context, filter model.DocumentFilter, format model.ExportFormat) (*service.PublishedExport, error) {
	args := m.Called(ctx, filter, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PublishedExport), args.Error(1)
}

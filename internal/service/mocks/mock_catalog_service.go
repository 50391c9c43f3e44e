package mocks

import (
	"context"

	"catalogapi/internal/model"
	"catalogapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) List(ctx context.Context, skip, limit int) (*service.ItemListResult, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ItemListResult), args.Error(1)
}

func (m *MockCatalogService) Search(ctx context.Context, f model.FilterParams) (*service.ItemListResult, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ItemListResult), args.Error(1)
}

func (m *MockCatalogService) Get(ctx context.Context, id string) (*model.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (m *MockCatalogService) Create(ctx context.Context, in *model.ItemInput) (*model.Item, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (m *MockCatalogService) Update(ctx context.Context, id string, in *model.ItemInput) (*model.Item, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

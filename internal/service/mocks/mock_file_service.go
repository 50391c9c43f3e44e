package mocks

import (
	"context"
	"io"

	"catalogapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) Describe(ctx context.Context, path string) (*service.FileInfo, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FileInfo), args.Error(1)
}

func (m *MockFileService) Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string) (*service.FileInfo, error) {
	args := m.Called(ctx, path, r, size, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FileInfo), args.Error(1)
}

func (m *MockFileService) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"catalogapi/internal/storage"
)

var ErrPathRequired = errors.New("file path is required")

// presignExpiry bounds how long a download URL stays valid.
const presignExpiry = 15 * time.Minute

// FileInfo describes a path in object storage. FilePath is always echoed
// back; the remaining fields are populated only when the object exists.
type FileInfo struct {
	FilePath     string     `json:"file_path"`
	Stored       bool       `json:"stored"`
	Size         int64      `json:"size,omitempty"`
	ContentType  string     `json:"content_type,omitempty"`
	ETag         string     `json:"etag,omitempty"`
	LastModified *time.Time `json:"last_modified,omitempty"`
	URL          string     `json:"url,omitempty"`
}

// FileService defines the use cases for path-addressed file storage.
type FileService interface {
	// Describe echoes the path and annotates it with object info when stored.
	Describe(ctx context.Context, path string) (*FileInfo, error)

	// Upload stores the content under the given path.
	Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string) (*FileInfo, error)

	// Delete removes the object; ErrNotFound when nothing is stored there.
	Delete(ctx context.Context, path string) error
}

type fileService struct {
	store storage.Storage
}

// NewFileService constructs a new FileService.
func NewFileService(store storage.Storage) FileService {
	return &fileService{store: store}
}

func (s *fileService) Describe(ctx context.Context, path string) (*FileInfo, error) {
	if path == "" {
		return nil, ErrPathRequired
	}

	info, err := s.store.Stat(ctx, path)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &FileInfo{FilePath: path}, nil
		}
		return nil, fmt.Errorf("stat object: %w", err)
	}

	out := &FileInfo{
		FilePath:    path,
		Stored:      true,
		Size:        info.Size,
		ContentType: info.ContentType,
		ETag:        info.ETag,
	}
	if !info.LastModified.IsZero() {
		lm := info.LastModified
		out.LastModified = &lm
	}

	// A failed presign should not hide the object's existence.
	if u, err := s.store.PresignGet(ctx, path, presignExpiry); err == nil {
		out.URL = u
	}
	return out, nil
}

func (s *fileService) Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string) (*FileInfo, error) {
	if path == "" {
		return nil, ErrPathRequired
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	info, err := s.store.Put(ctx, path, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	out := &FileInfo{
		FilePath:    path,
		Stored:      true,
		Size:        info.Size,
		ContentType: info.ContentType,
		ETag:        info.ETag,
	}
	if !info.LastModified.IsZero() {
		lm := info.LastModified
		out.LastModified = &lm
	}
	return out, nil
}

func (s *fileService) Delete(ctx context.Context, path string) error {
	if path == "" {
		return ErrPathRequired
	}
	if _, err := s.store.Stat(ctx, path); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("stat object: %w", err)
	}
	return s.store.Delete(ctx, path)
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"catalogapi/internal/model"
	"catalogapi/internal/repository"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("item not found")
)

// ItemListResult is the service-level DTO for paginated items.
type ItemListResult struct {
	Skip  int          `json:"skip"`
	Limit int          `json:"limit"`
	Total int          `json:"total"`
	Items []model.Item `json:"items"`
}

// CatalogService defines the use cases for handling catalog items.
type CatalogService interface {
	// List returns items using skip/limit and a total count.
	List(ctx context.Context, skip, limit int) (*ItemListResult, error)

	// Search returns items matching a validated filter model.
	Search(ctx context.Context, f model.FilterParams) (*ItemListResult, error)

	// Get returns a single item by its ID.
	Get(ctx context.Context, id string) (*model.Item, error)

	// Create stores a new item from a validated input, assigning ID and timestamps.
	Create(ctx context.Context, in *model.ItemInput) (*model.Item, error)

	// Update replaces an existing item's fields from a validated input.
	Update(ctx context.Context, id string, in *model.ItemInput) (*model.Item, error)
}

// catalogService is a concrete implementation of CatalogService.
type catalogService struct {
	repo repository.ItemRepository
}

// NewCatalogService constructs a new CatalogService.
func NewCatalogService(repo repository.ItemRepository) CatalogService {
	return &catalogService{repo: repo}
}

// List returns paginated items without exposing repository types.
func (s *catalogService) List(ctx context.Context, skip, limit int) (*ItemListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if skip < 0 {
		skip = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: skip})
	if err != nil {
		return nil, err
	}
	return &ItemListResult{Skip: skip, Limit: limit, Total: res.Total, Items: res.Items}, nil
}

// Search maps the filter model onto a repository page query.
func (s *catalogService) Search(ctx context.Context, f model.FilterParams) (*ItemListResult, error) {
	res, err := s.repo.List(ctx, repository.PageQuery{
		Limit:   f.Limit,
		Offset:  f.Offset,
		OrderBy: f.OrderBy,
		Tags:    f.Tags,
	})
	if err != nil {
		return nil, err
	}
	return &ItemListResult{Skip: f.Offset, Limit: f.Limit, Total: res.Total, Items: res.Items}, nil
}

// Get returns an item by ID.
func (s *catalogService) Get(ctx context.Context, id string) (*model.Item, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	it, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return it, nil
}

// Create assigns identity and timestamps, then persists the item.
func (s *catalogService) Create(ctx context.Context, in *model.ItemInput) (*model.Item, error) {
	now := time.Now().UTC()
	item := &model.Item{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Tax:         in.Tax,
		Tags:        in.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.repo.Create(ctx, item)
}

// Update replaces the stored item's fields, keeping its creation time.
func (s *catalogService) Update(ctx context.Context, id string, in *model.ItemInput) (*model.Item, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	item := &model.Item{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Tax:         in.Tax,
		Tags:        in.Tags,
		UpdatedAt:   time.Now().UTC(),
	}
	stored, err := s.repo.Update(ctx, item)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return stored, nil
}

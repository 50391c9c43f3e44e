package repository

import (
	"context"

	"catalogapi/internal/model"
)

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres, memory) inside this directory.

// ItemRepository defines data access for catalog items.
// No business logic here — strictly persistence operations.
// Implementations report a missing row as sql.ErrNoRows.
type ItemRepository interface {
	// Create inserts a new item record.
	// The caller provides required fields (ID, CreatedAt, UpdatedAt).
	// Returns the stored item (may include values set by the backend).
	Create(ctx context.Context, item *model.Item) (*model.Item, error)

	// FindByID returns an item by its ID.
	FindByID(ctx context.Context, id string) (*model.Item, error)

	// Update replaces the mutable fields of an existing item and bumps UpdatedAt.
	Update(ctx context.Context, item *model.Item) (*model.Item, error)

	// List returns a page of items and the total row count for the given query.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Item], error)
}

// PageQuery holds pagination and ordering parameters.
// OrderBy must be one of "created_at" or "updated_at"; implementations
// fall back to created_at for anything else. Tags, when non-empty,
// restricts the result to items carrying every listed tag.
type PageQuery struct {
	Limit   int
	Offset  int
	OrderBy string
	Tags    []string
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}

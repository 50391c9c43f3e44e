package memory

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"catalogapi/internal/model"
	"catalogapi/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemMemory_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewItemMemory()

	tax := 3.2
	item := &model.Item{
		ID:        uuid.NewString(),
		Name:      "Foo",
		Price:     45.2,
		Tax:       &tax,
		Tags:      []string{"a"},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	stored, err := repo.Create(ctx, item)
	require.NoError(t, err)
	assert.Equal(t, item.ID, stored.ID)

	found, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Foo", found.Name)

	// Returned values are copies, not aliases into the store.
	found.Tags[0] = "mutated"
	*found.Tax = 99
	again, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, again.Tags)
	assert.Equal(t, 3.2, *again.Tax)
}

func TestItemMemory_FindByID_NotFound(t *testing.T) {
	repo := NewItemMemory()

	got, err := repo.FindByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Nil(t, got)
}

func TestItemMemory_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewItemMemory()

	created := time.Now().UTC().Add(-time.Hour)
	id := uuid.NewString()
	_, err := repo.Create(ctx, &model.Item{ID: id, Name: "Foo", Price: 1, CreatedAt: created, UpdatedAt: created})
	require.NoError(t, err)

	t.Run("keeps the original creation time", func(t *testing.T) {
		got, err := repo.Update(ctx, &model.Item{ID: id, Name: "Bar", Price: 2, UpdatedAt: time.Now().UTC()})
		require.NoError(t, err)
		assert.Equal(t, "Bar", got.Name)
		assert.True(t, got.CreatedAt.Equal(created))
	})

	t.Run("unknown id", func(t *testing.T) {
		got, err := repo.Update(ctx, &model.Item{ID: uuid.NewString(), Name: "Bar", Price: 2})
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, got)
	})
}

func TestItemMemory_List(t *testing.T) {
	ctx := context.Background()
	repo := NewItemMemory()

	base := time.Now().UTC()
	seed := []model.Item{
		{ID: uuid.NewString(), Name: "Foo", Price: 10, Tags: []string{"sale"}, CreatedAt: base, UpdatedAt: base.Add(2 * time.Second)},
		{ID: uuid.NewString(), Name: "Bar", Price: 20, Tags: []string{"sale", "new"}, CreatedAt: base.Add(time.Second), UpdatedAt: base},
		{ID: uuid.NewString(), Name: "Baz", Price: 30, CreatedAt: base.Add(2 * time.Second), UpdatedAt: base.Add(time.Second)},
	}
	for i := range seed {
		_, err := repo.Create(ctx, &seed[i])
		require.NoError(t, err)
	}

	t.Run("orders by created_at descending", func(t *testing.T) {
		res, err := repo.List(ctx, repository.PageQuery{Limit: 10, OrderBy: "created_at"})
		require.NoError(t, err)
		assert.Equal(t, 3, res.Total)
		require.Len(t, res.Items, 3)
		assert.Equal(t, "Baz", res.Items[0].Name)
		assert.Equal(t, "Foo", res.Items[2].Name)
	})

	t.Run("orders by updated_at descending", func(t *testing.T) {
		res, err := repo.List(ctx, repository.PageQuery{Limit: 10, OrderBy: "updated_at"})
		require.NoError(t, err)
		require.Len(t, res.Items, 3)
		assert.Equal(t, "Foo", res.Items[0].Name)
		assert.Equal(t, "Bar", res.Items[2].Name)
	})

	t.Run("paginates with limit and offset", func(t *testing.T) {
		res, err := repo.List(ctx, repository.PageQuery{Limit: 1, Offset: 1, OrderBy: "created_at"})
		require.NoError(t, err)
		assert.Equal(t, 3, res.Total)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "Bar", res.Items[0].Name)
	})

	t.Run("offset past the end", func(t *testing.T) {
		res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 100})
		require.NoError(t, err)
		assert.Empty(t, res.Items)
		assert.Equal(t, 3, res.Total)
	})

	t.Run("filters by all tags", func(t *testing.T) {
		res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Tags: []string{"sale", "new"}})
		require.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "Bar", res.Items[0].Name)
	})

	t.Run("single tag matches a superset", func(t *testing.T) {
		res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Tags: []string{"sale"}})
		require.NoError(t, err)
		assert.Equal(t, 2, res.Total)
	})
}

func TestNewSeeded(t *testing.T) {
	repo := NewSeeded()

	res, err := repo.List(context.Background(), repository.PageQuery{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)

	names := make([]string, 0, 3)
	for _, it := range res.Items {
		names = append(names, it.Name)
	}
	assert.ElementsMatch(t, []string{"Foo", "Bar", "Baz"}, names)
}

package memory

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"catalogapi/internal/model"
	"catalogapi/internal/repository"
)

// ItemMemory is an in-memory repository.ItemRepository used when no
// database is configured. It mirrors the Postgres implementation's
// contract, including sql.ErrNoRows for missing rows, so the service
// layer cannot tell the two apart.
type ItemMemory struct {
	mu    sync.RWMutex
	items map[string]model.Item
}

// NewItemMemory creates an empty in-memory repository.
func NewItemMemory() *ItemMemory {
	return &ItemMemory{items: make(map[string]model.Item)}
}

// NewSeeded creates a repository preloaded with the demo catalog
// (Foo, Bar, Baz) so list endpoints return data out of the box.
func NewSeeded() *ItemMemory {
	r := NewItemMemory()
	base := time.Now().UTC()
	for i, name := range []string{"Foo", "Bar", "Baz"} {
		ts := base.Add(time.Duration(i) * time.Second)
		it := model.Item{
			ID:        uuid.NewString(),
			Name:      name,
			Price:     float64(10 * (i + 1)),
			CreatedAt: ts,
			UpdatedAt: ts,
		}
		r.items[it.ID] = it
	}
	return r
}

var _ repository.ItemRepository = (*ItemMemory)(nil)

func (r *ItemMemory) Create(_ context.Context, item *model.Item) (*model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneItem(*item)
	r.items[stored.ID] = stored
	out := cloneItem(stored)
	return &out, nil
}

func (r *ItemMemory) FindByID(_ context.Context, id string) (*model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	out := cloneItem(it)
	return &out, nil
}

func (r *ItemMemory) Update(_ context.Context, item *model.Item) (*model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.items[item.ID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	stored := cloneItem(*item)
	stored.CreatedAt = prev.CreatedAt
	r.items[stored.ID] = stored
	out := cloneItem(stored)
	return &out, nil
}

func (r *ItemMemory) List(_ context.Context, pq repository.PageQuery) (*repository.PageResult[model.Item], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]model.Item, 0, len(r.items))
	for _, it := range r.items {
		if hasAllTags(it.Tags, pq.Tags) {
			matched = append(matched, cloneItem(it))
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if pq.OrderBy == "updated_at" {
			if !a.UpdatedAt.Equal(b.UpdatedAt) {
				return a.UpdatedAt.After(b.UpdatedAt)
			}
		} else if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})

	total := len(matched)
	start := pq.Offset
	if start > total {
		start = total
	}
	end := start + pq.Limit
	if pq.Limit <= 0 || end > total {
		end = total
	}

	return &repository.PageResult[model.Item]{
		Items: matched[start:end],
		Total: total,
	}, nil
}

func hasAllTags(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func cloneItem(it model.Item) model.Item {
	if it.Tags != nil {
		tags := make([]string, len(it.Tags))
		copy(tags, it.Tags)
		it.Tags = tags
	}
	if it.Tax != nil {
		v := *it.Tax
		it.Tax = &v
	}
	return it
}

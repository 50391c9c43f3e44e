package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"

	"catalogapi/internal/model"
	"catalogapi/internal/repository"
)

// ItemPostgres is a PostgreSQL implementation of repository.ItemRepository.
// It uses database/sql with parameterized queries and contains no business logic.
// Tags are stored as a JSONB column so they round-trip through database/sql
// without array-type plumbing.
type ItemPostgres struct {
	db *sql.DB
}

// NewItemPostgres creates a new ItemPostgres repository.
func NewItemPostgres(db *sql.DB) *ItemPostgres {
	return &ItemPostgres{db: db}
}

var _ repository.ItemRepository = (*ItemPostgres)(nil)

// orderColumns whitelists ORDER BY targets; never interpolate raw input into SQL.
var orderColumns = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
}

func encodeTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(tags)
}

// scanItem reads one row in column order: id, name, description, price, tax, tags, created_at, updated_at.
func scanItem(row interface{ Scan(dest ...any) error }) (*model.Item, error) {
	var (
		it      model.Item
		tax     sql.NullFloat64
		rawTags []byte
	)
	if err := row.Scan(
		&it.ID,
		&it.Name,
		&it.Description,
		&it.Price,
		&tax,
		&rawTags,
		&it.CreatedAt,
		&it.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if tax.Valid {
		v := tax.Float64
		it.Tax = &v
	}
	if len(rawTags) > 0 {
		if err := json.Unmarshal(rawTags, &it.Tags); err != nil {
			return nil, err
		}
	}
	return &it, nil
}

// Create inserts a new item row and returns the stored record.
func (r *ItemPostgres) Create(ctx context.Context, item *model.Item) (*model.Item, error) {
	const q = `
		INSERT INTO items (id, name, description, price, tax, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, description, price, tax, tags, created_at, updated_at
	`
	tags, err := encodeTags(item.Tags)
	if err != nil {
		return nil, err
	}
	var tax sql.NullFloat64
	if item.Tax != nil {
		tax = sql.NullFloat64{Float64: *item.Tax, Valid: true}
	}
	row := r.db.QueryRowContext(ctx, q,
		item.ID,
		item.Name,
		item.Description,
		item.Price,
		tax,
		tags,
		item.CreatedAt,
		item.UpdatedAt,
	)
	return scanItem(row)
}

// FindByID fetches a single item by its ID.
func (r *ItemPostgres) FindByID(ctx context.Context, id string) (*model.Item, error) {
	const q = `
		SELECT id, name, description, price, tax, tags, created_at, updated_at
		FROM items
		WHERE id = $1
	`
	return scanItem(r.db.QueryRowContext(ctx, q, id))
}

// Update replaces the mutable fields of an existing row.
// Returns sql.ErrNoRows when the id does not exist (via RETURNING).
func (r *ItemPostgres) Update(ctx context.Context, item *model.Item) (*model.Item, error) {
	const q = `
		UPDATE items
		SET name = $2, description = $3, price = $4, tax = $5, tags = $6, updated_at = $7
		WHERE id = $1
		RETURNING id, name, description, price, tax, tags, created_at, updated_at
	`
	tags, err := encodeTags(item.Tags)
	if err != nil {
		return nil, err
	}
	var tax sql.NullFloat64
	if item.Tax != nil {
		tax = sql.NullFloat64{Float64: *item.Tax, Valid: true}
	}
	row := r.db.QueryRowContext(ctx, q,
		item.ID,
		item.Name,
		item.Description,
		item.Price,
		tax,
		tags,
		item.UpdatedAt,
	)
	return scanItem(row)
}

// List returns items using LIMIT/OFFSET pagination and a total count.
// When the query carries tags, only items containing every tag match.
func (r *ItemPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Item], error) {
	col, ok := orderColumns[pq.OrderBy]
	if !ok {
		col = "created_at"
	}

	where := ""
	args := []any{}
	if len(pq.Tags) > 0 {
		tags, err := encodeTags(pq.Tags)
		if err != nil {
			return nil, err
		}
		where = " WHERE tags @> $1::jsonb"
		args = append(args, tags)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM items"+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	qList := `
		SELECT id, name, description, price, tax, tags, created_at, updated_at
		FROM items` + where + `
		ORDER BY ` + col + ` DESC, id DESC
		LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, pq.Limit, pq.Offset)

	rows, err := r.db.QueryContext(ctx, qList, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Item]{
		Items: items,
		Total: total,
	}, nil
}

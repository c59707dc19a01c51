package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"item-stats-service/internal/items/core/domain"
	"item-stats-service/internal/items/core/ports"
	"item-stats-service/internal/platform/database"

	"github.com/lib/pq"
)

type ItemRepository struct {
	db database.DB
}

func NewItemRepository(db database.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

var _ ports.ItemRepositoryPort = (*ItemRepository)(nil)

const itemColumns = `id, user_id, value, name, notes, completed, duration, created, updated`

const insertItemSQL = `
INSERT INTO items (
    user_id,
    value,
    name,
    notes,
    completed,
    duration
) VALUES (
    $1, $2, $3, $4, $5, $6
)
RETURNING id, created, updated;
`

const updateItemSQL = `
UPDATE items SET
    value     = $2,
    name      = $3,
    notes     = $4,
    completed = $5,
    duration  = $6,
    updated   = now()
WHERE id = $1
RETURNING updated;
`

const deleteItemSQL = `DELETE FROM items WHERE id = $1;`

func (r *ItemRepository) ListItems(ctx context.Context, f ports.ItemFilter) ([]domain.Item, int64, error) {
	where := ""
	args := []any{}
	if f.UserID != nil {
		where = " WHERE user_id = $1"
		args = append(args, *f.UserID)
	}

	total, err := r.count(ctx, `SELECT COUNT(*) FROM items`+where, args)
	if err != nil {
		return nil, 0, err
	}

	direction := "ASC"
	if f.Desc {
		direction = "DESC"
	}

	query := fmt.Sprintf(`
SELECT %s
FROM items%s
ORDER BY %s %s, id ASC
LIMIT $%d OFFSET $%d`,
		itemColumns, where, pq.QuoteIdentifier(f.OrderBy), direction, len(args)+1, len(args)+2)

	rows, err := r.db.QueryContext(ctx, query, append(args, f.Limit, f.Skip)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]domain.Item, 0, f.Limit)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *ItemRepository) count(ctx context.Context, query string, args []any) (int64, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var total int64
	if rows.Next() {
		if err := rows.Scan(&total); err != nil {
			return 0, err
		}
	}
	return total, rows.Err()
}

func (r *ItemRepository) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		// no row -> not found
		return nil, rows.Err()
	}

	return scanItem(rows)
}

func (r *ItemRepository) InsertItem(ctx context.Context, item *domain.Item) error {
	rows, err := r.db.QueryContext(ctx, insertItemSQL,
		item.UserID,
		item.Value,
		item.Name,
		nullString(item.Notes),
		item.Completed,
		nullFloat(item.Duration),
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return errors.New("insert item: no row returned")
	}

	return rows.Scan(&item.ID, &item.Created, &item.Updated)
}

func (r *ItemRepository) UpdateItem(ctx context.Context, item *domain.Item) error {
	rows, err := r.db.QueryContext(ctx, updateItemSQL,
		item.ID,
		item.Value,
		item.Name,
		nullString(item.Notes),
		item.Completed,
		nullFloat(item.Duration),
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return fmt.Errorf("update item %d: no row returned", item.ID)
	}

	return rows.Scan(&item.Updated)
}

func (r *ItemRepository) DeleteItem(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, deleteItemSQL, id)
	return err
}

func scanItem(rows database.RowScanner) (*domain.Item, error) {
	var (
		item     domain.Item
		notes    sql.NullString
		duration sql.NullFloat64
	)

	if err := rows.Scan(
		&item.ID,
		&item.UserID,
		&item.Value,
		&item.Name,
		&notes,
		&item.Completed,
		&duration,
		&item.Created,
		&item.Updated,
	); err != nil {
		return nil, err
	}

	if notes.Valid {
		item.Notes = &notes.String
	}
	if duration.Valid {
		item.Duration = &duration.Float64
	}

	return &item, nil
}

func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

package postgres

import (
	"context"
	"database/sql"

	"item-stats-service/internal/platform/database"
	"item-stats-service/internal/stats/core/domain"
	"item-stats-service/internal/stats/core/ports"

	"github.com/google/uuid"
)

type StatsRepository struct {
	db database.DB
}

func NewStatsRepository(db database.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

var _ ports.StatsReaderPort = (*StatsRepository)(nil)

const (
	countCompletedSQL = `SELECT COUNT(*) FROM items WHERE completed`

	countItemsAndOwnersSQL = `
SELECT
    COUNT(*) AS total_items,
    COUNT(DISTINCT user_id) AS total_owners
FROM items`

	averageCompletedDurationSQL = `SELECT AVG(duration) FROM items WHERE completed`

	averageByOwnerSQL = `
SELECT
    user_id,
    AVG(duration) AS average_duration
FROM items
WHERE completed AND duration IS NOT NULL
GROUP BY user_id
ORDER BY user_id`

	itemLifetimeSQL = `
SELECT EXTRACT(EPOCH FROM (updated - created))::float8 / 60
FROM items
WHERE id = $1`
)

func (r *StatsRepository) CountCompleted(ctx context.Context) (int64, error) {
	var count int64
	if _, err := r.queryOne(ctx, countCompletedSQL, nil, &count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *StatsRepository) CountItemsAndOwners(ctx context.Context) (int64, int64, error) {
	var items, owners int64
	if _, err := r.queryOne(ctx, countItemsAndOwnersSQL, nil, &items, &owners); err != nil {
		return 0, 0, err
	}
	return items, owners, nil
}

func (r *StatsRepository) AverageCompletedDuration(ctx context.Context) (*float64, error) {
	var avg sql.NullFloat64
	if _, err := r.queryOne(ctx, averageCompletedDurationSQL, nil, &avg); err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

func (r *StatsRepository) AverageCompletedDurationByOwner(ctx context.Context) ([]domain.UserAverage, error) {
	rows, err := r.db.QueryContext(ctx, averageByOwnerSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]domain.UserAverage, 0)
	for rows.Next() {
		var (
			owner uuid.UUID
			avg   float64
		)
		if err := rows.Scan(&owner, &avg); err != nil {
			return nil, err
		}
		res = append(res, domain.UserAverage{UserID: owner, AverageDuration: avg})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *StatsRepository) ItemLifetimeMinutes(ctx context.Context, id int64) (float64, bool, error) {
	var minutes sql.NullFloat64
	found, err := r.queryOne(ctx, itemLifetimeSQL, []any{id}, &minutes)
	if err != nil || !found {
		return 0, false, err
	}
	// NULL timestamps count as zero
	return minutes.Float64, true, nil
}

// queryOne scans the first row into dest and reports whether there was one.
func (r *StatsRepository) queryOne(ctx context.Context, query string, args []any, dest ...any) (bool, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return false, rows.Err()
	}
	if err := rows.Scan(dest...); err != nil {
		return false, err
	}
	return true, rows.Err()
}

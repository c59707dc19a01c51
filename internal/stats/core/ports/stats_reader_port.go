package ports

import (
	"context"

	"item-stats-service/internal/stats/core/domain"
)

type StatsReaderPort interface {
	CountCompleted(ctx context.Context) (int64, error)
	// CountItemsAndOwners returns the number of items and of distinct owners.
	CountItemsAndOwners(ctx context.Context) (items int64, owners int64, err error)
	// AverageCompletedDuration is nil when no completed item has a duration.
	AverageCompletedDuration(ctx context.Context) (*float64, error)
	AverageCompletedDurationByOwner(ctx context.Context) ([]domain.UserAverage, error)
	// ItemLifetimeMinutes reports the minutes between creation and last
	// update. found is false when the item does not exist.
	ItemLifetimeMinutes(ctx context.Context, id int64) (minutes float64, found bool, err error)
}

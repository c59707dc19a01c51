package ports

import (
	"context"

	"item-stats-service/internal/items/core/domain"

	"github.com/google/uuid"
)

type ItemFilter struct {
	UserID  *uuid.UUID // nil -> all owners
	Skip    int
	Limit   int
	OrderBy string // column name, already validated
	Desc    bool
}

type ItemRepositoryPort interface {
	// ListItems returns one page plus the total count matching the filter.
	ListItems(ctx context.Context, f ItemFilter) ([]domain.Item, int64, error)

	// GetItem:
	//   item != nil, err = nil -> found
	//   item = nil,  err = nil -> not found
	GetItem(ctx context.Context, id int64) (*domain.Item, error)

	// InsertItem fills ID, Created and Updated.
	InsertItem(ctx context.Context, item *domain.Item) error

	// UpdateItem writes every mutable column and refreshes Updated.
	UpdateItem(ctx context.Context, item *domain.Item) error

	DeleteItem(ctx context.Context, id int64) error
}

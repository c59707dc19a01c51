package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"item-stats-service/internal/items/core/domain"
	"item-stats-service/internal/items/core/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidItem       = errors.New("invalid item")
	ErrItemNotFound      = errors.New("item not found")
	ErrInvalidListParams = errors.New("invalid list parameters")
)

const MaxPageSize = 100

// sortable maps the public field names to columns.
var sortable = map[string]string{
	"id":        "id",
	"value":     "value",
	"name":      "name",
	"notes":     "notes",
	"completed": "completed",
	"duration":  "duration",
	"created":   "created",
	"updated":   "updated",
}

type ManageItemsUseCase struct {
	repo   ports.ItemRepositoryPort
	logger *zap.Logger
	now    func() time.Time
}

func NewManageItemsUseCase(repo ports.ItemRepositoryPort, logger *zap.Logger) *ManageItemsUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ManageItemsUseCase{repo: repo, logger: logger, now: time.Now}
}

// ListItemsInput is an inclusive [Start, End] window plus a sort, as sent by
// react-admin.
type ListItemsInput struct {
	Start     int
	End       int
	SortField string
	SortOrder string // "ASC" / "DESC"
}

type ListItemsResult struct {
	Items []domain.Item
	Total int64
	Start int
}

type CreateItemInput struct {
	Value     string
	Name      string
	Notes     *string
	Completed bool
	Duration  *float64
}

// UpdateItemInput only changes the fields that are set. ClearNotes and
// ClearDuration reset the optional columns to NULL.
type UpdateItemInput struct {
	Value         *string
	Name          *string
	Notes         *string
	Completed     *bool
	Duration      *float64
	ClearNotes    bool
	ClearDuration bool
}

// ListOwn lists the caller's items.
func (uc *ManageItemsUseCase) ListOwn(ctx context.Context, owner uuid.UUID, in ListItemsInput) (ListItemsResult, error) {
	return uc.list(ctx, &owner, in)
}

// ListAll lists items of every owner.
func (uc *ManageItemsUseCase) ListAll(ctx context.Context, in ListItemsInput) (ListItemsResult, error) {
	return uc.list(ctx, nil, in)
}

func (uc *ManageItemsUseCase) list(ctx context.Context, owner *uuid.UUID, in ListItemsInput) (ListItemsResult, error) {
	filter, err := buildFilter(in)
	if err != nil {
		return ListItemsResult{}, err
	}
	filter.UserID = owner

	items, total, err := uc.repo.ListItems(ctx, filter)
	if err != nil {
		return ListItemsResult{}, err
	}

	return ListItemsResult{Items: items, Total: total, Start: filter.Skip}, nil
}

func buildFilter(in ListItemsInput) (ports.ItemFilter, error) {
	if in.Start < 0 || in.End < in.Start || in.End-in.Start+1 > MaxPageSize {
		return ports.ItemFilter{}, ErrInvalidListParams
	}

	column, ok := sortable[in.SortField]
	if !ok {
		return ports.ItemFilter{}, ErrInvalidListParams
	}

	var desc bool
	switch strings.ToUpper(in.SortOrder) {
	case "", "ASC":
	case "DESC":
		desc = true
	default:
		return ports.ItemFilter{}, ErrInvalidListParams
	}

	return ports.ItemFilter{
		Skip:    in.Start,
		Limit:   in.End - in.Start + 1,
		OrderBy: column,
		Desc:    desc,
	}, nil
}

func (uc *ManageItemsUseCase) Create(ctx context.Context, owner uuid.UUID, in CreateItemInput) (*domain.Item, error) {
	item := &domain.Item{
		UserID:    owner,
		Value:     strings.TrimSpace(in.Value),
		Name:      strings.TrimSpace(in.Name),
		Notes:     in.Notes,
		Completed: in.Completed,
		Duration:  in.Duration,
	}

	if err := validateItem(item); err != nil {
		return nil, err
	}

	if err := uc.repo.InsertItem(ctx, item); err != nil {
		return nil, err
	}

	if item.Completed {
		uc.logger.Info("item completed",
			zap.Int64("item_id", item.ID),
			zap.String("name", item.Name),
			zap.Time("completed_at", uc.now()))
	}

	return item, nil
}

// Get returns the caller's item. Items of other owners are reported as not
// found.
func (uc *ManageItemsUseCase) Get(ctx context.Context, owner uuid.UUID, id int64) (*domain.Item, error) {
	item, err := uc.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.UserID != owner {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (uc *ManageItemsUseCase) Update(ctx context.Context, owner uuid.UUID, id int64, in UpdateItemInput) (*domain.Item, error) {
	item, err := uc.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	if in.Value != nil {
		item.Value = strings.TrimSpace(*in.Value)
	}
	if in.Name != nil {
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.ClearNotes {
		item.Notes = nil
	} else if in.Notes != nil {
		item.Notes = in.Notes
	}
	if in.Completed != nil {
		item.Completed = *in.Completed
	}
	if in.ClearDuration {
		item.Duration = nil
	} else if in.Duration != nil {
		item.Duration = in.Duration
	}

	if err := validateItem(item); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (uc *ManageItemsUseCase) Delete(ctx context.Context, owner uuid.UUID, id int64) error {
	if _, err := uc.Get(ctx, owner, id); err != nil {
		return err
	}
	return uc.repo.DeleteItem(ctx, id)
}

func validateItem(item *domain.Item) error {
	if item.Value == "" || item.Name == "" {
		return ErrInvalidItem
	}
	if item.Duration != nil && *item.Duration < 0 {
		return ErrInvalidItem
	}
	return nil
}

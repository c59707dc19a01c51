package usecase

import (
	"context"
	"errors"

	"item-stats-service/internal/stats/core/domain"
	"item-stats-service/internal/stats/core/ports"
)

var (
	ErrInvalidItemID = errors.New("invalid item id")
	ErrItemNotFound  = errors.New("item not found")
)

type GetStatsUseCase struct {
	reader ports.StatsReaderPort
}

func NewGetStatsUseCase(reader ports.StatsReaderPort) *GetStatsUseCase {
	return &GetStatsUseCase{reader: reader}
}

func (uc *GetStatsUseCase) CompletedCount(ctx context.Context) (int64, error) {
	return uc.reader.CountCompleted(ctx)
}

// AveragePerUser is items per distinct owner, 0 when nobody owns an item.
func (uc *GetStatsUseCase) AveragePerUser(ctx context.Context) (float64, error) {
	items, owners, err := uc.reader.CountItemsAndOwners(ctx)
	if err != nil {
		return 0, err
	}
	if owners == 0 {
		return 0, nil
	}
	return float64(items) / float64(owners), nil
}

func (uc *GetStatsUseCase) AverageDurationCompleted(ctx context.Context) (*float64, error) {
	return uc.reader.AverageCompletedDuration(ctx)
}

// Totals spreads the per-owner completed averages over every owner, so owners
// with nothing completed pull the overall average down.
func (uc *GetStatsUseCase) Totals(ctx context.Context) (*domain.Totals, error) {
	_, owners, err := uc.reader.CountItemsAndOwners(ctx)
	if err != nil {
		return nil, err
	}

	perUser, err := uc.reader.AverageCompletedDurationByOwner(ctx)
	if err != nil {
		return nil, err
	}

	res := &domain.Totals{
		TotalUsers:              owners,
		AverageDurationsPerUser: perUser,
	}
	if owners > 0 {
		var sum float64
		for _, u := range perUser {
			sum += u.AverageDuration
		}
		res.OverallAverageDuration = sum / float64(owners)
	}
	return res, nil
}

// ItemAverageDuration returns the minutes item id spent between creation and
// its last update.
func (uc *GetStatsUseCase) ItemAverageDuration(ctx context.Context, id int64) (float64, error) {
	if id <= 0 {
		return 0, ErrInvalidItemID
	}

	minutes, found, err := uc.reader.ItemLifetimeMinutes(ctx, id)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrItemNotFound
	}
	return minutes, nil
}

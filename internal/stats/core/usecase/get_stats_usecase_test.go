package usecase

import (
	"context"
	"errors"
	"testing"

	"item-stats-service/internal/stats/core/domain"

	"github.com/google/uuid"
)

// fakeStatsReader is a hand-written fake for StatsReaderPort.
type fakeStatsReader struct {
	completed   int64
	items       int64
	owners      int64
	avg         *float64
	perUser     []domain.UserAverage
	lifetime    float64
	found       bool
	err         error
	lastItemID  int64
	lookupCalls int
}

func (f *fakeStatsReader) CountCompleted(ctx context.Context) (int64, error) {
	return f.completed, f.err
}

func (f *fakeStatsReader) CountItemsAndOwners(ctx context.Context) (int64, int64, error) {
	return f.items, f.owners, f.err
}

func (f *fakeStatsReader) AverageCompletedDuration(ctx context.Context) (*float64, error) {
	return f.avg, f.err
}

func (f *fakeStatsReader) AverageCompletedDurationByOwner(ctx context.Context) ([]domain.UserAverage, error) {
	return f.perUser, f.err
}

func (f *fakeStatsReader) ItemLifetimeMinutes(ctx context.Context, id int64) (float64, bool, error) {
	f.lookupCalls++
	f.lastItemID = id
	return f.lifetime, f.found, f.err
}

func TestGetStats_CompletedCount(t *testing.T) {
	uc := NewGetStatsUseCase(&fakeStatsReader{completed: 7})

	got, err := uc.CompletedCount(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}

func TestGetStats_AveragePerUser(t *testing.T) {
	uc := NewGetStatsUseCase(&fakeStatsReader{items: 9, owners: 4})

	got, err := uc.AveragePerUser(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2.25 {
		t.Fatalf("expected 2.25, got %v", got)
	}
}

func TestGetStats_AveragePerUser_NoOwners(t *testing.T) {
	uc := NewGetStatsUseCase(&fakeStatsReader{})

	got, err := uc.AveragePerUser(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestGetStats_AverageDurationCompleted_Null(t *testing.T) {
	uc := NewGetStatsUseCase(&fakeStatsReader{})

	got, err := uc.AverageDurationCompleted(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %v", *got)
	}
}

func TestGetStats_Totals(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	reader := &fakeStatsReader{
		owners: 4,
		perUser: []domain.UserAverage{
			{UserID: a, AverageDuration: 10},
			{UserID: b, AverageDuration: 30},
		},
	}
	uc := NewGetStatsUseCase(reader)

	got, err := uc.Totals(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalUsers != 4 {
		t.Errorf("expected 4 users, got %d", got.TotalUsers)
	}
	// (10 + 30) / 4
	if got.OverallAverageDuration != 10 {
		t.Errorf("expected overall 10, got %v", got.OverallAverageDuration)
	}
	if len(got.AverageDurationsPerUser) != 2 {
		t.Errorf("expected 2 per-user averages, got %d", len(got.AverageDurationsPerUser))
	}
}

func TestGetStats_Totals_NoOwners(t *testing.T) {
	uc := NewGetStatsUseCase(&fakeStatsReader{})

	got, err := uc.Totals(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalUsers != 0 || got.OverallAverageDuration != 0 {
		t.Fatalf("expected zero totals, got %+v", got)
	}
}

func TestGetStats_ReaderError(t *testing.T) {
	uc := NewGetStatsUseCase(&fakeStatsReader{err: errors.New("db down")})

	if _, err := uc.Totals(context.Background()); err == nil {
		t.Fatalf("expected error from Totals")
	}
	if _, err := uc.AveragePerUser(context.Background()); err == nil {
		t.Fatalf("expected error from AveragePerUser")
	}
}

func TestGetStats_ItemAverageDuration(t *testing.T) {
	reader := &fakeStatsReader{lifetime: 90, found: true}
	uc := NewGetStatsUseCase(reader)

	got, err := uc.ItemAverageDuration(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 90 || reader.lastItemID != 5 {
		t.Fatalf("expected 90 minutes for item 5, got %v for item %d", got, reader.lastItemID)
	}
}

func TestGetStats_ItemAverageDuration_NotFound(t *testing.T) {
	uc := NewGetStatsUseCase(&fakeStatsReader{})

	_, err := uc.ItemAverageDuration(context.Background(), 5)
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestGetStats_ItemAverageDuration_InvalidID(t *testing.T) {
	reader := &fakeStatsReader{}
	uc := NewGetStatsUseCase(reader)

	_, err := uc.ItemAverageDuration(context.Background(), 0)
	if !errors.Is(err, ErrInvalidItemID) {
		t.Fatalf("expected ErrInvalidItemID, got %v", err)
	}
	if reader.lookupCalls != 0 {
		t.Fatalf("reader should not be called")
	}
}

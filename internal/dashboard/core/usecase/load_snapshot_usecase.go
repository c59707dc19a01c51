package usecase

import (
	"context"
	"fmt"

	"item-stats-service/internal/dashboard/core/domain"
	"item-stats-service/internal/dashboard/core/ports"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	CompletedCountPath           = "/api/v1/items/completed-count"
	AveragePerUserPath           = "/api/v1/items/average_per_user"
	AverageDurationCompletedPath = "/api/v1/items/average_duration_completed"

	averagePerUserKey = "average_per_user"
)

// step fetches one path and stores its value into the snapshot.
type step struct {
	path  string
	parse func(body []byte) (string, bool, error)
	field func(s *domain.Snapshot) *domain.Field
}

var steps = []step{
	{
		path:  CompletedCountPath,
		parse: domain.ParseScalar,
		field: func(s *domain.Snapshot) *domain.Field { return &s.CompletedCount },
	},
	{
		path: AveragePerUserPath,
		parse: func(body []byte) (string, bool, error) {
			return domain.ParseField(body, averagePerUserKey)
		},
		field: func(s *domain.Snapshot) *domain.Field { return &s.AverageDurationPerUser },
	},
	{
		path:  AverageDurationCompletedPath,
		parse: domain.ParseScalar,
		field: func(s *domain.Snapshot) *domain.Field { return &s.AverageDurationCompleted },
	},
}

type LoadSnapshotUseCase struct {
	client ports.SummaryClientPort
	logger *zap.Logger
	tracer trace.Tracer
}

func NewLoadSnapshotUseCase(client ports.SummaryClientPort, logger *zap.Logger) *LoadSnapshotUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoadSnapshotUseCase{
		client: client,
		logger: logger,
		tracer: otel.Tracer("item-stats-service/dashboard"),
	}
}

// Execute runs one activation: the three summary requests, one after the
// other, in display order. onUpdate (if non-nil) receives the snapshot each
// time a field resolves.
//
// The first failure is logged and ends the activation; fields not yet
// resolved stay loading. Execute never returns an error and keeps no state
// between calls. ctx is only used for tracing; requests already in flight
// are not cancelled when the caller goes away.
func (uc *LoadSnapshotUseCase) Execute(ctx context.Context, onUpdate func(domain.Snapshot)) domain.Snapshot {
	ctx, span := uc.tracer.Start(ctx, "dashboard.load_snapshot")
	defer span.End()

	var snap domain.Snapshot

	for _, st := range steps {
		if err := uc.runStep(ctx, st, &snap); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "fetch failure")
			uc.logger.Error("error fetching dashboard data",
				zap.String("path", st.path),
				zap.Error(err))
			return snap
		}
		if onUpdate != nil && st.field(&snap).IsReady() {
			onUpdate(snap)
		}
	}

	return snap
}

func (uc *LoadSnapshotUseCase) runStep(ctx context.Context, st step, snap *domain.Snapshot) error {
	ctx, span := uc.tracer.Start(ctx, "dashboard.fetch",
		trace.WithAttributes(attribute.String("http.path", st.path)))
	defer span.End()

	body, err := uc.client.Fetch(ctx, st.path)
	if err != nil {
		return err
	}

	text, ok, err := st.parse(body)
	if err != nil {
		return fmt.Errorf("%s: %w", st.path, err)
	}
	if ok {
		*st.field(snap) = domain.Ready(text)
	}
	return nil
}

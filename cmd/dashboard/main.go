package main

import (
	"context"
	"fmt"
	"os"

	dashboardHttp "item-stats-service/internal/dashboard/adapters/http/fiber"
	"item-stats-service/internal/dashboard/adapters/tui"
	dashboardUsecase "item-stats-service/internal/dashboard/core/usecase"

	"item-stats-service/internal/platform/config"
	"item-stats-service/internal/platform/logging"
	platformOtel "item-stats-service/internal/platform/otel"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const serviceName = "item-stats-dashboard"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "dashboard:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadDashboardConfig()
	if err != nil {
		return err
	}

	// the terminal belongs to the UI, so logs go to a file
	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	shutdownTracing, err := platformOtel.Setup(ctx, serviceName, cfg.Tracing)
	if err != nil {
		return fmt.Errorf("set up tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("tracing shutdown error", zap.Error(err))
		}
	}()

	client := dashboardHttp.NewSummaryClient(cfg.APIBaseURL, cfg.APIToken, cfg.HTTPTimeout)
	loadSnapshotUC := dashboardUsecase.NewLoadSnapshotUseCase(client, logger)

	logger.Info("dashboard started", zap.String("api", cfg.APIBaseURL))

	if _, err := tea.NewProgram(tui.NewModel(ctx, loadSnapshotUC)).Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}

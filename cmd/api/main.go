package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	itemsHttp "item-stats-service/internal/items/adapters/http/fiber"
	itemsRepoPg "item-stats-service/internal/items/adapters/postgres"
	itemsUsecase "item-stats-service/internal/items/core/usecase"

	statsHttp "item-stats-service/internal/stats/adapters/http/fiber"
	statsRepoPg "item-stats-service/internal/stats/adapters/postgres"
	statsUsecase "item-stats-service/internal/stats/core/usecase"

	"item-stats-service/internal/platform/auth"
	"item-stats-service/internal/platform/config"
	"item-stats-service/internal/platform/database"
	"item-stats-service/internal/platform/logging"
	platformOtel "item-stats-service/internal/platform/otel"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	_ "item-stats-service/docs"
)

const serviceName = "item-stats-api"

// @title Item Stats Service API
// @version 1.0
// @description Item tracking with completion statistics.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token issued by the login service
func main() {
	// Config
	cfg, err := config.LoadServerConfig()
	if err != nil {
		// logger is not configured yet
		bootstrap, _ := zap.NewProduction()
		bootstrap.Fatal("invalid configuration", zap.Error(err))
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		bootstrap, _ := zap.NewProduction()
		bootstrap.Fatal("failed to build logger", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	// Tracing
	shutdownTracing, err := platformOtel.Setup(ctx, serviceName, cfg.Tracing)
	if err != nil {
		logger.Fatal("failed to set up tracing", zap.Error(err))
	}

	// DB connection
	db, err := database.Open(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	sqlDB := database.Wrap(db)
	if err := itemsRepoPg.EnsureSchema(ctx, sqlDB); err != nil {
		logger.Fatal("failed to prepare schema", zap.Error(err))
	}

	// Repositories
	itemRepository := itemsRepoPg.NewItemRepository(sqlDB)
	statsRepository := statsRepoPg.NewStatsRepository(sqlDB)

	// Usecases
	manageItemsUC := itemsUsecase.NewManageItemsUseCase(itemRepository, logger.Named("items"))
	getStatsUC := statsUsecase.NewGetStatsUseCase(statsRepository)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New(cors.Config{ExposeHeaders: "Content-Range"}))
	app.Use(platformOtel.Middleware(serviceName))
	app.Use(logging.RequestLogger(logger))

	items := app.Group("/api/v1/items")

	// stats endpoints, public; registered first so /:id does not shadow them
	statsHttp.NewStatsHandler(getStatsUC).Register(items)

	// items endpoints
	verifier := auth.NewVerifier(cfg.JWTSecret, cfg.JWTIssuer)
	itemsHttp.NewItemHandler(manageItemsUC).Register(items, verifier.Middleware())

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			logger.Error("fiber stopped", zap.Error(err))
		}
	}()

	logger.Info("server started", zap.String("addr", cfg.HTTPAddr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("fiber shutdown error", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracing shutdown error", zap.Error(err))
	}

	logger.Info("server exiting")
}

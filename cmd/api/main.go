package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	analyticsHttp "link-analytics-service/internal/analytics/adapters/http/fiber"
	analyticsUsecase "link-analytics-service/internal/analytics/core/usecase"

	"link-analytics-service/internal/clicks/adapters/geo"
	clicksHttp "link-analytics-service/internal/clicks/adapters/http/fiber"
	clicksUsecase "link-analytics-service/internal/clicks/core/usecase"

	"link-analytics-service/internal/platform/auth"
	"link-analytics-service/internal/platform/config"
	"link-analytics-service/internal/platform/logging"
	"link-analytics-service/internal/platform/metrics"
	"link-analytics-service/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "link-analytics-service/docs"
)

// @title Link Analytics Service API
// @version 1.0
// @description Click ingestion and period-comparison analytics for short links.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("info")
		log.Fatal().Err(err).Msg("load config")
	}
	logging.Setup(cfg.Logging.Level)

	// DB connection
	startCtx, cancelStart := context.WithTimeout(context.Background(), 15*time.Second)
	backend, err := storage.Open(startCtx, cfg.Database)
	cancelStart()
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("open store")
	}
	defer backend.Close()

	// Usecases
	recordClickUC := clicksUsecase.NewRecordClickUseCase(backend.Clicks, geo.NewHeaderResolver(), cfg.Clicks.VisitorSalt)
	aggregator := analyticsUsecase.NewAggregator(backend.Reader,
		analyticsUsecase.WithTopLimit(cfg.Analytics.TopLimit),
	)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		AppName:               "link-analytics-service",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logging.RequestLogger())
	app.Use(metrics.Middleware())

	mw := auth.NewMiddleware(cfg.Auth.JWTSecret, cfg.Auth.IngestToken)

	// clicks endpoints
	clicksHandler := clicksHttp.NewClickHandler(recordClickUC)
	clicks := app.Group("/clicks", mw.RequireIngestToken())
	clicks.Post("/", clicksHandler.CreateClick)
	clicks.Post("/bulk", clicksHandler.BulkCreateClicks)

	// analytics endpoints
	analyticsHandler := analyticsHttp.NewAnalyticsHandler(aggregator, cfg.Analytics.QueryTimeout)
	analytics := app.Group("/analytics", mw.RequireUser())
	analytics.Get("/dashboard", analyticsHandler.GetDashboard)
	analytics.Get("/dashboard/export", analyticsHandler.ExportDashboardCSV)
	analytics.Get("/urls/:id", analyticsHandler.GetURLAnalytics)
	analytics.Get("/urls/:id/export", analyticsHandler.ExportURLAnalyticsCSV)

	// ops
	app.Get("/healthz", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := backend.Ping(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", metrics.Handler())

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	if cfg.Auth.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is empty, analytics routes will reject every token")
	}

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.Server.Addr); err != nil {
			log.Error().Err(err).Msg("fiber stopped")
		}
	}()

	log.Info().Str("addr", cfg.Server.Addr).Str("driver", cfg.Database.Driver).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info().Msg("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("fiber shutdown error")
	}

	log.Info().Msg("server exiting")
}

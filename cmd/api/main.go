package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	authHttp "fleet-dashboard-service/internal/auth/adapters/http/fiber"
	authRepoPg "fleet-dashboard-service/internal/auth/adapters/postgres"
	authRedis "fleet-dashboard-service/internal/auth/adapters/redis"
	authUsecase "fleet-dashboard-service/internal/auth/core/usecase"

	dashboardHttp "fleet-dashboard-service/internal/dashboard/adapters/http/fiber"
	dashboardRepoPg "fleet-dashboard-service/internal/dashboard/adapters/postgres"
	dashboardUsecase "fleet-dashboard-service/internal/dashboard/core/usecase"

	telemetryHttp "fleet-dashboard-service/internal/telemetry/adapters/http/fiber"
	telemetryRepoPg "fleet-dashboard-service/internal/telemetry/adapters/postgres"
	telemetryUsecase "fleet-dashboard-service/internal/telemetry/core/usecase"

	"fleet-dashboard-service/internal/platform/config"
	"fleet-dashboard-service/internal/platform/logger"
	"fleet-dashboard-service/internal/platform/postgres"

	"github.com/gofiber/fiber/v2"
	goredis "github.com/redis/go-redis/v9"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	_ "fleet-dashboard-service/docs"
)

// @title Fleet Dashboard Service API
// @version 1.0
// @description Aggregates vehicle telemetry into fleet monitoring dashboards.
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	// DB connection
	startCtx, cancelStart := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelStart()

	db, err := postgres.Open(startCtx, cfg.Postgres.DSN, postgres.Options{
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		zl.Fatal("postgres unavailable", zap.Error(err))
	}
	defer db.Close()

	if cfg.Postgres.MigrationsDir != "" {
		if err := postgres.RunMigrations(startCtx, db, cfg.Postgres.MigrationsDir, zl); err != nil {
			zl.Fatal("migrations failed", zap.Error(err))
		}
	}

	// Redis (sessions)
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(startCtx).Err(); err != nil {
		// sessions fail per request until redis is back
		zl.Warn("redis ping failed", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
	}

	// Dashboard
	loc, err := time.LoadLocation(cfg.Dashboard.TimeZone)
	if err != nil {
		zl.Fatal("invalid dashboard time zone", zap.Error(err))
	}
	catalog, err := dashboardUsecase.LookupCatalog(cfg.Dashboard.Locale)
	if err != nil {
		zl.Fatal("invalid dashboard locale", zap.Error(err))
	}

	aggregator := dashboardUsecase.NewAggregator(
		dashboardUsecase.WithRiskPolicy(riskPolicy(cfg.Dashboard)),
		dashboardUsecase.WithCatalog(catalog),
		dashboardUsecase.WithLocation(loc),
	)
	eventRowRepository := dashboardRepoPg.NewEventRowRepository(postgres.NewQuerier(db))
	getDashboardUC := dashboardUsecase.NewGetDashboardUseCase(eventRowRepository, aggregator,
		dashboardUsecase.WithRowLimit(cfg.Dashboard.MaxRows),
		dashboardUsecase.WithLogger(zl.Named("dashboard")),
	)

	// Auth
	userRepository := authRepoPg.NewUserRepository(postgres.NewQuerier(db))
	sessionStore := authRedis.NewSessionStore(rdb, cfg.Session.PersistentTTL, cfg.Session.TTL)
	loginUC := authUsecase.NewLoginUseCase(userRepository, sessionStore, zl.Named("auth"))
	sessionUC := authUsecase.NewSessionUseCase(sessionStore)

	// Telemetry
	vehicleEventRepository := telemetryRepoPg.NewVehicleEventRepository(db)
	storeEventUC := telemetryUsecase.NewStoreEventUseCase(vehicleEventRepository,
		telemetryUsecase.WithLogger(zl.Named("telemetry")),
	)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(logger.RequestLogger(zl.Named("http")))

	api := app.Group("/api")
	requireSession := authHttp.RequireSession(sessionUC, cfg.Session.CookieName)

	// auth endpoints
	authHandler := authHttp.NewAuthHandler(loginUC, sessionUC, authHttp.CookieOptions{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.CookieSecure,
	})
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/logout", authHandler.Logout)
	api.Get("/auth/me", requireSession, authHandler.Me)

	// dashboard endpoints
	dashboardHandler := dashboardHttp.NewDashboardHandler(getDashboardUC)
	api.Get("/dashboard", requireSession, dashboardHandler.GetDashboard)

	// telemetry endpoints
	eventsHandler := telemetryHttp.NewEventHandler(storeEventUC)
	requireKey := telemetryHttp.RequireAPIKey(cfg.Ingest.APIKey)
	api.Post("/events", requireKey, eventsHandler.CreateEvent)
	api.Post("/events/bulk", requireKey, eventsHandler.BulkCreateEvents)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTP.Addr); err != nil {
			zl.Error("fiber stopped", zap.Error(err))
		}
	}()

	zl.Info("server started", zap.String("addr", cfg.HTTP.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	zl.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		zl.Error("fiber shutdown error", zap.Error(err))
	}

	zl.Info("server exiting")
}

func riskPolicy(cfg config.DashboardConfig) dashboardUsecase.RiskPolicy {
	p := dashboardUsecase.DefaultRiskPolicy()
	if cfg.FatigueWeight > 0 {
		p.FatigueWeight = cfg.FatigueWeight
	}
	if cfg.SpeedingWeight > 0 {
		p.SpeedingWeight = cfg.SpeedingWeight
	}
	if cfg.PanicWeight > 0 {
		p.PanicWeight = cfg.PanicWeight
	}
	return p
}

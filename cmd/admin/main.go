package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httptransport "github.com/eltonkaiton/mombasa-admin/internal/api/http"
	"github.com/eltonkaiton/mombasa-admin/internal/api/http/handlers"
	"github.com/eltonkaiton/mombasa-admin/internal/audit"
	"github.com/eltonkaiton/mombasa-admin/internal/auth"
	"github.com/eltonkaiton/mombasa-admin/internal/backend"
	"github.com/eltonkaiton/mombasa-admin/internal/config"
	"github.com/eltonkaiton/mombasa-admin/internal/events"
	"github.com/eltonkaiton/mombasa-admin/internal/observability"
	"github.com/eltonkaiton/mombasa-admin/internal/persistence"
	"github.com/eltonkaiton/mombasa-admin/internal/repository"
	"github.com/eltonkaiton/mombasa-admin/internal/service"
	"github.com/eltonkaiton/mombasa-admin/internal/session"
	"github.com/eltonkaiton/mombasa-admin/internal/worker"
)

const auditMemoryLimit = 500

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if pg.Configured() && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var store session.Store
	if redis.Configured() {
		store = session.NewRedisStore(redis.Client, cfg.Session.TTL())
	} else {
		store = session.NewMemoryStore(cfg.Session.TTL())
	}
	sessions := session.NewManager(store, cfg.Session, logger)

	var auditRepo repository.AuditRepository
	if pg.Configured() {
		auditRepo = repository.NewAuditRepository(pg.PoolHandle())
	} else {
		auditRepo = repository.NewMemoryAuditRepository(auditMemoryLimit)
	}

	metrics := observability.NewMetrics()
	client := backend.NewClient(cfg.Backend, logger, backend.WithObserver(metrics))

	dispatcher := events.NewInMemoryDispatcher()
	recorder := audit.NewRecorder(auditRepo, logger)
	worker.StartAuditWorker(dispatcher, recorder, logger)

	deps := service.Dependencies{Dispatcher: dispatcher, Metrics: metrics, Logger: logger}
	authService := service.NewAuthService(client, deps)
	staffService := service.NewStaffService(client, deps)
	userService := service.NewUserService(client, deps)
	bookingService := service.NewBookingService(client, deps)
	supplierService := service.NewSupplierService(client, deps)
	reportService := service.NewReportService(client, deps)
	activityService := service.NewActivityService(recorder, deps)

	render := handlers.NewRenderer(sessions, logger)
	app, err := httptransport.NewServer(httptransport.ServerConfig{
		AppName:        cfg.App.Name,
		ReloadViews:    cfg.App.Env == "development",
		RequestTimeout: cfg.App.RequestTimeout(),
		Logger:         logger,
		Metrics:        metrics,
		Sessions:       sessions,
	}, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, client.BaseURL(), pg, redis),
		Auth:           handlers.NewAuthHandler(authService, sessions, render, logger),
		Staff:          handlers.NewStaffHandler(staffService, render),
		Users:          handlers.NewUsersHandler(userService, render),
		Bookings:       handlers.NewBookingsHandler(bookingService, render),
		Suppliers:      handlers.NewSuppliersHandler(supplierService, render),
		Reports:        handlers.NewReportsHandler(reportService, activityService, render),
		AuthMiddleware: auth.NewSessionMiddleware(sessions, "/adminlogin", logger),
		Metrics:        metrics,
	})
	if err != nil {
		logger.Fatal("failed to build server", zap.Error(err))
	}

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("backend", client.BaseURL()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}

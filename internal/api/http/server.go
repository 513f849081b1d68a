package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/eltonkaiton/mombasa-admin/internal/observability"
	"github.com/eltonkaiton/mombasa-admin/internal/session"
)

// ServerConfig carries what the fiber app itself needs.
type ServerConfig struct {
	AppName        string
	ReloadViews    bool
	RequestTimeout time.Duration
	Logger         *zap.Logger
	Metrics        *observability.Metrics
	Sessions       *session.Manager
}

// NewServer builds the fiber app with views, middlewares and routes.
func NewServer(cfg ServerConfig, routes RouteConfig) (*fiber.App, error) {
	engine, err := NewViewEngine(cfg.ReloadViews)
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		Views:                 engine,
		DisableStartupMessage: true,
	})
	RegisterMiddlewares(app, logger, cfg.Metrics, cfg.Sessions, cfg.RequestTimeout)
	if routes.Metrics == nil {
		routes.Metrics = cfg.Metrics
	}
	RegisterRoutes(app, routes)
	return app, nil
}

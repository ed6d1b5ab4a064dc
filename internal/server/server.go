// internal/server/server.go
package server

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"design-analysis/internal/analysis"
	"design-analysis/internal/common/config"
	"design-analysis/internal/common/logger"
	"design-analysis/internal/common/observability"
)

// Server is the HTTP transport shell around the analysis pipeline.
type Server struct {
	echo     *echo.Echo
	config   *config.Config
	analyzer *analysis.Analyzer
	obs      *observability.Observability
	logger   logger.Logger
}

func New(cfg *config.Config, analyzer *analysis.Analyzer, obs *observability.Observability, log logger.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: cfg.CORS.AllowMethods,
		AllowHeaders: cfg.CORS.AllowHeaders,
	}))

	s := &Server{
		echo:     e,
		config:   cfg,
		analyzer: analyzer,
		obs:      obs,
		logger:   log.WithFields(map[string]interface{}{"component": "server"}),
	}

	e.GET("/health", s.handleHealth)
	e.POST("/analyze", s.handleAnalyze)

	return s
}

// Start blocks serving on the configured address until Shutdown.
func (s *Server) Start() error {
	s.echo.Server.ReadTimeout = config.GetDuration(s.config.Server.ReadTimeout)
	s.echo.Server.WriteTimeout = config.GetDuration(s.config.Server.WriteTimeout)
	return s.echo.Start(s.config.Server.Address())
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Echo exposes the underlying router, used by handler tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

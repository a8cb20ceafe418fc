// Package api serves the HTTP front end: a stateless renderer and per-user
// sessions that submit text to the remote service and re-render its answer.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ufal/maskit-web/pkg/config"
	"github.com/ufal/maskit-web/pkg/maskit"
	"github.com/ufal/maskit-web/pkg/metrics"
	"github.com/ufal/maskit-web/pkg/session"
)

// Server is the HTTP API server.
type Server struct {
	router     *gin.Engine
	httpServer *http.Server

	cfg      *config.Config
	maskit   *maskit.Service
	sessions *session.Manager
	metrics  metrics.Metrics
}

// NewServer creates the server and registers all routes.
func NewServer(cfg *config.Config, svc *maskit.Service, sessions *session.Manager, m metrics.Metrics) *Server {
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		router:   router,
		cfg:      cfg,
		maskit:   svc,
		sessions: sessions,
		metrics:  m,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(securityHeaders(), requestMetrics(s.metrics))

	s.router.GET("/health", s.healthHandler)
	if s.metrics != nil {
		s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.GetRegistry(), promhttp.HandlerOpts{})))
	}

	api := s.router.Group("/api")
	api.GET("/info", s.infoHandler)
	api.POST("/render", s.renderHandler)

	sessions := api.Group("/sessions")
	sessions.POST("", s.createSessionHandler)
	sessions.GET("/:id", s.getSessionHandler)
	sessions.DELETE("/:id", s.deleteSessionHandler)
	sessions.POST("/:id/submit", s.submitHandler)
	sessions.PUT("/:id/options", s.optionsHandler)
	sessions.GET("/:id/output", s.outputHandler)
	sessions.GET("/:id/download", s.downloadHandler)
	sessions.GET("/:id/stats/download", s.statsDownloadHandler)
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on the configured port and blocks until the server stops.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              ":" + s.cfg.Server.HTTPPort,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("HTTP server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Package api provides the operational HTTP surface of the bot.
// It exposes component health, Prometheus metrics and a manual dispatch trigger.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements the ops HTTP server using Gin framework
type HTTPServerAdapter struct {
	router         *gin.Engine
	server         *http.Server
	config         ServerConfig
	healthChecker  ports.SystemHealthChecker
	dispatcher     ports.DispatchService
	metricsHandler http.Handler
	logger         ports.Logger
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config              ServerConfig
	SystemHealthChecker ports.SystemHealthChecker
	DispatchService     ports.DispatchService
	// MetricsHandler defaults to the global Prometheus registry
	MetricsHandler http.Handler
	Logger         ports.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	metricsHandler := opts.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}

	router := gin.New()
	router.Use(gin.Recovery())

	s := &HTTPServerAdapter{
		router:         router,
		config:         opts.Config,
		healthChecker:  opts.SystemHealthChecker,
		dispatcher:     opts.DispatchService,
		metricsHandler: metricsHandler,
		logger:         opts.Logger,
	}
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", opts.Config.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.setupRoutes()
	return s, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.SystemHealthChecker == nil {
		return errors.NewValidationError("system health checker is required")
	}
	if opts.DispatchService == nil {
		return errors.NewValidationError("dispatch service is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

func (s *HTTPServerAdapter) setupRoutes() {
	s.router.GET("/health", s.getHealth)
	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))

	api := s.router.Group("/api")
	{
		api.POST("/dispatch", s.runDispatch)
	}
}

// Start serves until Shutdown is called
func (s *HTTPServerAdapter) Start(ctx context.Context) error {
	s.logger.Info("Starting ops HTTP server", ports.F("port", s.config.Port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *HTTPServerAdapter) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}
	return nil
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

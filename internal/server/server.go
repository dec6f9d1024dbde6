package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ridwanfathin/invoice-register-service/internal/config"
	"github.com/ridwanfathin/invoice-register-service/internal/logger"
	"github.com/ridwanfathin/invoice-register-service/internal/metrics"
	"github.com/ridwanfathin/invoice-register-service/internal/middleware"
	"github.com/ridwanfathin/invoice-register-service/internal/model"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker reports whether a backing store is reachable
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// RouteRegistrar is implemented by handlers that mount their own routes
type RouteRegistrar interface {
	RegisterRoutes(router gin.IRouter)
}

// Options holds the optional collaborators of the server
type Options struct {
	// Metrics records HTTP metrics when set
	Metrics *metrics.Metrics

	// Gatherer is served on /metrics when set
	Gatherer prometheus.Gatherer

	// Database is pinged by /health when set
	Database HealthChecker
}

// Server represents the HTTP server for the invoice register service
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	config     *config.Config
	log        *logger.Logger
	database   HealthChecker
}

// NewServer creates and configures a new server instance
func NewServer(cfg *config.Config, log *logger.Logger, opts Options) *Server {
	router := gin.New()

	router.Use(middleware.Trace())
	router.Use(middleware.RequestResponseLogger(log.WithComponent("http"), middleware.LoggerConfig{
		LogBodies: cfg.LogLevel == "debug",
	}))
	if opts.Metrics != nil {
		router.Use(middleware.Metrics(opts.Metrics))
	}
	router.Use(middleware.Recovery())

	server := &Server{
		router:   router,
		config:   cfg,
		log:      log,
		database: opts.Database,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}

	server.setupRoutes(opts.Gatherer)

	return server
}

// RegisterHandlers mounts the routes of every handler
func (s *Server) RegisterHandlers(handlers ...RouteRegistrar) {
	for _, h := range handlers {
		h.RegisterRoutes(s.router)
	}
}

// GetRouter returns the gin router instance
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// setupRoutes configures the operational routes
func (s *Server) setupRoutes(gatherer prometheus.Gatherer) {
	s.router.GET("/health", s.health)

	if gatherer != nil {
		s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	// Swagger UI at /api-docs/index.html
	swaggerHandler := ginSwagger.WrapHandler(swaggerFiles.Handler)
	s.router.GET("/api-docs/*any", swaggerHandler)

	s.router.GET("/api-docs", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/api-docs/index.html")
	})
}

// health handles the GET /health endpoint
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse
// @Failure 503 {object} model.HealthResponse
// @Router /health [get]
func (s *Server) health(c *gin.Context) {
	if s.database == nil {
		c.JSON(http.StatusOK, model.HealthResponse{Status: "ok"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := s.database.Ping(ctx); err != nil {
		s.log.WithContext(ctx).Warnw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, model.HealthResponse{
			Status:   "unavailable",
			Database: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, model.HealthResponse{Status: "ok", Database: "ok"})
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM,
// then shuts down gracefully.
func (s *Server) Start() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	serveErr := make(chan error, 1)
	go func() {
		s.log.Infow("server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case sig := <-quit:
		s.log.Infow("shutting down server", "signal", sig.String())
	}

	if err := s.Shutdown(); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.log.Infow("server exited gracefully")
	return nil
}

// Shutdown gracefully stops the server within the configured shutdown timeout
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}

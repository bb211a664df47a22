package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/GriffinCanCode/NumericalMethods/backend/internal/api/http"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/api/middleware"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/api/ws"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/infrastructure/config"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/providers/numerics"
	"github.com/GriffinCanCode/NumericalMethods/backend/internal/service"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	handler  http.Handler
	http     *http.Server
	registry *service.Registry
	source   *config.Source
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
	tracer   *tracing.Tracer
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	logger.Info("Initializing Numerical Methods server",
		zap.String("port", cfg.Server.Port),
		zap.String("numerics_config", cfg.Numerics.Path),
	)

	source, err := config.NewSource(cfg.Numerics.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load numerics config: %w", err)
	}

	// Each server owns its registry so tests can build several
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := monitoring.NewMetrics(promRegistry)
	logger.Info("Performance monitoring initialized")

	tracer := tracing.New("numerics-backend", logger.Logger)
	logger.Info("Distributed tracing initialized")

	provider := numerics.NewProvider(source,
		numerics.WithLogger(logger),
		numerics.WithMetrics(metrics),
		numerics.WithTracer(tracer),
	)
	serviceRegistry := service.NewRegistry()
	if err := serviceRegistry.Register(provider); err != nil {
		return nil, fmt.Errorf("failed to register numerics provider: %w", err)
	}
	stats := serviceRegistry.Stats()
	logger.Info("Registered service providers",
		zap.Any("services", stats["total_services"]),
		zap.Any("tools", stats["total_tools"]),
	)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))
	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.Server.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.Server.CORSOrigins
	}
	router.Use(middleware.CORS(corsCfg))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := apihttp.NewHandlers(apihttp.Options{
		Registry:    serviceRegistry,
		Numerics:    provider,
		Metrics:     metrics,
		Logger:      logger,
		AllowReload: cfg.Numerics.AllowReload,
	})
	handlers.Register(router)

	wsHandler := ws.NewHandler(serviceRegistry, metrics, logger)
	router.GET("/stream", wsHandler.HandleConnection)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{Registry: promRegistry})))

	handler, err := compress(router)
	if err != nil {
		return nil, err
	}

	logger.Info("Server initialized successfully")

	return &Server{
		router:  router,
		handler: handler,
		http: &http.Server{
			Addr:              cfg.Server.Addr(),
			Handler:           handler,
			ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		},
		registry: serviceRegistry,
		source:   source,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
		tracer:   tracer,
	}, nil
}

// Handler returns the root handler, gzip included
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run starts the HTTP server and blocks until it stops. A clean Shutdown returns nil.
func (s *Server) Run() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests, then releases the tracer and logger
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	if timeout := s.config.Server.ShutdownTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	err := s.http.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Graceful shutdown failed", zap.Error(err))
	}

	s.tracer.Close()
	_ = s.logger.Sync()
	return err
}

func newLogger(cfg config.LogConfig) (*logging.Logger, error) {
	base := logging.DefaultConfig()
	if cfg.Development {
		base = logging.DevelopmentConfig()
	}
	if cfg.Level != "" {
		base.Level = cfg.Level
	}
	return logging.New(base)
}

// compress gzips responses above 1KB. WebSocket upgrades bypass the wrapper
// since they need the raw connection.
func compress(next http.Handler) (http.Handler, error) {
	wrap, err := gzhttp.NewWrapper(gzhttp.MinSize(1024))
	if err != nil {
		return nil, fmt.Errorf("failed to build gzip wrapper: %w", err)
	}
	gz := wrap(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if websocket.IsWebSocketUpgrade(r) {
			next.ServeHTTP(w, r)
			return
		}
		gz.ServeHTTP(w, r)
	}), nil
}

// Package server assembles the tracker service: cache, provider,
// resolver, tracker, and the HTTP surface.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"nba-worm-tracker/internal/cache"
	"nba-worm-tracker/internal/config"
	"nba-worm-tracker/internal/datausage"
	"nba-worm-tracker/internal/http/handlers"
	"nba-worm-tracker/internal/http/middleware"
	"nba-worm-tracker/internal/logging"
	"nba-worm-tracker/internal/metrics"
	"nba-worm-tracker/internal/providers"
	"nba-worm-tracker/internal/providers/nbacdn"
	"nba-worm-tracker/internal/resolver"
	"nba-worm-tracker/internal/tracker"
)

var metricsSetup = metrics.Setup

// Server owns every long-lived component of the process.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         cache.Store
	usage         *datausage.Counter
	provider      providers.DataProvider
	tracker       *tracker.Tracker
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	store := buildStore(cfg, logger)
	usage := datausage.NewCounter(store, logger)

	if provider == nil {
		provider = nbacdn.NewClient(nbacdn.Config{
			BaseURL:     cfg.NBA.BaseURL,
			ScheduleURL: cfg.NBA.ScheduleURL,
			Cache:       store,
			Usage:       usage,
			Logger:      logger,
			Metrics:     recorder,
		})
	}
	provider = providers.NewRetryingProvider(provider, logger, 0, 0)

	var resolverOpts []resolver.Option
	if loc := providers.ResolveTimezone(cfg.Timezone); loc != nil {
		resolverOpts = append(resolverOpts, resolver.WithLocation(loc))
	}
	res := resolver.New(provider, logger, resolverOpts...)

	trk := tracker.New(res, provider, cfg.Team, logger, recorder,
		tracker.WithInterval(cfg.PollInterval))

	handler := handlers.NewHandler(trk, provider, usage, logger)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, handler)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         store,
		usage:         usage,
		provider:      provider,
		tracker:       trk,
		httpServer:    netHTTPServer{srv: srv},
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// buildStore selects the response-cache backend. A Redis connection
// failure degrades to the in-memory store rather than refusing to start.
func buildStore(cfg config.Config, logger *slog.Logger) cache.Store {
	if cfg.Cache.Backend == config.CacheBackendRedis {
		store, err := cache.NewRedisStore(cfg.Cache.RedisURL)
		if err == nil {
			logging.Info(logger, "using redis response cache")
			return store
		}
		logging.Warn(logger, "redis unavailable, using in-memory cache", "error", err)
	}
	return cache.NewMemoryStore()
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", handler)
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: mux,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

// Run starts the tracker and HTTP servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.tracker.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.tracker.Stop()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if closer, ok := s.store.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil && s.logger != nil {
			s.logger.Warn("cache close failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

// Tracker exposes the tracker (useful for tests).
func (s *Server) Tracker() *tracker.Tracker {
	return s.tracker
}

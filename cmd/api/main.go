package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"textstats/internal/analyzer"
	"textstats/internal/config"
	hhttp "textstats/internal/handler/http"
	hanalyze "textstats/internal/handler/http/analyze"
	hauth "textstats/internal/handler/http/auth"
	"textstats/internal/handler/http/requestid"
	"textstats/internal/observability/logging"
	"textstats/internal/observability/tracing"
	analyzeUC "textstats/internal/usecase/analyze"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	registry := analyzer.NewRegistry(cfg.Analysis.DefaultLocale)
	// Warm the default analyzer so the first request does not pay for
	// locale parsing.
	registry.Get("")

	svc := analyzeUC.Service{Registry: registry}
	version := getVersion()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler, limiter := setupRoutes(cfg, svc, registry, version, logger)
	if limiter != nil {
		go limiter.Cleanup(ctx, cfg.RateLimit.CleanupInterval, cfg.RateLimit.VisitorTTL)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.Addr),
			slog.String("version", version),
			slog.String("default_locale", registry.DefaultLocale()),
			slog.Bool("auth_enabled", cfg.Auth.Enabled()),
			slog.Bool("rate_limit_enabled", cfg.RateLimit.Enabled))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func getVersion() string {
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}

// setupRoutes builds the route tree: public endpoints (health, metrics,
// token issuance) bypass auth, the analysis endpoints sit behind it when a
// secret is configured.
func setupRoutes(
	cfg *config.Config,
	svc analyzeUC.Service,
	registry *analyzer.Registry,
	version string,
	logger *slog.Logger,
) (http.Handler, *hhttp.RateLimiter) {
	publicMux := http.NewServeMux()
	publicMux.Handle("/health", &hhttp.HealthHandler{Registry: registry, Version: version})
	publicMux.Handle("/ready", &hhttp.ReadyHandler{Registry: registry})
	publicMux.Handle("/live", &hhttp.LiveHandler{})
	publicMux.Handle("/metrics", hhttp.MetricsHandler())

	toolMux := http.NewServeMux()
	hanalyze.Register(toolMux, svc)

	var tools http.Handler = toolMux
	if cfg.Auth.Enabled() {
		issuer := &hauth.Issuer{
			Secret:   []byte(cfg.Auth.Secret),
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
			Logger:   logger,
		}
		publicMux.Handle("POST /auth/token", issuer.TokenHandler())
		tools = hauth.Authz([]byte(cfg.Auth.Secret))(tools)
	}

	rootMux := http.NewServeMux()
	rootMux.Handle("/health", publicMux)
	rootMux.Handle("/ready", publicMux)
	rootMux.Handle("/live", publicMux)
	rootMux.Handle("/metrics", publicMux)
	if cfg.Auth.Enabled() {
		rootMux.Handle("/auth/token", publicMux)
	}
	rootMux.Handle("/", tools)

	var limiter *hhttp.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = hhttp.NewRateLimiter(cfg.RateLimit.RequestsPerSec, cfg.RateLimit.Burst)
	} else {
		logger.Warn("rate limiting is disabled")
	}

	return applyMiddleware(cfg, rootMux, limiter, logger), limiter
}

// applyMiddleware wraps the route tree. Order, outermost first: request ID,
// rate limit, tracing, recovery, logging, body limit, metrics.
func applyMiddleware(cfg *config.Config, handler http.Handler, limiter *hhttp.RateLimiter, logger *slog.Logger) http.Handler {
	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(cfg.Server.MaxBodyBytes)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	if limiter != nil {
		chain = limiter.Middleware()(chain)
	}
	chain = requestid.Middleware(chain)
	return chain
}

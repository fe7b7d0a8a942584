// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/starford/munro/internal/api"
	"github.com/starford/munro/internal/dataset"
	"github.com/starford/munro/internal/mcpserver"
	"github.com/starford/munro/internal/munroservice"
	"github.com/starford/munro/internal/sse"
)

// loadStore loads the dataset with the fail-open policy: a load failure is
// logged and the process keeps serving an empty collection. Queries against
// an empty Store simply return empty results.
func loadStore(cfg *Config, logger *slog.Logger) *dataset.Store {
	loader := dataset.NewLoader(
		dataset.WithStrict(cfg.Dataset.Strict),
		dataset.WithLogger(logger),
	)
	store, err := loader.Load(cfg.Dataset.Path)
	if err != nil {
		logger.Error("dataset load failed; serving empty collection",
			slog.String("path", cfg.Dataset.Path),
			slog.String("error", err.Error()))
		return dataset.NewStore(nil)
	}
	return store
}

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("dataset_path", cfg.Dataset.Path),
		slog.Bool("dataset_strict", cfg.Dataset.Strict),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Load the dataset once; it is immutable for the process lifetime.
	store := loadStore(cfg, logger)

	// SSE broker for dataset drift notifications.
	broker := sse.NewBroker(2 * time.Second)

	// Build query service and router.
	svc := munroservice.NewService(store)
	apiRouter := api.NewRouter(svc, cfg.Auth.AuthEnabled(), cfg.Auth.Token, broker)

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(api.HealthResponse{Status: "ok", Munros: store.Len()})
	})

	// Mount API routes under /api.
	r.Mount("/api", apiRouter)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Watch the source file for drift (log + SSE only, never a reload).
	if cfg.Dataset.Watch {
		g.Go(func() error {
			if err := dataset.Watch(gCtx, store, logger, func(kind, path string) {
				broker.PublishDatasetEvent(kind, path)
			}); err != nil {
				logger.Warn("watcher unavailable", slog.String("error", err.Error()))
			}
			return nil
		})
	}

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}
		broker.Close()

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// RunMCP starts the MCP server on stdio. The logger goes to stderr because
// stdout carries the MCP transport.
func RunMCP(_ context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	store := loadStore(cfg, logger)
	svc := munroservice.NewService(store)

	logger.Info("MCP server starting on stdio", slog.Int("munros", store.Len()))
	return mcpserver.New(svc, store).ServeStdio()
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httphandler "github.com/Grandillionaire/council-landing/internal/adapter/driving/http"
	webhandler "github.com/Grandillionaire/council-landing/internal/adapter/driving/web"
	"github.com/Grandillionaire/council-landing/internal/config"
	"github.com/Grandillionaire/council-landing/internal/theme"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on invalid env vars).
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"variant", cfg.Variant,
		"base_url", cfg.BaseURL,
		"cache_max_age", cfg.CacheMaxAge,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Parse the design tokens.
	th, err := theme.Load()
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}
	slog.Info("theme loaded", "colors", len(th.Colors), "keyframes", len(th.Keyframes))

	// 4. Build the pages and register routes.
	webHandler, err := webhandler.NewHandler(cfg.Variant, cfg.BaseURL, th, cfg.CacheMaxAge, slog.Default())
	if err != nil {
		return fmt.Errorf("build pages: %w", err)
	}
	mux := http.NewServeMux()
	webhandler.RegisterRoutes(mux, webHandler)
	httphandler.RegisterRoutes(mux, httphandler.NewHandler(slog.Default()))

	// Apply middleware.
	handler := httphandler.ApplyMiddleware(mux, slog.Default())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// 5. Wait for shutdown signal or listener failure.
	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	// 6. Graceful shutdown with 10s drain.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}

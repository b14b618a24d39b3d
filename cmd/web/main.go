package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/semantic-product-search/internal/app"
	"github.com/semantic-product-search/internal/config"
	"github.com/semantic-product-search/internal/handlers"
	"github.com/semantic-product-search/internal/middleware"
	"github.com/semantic-product-search/internal/services"
	"github.com/semantic-product-search/internal/web"
	schemaconfig "github.com/semantic-product-search/pkg/schema/config"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	cfg := config.GetConfig()
	logger := config.NewLogger(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("server exited with error")
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, err := app.OpenRepository(ctx, cfg, schemaconfig.GetConfig(), logger)
	if err != nil {
		return fmt.Errorf("open %s repository: %w", cfg.VectorBackend, err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error().Err(err).Msg("error closing repository")
		}
	}()

	renderer, err := web.NewRenderer()
	if err != nil {
		return err
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	// Middleware
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	e.StaticFS("/static", web.StaticFS())

	root := e.Group("")

	searchSvc := services.NewProductSearchService(repo, cfg.ResultLimit, logger)
	handlers.NewPageHandler(searchSvc, cfg.AppTitle, logger).RegisterRoutes(root)
	handlers.NewHealthHandler(repo, cfg.VectorBackend).RegisterRoutes(root)

	// Start server
	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		logger.Info().Str("addr", addr).Str("backend", cfg.VectorBackend).Msgf("starting %s", cfg.AppTitle)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Graceful shutdown
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info().Msg("server stopped")
	return nil
}

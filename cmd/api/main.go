// Command api is the Fairway League Data API server.
//
// Usage:
//
//	league-api
//	API_PORT=8080 LEAGUE_DATA_DIR=/srv/league league-api

// @title Fairway League Data API
// @version 1.0.0
// @description Golf society statistics API serving leaderboards, event results, knockout bracket standings and season team competition tables. All data is aggregated on demand from flat CSV files; edit the files and the next request sees the change.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @contact.name Fairway League
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/fairwayleague/league-data/internal/api"
	"github.com/fairwayleague/league-data/internal/config"
	"github.com/fairwayleague/league-data/internal/league"

	_ "github.com/fairwayleague/league-data/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Data store over the CSV directory. Files are read lazily on first
	// query, so a missing directory only surfaces as empty tables.
	store := league.NewStore(cfg.DataDir, logger)
	logger.Info("Data store initialized", "data_dir", cfg.DataDir)

	// Create router
	router := api.NewRouter(store, cfg)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Fairway League Data API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}

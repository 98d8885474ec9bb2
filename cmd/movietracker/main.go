package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/movietracker/api/internal/config"
	"github.com/movietracker/api/internal/database"
	"github.com/movietracker/api/internal/handler"
	"github.com/movietracker/api/internal/logger"
	"github.com/movietracker/api/internal/middleware"
	"github.com/urfave/cli/v2"
)

func main() {
	// A missing .env file is fine; the process environment wins either way.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "movietracker",
		Usage: "Movie Tracker API server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   config.DefaultPort,
				Usage:   "HTTP server port",
				EnvVars: []string{"PORT"},
			},
			&cli.StringFlag{
				Name:    "database-url",
				Aliases: []string{"d"},
				Usage:   "PostgreSQL database URL (overrides DB_* variables)",
				EnvVars: []string{"DATABASE_URL"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")))
			return nil
		},
		Action: runServe,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func runServe(c *cli.Context) error {
	ctx := c.Context

	cfg := config.Load()
	if port := c.String("port"); port != "" {
		cfg.Port = port
	}
	if databaseURL := c.String("database-url"); databaseURL != "" {
		cfg.DatabaseURL = databaseURL
	}

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to configure database: %w", err)
	}
	defer db.Close()

	// Fire-and-forget connectivity check: the listener does not wait for the
	// database, and the one registered route does not touch it.
	go func() {
		if err := db.CheckConnectivity(ctx); err != nil {
			slog.Error("unable to connect to the database", "error", err)
			return
		}
		slog.Info("database connected")
	}()

	h := handler.New(db.Pool())

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	chain := middleware.RequestLogger(middleware.CORS(middleware.ParseJSON(mux)))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           chain,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("server is running", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

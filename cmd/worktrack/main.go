package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"worktrack/internal/config"
	apphttp "worktrack/internal/http"
	"worktrack/internal/storage"
	"worktrack/internal/store"
)

func main() {
	// A missing .env file is fine, environment variables still apply.
	_ = godotenv.Load()

	cfg := config.Load()

	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	var slots store.Persister
	switch cfg.DataBackend {
	case "sqlite":
		db, err := storage.NewSQLiteSlots(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to open SQLite backend", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		defer db.Close()
		slots = db
		logger.Info("Initialized sqlite backend", "path", cfg.SQLiteDBPath)
	default:
		slots = storage.NewMemorySlots()
		logger.Info("Initialized memory backend")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	expenses := store.NewExpenseStore(slots)
	projects := store.NewProjectStore(slots)
	expenses.Hydrate(ctx)
	projects.Hydrate(ctx)

	srv := apphttp.NewServer(":"+cfg.Port, expenses, projects, cfg.CacheTTL)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting worktrack server", "port", cfg.Port, "backend", cfg.DataBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}

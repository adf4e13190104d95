package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"notes-client/config"
	_ "notes-client/docs" // Swagger docs
	"notes-client/internal/httpserver"
	"notes-client/internal/middleware"
	"notes-client/internal/note/setup"
	"notes-client/pkg/log"
)

// @title       Notes Client API
// @description Local view-state API of the notes client: paginated notes, recent notes, search and editing backed by a remote notes service with a local fallback cache.
// @version     1
// @host        localhost:8090
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting notes client...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Notes API URL: %s", cfg.NotesAPI.URL)
	logger.Infof(ctx, "Fallback cache: %s", cfg.Fallback.Driver)

	// 3. Note store
	store, err := setup.NewStore(cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize note store: ", err)
		return
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warnf(ctx, "Failed to close fallback cache: %v", err)
		}
	}()

	// Initial load. A failure is not fatal: the page falls back to the cache.
	st, err := store.UseCase.Sync(ctx)
	if err != nil {
		logger.Warnf(ctx, "Initial sync failed: %v", err)
	}
	if st.Warning != "" {
		logger.Warn(ctx, st.Warning)
	}
	logger.Infof(ctx, "Loaded %d notes, %d recent", len(st.Notes), len(st.RecentNotes))

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, cfg),
		NoteUseCase: store.UseCase,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/desc-flow/internal/batch"
	"github.com/nguyentantai21042004/desc-flow/internal/config"
	"github.com/nguyentantai21042004/desc-flow/internal/httpapi"
	"github.com/nguyentantai21042004/desc-flow/internal/llm"
	"github.com/nguyentantai21042004/desc-flow/internal/logger"
	"github.com/nguyentantai21042004/desc-flow/internal/pipeline"
	"github.com/nguyentantai21042004/desc-flow/internal/synthesizer"
	"github.com/nguyentantai21042004/desc-flow/internal/translator"
	"github.com/nguyentantai21042004/desc-flow/internal/videoinfo"
	"github.com/nguyentantai21042004/desc-flow/internal/watcher"
)

const shutdownTimeout = 30 * time.Second

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewWithOptions(logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	log.Info(ctx, "========================================")
	log.Info(ctx, "YouTube Description Service")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "LLM provider: %s", cfg.LLM.Provider)
	log.Info(ctx, "Max concurrent LLM calls: %d", cfg.Performance.MaxConcurrent)

	// Initialize dependencies
	client, err := llm.New(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "Failed to create LLM client: %v", err)
		os.Exit(1)
	}

	videoInfo, err := videoinfo.New(ctx, cfg.YouTube.APIKey, log)
	if err != nil {
		log.Error(ctx, "Failed to create YouTube client: %v", err)
		os.Exit(1)
	}

	p := pipeline.New(
		translator.New(client, cfg.LLM.TranslateTimeout, log),
		synthesizer.New(client, cfg.LLM.GenerateTimeout, log),
		videoInfo,
		pipeline.OptionsFromConfig(cfg),
		log,
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errChan := make(chan error, 2)

	// HTTP surface
	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           httpapi.NewRouter(httpapi.New(p, log), cfg.Server.CORSOrigins),
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server: %w", err)
		}
	}()
	log.Info(ctx, "Listening on %s", cfg.Server.Addr)

	// Optional drop folder
	if cfg.Paths.Input != "" {
		w, err := startDropFolder(ctx, cfg, p, log, errChan)
		if err != nil {
			log.Error(ctx, "Failed to start drop folder: %v", err)
			os.Exit(1)
		}
		defer w.Stop()
	}

	log.Info(ctx, "Press Ctrl+C to stop")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Service error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn(shutdownCtx, "HTTP shutdown: %v", err)
	}

	log.Info(shutdownCtx, "Service stopped")
}

// startDropFolder processes requests already waiting in the input folder and
// watches it for new ones.
func startDropFolder(ctx context.Context, cfg *config.Config, p pipeline.Pipeline, log logger.Logger, errChan chan<- error) (watcher.Watcher, error) {
	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	runner := batch.New(cfg.Paths, p, log)

	w, err := watcher.New(cfg.Paths.Input, runner.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	go func() {
		if err := runner.ProcessPending(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Warn(ctx, "Pending requests: %v", err)
		}
	}()

	go func() {
		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errChan <- err
		}
	}()

	log.Info(ctx, "Drop folder: %s -> %s (archived: %s)", cfg.Paths.Input, cfg.Paths.Output, cfg.Paths.Archived)
	return w, nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}

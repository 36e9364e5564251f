package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"resumelens/internal/api/routes"
	"resumelens/internal/config"
	"resumelens/internal/llm"
	"resumelens/internal/logging"
	"resumelens/internal/pipeline"
	"resumelens/internal/workers"
	"resumelens/pkg/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting Resume Lens")

	// Initialize LLM manager
	llmManager := llm.NewManager(cfg)
	if err := llmManager.Start(); err != nil {
		logger.Fatal("Failed to start LLM manager", map[string]interface{}{"error": err.Error()})
	}

	// Initialize extraction pipeline and worker pool
	pl := pipeline.New(llmManager, pipeline.Options{Strict: cfg.Pipeline.StrictMerge}, logger)
	pool := workers.NewWorkerPool(cfg, pl)
	if err := pool.Start(); err != nil {
		logger.Fatal("Failed to start worker pool", map[string]interface{}{"error": err.Error()})
	}

	// Initialize result cache when configured
	var cache *utils.RedisClient
	if cfg.Redis.Enabled {
		cache = utils.NewRedisClient(cfg.Redis.URL, cfg.Redis.CacheTTL)
		pingCtx, cancel := context.WithTimeout(context.Background(), cfg.Redis.Timeout)
		if err := cache.Ping(pingCtx); err != nil {
			logger.Warn("Redis unavailable, result caching disabled", map[string]interface{}{
				"error": err.Error(),
			})
			cache = nil
		}
		cancel()
	}

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Setup routes
	routes.SetupRoutes(e, cfg, pool, llmManager, cache)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		logger.Info("Stopping worker pool...")
		if err := pool.Stop(); err != nil {
			logger.Error("Error stopping worker pool", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Stopping LLM manager...")
		if err := llmManager.Stop(); err != nil {
			logger.Error("Error stopping LLM manager", map[string]interface{}{"error": err.Error()})
		}

		if cache != nil {
			if err := cache.Close(); err != nil {
				logger.Error("Error closing Redis client", map[string]interface{}{"error": err.Error()})
			}
		}

		logger.Info("Stopping HTTP server...")
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil && err != http.ErrServerClosed {
		logger.Fatal("Server failed to start", map[string]interface{}{"error": err.Error()})
	}
}

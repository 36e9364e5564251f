package routes

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"resumelens/internal/api/handlers"
	"resumelens/internal/api/middleware"
	"resumelens/internal/config"
	"resumelens/internal/llm"
	"resumelens/internal/workers"
	"resumelens/pkg/utils"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, pool *workers.WorkerPool, llmManager *llm.Manager, cache *utils.RedisClient) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	// Resume endpoints call out to the LLM and get the longer timeout
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, 2*time.Minute))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(llmManager, pool, cache))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(llmManager, pool))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		resume := v1.Group("/resume")
		{
			resume.POST("/parse", handlers.ParseResumeHandler(cfg, pool))
			resume.POST("/parse/file", handlers.ParseResumeFileHandler(cfg, pool))
			resume.POST("/analyze", handlers.AnalyzeResumeHandler(cfg, llmManager, cache))
			resume.POST("/match", handlers.MatchJobHandler(cfg, llmManager, cache))
		}

		workerRoutes := v1.Group("/workers")
		{
			workerRoutes.GET("/stats", handlers.WorkerStatsHandler(pool))
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "Resume Lens",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}

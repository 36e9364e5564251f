package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"resumelens/internal/llm"
	"resumelens/internal/logging"
	"resumelens/internal/workers"
	"resumelens/pkg/models"
	"resumelens/pkg/utils"
)

var startTime = time.Now()

const serviceVersion = "1.0.0"

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	logger := logging.GetGlobalLogger()
	logger.Debug("Health check requested", map[string]interface{}{"request_id": requestIDOf(c)})

	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   serviceVersion,
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler handles readiness probe requests. Readiness reflects the
// components a request actually needs; a missing LLM or cache degrades the
// service rather than failing the probe.
func ReadinessHandler(llmManager *llm.Manager, pool *workers.WorkerPool, cache *utils.RedisClient) echo.HandlerFunc {
	return func(c echo.Context) error {
		checks := map[string]string{"api": "ok"}
		status := "ready"
		httpStatus := http.StatusOK

		if pool != nil && pool.IsRunning() {
			checks["workers"] = "ok"
		} else {
			checks["workers"] = "not running"
			status = "not ready"
			httpStatus = http.StatusServiceUnavailable
		}

		if llmManager != nil && llmManager.IsHealthy() {
			checks["llm"] = "ok"
		} else {
			checks["llm"] = "degraded - heuristic extraction only"
		}

		if cache != nil {
			if err := cache.IsHealthy(c.Request().Context()); err != nil {
				checks["cache"] = "unavailable"
			} else {
				checks["cache"] = "ok"
			}
		}

		return c.JSON(httpStatus, models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   serviceVersion,
			Uptime:    time.Since(startTime),
			Checks:    checks,
		})
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   serviceVersion,
		Uptime:    time.Since(startTime),
	})
}

// StatusHandler provides detailed service status
func StatusHandler(llmManager *llm.Manager, pool *workers.WorkerPool) echo.HandlerFunc {
	return func(c echo.Context) error {
		checks := map[string]string{"api": "operational"}

		if llmManager != nil {
			checks["llm_provider"] = llmManager.GetProviderName()
		}
		if pool != nil && pool.IsRunning() {
			checks["workers"] = "operational"
		} else {
			checks["workers"] = "stopped"
		}

		return c.JSON(http.StatusOK, models.HealthResponse{
			Status:    "operational",
			Timestamp: time.Now(),
			Version:   serviceVersion,
			Uptime:    time.Since(startTime),
			Checks:    checks,
		})
	}
}

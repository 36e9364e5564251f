package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"resumelens/internal/workers"
)

// WorkerStatsHandler handles the GET /api/v1/workers/stats endpoint
func WorkerStatsHandler(pool *workers.WorkerPool) echo.HandlerFunc {
	return func(c echo.Context) error {
		stats := pool.GetStats()

		return c.JSON(http.StatusOK, map[string]interface{}{
			"running":                 pool.IsRunning(),
			"jobs_queued":             stats.JobsQueued,
			"jobs_processed":          stats.JobsProcessed,
			"jobs_successful":         stats.JobsSuccessful,
			"jobs_failed":             stats.JobsFailed,
			"average_processing_time": stats.AverageProcessingTime.String(),
		})
	}
}

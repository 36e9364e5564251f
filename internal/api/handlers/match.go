package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"resumelens/internal/config"
	"resumelens/internal/llm"
	"resumelens/internal/logging"
	"resumelens/internal/scoring"
	"resumelens/pkg/models"
	"resumelens/pkg/utils"
)

// MatchJobHandler handles the POST /api/v1/resume/match endpoint
func MatchJobHandler(cfg *config.Config, llmManager *llm.Manager, cache *utils.RedisClient) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestIDOf(c)
		logger := logging.GetGlobalLogger()
		ctx := c.Request().Context()

		var req models.MatchRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse(requestID, "invalid_request", "Invalid request body: "+err.Error()))
		}

		if err := requestValidator.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse(requestID, "validation_failed", "Request validation failed: "+err.Error()))
		}

		profile := &req.Profile
		profile.Normalize()

		if cache != nil && profile.ID != "" {
			if cached, err := cache.GetMatch(ctx, profile.ID, req.JobDescription); err == nil && cached != nil {
				return c.JSON(http.StatusOK, models.MatchResponse{
					Success:   true,
					Match:     cached,
					Source:    "cache",
					Cached:    true,
					RequestID: requestID,
				})
			}
		}

		match, source := matchProfile(c, llmManager, profile, req.JobDescription, requestID)

		if cache != nil && profile.ID != "" {
			if err := cache.SetMatch(ctx, profile.ID, req.JobDescription, match); err != nil {
				logger.Warn("Failed to cache match result", map[string]interface{}{
					"request_id": requestID,
					"error":      err.Error(),
				})
			}
		}

		return c.JSON(http.StatusOK, models.MatchResponse{
			Success:   true,
			Match:     match,
			Source:    source,
			RequestID: requestID,
		})
	}
}

func matchProfile(c echo.Context, llmManager *llm.Manager, profile *models.ExtractedProfile, jobDescription, requestID string) (*models.MatchResult, string) {
	logger := logging.GetGlobalLogger()

	if llmManager != nil && llmManager.IsHealthy() {
		match, err := llmManager.MatchJob(c.Request().Context(), profile, jobDescription)
		if err == nil {
			return match, "oracle"
		}
		logger.Warn("AI match failed, falling back to keyword matcher", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
	}

	return scoring.MatchJob(profile, jobDescription), "fallback"
}

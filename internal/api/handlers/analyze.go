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

// AnalyzeResumeHandler handles the POST /api/v1/resume/analyze endpoint.
// The AI evaluator is consulted first; any failure degrades to the
// deterministic scorer so the endpoint always answers.
func AnalyzeResumeHandler(cfg *config.Config, llmManager *llm.Manager, cache *utils.RedisClient) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestIDOf(c)
		logger := logging.GetGlobalLogger()
		ctx := c.Request().Context()

		var req models.AnalyzeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse(requestID, "invalid_request", "Invalid request body: "+err.Error()))
		}

		profile := &req.Profile
		profile.Normalize()

		if cache != nil && profile.ID != "" {
			if cached, err := cache.GetAnalysis(ctx, profile.ID); err == nil && cached != nil {
				logger.Debug("Analysis served from cache", map[string]interface{}{
					"request_id": requestID,
					"profile_id": profile.ID,
				})
				return c.JSON(http.StatusOK, models.AnalyzeResponse{
					Success:   true,
					Analysis:  cached,
					Source:    "cache",
					Cached:    true,
					RequestID: requestID,
				})
			}
		}

		analysis, source := analyzeProfile(c, llmManager, profile, requestID)
		normalizeAnalysis(analysis)

		if cache != nil && profile.ID != "" {
			if err := cache.SetAnalysis(ctx, profile.ID, analysis); err != nil {
				logger.Warn("Failed to cache analysis result", map[string]interface{}{
					"request_id": requestID,
					"error":      err.Error(),
				})
			}
		}

		return c.JSON(http.StatusOK, models.AnalyzeResponse{
			Success:   true,
			Analysis:  analysis,
			Source:    source,
			RequestID: requestID,
		})
	}
}

func analyzeProfile(c echo.Context, llmManager *llm.Manager, profile *models.ExtractedProfile, requestID string) (*models.AnalysisResult, string) {
	logger := logging.GetGlobalLogger()

	if llmManager != nil && llmManager.IsHealthy() {
		analysis, err := llmManager.EvaluateProfile(c.Request().Context(), profile)
		if err == nil {
			return analysis, "oracle"
		}
		logger.Warn("AI evaluation failed, falling back to deterministic scorer", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
	}

	return scoring.Score(profile), "fallback"
}

// normalizeAnalysis clamps sub-scores to their maxima and keeps the overall
// score equal to their sum, whatever the source produced
func normalizeAnalysis(analysis *models.AnalysisResult) {
	clampTo := func(value *int, max int) {
		if *value > max {
			*value = max
		}
		if *value < 0 {
			*value = 0
		}
	}
	clampTo(&analysis.Scores.ATS, models.MaxATSScore)
	clampTo(&analysis.Scores.Keyword, models.MaxKeywordScore)
	clampTo(&analysis.Scores.Content, models.MaxContentScore)
	clampTo(&analysis.Scores.Relevance, models.MaxRelevanceScore)
	analysis.OverallScore = analysis.Scores.ATS + analysis.Scores.Keyword +
		analysis.Scores.Content + analysis.Scores.Relevance
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumelens/internal/config"
	"resumelens/internal/logging"
	"resumelens/internal/pipeline"
	"resumelens/internal/workers"
	"resumelens/pkg/models"
)

const handlerResume = `John Smith
Phone: +92 318 0623294
john.smith@gmail.com

Experience
Software Engineer at TechCorp (2020 - Present)
• Built REST APIs

Skills
Python, React, SQL
`

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Workers.PoolSize = 2
	cfg.Workers.QueueSize = 8
	cfg.Workers.RateLimit = 6000
	cfg.Workers.Timeout = 10 * time.Second
	return cfg
}

func testPool(t *testing.T, cfg *config.Config) *workers.WorkerPool {
	t.Helper()
	pl := pipeline.New(nil, pipeline.Options{}, logging.NewMultiLogger())
	pool := workers.NewWorkerPool(cfg, pl)
	require.NoError(t, pool.Start())
	t.Cleanup(func() { pool.Stop() })
	return pool
}

func postJSON(t *testing.T, handler echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec
}

func TestParseResumeHandler(t *testing.T) {
	cfg := testConfig()
	handler := ParseResumeHandler(cfg, testPool(t, cfg))

	body, err := json.Marshal(models.ParseRequest{Text: handlerResume})
	require.NoError(t, err)

	rec := postJSON(t, handler, string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ParseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Profile)
	assert.Equal(t, "John Smith", resp.Profile.DisplayName)
	assert.Equal(t, "john.smith@gmail.com", resp.Profile.DisplayEmail)
	require.NotNil(t, resp.Metadata)
	assert.Equal(t, models.MethodHeuristicOnly, resp.Metadata.Method)
	assert.NotEmpty(t, resp.RequestID)
}

func TestParseResumeHandlerUnprocessableInput(t *testing.T) {
	cfg := testConfig()
	handler := ParseResumeHandler(cfg, testPool(t, cfg))

	rec := postJSON(t, handler, `{"text": "hi"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unprocessable_input", resp.Error)
}

func TestParseResumeHandlerMissingText(t *testing.T) {
	cfg := testConfig()
	handler := ParseResumeHandler(cfg, testPool(t, cfg))

	rec := postJSON(t, handler, `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation_failed", resp.Error)
}

func TestAnalyzeResumeHandlerFallback(t *testing.T) {
	handler := AnalyzeResumeHandler(testConfig(), nil, nil)

	profile := models.NewExtractedProfile()
	name := "Alice Barton"
	profile.Name = &name
	profile.Skills.Technical = []string{"Go", "Python", "React"}

	body, err := json.Marshal(models.AnalyzeRequest{Profile: *profile})
	require.NoError(t, err)

	rec := postJSON(t, handler, string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "fallback", resp.Source)
	assert.False(t, resp.Cached)
	require.NotNil(t, resp.Analysis)
	sum := resp.Analysis.Scores.ATS + resp.Analysis.Scores.Keyword +
		resp.Analysis.Scores.Content + resp.Analysis.Scores.Relevance
	assert.Equal(t, sum, resp.Analysis.OverallScore)
}

func TestMatchJobHandlerFallback(t *testing.T) {
	handler := MatchJobHandler(testConfig(), nil, nil)

	profile := models.NewExtractedProfile()
	profile.Skills.Technical = []string{"React", "AWS"}

	body, err := json.Marshal(models.MatchRequest{
		Profile:        *profile,
		JobDescription: "We need react, node.js and agile experience.",
	})
	require.NoError(t, err)

	rec := postJSON(t, handler, string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "fallback", resp.Source)
	require.NotNil(t, resp.Match)
	assert.Equal(t, 33, resp.Match.MatchPercentage)
	assert.Equal(t, []string{"react"}, resp.Match.Matched)
}

func TestMatchJobHandlerMissingJobDescription(t *testing.T) {
	handler := MatchJobHandler(testConfig(), nil, nil)

	rec := postJSON(t, handler, `{"profile": {}}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation_failed", resp.Error)
}

package providers

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"resumelens/internal/config"
	"resumelens/internal/logging"
	"resumelens/pkg/models"
)

var defaultGeminiModels = []string{
	"gemini-2.5-flash",
	"gemini-2.0-flash",
}

// GeminiProvider implements the LLM provider interface using Google's Gemini
type GeminiProvider struct {
	client *genai.Client
	config *config.Config
	models []string
	logger logging.Logger
}

// NewGeminiProvider creates a new Gemini provider instance
func NewGeminiProvider(cfg *config.Config) (*GeminiProvider, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.LLM.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	modelList := cfg.LLM.Models
	if len(modelList) == 0 {
		modelList = defaultGeminiModels
	}

	return &GeminiProvider{
		client: client,
		config: cfg,
		models: modelList,
		logger: logging.GetGlobalLogger(),
	}, nil
}

// ExtractProfile processes raw resume text and extracts a structured profile using Gemini
func (gp *GeminiProvider) ExtractProfile(ctx context.Context, text string) (*models.ExtractedProfile, error) {
	maxContentLength := gp.config.LLM.MaxTokens * 3
	if len(text) > maxContentLength {
		text = text[:maxContentLength] + "..."
	}

	responseText, err := gp.complete(ctx, buildProfileExtractionPrompt(text))
	if err != nil {
		return nil, err
	}

	cleaned, err := CleanModelJSON(responseText)
	if err != nil {
		return nil, fmt.Errorf("failed to recover JSON from Gemini response: %w", err)
	}

	profile := models.NewExtractedProfile()
	if err := json.Unmarshal([]byte(cleaned), profile); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response from Gemini: %w", err)
	}
	profile.Normalize()

	return profile, nil
}

// EvaluateProfile scores a structured profile using Gemini
func (gp *GeminiProvider) EvaluateProfile(ctx context.Context, profile *models.ExtractedProfile) (*models.AnalysisResult, error) {
	responseText, err := gp.complete(ctx, buildEvaluationPrompt(profile))
	if err != nil {
		return nil, err
	}

	cleaned, err := CleanModelJSON(responseText)
	if err != nil {
		return nil, fmt.Errorf("failed to recover JSON from Gemini response: %w", err)
	}

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response from Gemini: %w", err)
	}
	return &result, nil
}

// MatchJob compares a profile against a job description using Gemini
func (gp *GeminiProvider) MatchJob(ctx context.Context, profile *models.ExtractedProfile, jobDescription string) (*models.MatchResult, error) {
	responseText, err := gp.complete(ctx, buildJobMatchPrompt(profile, jobDescription))
	if err != nil {
		return nil, err
	}

	cleaned, err := CleanModelJSON(responseText)
	if err != nil {
		return nil, fmt.Errorf("failed to recover JSON from Gemini response: %w", err)
	}

	var result models.MatchResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response from Gemini: %w", err)
	}
	return &result, nil
}

// complete runs one prompt through the configured model list with
// per-attempt timeouts and fallback
func (gp *GeminiProvider) complete(ctx context.Context, prompt string) (string, error) {
	temperature := gp.config.LLM.Temperature
	genConfig := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: int32(gp.config.LLM.MaxTokens),
	}

	return completeOverModels(ctx, gp.models, gp.config.LLM.Timeout, gp.config.LLM.RetryBackoff, gp.logger, "Gemini",
		func(ctx context.Context, model string) (string, error) {
			resp, err := gp.client.Models.GenerateContent(ctx, model, genai.Text(prompt), genConfig)
			if err != nil {
				return "", err
			}
			return resp.Text(), nil
		})
}

// IsHealthy checks if the Gemini provider is healthy and available
func (gp *GeminiProvider) IsHealthy(ctx context.Context) error {
	if gp.config.LLM.APIKey == "" {
		return fmt.Errorf("Gemini API key not configured - set LLM_API_KEY environment variable")
	}

	_, err := gp.client.Models.GenerateContent(ctx, gp.models[0], genai.Text("Hello"), nil)
	if err != nil {
		return fmt.Errorf("Gemini API health check failed: %w", err)
	}
	return nil
}

// GetProviderName returns the name of the LLM provider
func (gp *GeminiProvider) GetProviderName() string {
	return "gemini"
}

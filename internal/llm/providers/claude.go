package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"resumelens/internal/config"
	"resumelens/internal/logging"
	"resumelens/pkg/models"
)

// tried in order until one answers
var defaultClaudeModels = []string{
	string(anthropic.ModelClaude3_7SonnetLatest),
	"claude-3-5-haiku-latest",
}

// ClaudeProvider implements the LLM provider interface using Anthropic's Claude
type ClaudeProvider struct {
	client anthropic.Client
	config *config.Config
	models []string
	logger logging.Logger
}

// NewClaudeProvider creates a new Claude provider instance
func NewClaudeProvider(cfg *config.Config) *ClaudeProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.LLM.APIKey),
	)

	modelList := cfg.LLM.Models
	if len(modelList) == 0 {
		modelList = defaultClaudeModels
	}

	return &ClaudeProvider{
		client: client,
		config: cfg,
		models: modelList,
		logger: logging.GetGlobalLogger(),
	}
}

// ExtractProfile processes raw resume text and extracts a structured profile using Claude
func (cp *ClaudeProvider) ExtractProfile(ctx context.Context, text string) (*models.ExtractedProfile, error) {
	startTime := time.Now()

	// Rough estimation: 3 chars per token
	maxContentLength := cp.config.LLM.MaxTokens * 3
	if len(text) > maxContentLength {
		text = text[:maxContentLength] + "..."
		cp.logger.Debug("Resume text truncated to fit token limits")
	}

	responseText, err := cp.complete(ctx, buildProfileExtractionPrompt(text))
	if err != nil {
		return nil, err
	}

	cleaned, err := CleanModelJSON(responseText)
	if err != nil {
		return nil, fmt.Errorf("failed to recover JSON from Claude response: %w", err)
	}

	profile := models.NewExtractedProfile()
	if err := json.Unmarshal([]byte(cleaned), profile); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response from Claude: %w", err)
	}
	profile.Normalize()

	cp.logger.Info("Profile extraction completed", map[string]interface{}{
		"provider":        "claude",
		"processing_time": time.Since(startTime).String(),
	})

	return profile, nil
}

// EvaluateProfile scores a structured profile using Claude
func (cp *ClaudeProvider) EvaluateProfile(ctx context.Context, profile *models.ExtractedProfile) (*models.AnalysisResult, error) {
	responseText, err := cp.complete(ctx, buildEvaluationPrompt(profile))
	if err != nil {
		return nil, err
	}

	cleaned, err := CleanModelJSON(responseText)
	if err != nil {
		return nil, fmt.Errorf("failed to recover JSON from Claude response: %w", err)
	}

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response from Claude: %w", err)
	}
	return &result, nil
}

// MatchJob compares a profile against a job description using Claude
func (cp *ClaudeProvider) MatchJob(ctx context.Context, profile *models.ExtractedProfile, jobDescription string) (*models.MatchResult, error) {
	responseText, err := cp.complete(ctx, buildJobMatchPrompt(profile, jobDescription))
	if err != nil {
		return nil, err
	}

	cleaned, err := CleanModelJSON(responseText)
	if err != nil {
		return nil, fmt.Errorf("failed to recover JSON from Claude response: %w", err)
	}

	var result models.MatchResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response from Claude: %w", err)
	}
	return &result, nil
}

// complete runs one prompt through the configured model list, falling back
// to the next model when an attempt fails or times out.
func (cp *ClaudeProvider) complete(ctx context.Context, prompt string) (string, error) {
	return completeOverModels(ctx, cp.models, cp.config.LLM.Timeout, cp.config.LLM.RetryBackoff, cp.logger, "Claude",
		func(ctx context.Context, model string) (string, error) {
			response, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
				Model:       anthropic.Model(model),
				MaxTokens:   int64(cp.config.LLM.MaxTokens),
				Temperature: anthropic.Float(float64(cp.config.LLM.Temperature)),
				Messages: []anthropic.MessageParam{{
					Content: []anthropic.ContentBlockParamUnion{{
						OfText: &anthropic.TextBlockParam{Text: prompt},
					}},
					Role: anthropic.MessageParamRoleUser,
				}},
			})
			if err != nil {
				return "", err
			}
			return responseTextOf(response), nil
		})
}

// responseTextOf pulls the first text block out of a Claude message
func responseTextOf(response *anthropic.Message) string {
	if response == nil || len(response.Content) == 0 {
		return ""
	}
	for _, content := range response.Content {
		textContent := content.AsText()
		if textContent.Text != "" {
			return textContent.Text
		}
	}
	return ""
}

// IsHealthy checks if the Claude provider is healthy and available
func (cp *ClaudeProvider) IsHealthy(ctx context.Context) error {
	if cp.config.LLM.APIKey == "" {
		return fmt.Errorf("Claude API key not configured - set LLM_API_KEY environment variable")
	}

	_, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(cp.models[0]),
		MaxTokens: 10,
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: "Hello"},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})

	if err != nil {
		return fmt.Errorf("Claude API health check failed: %w", err)
	}

	return nil
}

// GetProviderName returns the name of the LLM provider
func (cp *ClaudeProvider) GetProviderName() string {
	return "claude"
}

package llm

import (
	"context"

	"resumelens/pkg/models"
)

// LLMProvider defines the interface for LLM providers
type LLMProvider interface {
	// ExtractProfile processes raw resume text and extracts a structured profile
	ExtractProfile(ctx context.Context, text string) (*models.ExtractedProfile, error)

	// EvaluateProfile scores a structured profile and returns the full analysis
	EvaluateProfile(ctx context.Context, profile *models.ExtractedProfile) (*models.AnalysisResult, error)

	// MatchJob compares a profile against a job description
	MatchJob(ctx context.Context, profile *models.ExtractedProfile, jobDescription string) (*models.MatchResult, error)

	// IsHealthy checks if the LLM provider is healthy and available
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the LLM provider
	GetProviderName() string
}

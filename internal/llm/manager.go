package llm

import (
	"context"
	"fmt"
	"sync"

	"resumelens/internal/config"
	"resumelens/internal/logging"
	"resumelens/pkg/models"
)

// Manager manages LLM providers and their lifecycle. It satisfies the
// pipeline's oracle contract, so a started manager plugs straight into the
// extraction flow.
type Manager struct {
	config   *config.Config
	factory  *LLMFactory
	provider LLMProvider
	logger   logging.Logger
	mu       sync.RWMutex
	healthy  bool
}

// NewManager creates a new LLM manager instance
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		config:  cfg,
		factory: NewLLMFactory(cfg),
		logger:  logging.GetGlobalLogger(),
	}
}

// Start initializes the LLM manager and creates the provider
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Starting LLM manager", map[string]interface{}{
		"provider": m.config.LLM.Provider,
	})

	provider, err := m.factory.CreateProvider()
	if err != nil {
		return fmt.Errorf("failed to create LLM provider: %w", err)
	}

	m.provider = provider

	ctx, cancel := context.WithTimeout(context.Background(), m.config.LLM.Timeout)
	defer cancel()

	if err := m.provider.IsHealthy(ctx); err != nil {
		m.logger.Warn("LLM provider health check failed - extraction degrades to heuristics only", map[string]interface{}{
			"error": err.Error(),
		})
		m.healthy = false
		// Don't return error - allow server to start without LLM
	} else {
		m.healthy = true
		m.logger.Info("LLM manager started successfully", map[string]interface{}{
			"provider": m.provider.GetProviderName(),
		})
	}

	return nil
}

// Stop shuts down the LLM manager
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Stopping LLM manager")
	m.provider = nil
	m.healthy = false
	return nil
}

// ExtractProfile extracts a structured profile from raw resume text using
// the configured LLM provider
func (m *Manager) ExtractProfile(ctx context.Context, text string) (*models.ExtractedProfile, error) {
	provider, err := m.availableProvider()
	if err != nil {
		return nil, err
	}
	return provider.ExtractProfile(ctx, text)
}

// EvaluateProfile scores a profile using the configured LLM provider
func (m *Manager) EvaluateProfile(ctx context.Context, profile *models.ExtractedProfile) (*models.AnalysisResult, error) {
	provider, err := m.availableProvider()
	if err != nil {
		return nil, err
	}
	return provider.EvaluateProfile(ctx, profile)
}

// MatchJob compares a profile against a job description using the
// configured LLM provider
func (m *Manager) MatchJob(ctx context.Context, profile *models.ExtractedProfile, jobDescription string) (*models.MatchResult, error) {
	provider, err := m.availableProvider()
	if err != nil {
		return nil, err
	}
	return provider.MatchJob(ctx, profile, jobDescription)
}

func (m *Manager) availableProvider() (LLMProvider, error) {
	m.mu.RLock()
	provider := m.provider
	healthy := m.healthy
	m.mu.RUnlock()

	if provider == nil {
		return nil, fmt.Errorf("LLM manager not started or provider not available")
	}
	if !healthy {
		return nil, fmt.Errorf("LLM provider is not available - check API key configuration (set LLM_API_KEY environment variable)")
	}
	return provider, nil
}

// IsHealthy checks if the LLM manager and provider are healthy
func (m *Manager) IsHealthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.healthy && m.provider != nil
}

// GetProviderName returns the name of the current LLM provider
func (m *Manager) GetProviderName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.provider != nil {
		return m.provider.GetProviderName()
	}
	return "none"
}

// CheckHealth performs a health check on the LLM provider
func (m *Manager) CheckHealth(ctx context.Context) error {
	m.mu.RLock()
	provider := m.provider
	m.mu.RUnlock()

	if provider == nil {
		return fmt.Errorf("LLM provider not available")
	}

	err := provider.IsHealthy(ctx)

	m.mu.Lock()
	m.healthy = (err == nil)
	m.mu.Unlock()

	return err
}

// Package pipeline wires the heuristic extractor, the AI oracle and the
// validator into the resume processing flow: extract, reconcile, validate.
// The oracle is an injected dependency so tests can substitute fakes.
package pipeline

import (
	"context"

	"resumelens/internal/extractor"
	"resumelens/internal/logging"
	"resumelens/pkg/models"
	"resumelens/pkg/utils"
)

// Oracle is the AI collaborator the pipeline consults for higher-fidelity
// extraction. Implementations may fail or return partial JSON; the pipeline
// recovers by keeping the heuristic result.
type Oracle interface {
	ExtractProfile(ctx context.Context, text string) (*models.ExtractedProfile, error)
	IsHealthy() bool
}

// Pipeline orchestrates extraction for one document at a time. It holds no
// per-document state and is safe for concurrent use.
type Pipeline struct {
	extractor *extractor.Extractor
	oracle    Oracle
	opts      Options
	logger    logging.Logger
}

// New creates a pipeline. A nil oracle yields heuristic-only extraction.
func New(oracle Oracle, opts Options, logger logging.Logger) *Pipeline {
	return &Pipeline{
		extractor: extractor.NewExtractor(),
		oracle:    oracle,
		opts:      opts,
		logger:    logger,
	}
}

// Extract runs the full extraction flow on raw resume text and returns the
// reconciled profile with its metadata. Oracle failures are recovered by
// degrading to the heuristic result; the only fatal error is unusable input.
func (p *Pipeline) Extract(ctx context.Context, text string) (*models.ExtractedProfile, *models.ExtractionMetadata, error) {
	return p.ExtractWithOptions(ctx, text, p.opts)
}

// ExtractWithOptions runs the extraction flow with per-request options
func (p *Pipeline) ExtractWithOptions(ctx context.Context, text string, opts Options) (*models.ExtractedProfile, *models.ExtractionMetadata, error) {
	heuristic, err := p.extractor.Extract(text)
	if err != nil {
		return nil, nil, err
	}

	profile := heuristic
	method := models.MethodHeuristicOnly

	if p.oracle != nil && !opts.DisableOracle && p.oracle.IsHealthy() {
		aiProfile, oracleErr := p.oracle.ExtractProfile(ctx, text)
		if oracleErr != nil {
			p.logger.Warn("Oracle extraction failed, falling back to heuristics", map[string]interface{}{
				"error": oracleErr.Error(),
			})
		} else {
			profile = Merge(heuristic, aiProfile, opts)
			method = models.MethodAIAugmented
		}
	}

	profile.ID = utils.GenerateProfileID()

	meta := Validate(profile)
	meta.Method = method

	p.logger.Info("Resume extraction completed", map[string]interface{}{
		"profile_id":   profile.ID,
		"method":       method,
		"completeness": meta.CompletenessScore,
		"issues":       len(meta.ValidationIssues),
		"errors":       len(meta.ExtractionErrors),
	})

	return profile, meta, nil
}

package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumelens/internal/logging"
	"resumelens/pkg/models"
	"resumelens/pkg/utils"
)

const pipelineResume = `John Smith
Phone: +92 318 0623294
john.smith@gmail.com

Experience
Software Engineer at TechCorp (2020 - Present)
• Built REST APIs

Skills
Python, React, SQL
`

type fakeOracle struct {
	profile *models.ExtractedProfile
	err     error
	healthy bool
	calls   int
}

func (f *fakeOracle) ExtractProfile(ctx context.Context, text string) (*models.ExtractedProfile, error) {
	f.calls++
	return f.profile, f.err
}

func (f *fakeOracle) IsHealthy() bool { return f.healthy }

func testPipeline(oracle Oracle, opts Options) *Pipeline {
	return New(oracle, opts, logging.NewMultiLogger())
}

func TestPipelineHeuristicOnlyWithoutOracle(t *testing.T) {
	p := testPipeline(nil, Options{})

	profile, meta, err := p.Extract(context.Background(), pipelineResume)
	require.NoError(t, err)

	assert.Equal(t, models.MethodHeuristicOnly, meta.Method)
	assert.NotEmpty(t, profile.ID)
	require.NotNil(t, profile.Name)
	assert.Equal(t, "John Smith", *profile.Name)
}

func TestPipelineAIAugmented(t *testing.T) {
	aiProfile := models.NewExtractedProfile()
	aiProfile.Name = strPtr("Jonathan Smith")
	oracle := &fakeOracle{profile: aiProfile, healthy: true}

	p := testPipeline(oracle, Options{})

	profile, meta, err := p.Extract(context.Background(), pipelineResume)
	require.NoError(t, err)

	assert.Equal(t, 1, oracle.calls)
	assert.Equal(t, models.MethodAIAugmented, meta.Method)
	require.NotNil(t, profile.Name)
	assert.Equal(t, "Jonathan Smith", *profile.Name)
	// fields the oracle left empty keep the heuristic finding
	require.NotNil(t, profile.Email)
	assert.Equal(t, "john.smith@gmail.com", *profile.Email)
}

func TestPipelineOracleFailureFallsBack(t *testing.T) {
	oracle := &fakeOracle{err: errors.New("model overloaded"), healthy: true}
	p := testPipeline(oracle, Options{})

	profile, meta, err := p.Extract(context.Background(), pipelineResume)
	require.NoError(t, err)

	assert.Equal(t, 1, oracle.calls)
	assert.Equal(t, models.MethodHeuristicOnly, meta.Method)
	require.NotNil(t, profile.Name)
	assert.Equal(t, "John Smith", *profile.Name)
}

func TestPipelineUnhealthyOracleSkipped(t *testing.T) {
	oracle := &fakeOracle{healthy: false}
	p := testPipeline(oracle, Options{})

	_, meta, err := p.Extract(context.Background(), pipelineResume)
	require.NoError(t, err)

	assert.Zero(t, oracle.calls)
	assert.Equal(t, models.MethodHeuristicOnly, meta.Method)
}

func TestPipelineShortInputFails(t *testing.T) {
	p := testPipeline(nil, Options{})

	_, _, err := p.Extract(context.Background(), "too short")
	require.Error(t, err)
	assert.True(t, utils.IsInputError(err))
}

func TestPipelineDisableOracleOption(t *testing.T) {
	aiProfile := models.NewExtractedProfile()
	aiProfile.Name = strPtr("Jonathan Smith")
	oracle := &fakeOracle{profile: aiProfile, healthy: true}

	p := testPipeline(oracle, Options{})

	profile, meta, err := p.ExtractWithOptions(context.Background(), pipelineResume, Options{DisableOracle: true})
	require.NoError(t, err)

	assert.Zero(t, oracle.calls)
	assert.Equal(t, models.MethodHeuristicOnly, meta.Method)
	require.NotNil(t, profile.Name)
	assert.Equal(t, "John Smith", *profile.Name)
}

func TestPipelineStrictOptionOverride(t *testing.T) {
	aiProfile := models.NewExtractedProfile()
	aiProfile.Email = strPtr("not an email at all")
	oracle := &fakeOracle{profile: aiProfile, healthy: true}

	p := testPipeline(oracle, Options{})

	profile, _, err := p.ExtractWithOptions(context.Background(), pipelineResume, Options{Strict: true})
	require.NoError(t, err)
	require.NotNil(t, profile.Email)
	assert.Equal(t, "john.smith@gmail.com", *profile.Email)
}

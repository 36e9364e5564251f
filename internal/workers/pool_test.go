package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumelens/internal/config"
	"resumelens/internal/logging"
	"resumelens/internal/pipeline"
	"resumelens/pkg/models"
	"resumelens/pkg/utils"
)

const poolResume = `John Smith
Phone: +92 318 0623294
john.smith@gmail.com

Experience
Software Engineer at TechCorp (2020 - Present)
• Built REST APIs

Skills
Python, React, SQL
`

func poolConfig(poolSize, ratePerMinute int) *config.Config {
	cfg := &config.Config{}
	cfg.Workers.PoolSize = poolSize
	cfg.Workers.QueueSize = 8
	cfg.Workers.RateLimit = ratePerMinute
	cfg.Workers.Timeout = 10 * time.Second
	return cfg
}

func startedPool(t *testing.T, cfg *config.Config) *WorkerPool {
	t.Helper()
	pl := pipeline.New(nil, pipeline.Options{}, logging.NewMultiLogger())
	pool := NewWorkerPool(cfg, pl)
	require.NoError(t, pool.Start())
	t.Cleanup(func() { pool.Stop() })
	return pool
}

func TestSubmitParseBeforeStart(t *testing.T) {
	pl := pipeline.New(nil, pipeline.Options{}, logging.NewMultiLogger())
	pool := NewWorkerPool(poolConfig(2, 6000), pl)

	_, err := pool.SubmitParse(context.Background(), poolResume, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not running")
}

func TestSubmitParseSuccess(t *testing.T) {
	pool := startedPool(t, poolConfig(2, 6000))

	result, err := pool.SubmitParse(context.Background(), poolResume, nil)
	require.NoError(t, err)
	require.NoError(t, result.Error)

	require.NotNil(t, result.Profile)
	require.NotNil(t, result.Profile.Name)
	assert.Equal(t, "John Smith", *result.Profile.Name)
	assert.Equal(t, models.MethodHeuristicOnly, result.Metadata.Method)
	assert.NotEmpty(t, result.RequestID)

	stats := pool.GetStats()
	assert.Equal(t, int64(1), stats.JobsProcessed)
	assert.Equal(t, int64(1), stats.JobsSuccessful)
	assert.Zero(t, stats.JobsFailed)
}

func TestSubmitParseInputErrorInResult(t *testing.T) {
	pool := startedPool(t, poolConfig(2, 6000))

	result, err := pool.SubmitParse(context.Background(), "too short", nil)
	require.NoError(t, err)
	require.Error(t, result.Error)
	assert.True(t, utils.IsInputError(result.Error))

	stats := pool.GetStats()
	assert.Equal(t, int64(1), stats.JobsFailed)
}

type stubOracle struct {
	calls int
}

func (o *stubOracle) ExtractProfile(ctx context.Context, text string) (*models.ExtractedProfile, error) {
	o.calls++
	profile := models.NewExtractedProfile()
	name := "Jonathan Smith"
	profile.Name = &name
	return profile, nil
}

func (o *stubOracle) IsHealthy() bool { return true }

func TestSubmitParseOracleDisabledOption(t *testing.T) {
	oracle := &stubOracle{}
	pl := pipeline.New(oracle, pipeline.Options{}, logging.NewMultiLogger())
	pool := NewWorkerPool(poolConfig(2, 6000), pl)
	require.NoError(t, pool.Start())
	t.Cleanup(func() { pool.Stop() })

	result, err := pool.SubmitParse(context.Background(), poolResume, &models.ParseOptions{
		OracleProvider: models.OracleDisabled,
	})
	require.NoError(t, err)
	require.NoError(t, result.Error)
	assert.Zero(t, oracle.calls)
	assert.Equal(t, models.MethodHeuristicOnly, result.Metadata.Method)

	result, err = pool.SubmitParse(context.Background(), poolResume, nil)
	require.NoError(t, err)
	require.NoError(t, result.Error)
	assert.Equal(t, 1, oracle.calls)
	assert.Equal(t, models.MethodAIAugmented, result.Metadata.Method)
}

func TestSubmitParseRateLimited(t *testing.T) {
	// burst of 1 token replenished at 1/min: the second call must be rejected
	pool := startedPool(t, poolConfig(1, 1))

	_, err := pool.SubmitParse(context.Background(), poolResume, nil)
	require.NoError(t, err)

	_, err = pool.SubmitParse(context.Background(), poolResume, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit exceeded")
}

func TestDoubleStart(t *testing.T) {
	pool := startedPool(t, poolConfig(1, 6000))

	assert.Error(t, pool.Start())
}

func TestStopIdempotent(t *testing.T) {
	pl := pipeline.New(nil, pipeline.Options{}, logging.NewMultiLogger())
	pool := NewWorkerPool(poolConfig(1, 6000), pl)
	require.NoError(t, pool.Start())

	require.NoError(t, pool.Stop())
	assert.False(t, pool.IsRunning())
	require.NoError(t, pool.Stop())
}

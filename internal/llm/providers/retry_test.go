package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumelens/internal/logging"
)

func TestCompleteOverModelsFirstModelWins(t *testing.T) {
	var tried []string
	text, err := completeOverModels(context.Background(), []string{"primary", "secondary"},
		time.Second, time.Millisecond, logging.NewMultiLogger(), "Claude",
		func(ctx context.Context, model string) (string, error) {
			tried = append(tried, model)
			return "answer", nil
		})

	require.NoError(t, err)
	assert.Equal(t, "answer", text)
	assert.Equal(t, []string{"primary"}, tried)
}

func TestCompleteOverModelsHungModelFallsBack(t *testing.T) {
	var tried []string
	text, err := completeOverModels(context.Background(), []string{"primary", "secondary"},
		20*time.Millisecond, time.Millisecond, logging.NewMultiLogger(), "Claude",
		func(ctx context.Context, model string) (string, error) {
			tried = append(tried, model)
			if model == "primary" {
				// hangs until the attempt timeout cancels it
				<-ctx.Done()
				return "", ctx.Err()
			}
			return "answer", nil
		})

	require.NoError(t, err)
	assert.Equal(t, "answer", text)
	assert.Equal(t, []string{"primary", "secondary"}, tried)
}

func TestCompleteOverModelsEmptyResponseFallsThrough(t *testing.T) {
	text, err := completeOverModels(context.Background(), []string{"primary", "secondary"},
		time.Second, time.Millisecond, logging.NewMultiLogger(), "Claude",
		func(ctx context.Context, model string) (string, error) {
			if model == "primary" {
				return "", nil
			}
			return "answer", nil
		})

	require.NoError(t, err)
	assert.Equal(t, "answer", text)
}

func TestCompleteOverModelsBackoffAfterRateLimit(t *testing.T) {
	backoff := 30 * time.Millisecond
	start := time.Now()
	text, err := completeOverModels(context.Background(), []string{"primary", "secondary"},
		time.Second, backoff, logging.NewMultiLogger(), "Claude",
		func(ctx context.Context, model string) (string, error) {
			if model == "primary" {
				return "", errors.New("429 too many requests")
			}
			return "answer", nil
		})

	require.NoError(t, err)
	assert.Equal(t, "answer", text)
	assert.GreaterOrEqual(t, time.Since(start), backoff)
}

func TestCompleteOverModelsAllFail(t *testing.T) {
	_, err := completeOverModels(context.Background(), []string{"primary", "secondary"},
		time.Second, time.Millisecond, logging.NewMultiLogger(), "Gemini",
		func(ctx context.Context, model string) (string, error) {
			return "", errors.New("bad request: " + model)
		})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "all Gemini models failed")
	assert.Contains(t, err.Error(), "bad request: secondary")
}

func TestCompleteOverModelsCallerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var tried []string
	_, err := completeOverModels(ctx, []string{"primary", "secondary"},
		time.Second, time.Millisecond, logging.NewMultiLogger(), "Claude",
		func(ctx context.Context, model string) (string, error) {
			tried = append(tried, model)
			return "", ctx.Err()
		})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"primary"}, tried)
}

func TestIsRateLimited(t *testing.T) {
	assert.True(t, isRateLimited(errors.New("429 Too Many Requests")))
	assert.True(t, isRateLimited(errors.New("model overloaded, retry later")))
	assert.True(t, isRateLimited(errors.New("upstream 529")))
	assert.False(t, isRateLimited(errors.New("invalid api key")))
}

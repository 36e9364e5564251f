package providers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resumelens/internal/logging"
)

// attemptFunc runs one prompt against one named model.
type attemptFunc func(ctx context.Context, model string) (string, error)

// completeOverModels tries each model in order until one returns text. Each
// attempt runs under its own timeout so a hung model cannot consume the
// caller's whole budget before the fallback models get a turn. Rate-limit
// class failures wait out the backoff before the next attempt.
func completeOverModels(ctx context.Context, models []string, attemptTimeout, backoff time.Duration, logger logging.Logger, label string, attempt attemptFunc) (string, error) {
	var lastErr error

	for i, model := range models {
		attemptCtx := ctx
		cancel := context.CancelFunc(func() {})
		if attemptTimeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, attemptTimeout)
		}
		text, err := attempt(attemptCtx, model)
		cancel()

		if err == nil {
			if text != "" {
				return text, nil
			}
			err = fmt.Errorf("empty response from model %s", model)
		}

		lastErr = err
		logger.Warn(label+" model attempt failed", map[string]interface{}{
			"model": model,
			"error": err.Error(),
		})

		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if i < len(models)-1 && isRateLimited(err) {
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}

	return "", fmt.Errorf("all %s models failed: %w", label, lastErr)
}

// isRateLimited classifies errors worth a short pause before retrying
func isRateLimited(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "overloaded") ||
		strings.Contains(msg, "529")
}

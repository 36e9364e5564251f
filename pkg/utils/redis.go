package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"resumelens/pkg/models"
)

// RedisClient wraps the Redis client with analysis/match result caching.
// Results are keyed by (profile ID, job description hash) so re-analysis of
// an unchanged pair never recomputes.
type RedisClient struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient creates a new Redis client instance
func NewRedisClient(url string, ttl time.Duration) *RedisClient {
	opts, err := redis.ParseURL(url)
	if err != nil {
		// Fallback to default configuration
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		}
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &RedisClient{
		client: redis.NewClient(opts),
		ttl:    ttl,
	}
}

// Ping tests the Redis connection
func (r *RedisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (r *RedisClient) Close() error {
	return r.client.Close()
}

// IsHealthy checks if Redis is connected and healthy
func (r *RedisClient) IsHealthy(ctx context.Context) error {
	return r.Ping(ctx)
}

// GetAnalysis retrieves a cached analysis result for the profile, or nil on miss
func (r *RedisClient) GetAnalysis(ctx context.Context, profileID string) (*models.AnalysisResult, error) {
	payload, err := r.client.Get(ctx, r.analysisKey(profileID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached analysis: %w", err)
	}

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached analysis: %w", err)
	}
	return &result, nil
}

// SetAnalysis caches an analysis result for the profile
func (r *RedisClient) SetAnalysis(ctx context.Context, profileID string, result *models.AnalysisResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}
	return r.client.Set(ctx, r.analysisKey(profileID), payload, r.ttl).Err()
}

// GetMatch retrieves a cached match result for the (profile, job description)
// pair, or nil on miss
func (r *RedisClient) GetMatch(ctx context.Context, profileID, jobDescription string) (*models.MatchResult, error) {
	payload, err := r.client.Get(ctx, r.matchKey(profileID, jobDescription)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached match: %w", err)
	}

	var result models.MatchResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached match: %w", err)
	}
	return &result, nil
}

// SetMatch caches a match result for the (profile, job description) pair
func (r *RedisClient) SetMatch(ctx context.Context, profileID, jobDescription string, result *models.MatchResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}
	return r.client.Set(ctx, r.matchKey(profileID, jobDescription), payload, r.ttl).Err()
}

func (r *RedisClient) analysisKey(profileID string) string {
	return fmt.Sprintf("analysis:profile:%s", profileID)
}

func (r *RedisClient) matchKey(profileID, jobDescription string) string {
	return fmt.Sprintf("match:profile:%s:job:%s", profileID, HashText(jobDescription))
}

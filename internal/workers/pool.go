// Package workers runs resume parsing on a bounded worker pool. The pool
// shields the LLM provider behind a global rate limiter and gives each
// request a bounded queue wait, so a burst of uploads degrades into 429s
// instead of a pile of stuck goroutines.
package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"resumelens/internal/config"
	"resumelens/internal/logging"
	"resumelens/internal/pipeline"
	"resumelens/pkg/models"
	"resumelens/pkg/utils"
)

const queueSubmitTimeout = 5 * time.Second

// ParseResult represents the outcome of one parse job
type ParseResult struct {
	Profile   *models.ExtractedProfile
	Metadata  *models.ExtractionMetadata
	Error     error
	RequestID string
	Duration  time.Duration
}

// ParseJob represents a job to be processed by workers
type ParseJob struct {
	ID         string
	Text       string
	Options    *models.ParseOptions
	ResultChan chan ParseResult
	Context    context.Context
	CreatedAt  time.Time
}

// WorkerPool manages the parse worker goroutines and job queue
type WorkerPool struct {
	config   *config.Config
	pipeline *pipeline.Pipeline
	jobQueue chan ParseJob
	limiter  *rate.Limiter
	logger   logging.Logger
	quit     chan struct{}
	wg       sync.WaitGroup
	mu       sync.RWMutex
	running  bool
	stats    *PoolStats
}

// PoolStats tracks worker pool statistics
type PoolStats struct {
	mu                    sync.RWMutex
	JobsQueued            int64
	JobsProcessed         int64
	JobsSuccessful        int64
	JobsFailed            int64
	TotalProcessingTime   time.Duration
	AverageProcessingTime time.Duration
}

// NewWorkerPool creates a new worker pool instance
func NewWorkerPool(cfg *config.Config, pl *pipeline.Pipeline) *WorkerPool {
	// requests per minute converted to requests per second
	rps := rate.Limit(float64(cfg.Workers.RateLimit) / 60.0)

	return &WorkerPool{
		config:   cfg,
		pipeline: pl,
		jobQueue: make(chan ParseJob, cfg.Workers.QueueSize),
		limiter:  rate.NewLimiter(rps, cfg.Workers.PoolSize),
		logger:   logging.GetGlobalLogger(),
		quit:     make(chan struct{}),
		stats:    &PoolStats{},
	}
}

// Start starts the worker pool
func (wp *WorkerPool) Start() error {
	wp.mu.Lock()
	defer wp.mu.Unlock()

	if wp.running {
		return fmt.Errorf("worker pool is already running")
	}

	for i := 1; i <= wp.config.Workers.PoolSize; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}

	wp.running = true
	wp.logger.Info("Worker pool started", map[string]interface{}{
		"workers":    wp.config.Workers.PoolSize,
		"queue_size": wp.config.Workers.QueueSize,
	})
	return nil
}

// Stop stops the worker pool gracefully
func (wp *WorkerPool) Stop() error {
	wp.mu.Lock()
	defer wp.mu.Unlock()

	if !wp.running {
		return nil
	}

	close(wp.quit)
	wp.wg.Wait()
	wp.running = false
	wp.logger.Info("Worker pool stopped")
	return nil
}

// SubmitParse submits resume text for parsing and waits for the result
func (wp *WorkerPool) SubmitParse(ctx context.Context, text string, options *models.ParseOptions) (*ParseResult, error) {
	if !wp.IsRunning() {
		return nil, fmt.Errorf("worker pool is not running")
	}

	if !wp.limiter.Allow() {
		return nil, fmt.Errorf("rate limit exceeded, try again later")
	}

	job := ParseJob{
		ID:         utils.GenerateRequestID(),
		Text:       text,
		Options:    options,
		ResultChan: make(chan ParseResult, 1),
		Context:    ctx,
		CreatedAt:  time.Now(),
	}

	wp.stats.mu.Lock()
	wp.stats.JobsQueued++
	wp.stats.mu.Unlock()

	select {
	case wp.jobQueue <- job:
	case <-time.After(queueSubmitTimeout):
		return nil, fmt.Errorf("job queue is full, request timed out")
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case result := <-job.ResultChan:
		return &result, nil
	case <-time.After(wp.config.Workers.Timeout):
		return nil, fmt.Errorf("parse job timed out after %v", wp.config.Workers.Timeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// IsRunning returns true if the worker pool is running
func (wp *WorkerPool) IsRunning() bool {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	return wp.running
}

// GetStats returns current pool statistics
func (wp *WorkerPool) GetStats() PoolStats {
	wp.stats.mu.RLock()
	defer wp.stats.mu.RUnlock()

	stats := PoolStats{
		JobsQueued:          wp.stats.JobsQueued,
		JobsProcessed:       wp.stats.JobsProcessed,
		JobsSuccessful:      wp.stats.JobsSuccessful,
		JobsFailed:          wp.stats.JobsFailed,
		TotalProcessingTime: wp.stats.TotalProcessingTime,
	}
	if stats.JobsProcessed > 0 {
		stats.AverageProcessingTime = stats.TotalProcessingTime / time.Duration(stats.JobsProcessed)
	}
	return stats
}

func (wp *WorkerPool) worker(id int) {
	defer wp.wg.Done()

	for {
		select {
		case job := <-wp.jobQueue:
			wp.processJob(id, job)
		case <-wp.quit:
			return
		}
	}
}

func (wp *WorkerPool) processJob(workerID int, job ParseJob) {
	startTime := time.Now()

	opts := pipeline.Options{Strict: wp.config.Pipeline.StrictMerge}
	if job.Options != nil {
		if job.Options.StrictMerge {
			opts.Strict = true
		}
		if job.Options.OracleProvider == models.OracleDisabled {
			opts.DisableOracle = true
		}
	}

	profile, meta, err := wp.pipeline.ExtractWithOptions(job.Context, job.Text, opts)

	result := ParseResult{
		Profile:   profile,
		Metadata:  meta,
		Error:     err,
		RequestID: job.ID,
		Duration:  time.Since(startTime),
	}

	wp.stats.mu.Lock()
	wp.stats.JobsProcessed++
	wp.stats.TotalProcessingTime += result.Duration
	if err != nil {
		wp.stats.JobsFailed++
	} else {
		wp.stats.JobsSuccessful++
	}
	wp.stats.mu.Unlock()

	select {
	case job.ResultChan <- result:
	case <-time.After(100 * time.Millisecond):
		wp.logger.Debug("Result channel timeout - client may have disconnected", map[string]interface{}{
			"job_id":    job.ID,
			"worker_id": workerID,
		})
	}
}

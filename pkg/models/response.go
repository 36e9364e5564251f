package models

import "time"

// ParseResponse represents the response from a parse request
type ParseResponse struct {
	Success        bool                `json:"success"`
	Profile        *DisplayProfile     `json:"profile,omitempty"`
	Metadata       *ExtractionMetadata `json:"metadata,omitempty"`
	Error          string              `json:"error,omitempty"`
	ProcessingTime time.Duration       `json:"processing_time"`
	RequestID      string              `json:"request_id"`
}

// AnalyzeResponse represents the response from an analyze request
type AnalyzeResponse struct {
	Success   bool            `json:"success"`
	Analysis  *AnalysisResult `json:"analysis,omitempty"`
	Source    string          `json:"source"` // "oracle", "fallback" or "cache"
	Cached    bool            `json:"cached"`
	Error     string          `json:"error,omitempty"`
	RequestID string          `json:"request_id"`
}

// MatchResponse represents the response from a match request
type MatchResponse struct {
	Success   bool         `json:"success"`
	Match     *MatchResult `json:"match,omitempty"`
	Source    string       `json:"source"` // "oracle", "fallback" or "cache"
	Cached    bool         `json:"cached"`
	Error     string       `json:"error,omitempty"`
	RequestID string       `json:"request_id"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

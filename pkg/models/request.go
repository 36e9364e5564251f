package models

// ParseRequest represents the request payload for parsing a resume
type ParseRequest struct {
	Text     string        `json:"text" validate:"required"`
	FileName string        `json:"file_name,omitempty"`
	Options  *ParseOptions `json:"options,omitempty"`
}

// OracleDisabled is the ParseOptions.OracleProvider value that turns off
// the AI pass for a single request.
const OracleDisabled = "disabled"

// ParseOptions provides additional configuration for parse requests
type ParseOptions struct {
	OracleProvider string `json:"oracle_provider,omitempty"` // "disabled" skips the AI pass; empty uses the configured provider
	StrictMerge    bool   `json:"strict_merge,omitempty"`    // validate AI email/phone before they win
}

// AnalyzeRequest represents the request payload for scoring a profile
type AnalyzeRequest struct {
	Profile ExtractedProfile `json:"profile" validate:"required"`
}

// MatchRequest represents the request payload for matching a profile
// against a job description
type MatchRequest struct {
	Profile        ExtractedProfile `json:"profile" validate:"required"`
	JobDescription string           `json:"job_description" validate:"required"`
}

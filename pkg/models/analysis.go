package models

// Sub-score maxima for the four analysis components
const (
	MaxATSScore       = 30
	MaxKeywordScore   = 30
	MaxContentScore   = 20
	MaxRelevanceScore = 20
)

// SubScores holds the four capped components of an analysis
type SubScores struct {
	ATS       int `json:"ats"`
	Keyword   int `json:"keyword"`
	Content   int `json:"content"`
	Relevance int `json:"relevance"`
}

// AnalysisResult is the scored evaluation of a profile. It is produced once
// per profile and context and never mutated; re-analysis builds a new one.
type AnalysisResult struct {
	OverallScore     int       `json:"overall_score"`
	Scores           SubScores `json:"scores"`
	Strengths        []string  `json:"strengths"`
	Weaknesses       []string  `json:"weaknesses"`
	Improvements     []string  `json:"improvements"`
	IndustrySpecific []string  `json:"industry_specific"`
	KeywordMatches   []string  `json:"keyword_matches"`
	Personalization  string    `json:"personalization"`
}

// MatchResult describes how a profile lines up against one job description
type MatchResult struct {
	MatchPercentage  int      `json:"match_percentage"`
	Matched          []string `json:"matched"`
	Missing          []string `json:"missing"`
	TotalJobKeywords int      `json:"total_job_keywords"`
	Recommendations  []string `json:"recommendations"`
}

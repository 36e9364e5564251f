// Package scoring implements the deterministic fallback evaluation: a
// four-component quality score and a keyword match against a job
// description. Both are pure functions of the profile, used when the AI
// evaluator is unavailable.
package scoring

import (
	"fmt"
	"math"

	"resumelens/internal/pipeline"
	"resumelens/pkg/models"
)

// Score computes the deterministic 0-100 analysis of a profile. Each
// sub-score independently clamps to its maximum; the overall score is
// exactly the sum of the four.
func Score(profile *models.ExtractedProfile) *models.AnalysisResult {
	meta := pipeline.Validate(profile)

	scores := models.SubScores{
		ATS:       atsScore(profile, meta),
		Keyword:   keywordScore(profile),
		Content:   contentScore(profile),
		Relevance: relevanceScore(profile),
	}

	result := &models.AnalysisResult{
		OverallScore:     scores.ATS + scores.Keyword + scores.Content + scores.Relevance,
		Scores:           scores,
		Strengths:        strengths(profile),
		Weaknesses:       weaknesses(profile),
		Improvements:     improvements(profile),
		IndustrySpecific: industryNotes(profile),
		KeywordMatches:   append([]string{}, profile.Skills.Technical...),
		Personalization:  personalization(profile),
	}
	return result
}

// atsScore rates formatting/parseability: contact details present,
// section coverage, and overall completeness.
func atsScore(profile *models.ExtractedProfile, meta *models.ExtractionMetadata) int {
	score := 0
	if profile.Name != nil && profile.Email != nil {
		score += 10
	}
	switch sections := len(meta.SectionsIdentified); {
	case sections >= 4:
		score += 10
	case sections >= 2:
		score += 5
	}
	score += roundHalfUp(meta.CompletenessScore * 10)
	return clamp(score, models.MaxATSScore)
}

// keywordScore rates skill density and evidence of applied experience
func keywordScore(profile *models.ExtractedProfile) int {
	score := 0
	switch tech := len(profile.Skills.Technical); {
	case tech >= 15:
		score += 15
	case tech >= 10:
		score += 12
	case tech >= 5:
		score += 8
	default:
		score += roundHalfUp(float64(tech) * 1.5)
	}

	if soft := len(profile.Skills.Soft); soft > 5 {
		score += 5
	} else {
		score += soft
	}

	if len(profile.Experience) > 0 {
		score += 5
		for _, exp := range profile.Experience {
			if len(exp.Responsibilities) > 0 {
				score += 5
				break
			}
		}
	}
	return clamp(score, models.MaxKeywordScore)
}

// contentScore rates depth: experience volume, skill breadth, and the
// presence of supporting sections
func contentScore(profile *models.ExtractedProfile) int {
	score := 0.0
	if exp := len(profile.Experience); exp >= 3 {
		score += 8
	} else {
		score += float64(exp) * 2.5
	}

	switch skills := len(profile.Skills.Technical) + len(profile.Skills.Soft); {
	case skills >= 10:
		score += 7
	case skills >= 5:
		score += 4
	case skills > 0:
		score += 2
	}

	extras := 0
	if len(profile.Projects) > 0 {
		extras += 2
	}
	if len(profile.Certifications) > 0 {
		extras += 2
	}
	if profile.Summary != nil && len(*profile.Summary) > 50 {
		extras++
	}
	if extras > 5 {
		extras = 5
	}
	score += float64(extras)

	return clamp(roundHalfUp(score), models.MaxContentScore)
}

// relevanceScore rates role fitness signals: education, sustained
// experience, and credentials
func relevanceScore(profile *models.ExtractedProfile) int {
	score := 0
	if len(profile.Education) > 0 {
		score += 5
	}
	if exp := len(profile.Experience); exp >= 3 {
		score += 10
	} else {
		score += exp * 3
	}

	extras := 0
	if len(profile.Certifications) > 0 {
		extras += 3
	}
	if len(profile.Projects) > 0 {
		extras += 2
	}
	if extras > 5 {
		extras = 5
	}
	score += extras

	return clamp(score, models.MaxRelevanceScore)
}

func strengths(profile *models.ExtractedProfile) []string {
	out := []string{}
	if len(profile.Skills.Technical) >= 10 {
		out = append(out, fmt.Sprintf("Broad technical skill set (%d skills listed)", len(profile.Skills.Technical)))
	}
	if len(profile.Experience) >= 3 {
		out = append(out, fmt.Sprintf("Solid work history with %d positions", len(profile.Experience)))
	}
	if len(profile.Certifications) > 0 {
		out = append(out, "Certifications back up the listed skills")
	}
	if profile.Summary != nil && len(*profile.Summary) > 50 {
		out = append(out, "Clear professional summary")
	}
	if len(out) == 0 {
		out = append(out, "Resume parsed successfully with a recognizable structure")
	}
	return out
}

func weaknesses(profile *models.ExtractedProfile) []string {
	out := []string{}
	if profile.Summary == nil || len(*profile.Summary) <= 50 {
		out = append(out, "Missing or very short professional summary")
	}
	if len(profile.Skills.Technical) < 5 {
		out = append(out, "Few technical skills are explicitly listed")
	}
	if len(profile.Projects) == 0 {
		out = append(out, "No projects section to demonstrate applied work")
	}
	hasResponsibilities := false
	for _, exp := range profile.Experience {
		if len(exp.Responsibilities) > 0 {
			hasResponsibilities = true
			break
		}
	}
	if !hasResponsibilities {
		out = append(out, "Experience entries lack responsibility bullet points")
	}
	return out
}

func improvements(profile *models.ExtractedProfile) []string {
	out := []string{}
	for _, weakness := range weaknesses(profile) {
		out = append(out, "Address: "+weakness)
	}
	out = append(out, "Quantify achievements with metrics where possible")
	return out
}

func industryNotes(profile *models.ExtractedProfile) []string {
	if len(profile.Skills.Technical) == 0 {
		return []string{"List concrete technologies to signal your target industry"}
	}
	return []string{fmt.Sprintf("Skills such as %s position this resume for technology roles", profile.Skills.Technical[0])}
}

func personalization(profile *models.ExtractedProfile) string {
	if profile.Name != nil {
		return fmt.Sprintf("Analysis generated for %s from the extracted resume content.", *profile.Name)
	}
	return "Analysis generated from the extracted resume content."
}

func clamp(score, max int) int {
	if score > max {
		return max
	}
	if score < 0 {
		return 0
	}
	return score
}

func roundHalfUp(value float64) int {
	return int(math.Floor(value + 0.5))
}

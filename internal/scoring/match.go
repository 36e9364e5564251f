package scoring

import (
	"fmt"
	"strings"

	"resumelens/pkg/models"
)

// maxMissingReported caps the missing-keyword list in the result; the match
// percentage is still computed over the full set
const maxMissingReported = 10

const minRecommendations = 3

// jobKeywordVocabulary is the fixed term list scanned for in job
// descriptions. Multi-word terms match as substrings of the lowercased text.
var jobKeywordVocabulary = []string{
	"python", "java", "javascript", "typescript", "react", "angular", "vue",
	"node.js", "go", "ruby", "php", "swift", "kotlin", "c++", "c#", "rust",
	"html", "css", "sql", "mysql", "postgresql", "mongodb", "redis",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins",
	"git", "ci/cd", "linux", "rest", "graphql", "microservices",
	"machine learning", "data analysis", "devops", "spring", "django",
	"flask", "agile", "scrum", "testing", "communication", "leadership",
	"teamwork", "problem solving", "project management",
}

// MatchJob compares a profile's skills against a job description using the
// fixed vocabulary. Matching is bidirectional case-insensitive substring
// containment, so "node.js" on the resume covers "node" in the job posting
// and vice versa.
func MatchJob(profile *models.ExtractedProfile, jobDescription string) *models.MatchResult {
	result := &models.MatchResult{
		Matched:         []string{},
		Missing:         []string{},
		Recommendations: []string{},
	}

	jobText := strings.ToLower(jobDescription)
	if strings.TrimSpace(jobText) == "" {
		result.Recommendations = fillRecommendations(result.Recommendations, 0)
		return result
	}

	var jobKeywords []string
	for _, term := range jobKeywordVocabulary {
		if strings.Contains(jobText, term) {
			jobKeywords = append(jobKeywords, term)
		}
	}
	result.TotalJobKeywords = len(jobKeywords)
	if len(jobKeywords) == 0 {
		result.Recommendations = fillRecommendations(result.Recommendations, 0)
		return result
	}

	resumeSkills := append(append([]string{}, profile.Skills.Technical...), profile.Skills.Soft...)

	missing := []string{}
	for _, keyword := range jobKeywords {
		if skillsCover(resumeSkills, keyword) {
			result.Matched = append(result.Matched, keyword)
		} else {
			missing = append(missing, keyword)
		}
	}

	result.MatchPercentage = roundHalfUp(float64(len(result.Matched)) / float64(len(jobKeywords)) * 100)

	if len(missing) > maxMissingReported {
		result.Missing = missing[:maxMissingReported]
	} else {
		result.Missing = missing
	}

	for i, keyword := range missing {
		if i >= minRecommendations {
			break
		}
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("Add '%s' to your skills or experience if you have worked with it", keyword))
	}
	if len(result.Matched) > 0 {
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("Highlight your %s experience prominently, it matches this role", result.Matched[0]))
	}
	result.Recommendations = fillRecommendations(result.Recommendations, result.MatchPercentage)

	return result
}

// skillsCover reports whether any resume skill matches the job keyword in
// either containment direction
func skillsCover(skills []string, keyword string) bool {
	for _, skill := range skills {
		lower := strings.ToLower(strings.TrimSpace(skill))
		if lower == "" {
			continue
		}
		if strings.Contains(lower, keyword) || strings.Contains(keyword, lower) {
			return true
		}
	}
	return false
}

// fillRecommendations pads the list up to the minimum with generic advice
func fillRecommendations(recs []string, percentage int) []string {
	generic := []string{
		"Tailor your summary to mirror the language of the job posting",
		"Use the exact keyword spellings from the posting where they apply to you",
		"Quantify achievements in roles that relate to this position",
	}
	if percentage >= 70 {
		generic = append([]string{"Strong keyword coverage, focus on ordering the matched skills first"}, generic...)
	}
	for _, rec := range generic {
		if len(recs) >= minRecommendations {
			break
		}
		recs = append(recs, rec)
	}
	return recs
}

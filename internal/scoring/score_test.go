package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumelens/pkg/models"
)

func strPtr(s string) *string { return &s }

func richProfile() *models.ExtractedProfile {
	p := models.NewExtractedProfile()
	p.Name = strPtr("Alice Barton")
	p.Email = strPtr("alice@gmail.com")
	p.Phone = strPtr("415-555-0123")
	p.Summary = strPtr("Backend engineer with eight years of experience across distributed systems and cloud platforms.")
	p.Experience = []models.Experience{
		{Company: "Acme", Position: "Staff Engineer", Duration: "2021 - Present", Responsibilities: []string{"Led platform team"}},
		{Company: "Globex", Position: "Senior Engineer", Duration: "2018 - 2021", Responsibilities: []string{"Built billing service"}},
		{Company: "Initech", Position: "Engineer", Duration: "2015 - 2018", Responsibilities: []string{"Maintained APIs"}},
	}
	p.Education = []models.Education{{Institution: "MIT", Degree: "BSc Computer Science", Dates: "2011 - 2015"}}
	p.Skills.Technical = []string{
		"Go", "Python", "JavaScript", "TypeScript", "React", "PostgreSQL",
		"Redis", "Kafka", "Docker", "Kubernetes", "Terraform", "AWS", "GCP",
		"Linux", "GraphQL", "gRPC",
	}
	p.Skills.Soft = []string{"Communication", "Leadership", "Mentoring", "Teamwork", "Negotiation", "Presentation"}
	p.Projects = []models.Project{{Name: "opentracer", Description: "Distributed tracing toolkit"}}
	p.Certifications = []models.Certification{{Name: "CKA", Issuer: "CNCF", Date: "2022"}}
	return p
}

func TestScoreRichProfileMaxesOut(t *testing.T) {
	result := Score(richProfile())

	assert.Equal(t, models.MaxATSScore, result.Scores.ATS)
	assert.Equal(t, models.MaxKeywordScore, result.Scores.Keyword)
	assert.Equal(t, models.MaxContentScore, result.Scores.Content)
	assert.Equal(t, models.MaxRelevanceScore, result.Scores.Relevance)
	assert.Equal(t, 100, result.OverallScore)
}

func TestScoreOverallIsSumOfSubScores(t *testing.T) {
	profiles := []*models.ExtractedProfile{
		richProfile(),
		models.NewExtractedProfile(),
		func() *models.ExtractedProfile {
			p := models.NewExtractedProfile()
			p.Name = strPtr("Bob Ray")
			p.Skills.Technical = []string{"Python"}
			return p
		}(),
	}

	for _, p := range profiles {
		result := Score(p)
		sum := result.Scores.ATS + result.Scores.Keyword + result.Scores.Content + result.Scores.Relevance
		assert.Equal(t, sum, result.OverallScore)
	}
}

func TestScoreMidTierProfile(t *testing.T) {
	p := richProfile()
	p.Skills.Technical = []string{"Go", "Python", "React", "SQL", "Docker"}
	p.Skills.Soft = []string{}
	p.Projects = []models.Project{}
	p.Certifications = []models.Certification{}

	result := Score(p)

	// 5 technical skills land in the lowest fixed keyword tier
	assert.Equal(t, 18, result.Scores.Keyword)
	// 3 experience entries + 5 skills + long summary
	assert.Equal(t, 13, result.Scores.Content)
	// education + sustained experience, no credentials
	assert.Equal(t, 15, result.Scores.Relevance)
	assert.Equal(t, models.MaxATSScore, result.Scores.ATS)
	assert.Equal(t, 76, result.OverallScore)
}

func TestScoreSkillTiersBelowFive(t *testing.T) {
	tests := []struct {
		techCount int
		expected  int
	}{
		{0, 0},
		{1, 2},
		{2, 3},
		{3, 5},
		{4, 6},
	}

	for _, tt := range tests {
		p := models.NewExtractedProfile()
		for i := 0; i < tt.techCount; i++ {
			p.Skills.Technical = append(p.Skills.Technical, strings.Repeat("x", i+1))
		}

		result := Score(p)
		assert.Equal(t, tt.expected, result.Scores.Keyword, "tech count %d", tt.techCount)
	}
}

func TestScoreEmptyProfile(t *testing.T) {
	result := Score(models.NewExtractedProfile())

	assert.Zero(t, result.Scores.Keyword)
	assert.Zero(t, result.Scores.Content)
	assert.Zero(t, result.Scores.Relevance)
	assert.Zero(t, result.Scores.ATS)
	assert.Zero(t, result.OverallScore)
	// narrative fields are always populated
	assert.NotEmpty(t, result.Strengths)
	assert.NotEmpty(t, result.Weaknesses)
	assert.NotEmpty(t, result.Improvements)
	assert.NotEmpty(t, result.IndustrySpecific)
}

func TestScoreNarrative(t *testing.T) {
	result := Score(richProfile())

	require.NotEmpty(t, result.Strengths)
	assert.Contains(t, result.Strengths[0], "Broad technical skill set")
	assert.Contains(t, result.Personalization, "Alice Barton")
	assert.Equal(t, richProfile().Skills.Technical, result.KeywordMatches)

	anon := Score(models.NewExtractedProfile())
	assert.Equal(t, "Analysis generated from the extracted resume content.", anon.Personalization)
}

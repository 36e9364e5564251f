package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumelens/pkg/models"
)

func TestMatchJobPartialOverlap(t *testing.T) {
	p := models.NewExtractedProfile()
	p.Skills.Technical = []string{"React", "AWS"}

	result := MatchJob(p, "We need react, node.js and agile experience.")

	assert.Equal(t, []string{"react"}, result.Matched)
	assert.Equal(t, []string{"node.js", "agile"}, result.Missing)
	assert.Equal(t, 3, result.TotalJobKeywords)
	assert.Equal(t, 33, result.MatchPercentage)
	assert.GreaterOrEqual(t, len(result.Recommendations), 3)
	assert.Contains(t, result.Recommendations,
		"Highlight your react experience prominently, it matches this role")
}

func TestMatchJobBidirectionalContainment(t *testing.T) {
	p := models.NewExtractedProfile()
	p.Skills.Technical = []string{"JavaScript"}

	// "javascript" on the resume covers the shorter "java" job keyword
	result := MatchJob(p, "Looking for a java developer.")

	assert.Equal(t, []string{"java"}, result.Matched)
	assert.Empty(t, result.Missing)
	assert.Equal(t, 100, result.MatchPercentage)
}

func TestMatchJobSoftSkillsCount(t *testing.T) {
	p := models.NewExtractedProfile()
	p.Skills.Soft = []string{"Leadership", "Communication"}

	result := MatchJob(p, "This role requires leadership and communication.")

	assert.ElementsMatch(t, []string{"communication", "leadership"}, result.Matched)
	assert.Equal(t, 100, result.MatchPercentage)
}

func TestMatchJobEmptyDescription(t *testing.T) {
	p := models.NewExtractedProfile()
	p.Skills.Technical = []string{"Python"}

	result := MatchJob(p, "   ")

	assert.Zero(t, result.MatchPercentage)
	assert.Zero(t, result.TotalJobKeywords)
	assert.Empty(t, result.Matched)
	assert.Empty(t, result.Missing)
	assert.Len(t, result.Recommendations, 3)
}

func TestMatchJobNoVocabularyHits(t *testing.T) {
	result := MatchJob(models.NewExtractedProfile(), "We sell flowers and arrange weddings.")

	assert.Zero(t, result.TotalJobKeywords)
	assert.Zero(t, result.MatchPercentage)
	assert.Len(t, result.Recommendations, 3)
}

func TestMatchJobMissingListIsCapped(t *testing.T) {
	jd := "python java javascript typescript react angular vue node.js ruby php swift kotlin html css sql mysql docker"

	result := MatchJob(models.NewExtractedProfile(), jd)

	require.Greater(t, result.TotalJobKeywords, maxMissingReported)
	assert.Len(t, result.Missing, maxMissingReported)
	assert.Zero(t, result.MatchPercentage)
	assert.Empty(t, result.Matched)
}

func TestMatchJobHighCoverageLeadRecommendation(t *testing.T) {
	p := models.NewExtractedProfile()
	p.Skills.Technical = []string{"Python", "Django", "PostgreSQL"}

	result := MatchJob(p, "Backend role working with python, django and postgresql.")

	assert.Equal(t, 100, result.MatchPercentage)
	assert.Contains(t, result.Recommendations,
		"Strong keyword coverage, focus on ordering the matched skills first")
}

package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumelens/pkg/models"
)

func completeFixture() *models.ExtractedProfile {
	p := models.NewExtractedProfile()
	p.Name = strPtr("Alice Barton")
	p.Email = strPtr("alice@gmail.com")
	p.Phone = strPtr("415-555-0123")
	p.Experience = []models.Experience{{Company: "Acme", Position: "Engineer", Duration: "2020 - 2023"}}
	p.Education = []models.Education{{Institution: "MIT", Degree: "BSc Computer Science"}}
	p.Skills.Technical = []string{"Go", "Python"}
	return p
}

func TestValidateCompleteProfile(t *testing.T) {
	meta := Validate(completeFixture())

	assert.InDelta(t, 1.0, meta.CompletenessScore, 1e-9)
	assert.Empty(t, meta.ValidationIssues)
	assert.Empty(t, meta.ExtractionErrors)
	assert.False(t, meta.Timestamp.IsZero())
}

func TestValidateEmptyProfile(t *testing.T) {
	meta := Validate(models.NewExtractedProfile())

	assert.Zero(t, meta.CompletenessScore)
	require.Len(t, meta.ExtractionErrors, 3)
	assert.Contains(t, meta.ExtractionErrors, "no experience entries extracted")
	assert.Contains(t, meta.ExtractionErrors, "no technical skills extracted")
	assert.Contains(t, meta.ExtractionErrors, "no education entries extracted")
}

func TestValidatePlaceholderName(t *testing.T) {
	p := completeFixture()
	p.Name = strPtr("John Doe")

	meta := Validate(p)

	assert.Contains(t, meta.ValidationIssues, "name looks like a placeholder or sample value")
	assert.InDelta(t, 5.0/6.0, meta.CompletenessScore, 1e-9)
}

func TestValidateSampleContactValues(t *testing.T) {
	p := completeFixture()
	p.Email = strPtr("email@example.com")
	p.Phone = strPtr("123-456-7890")

	meta := Validate(p)

	assert.Contains(t, meta.ValidationIssues, "email looks like a placeholder or sample value")
	assert.Contains(t, meta.ValidationIssues, "phone looks like a placeholder or sample value")
	assert.InDelta(t, 4.0/6.0, meta.CompletenessScore, 1e-9)
}

func TestValidatePlaceholderEntries(t *testing.T) {
	p := completeFixture()
	p.Experience = []models.Experience{{Company: "Company Name", Position: ""}}
	p.Education = []models.Education{{Institution: "University Name", Degree: "Degree"}}

	meta := Validate(p)

	assert.Contains(t, meta.ValidationIssues, "experience entry 1 has a missing or placeholder company")
	assert.Contains(t, meta.ValidationIssues, "experience entry 1 has a missing or placeholder position")
	assert.Contains(t, meta.ValidationIssues, "education entry 1 has a missing or placeholder institution")
	assert.Contains(t, meta.ValidationIssues, "education entry 1 has a missing or placeholder degree")
	// placeholder entries still count toward completeness; issues are advisory
	assert.InDelta(t, 1.0, meta.CompletenessScore, 1e-9)
}

func TestValidateShortPhone(t *testing.T) {
	p := completeFixture()
	p.Phone = strPtr("12345")

	meta := Validate(p)

	assert.Contains(t, meta.ValidationIssues, "phone looks like a placeholder or sample value")
	assert.InDelta(t, 5.0/6.0, meta.CompletenessScore, 1e-9)
}

func TestValidateSectionsFromContent(t *testing.T) {
	p := completeFixture()
	p.Summary = strPtr("Engineer.")
	p.Skills.Soft = []string{"Leadership"}

	meta := Validate(p)

	assert.Equal(t,
		[]string{"summary", "experience", "education", "technical_skills", "soft_skills"},
		meta.SectionsIdentified)
}

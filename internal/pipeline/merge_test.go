package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumelens/pkg/models"
)

func strPtr(s string) *string { return &s }

func heuristicFixture() *models.ExtractedProfile {
	p := models.NewExtractedProfile()
	p.Name = strPtr("John Smith")
	p.Email = strPtr("john@gmail.com")
	p.Phone = strPtr("555-123-4567")
	p.Skills.Technical = []string{"Python", "SQL"}
	p.Experience = []models.Experience{{
		Company:          "TechCorp",
		Position:         "Engineer",
		Duration:         "2020 - Present",
		Responsibilities: []string{"Built APIs"},
	}}
	return p
}

func TestMergeNilOracle(t *testing.T) {
	heuristic := heuristicFixture()

	merged := Merge(heuristic, nil, Options{})

	assert.Equal(t, heuristic.Name, merged.Name)
	assert.Equal(t, heuristic.Experience, merged.Experience)
	assert.NotSame(t, heuristic, merged)
}

func TestMergeMeaningfulOracleWins(t *testing.T) {
	heuristic := heuristicFixture()
	ai := models.NewExtractedProfile()
	ai.Name = strPtr("Jonathan Smith")
	ai.Summary = strPtr("Backend engineer with a focus on distributed systems.")
	ai.Skills.Technical = []string{"Python", "Go", "Kubernetes"}

	merged := Merge(heuristic, ai, Options{})

	require.NotNil(t, merged.Name)
	assert.Equal(t, "Jonathan Smith", *merged.Name)
	require.NotNil(t, merged.Summary)
	assert.Equal(t, []string{"Python", "Go", "Kubernetes"}, merged.Skills.Technical)
	// untouched fields keep the heuristic finding
	require.NotNil(t, merged.Email)
	assert.Equal(t, "john@gmail.com", *merged.Email)
}

func TestMergeBoilerplateNeverClobbers(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"null literal", "null"},
		{"unknown", "Unknown"},
		{"not provided", "Not Provided"},
		{"n/a", "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			heuristic := heuristicFixture()
			ai := models.NewExtractedProfile()
			ai.Name = strPtr(tt.value)
			ai.Email = strPtr(tt.value)

			merged := Merge(heuristic, ai, Options{})

			require.NotNil(t, merged.Name)
			assert.Equal(t, "John Smith", *merged.Name)
			require.NotNil(t, merged.Email)
			assert.Equal(t, "john@gmail.com", *merged.Email)
		})
	}
}

func TestMergeEmptyOracleListsKeepHeuristic(t *testing.T) {
	heuristic := heuristicFixture()
	ai := models.NewExtractedProfile()

	merged := Merge(heuristic, ai, Options{})

	assert.Equal(t, heuristic.Experience, merged.Experience)
	assert.Equal(t, []string{"Python", "SQL"}, merged.Skills.Technical)
}

func TestMergeStrictContactValidation(t *testing.T) {
	heuristic := heuristicFixture()
	ai := models.NewExtractedProfile()
	ai.Email = strPtr("clearly not an email")
	ai.Phone = strPtr("12345")

	strict := Merge(heuristic, ai, Options{Strict: true})
	require.NotNil(t, strict.Email)
	assert.Equal(t, "john@gmail.com", *strict.Email)
	require.NotNil(t, strict.Phone)
	assert.Equal(t, "555-123-4567", *strict.Phone)

	// lenient mode trusts any meaningful value
	lenient := Merge(heuristic, ai, Options{})
	require.NotNil(t, lenient.Email)
	assert.Equal(t, "clearly not an email", *lenient.Email)

	// a well-formed value passes strict validation
	ai.Email = strPtr("jonathan.smith@outlook.com")
	ai.Phone = strPtr("+1 415 555 0123")
	strict = Merge(heuristic, ai, Options{Strict: true})
	require.NotNil(t, strict.Email)
	assert.Equal(t, "jonathan.smith@outlook.com", *strict.Email)
	require.NotNil(t, strict.Phone)
	assert.Equal(t, "+1 415 555 0123", *strict.Phone)
}

func TestMergeLeavesInputsUntouched(t *testing.T) {
	heuristic := models.NewExtractedProfile()
	heuristic.Experience = []models.Experience{{Company: "TechCorp", Position: "Engineer"}}
	ai := models.NewExtractedProfile()
	ai.Name = strPtr("Jonathan Smith")

	merged := Merge(heuristic, ai, Options{})

	require.Len(t, merged.Experience, 1)
	assert.NotNil(t, merged.Experience[0].Responsibilities)
	// the heuristic entry keeps its nil Responsibilities slice
	assert.Nil(t, heuristic.Experience[0].Responsibilities)
	assert.Nil(t, heuristic.Name)
}

func TestMergeNormalizesNilLists(t *testing.T) {
	heuristic := models.NewExtractedProfile()
	ai := &models.ExtractedProfile{
		Experience: []models.Experience{{Company: "Acme", Position: "Analyst"}},
	}

	merged := Merge(heuristic, ai, Options{})

	require.Len(t, merged.Experience, 1)
	assert.NotNil(t, merged.Experience[0].Responsibilities)
	assert.NotNil(t, merged.Skills.Technical)
	assert.NotNil(t, merged.Projects)
	assert.NotNil(t, merged.Interests)
}

func TestMeaningful(t *testing.T) {
	assert.True(t, Meaningful("John Smith"))
	assert.True(t, Meaningful("0"))
	assert.False(t, Meaningful(""))
	assert.False(t, Meaningful("   "))
	assert.False(t, Meaningful("NULL"))
	assert.False(t, Meaningful("None"))
	assert.False(t, Meaningful("undefined"))
}

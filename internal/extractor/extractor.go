// Package extractor implements the heuristic resume-to-structured-data
// pipeline: section segmentation and the family of field extractors. Every
// extractor is a pure function over the input text, safe to run in any order
// or in parallel; a field with no evidence degrades to nil/empty instead of
// raising.
package extractor

import (
	"regexp"
	"strings"

	"resumelens/pkg/models"
	"resumelens/pkg/utils"
)

// minExtractableLength is the minimum text length, after whitespace
// normalization, below which no extractor can produce meaningful output
const minExtractableLength = 20

var whitespaceRunRegex = regexp.MustCompile(`\s+`)

// Extractor runs the heuristic field extractors. It is stateless and safe
// for concurrent use.
type Extractor struct{}

// NewExtractor creates a new heuristic extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract builds a structured profile from raw resume text. It returns an
// input error for empty or near-empty text; every other outcome is a
// best-effort profile with gaps represented as nil/empty fields.
func (e *Extractor) Extract(text string) (*models.ExtractedProfile, error) {
	normalized := strings.TrimSpace(whitespaceRunRegex.ReplaceAllString(text, " "))
	if len(normalized) < minExtractableLength {
		return nil, utils.NewInputError("text is empty or too short to extract from")
	}

	profile := models.NewExtractedProfile()
	profile.Name = optional(ExtractName(text))
	profile.Email = optional(ExtractEmail(text))
	profile.Phone = optional(ExtractPhone(text))
	profile.Address = optional(ExtractLocation(text))
	profile.Summary = optional(ExtractSummary(text))
	profile.Experience = ExtractExperience(text)
	profile.Education = ExtractEducation(text)
	profile.Skills = ExtractSkills(text)
	profile.Projects = ExtractProjects(text)
	profile.Certifications = ExtractCertifications(text)
	profile.Languages = ExtractLanguages(text)
	profile.Interests = ExtractInterests(text)

	return profile, nil
}

// SectionsIdentified lists the canonical sections whose headings appear in
// the text, in a stable order
func (e *Extractor) SectionsIdentified(text string) []string {
	ordered := []string{
		SectionSummary, SectionExperience, SectionEducation, SectionSkills,
		SectionProjects, SectionCertifications, SectionLanguages, SectionInterests,
	}
	var found []string
	for _, name := range ordered {
		if Section(text, name) != "" {
			found = append(found, name)
		}
	}
	return found
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

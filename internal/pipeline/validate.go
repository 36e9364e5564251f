package pipeline

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"resumelens/pkg/models"
)

// requiredFieldCount is the number of fields feeding the completeness score:
// name, email, phone, experience, education, skills
const requiredFieldCount = 6

var (
	placeholderRegex      = regexp.MustCompile(`(?i)(name|placeholder)`)
	entryPlaceholderRegex = regexp.MustCompile(`(?i)\b(company|position|role|placeholder)\b`)
	eduPlaceholderRegex   = regexp.MustCompile(`(?i)\b(institution|university name|degree|placeholder)\b`)
	companyTokenRegex     = regexp.MustCompile(`(?i)\b(inc|llc|corp|corporation|ltd|gmbh|pvt)\b\.?`)
	digitRegex            = regexp.MustCompile(`\d`)
)

// sample values that indicate templated rather than extracted content
var knownSampleValues = map[string]bool{
	"john doe":            true,
	"jane doe":            true,
	"your name":           true,
	"john.doe@email.com":  true,
	"email@example.com":   true,
	"youremail@email.com": true,
	"123-456-7890":        true,
	"000-000-0000":        true,
}

// Validate inspects a profile for placeholder values and structural gaps and
// derives its extraction metadata. Soft findings (content that looks
// synthetic or templated) land in ValidationIssues; hard misses (a whole
// field family extracted nothing) land in ExtractionErrors. The caller owns
// Method; Timestamp is set here.
func Validate(profile *models.ExtractedProfile) *models.ExtractionMetadata {
	meta := &models.ExtractionMetadata{
		Timestamp:        time.Now().UTC(),
		ValidationIssues: []string{},
		ExtractionErrors: []string{},
	}

	nameOK := validName(profile.Name, meta)
	emailOK := validEmail(profile.Email, meta)
	phoneOK := validPhone(profile.Phone, meta)

	if profile.Address != nil && companyTokenRegex.MatchString(*profile.Address) {
		meta.ValidationIssues = append(meta.ValidationIssues, "address looks like a company name")
	}

	for i, exp := range profile.Experience {
		if exp.Company == "" || entryPlaceholderRegex.MatchString(exp.Company) {
			meta.ValidationIssues = append(meta.ValidationIssues,
				fmt.Sprintf("experience entry %d has a missing or placeholder company", i+1))
		}
		if exp.Position == "" || entryPlaceholderRegex.MatchString(exp.Position) {
			meta.ValidationIssues = append(meta.ValidationIssues,
				fmt.Sprintf("experience entry %d has a missing or placeholder position", i+1))
		}
	}

	for i, edu := range profile.Education {
		if edu.Institution == "" || eduPlaceholderRegex.MatchString(edu.Institution) {
			meta.ValidationIssues = append(meta.ValidationIssues,
				fmt.Sprintf("education entry %d has a missing or placeholder institution", i+1))
		}
		if edu.Degree == "" || eduPlaceholderRegex.MatchString(edu.Degree) {
			meta.ValidationIssues = append(meta.ValidationIssues,
				fmt.Sprintf("education entry %d has a missing or placeholder degree", i+1))
		}
	}

	if len(profile.Experience) == 0 {
		meta.ExtractionErrors = append(meta.ExtractionErrors, "no experience entries extracted")
	}
	if len(profile.Skills.Technical) == 0 {
		meta.ExtractionErrors = append(meta.ExtractionErrors, "no technical skills extracted")
	}
	if len(profile.Education) == 0 {
		meta.ExtractionErrors = append(meta.ExtractionErrors, "no education entries extracted")
	}

	complete := 0
	if nameOK {
		complete++
	}
	if emailOK {
		complete++
	}
	if phoneOK {
		complete++
	}
	if len(profile.Experience) > 0 {
		complete++
	}
	if len(profile.Education) > 0 {
		complete++
	}
	if len(profile.Skills.Technical)+len(profile.Skills.Soft) > 0 {
		complete++
	}
	meta.CompletenessScore = float64(complete) / requiredFieldCount

	meta.SectionsIdentified = identifiedSections(profile)

	return meta
}

func validName(name *string, meta *models.ExtractionMetadata) bool {
	if name == nil || *name == "" {
		return false
	}
	if placeholderRegex.MatchString(*name) || knownSampleValues[strings.ToLower(*name)] {
		meta.ValidationIssues = append(meta.ValidationIssues, "name looks like a placeholder or sample value")
		return false
	}
	return true
}

func validEmail(email *string, meta *models.ExtractionMetadata) bool {
	if email == nil || *email == "" {
		return false
	}
	if !strings.Contains(*email, "@") || knownSampleValues[strings.ToLower(*email)] ||
		strings.Contains(strings.ToLower(*email), "placeholder") {
		meta.ValidationIssues = append(meta.ValidationIssues, "email looks like a placeholder or sample value")
		return false
	}
	return true
}

func validPhone(phone *string, meta *models.ExtractionMetadata) bool {
	if phone == nil || *phone == "" {
		return false
	}
	digits := len(digitRegex.FindAllString(*phone, -1))
	if digits < 7 || knownSampleValues[strings.ToLower(*phone)] {
		meta.ValidationIssues = append(meta.ValidationIssues, "phone looks like a placeholder or sample value")
		return false
	}
	return true
}

// identifiedSections rebuilds the section list from profile content rather
// than from the raw text, so it stays accurate after merging
func identifiedSections(profile *models.ExtractedProfile) []string {
	sections := []string{}
	if profile.Summary != nil && *profile.Summary != "" {
		sections = append(sections, "summary")
	}
	if len(profile.Experience) > 0 {
		sections = append(sections, "experience")
	}
	if len(profile.Education) > 0 {
		sections = append(sections, "education")
	}
	if len(profile.Skills.Technical) > 0 {
		sections = append(sections, "technical_skills")
	}
	if len(profile.Skills.Soft) > 0 {
		sections = append(sections, "soft_skills")
	}
	if len(profile.Projects) > 0 {
		sections = append(sections, "projects")
	}
	if len(profile.Certifications) > 0 {
		sections = append(sections, "certifications")
	}
	if len(profile.Languages) > 0 {
		sections = append(sections, "languages")
	}
	if len(profile.Interests) > 0 {
		sections = append(sections, "interests")
	}
	return sections
}

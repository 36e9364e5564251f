package pipeline

import (
	"regexp"
	"strings"

	"resumelens/pkg/models"
)

// Options control one extraction run. Strict additionally requires
// AI-provided email/phone values to pass format validation before they may
// override a heuristic finding; lenient is the default. DisableOracle skips
// the AI pass entirely, forcing heuristic-only extraction.
type Options struct {
	Strict        bool
	DisableOracle bool
}

// boilerplate strings an oracle sometimes emits instead of real values;
// these must never clobber a positive heuristic finding
var boilerplateValues = map[string]bool{
	"":             true,
	"null":         true,
	"unknown":      true,
	"n/a":          true,
	"na":           true,
	"not provided": true,
	"undefined":    true,
	"string":       true,
	"none":         true,
}

var (
	mergeEmailRegex  = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	mergeDigitsRegex = regexp.MustCompile(`\d`)
)

// Merge reconciles the AI oracle's profile with the heuristic one. The
// heuristic profile is the base; each AI field overwrites it only when the
// AI value is meaningful. Skills sub-lists are reconciled independently.
// Neither input is mutated.
func Merge(heuristic, ai *models.ExtractedProfile, opts Options) *models.ExtractedProfile {
	merged := *heuristic
	// entry slices get their own backing so Normalize repairs below never
	// write into the caller's entries
	merged.Experience = append([]models.Experience(nil), heuristic.Experience...)
	merged.Normalize()
	if ai == nil {
		return &merged
	}

	if meaningfulPtr(ai.Name) {
		merged.Name = ai.Name
	}
	if meaningfulPtr(ai.Email) && (!opts.Strict || validEmailFormat(*ai.Email)) {
		merged.Email = ai.Email
	}
	if meaningfulPtr(ai.Phone) && (!opts.Strict || validPhoneFormat(*ai.Phone)) {
		merged.Phone = ai.Phone
	}
	if meaningfulPtr(ai.Address) {
		merged.Address = ai.Address
	}
	if meaningfulPtr(ai.Summary) {
		merged.Summary = ai.Summary
	}
	if len(ai.Experience) > 0 {
		merged.Experience = ai.Experience
	}
	if len(ai.Education) > 0 {
		merged.Education = ai.Education
	}
	if len(ai.Skills.Technical) > 0 {
		merged.Skills.Technical = ai.Skills.Technical
	}
	if len(ai.Skills.Soft) > 0 {
		merged.Skills.Soft = ai.Skills.Soft
	}
	if len(ai.Projects) > 0 {
		merged.Projects = ai.Projects
	}
	if len(ai.Certifications) > 0 {
		merged.Certifications = ai.Certifications
	}
	if len(ai.Languages) > 0 {
		merged.Languages = ai.Languages
	}
	if len(ai.Interests) > 0 {
		merged.Interests = ai.Interests
	}

	merged.Normalize()
	return &merged
}

// Meaningful reports whether a string value is merge-worthy: non-blank and
// not one of the boilerplate placeholders oracles emit.
func Meaningful(value string) bool {
	return !boilerplateValues[strings.ToLower(strings.TrimSpace(value))]
}

func meaningfulPtr(value *string) bool {
	return value != nil && Meaningful(*value)
}

func validEmailFormat(email string) bool {
	return mergeEmailRegex.MatchString(strings.TrimSpace(email))
}

func validPhoneFormat(phone string) bool {
	return len(mergeDigitsRegex.FindAllString(phone, -1)) >= 10
}

package extractor

import (
	"strings"
)

// Canonical section names used across the extractors
const (
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionLanguages      = "languages"
	SectionInterests      = "interests"
)

// sectionHeadings maps each canonical section to its heading synonym set.
// Matching is case-insensitive against whole heading lines.
var sectionHeadings = map[string][]string{
	SectionSummary: {
		"summary", "professional summary", "career summary", "profile",
		"professional profile", "objective", "career objective", "about", "about me",
	},
	SectionExperience: {
		"experience", "work experience", "employment history", "employment",
		"professional experience", "work history", "career history",
	},
	SectionEducation: {
		"education", "educational background", "academic background",
		"academics", "qualifications", "academic qualifications",
	},
	SectionSkills: {
		"skills", "technical skills", "core competencies", "competencies",
		"skills & abilities", "technologies", "technical expertise", "expertise",
	},
	SectionProjects: {
		"projects", "personal projects", "key projects", "academic projects", "portfolio",
	},
	SectionCertifications: {
		"certifications", "certificates", "licenses", "licenses & certifications",
		"certifications & licenses", "courses", "training",
	},
	SectionLanguages: {
		"languages", "language proficiency", "spoken languages",
	},
	SectionInterests: {
		"interests", "hobbies", "hobbies & interests", "interests & hobbies", "activities",
	},
}

// headingOf reports which known section a line introduces, if any. A heading
// line is short and consists of nothing but a synonym, optionally followed
// by a colon.
func headingOf(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > 40 {
		return "", false
	}
	trimmed = strings.TrimSuffix(trimmed, ":")
	trimmed = strings.ToLower(strings.TrimSpace(trimmed))

	for section, synonyms := range sectionHeadings {
		for _, synonym := range synonyms {
			if trimmed == synonym {
				return section, true
			}
		}
	}
	return "", false
}

// Section returns the body of the named section: everything after its first
// matching heading line up to (not including) the next heading that belongs
// to any other known section, or end of text. The boundary is determined by
// heading tokens only, never by blank lines. Returns "" when the section's
// headings never appear; callers decide whether to fall back to scanning the
// whole document.
func Section(text, name string) string {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		if section, ok := headingOf(line); ok && section == name {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return ""
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		if section, ok := headingOf(lines[i]); ok && section != name {
			end = i
			break
		}
	}

	return strings.TrimRight(strings.Join(lines[start:end], "\n"), "\n \t")
}

// nonEmptyLines returns the trimmed non-empty lines of the text, up to limit
// lines (limit <= 0 means all)
func nonEmptyLines(text string, limit int) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if limit > 0 && len(lines) >= limit {
			break
		}
	}
	return lines
}

// stripBullet removes a leading bullet or dash marker from a line
func stripBullet(line string) string {
	line = strings.TrimSpace(line)
	for _, marker := range []string{"•", "◦", "▪", "●", "*", "-", "–", "—", "·"} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker))
		}
	}
	return line
}

// isBulleted reports whether the line starts with a bullet marker
func isBulleted(line string) bool {
	line = strings.TrimSpace(line)
	for _, marker := range []string{"•", "◦", "▪", "●", "*", "-", "–", "—", "·"} {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}

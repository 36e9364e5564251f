package extractor

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"resumelens/pkg/models"
)

const maxSummaryLength = 600

var (
	proficiencyRegex = regexp.MustCompile(`(?i)\b(native|bilingual|fluent|proficient|professional|advanced|intermediate|conversational|basic|beginner|elementary)\b`)
	certDateRegex    = regexp.MustCompile(`(?i)\b(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s+)?(19|20)\d{2}\b`)
	parenthesesRegex = regexp.MustCompile(`\(([^)]+)\)`)
)

// ExtractSummary returns the text of the summary/objective section, capped
// to a sensible length. Empty when no such section exists.
func ExtractSummary(text string) string {
	section := Section(text, SectionSummary)
	if section == "" {
		return ""
	}

	summary := strings.Join(nonEmptyLines(section, 0), " ")
	if len(summary) > maxSummaryLength {
		// back off to a rune boundary so the cap never splits a character
		cut := maxSummaryLength
		for cut > 0 && !utf8.RuneStart(summary[cut]) {
			cut--
		}
		summary = strings.TrimSpace(summary[:cut])
	}
	return summary
}

// ExtractCertifications parses certification entries from their section.
// Lines shaped "Name - Issuer - Date" or "Name, Issuer, Date" split into
// fields; anything else becomes a name-only entry.
func ExtractCertifications(text string) []models.Certification {
	certs := []models.Certification{}
	section := Section(text, SectionCertifications)
	if section == "" {
		return certs
	}

	for _, raw := range nonEmptyLines(section, 0) {
		line := stripBullet(raw)
		if line == "" {
			continue
		}

		cert := models.Certification{}
		if date := certDateRegex.FindString(line); date != "" {
			cert.Date = strings.TrimSpace(date)
			line = strings.TrimSpace(certDateRegex.ReplaceAllString(line, ""))
			line = strings.Trim(line, " ,()-–|")
		}

		parts := splitOnAny(line, []string{" - ", " – ", " | ", ", "})
		switch len(parts) {
		case 0:
			continue
		case 1:
			cert.Name = parts[0]
		default:
			cert.Name = parts[0]
			cert.Issuer = parts[1]
		}
		if cert.Name == "" {
			continue
		}
		certs = append(certs, cert)
	}
	return certs
}

// ExtractProjects parses project entries. "Name: description" and
// "Name - description" lines open entries; a parenthesized or
// "Technologies:" trailing list attaches as technologies.
func ExtractProjects(text string) []models.Project {
	projects := []models.Project{}
	section := Section(text, SectionProjects)
	if section == "" {
		return projects
	}

	for _, raw := range nonEmptyLines(section, 0) {
		line := stripBullet(raw)
		if line == "" {
			continue
		}

		project := models.Project{}
		if match := parenthesesRegex.FindStringSubmatch(line); match != nil && looksLikeTechList(match[1]) {
			project.Technologies = splitList(match[1])
			line = strings.TrimSpace(parenthesesRegex.ReplaceAllString(line, ""))
		}

		parts := splitOnAny(line, []string{": ", " - ", " – "})
		switch len(parts) {
		case 0:
			continue
		case 1:
			// continuation line: extend the previous description
			if len(projects) > 0 && len(parts[0]) > 10 {
				last := &projects[len(projects)-1]
				if last.Description == "" {
					last.Description = parts[0]
				} else {
					last.Description += " " + parts[0]
				}
				continue
			}
			project.Name = parts[0]
		default:
			project.Name = parts[0]
			project.Description = strings.Join(parts[1:], " - ")
		}
		if project.Name == "" {
			continue
		}
		projects = append(projects, project)
	}
	return projects
}

// ExtractLanguages parses language/proficiency pairs from their section
func ExtractLanguages(text string) []models.Language {
	languages := []models.Language{}
	section := Section(text, SectionLanguages)
	if section == "" {
		return languages
	}

	for _, raw := range nonEmptyLines(section, 0) {
		line := stripBullet(raw)
		if line == "" {
			continue
		}

		// a single line may carry several comma-separated languages
		for _, token := range strings.Split(line, ",") {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			lang := models.Language{}
			if match := proficiencyRegex.FindString(token); match != "" {
				lang.Proficiency = toTitleCase(match)
				token = proficiencyRegex.ReplaceAllString(token, "")
			}
			lang.Language = strings.Trim(token, " :()-–|")
			if lang.Language == "" {
				continue
			}
			languages = append(languages, lang)
		}
	}
	return languages
}

// ExtractInterests splits the interests section into individual items
func ExtractInterests(text string) []string {
	interests := []string{}
	section := Section(text, SectionInterests)
	if section == "" {
		return interests
	}

	for _, raw := range nonEmptyLines(section, 0) {
		line := stripBullet(raw)
		for _, token := range splitList(line) {
			if len(token) >= 2 && len(token) <= 60 {
				interests = append(interests, token)
			}
		}
	}
	return interests
}

func splitOnAny(line string, separators []string) []string {
	for _, sep := range separators {
		if strings.Contains(line, sep) {
			var parts []string
			for _, part := range strings.Split(line, sep) {
				if trimmed := strings.TrimSpace(part); trimmed != "" {
					parts = append(parts, trimmed)
				}
			}
			return parts
		}
	}
	if trimmed := strings.TrimSpace(line); trimmed != "" {
		return []string{trimmed}
	}
	return nil
}

func splitList(raw string) []string {
	var items []string
	for _, token := range skillSplitRegex.Split(raw, -1) {
		token = strings.Trim(token, " .\t-–")
		if token != "" {
			items = append(items, token)
		}
	}
	return items
}

func looksLikeTechList(inner string) bool {
	return strings.Contains(inner, ",") || containsAnyTechnicalSkill(inner)
}

func containsAnyTechnicalSkill(text string) bool {
	for _, term := range technicalSkillNames {
		if containsTerm(text, term) {
			return true
		}
	}
	return false
}

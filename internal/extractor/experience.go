package extractor

import (
	"regexp"
	"strings"

	"resumelens/pkg/models"
)

const maxExperienceEntries = 10

// dateRangeRegex matches duration tokens like "2020-Present",
// "Jan 2019 – Mar 2021" or "2018 to 2020". A date-bearing line seeds a new
// experience entry.
var dateRangeRegex = regexp.MustCompile(`(?i)\b(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s+)?\d{4}\s*(?:[-–—]|to)\s*(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s+)?(?:\d{4}|present|current|now)\b`)

var (
	companyLabelRegex  = regexp.MustCompile(`(?i)^(?:company|employer|institute|organization)\s*[:\-]\s*(.+)$`)
	positionLabelRegex = regexp.MustCompile(`(?i)^(?:job title|position|title|role|designation)\s*[:\-]\s*(.+)$`)
	atSplitRegex       = regexp.MustCompile(`(?i)\s+at\s+`)
	pipeDashSplitRegex = regexp.MustCompile(`\s*[|–—]\s*|\s+-\s+`)
)

var jobTitleKeywords = []string{
	"developer", "engineer", "manager", "analyst", "designer", "consultant",
	"architect", "administrator", "specialist", "coordinator", "director",
	"intern", "lead", "officer", "scientist", "technician", "programmer",
	"accountant", "assistant", "executive", "head",
}

// ExtractExperience parses work experience entries from the Experience
// section, or from the whole text when segmentation finds nothing. A
// date-bearing line seeds each entry: the header is resolved from the seed
// line and its neighbors, then the following lines are consumed as
// responsibilities until the next date line, a section heading, or the end
// of the lookahead window. At most 10 entries are returned, in the order
// they were encountered.
func ExtractExperience(text string) []models.Experience {
	scope := Section(text, SectionExperience)
	if scope == "" {
		scope = text
	}

	lines := strings.Split(scope, "\n")
	entries := []models.Experience{}

	for i := 0; i < len(lines) && len(entries) < maxExperienceEntries; i++ {
		line := strings.TrimSpace(lines[i])
		duration := dateRangeRegex.FindString(line)
		if duration == "" {
			continue
		}

		entry := models.Experience{
			Duration:         strings.TrimSpace(duration),
			Responsibilities: []string{},
		}
		resolveExperienceHeader(&entry, lines, i)

		consumed := collectResponsibilities(&entry, lines, i+1)
		entries = append(entries, entry)
		i += consumed
	}

	return entries
}

// resolveExperienceHeader fills company and position from the date-bearing
// line and its immediate neighbors. Attempts, in order: explicit labels,
// "X at Y", "X | Y" / "X - Y" with the job-title side detection, then
// first-part-is-company. An unresolved position triggers a +-2 line search
// for a job-title-keyword line.
func resolveExperienceHeader(entry *models.Experience, lines []string, idx int) {
	neighborhood := neighborLines(lines, idx, 1)

	for _, line := range neighborhood {
		if match := companyLabelRegex.FindStringSubmatch(line); match != nil && entry.Company == "" {
			entry.Company = cleanHeaderPart(match[1])
		}
		if match := positionLabelRegex.FindStringSubmatch(line); match != nil && entry.Position == "" {
			entry.Position = cleanHeaderPart(match[1])
		}
	}

	if entry.Company == "" || entry.Position == "" {
		for _, line := range neighborhood {
			if tryHeaderPatterns(entry, line) {
				break
			}
		}
	}

	if entry.Position == "" {
		for _, line := range neighborLines(lines, idx, 2) {
			candidate := cleanHeaderPart(line)
			if candidate != "" && candidate != entry.Company && hasJobTitleKeyword(candidate) {
				entry.Position = candidate
				break
			}
		}
	}
}

func tryHeaderPatterns(entry *models.Experience, line string) bool {
	stripped := cleanHeaderPart(line)
	if stripped == "" {
		return false
	}

	if parts := atSplitRegex.Split(stripped, 2); len(parts) == 2 {
		position := strings.TrimSpace(parts[0])
		company := strings.TrimSpace(parts[1])
		if position != "" && company != "" {
			entry.Position = position
			entry.Company = company
			return true
		}
	}

	if parts := pipeDashSplitRegex.Split(stripped, 2); len(parts) == 2 {
		left := strings.TrimSpace(parts[0])
		right := strings.TrimSpace(parts[1])
		if left == "" || right == "" {
			return false
		}
		switch {
		case hasJobTitleKeyword(left):
			entry.Position = left
			entry.Company = right
		case hasJobTitleKeyword(right):
			entry.Position = right
			entry.Company = left
		default:
			// ambiguous: first part defaults to company
			entry.Company = left
			entry.Position = right
		}
		return true
	}

	return false
}

// collectResponsibilities gathers bullet or sentence lines following the
// entry seed, stopping at the next date line, the next section heading, or
// after a 10-line lookahead window. Returns how many lines were consumed.
func collectResponsibilities(entry *models.Experience, lines []string, start int) int {
	consumed := 0
	for offset := 0; offset < 10 && start+offset < len(lines); offset++ {
		line := strings.TrimSpace(lines[start+offset])
		if line == "" {
			consumed = offset + 1
			continue
		}
		if dateRangeRegex.MatchString(line) {
			break
		}
		if _, ok := headingOf(line); ok {
			break
		}
		if isBulleted(line) || len(line) > 10 {
			entry.Responsibilities = append(entry.Responsibilities, stripBullet(line))
		}
		consumed = offset + 1
	}
	return consumed
}

// neighborLines returns the trimmed lines within radius of idx, the seed
// line first, skipping empties
func neighborLines(lines []string, idx, radius int) []string {
	var out []string
	if line := strings.TrimSpace(lines[idx]); line != "" {
		out = append(out, line)
	}
	for offset := 1; offset <= radius; offset++ {
		for _, j := range []int{idx - offset, idx + offset} {
			if j < 0 || j >= len(lines) {
				continue
			}
			if line := strings.TrimSpace(lines[j]); line != "" {
				out = append(out, line)
			}
		}
	}
	return out
}

// cleanHeaderPart strips the date token, bullets and leftover punctuation
// from a header fragment
func cleanHeaderPart(raw string) string {
	cleaned := dateRangeRegex.ReplaceAllString(raw, "")
	cleaned = strings.NewReplacer("()", "", "( )", "", "[]", "").Replace(cleaned)
	cleaned = stripBullet(cleaned)
	return strings.Trim(cleaned, " \t,|-–—")
}

func hasJobTitleKeyword(text string) bool {
	lowered := strings.ToLower(text)
	for _, keyword := range jobTitleKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

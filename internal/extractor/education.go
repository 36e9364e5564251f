package extractor

import (
	"regexp"
	"strings"

	"resumelens/pkg/models"
)

var (
	schoolKeywordRegex = regexp.MustCompile(`(?i)\b(university|college|institute|institution|school|academy|polytechnic)\b`)
	degreeKeywordRegex = regexp.MustCompile(`(?i)\b(bachelor'?s?|master'?s?|doctorate|ph\.?d|mba|bba|associate|diploma|b\.?sc|m\.?sc|b\.?tech|m\.?tech|b\.?e|m\.?e|b\.?a|m\.?a|b\.?s|m\.?s|b\.?com|m\.?com)\b`)
	gpaRegex           = regexp.MustCompile(`(?i)\bgpa\s*[:\-]?\s*([0-4](?:\.\d{1,2})?(?:\s*/\s*[45](?:\.0)?)?)`)
	yearTokenRegex     = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// ExtractEducation builds education entries from the Education section in a
// single incremental pass. School-keyword lines start entries, degree lines
// attach to the current entry (or start a second one when the current entry
// already holds both an institution and a degree), and date tokens attach as
// the entry dates. Fields with no evidence stay empty; placeholder text is a
// presentation concern.
func ExtractEducation(text string) []models.Education {
	entries := []models.Education{}
	scope := Section(text, SectionEducation)
	if scope == "" {
		return entries
	}

	var current *models.Education

	flush := func() {
		if current != nil && (current.Institution != "" || current.Degree != "") {
			entries = append(entries, *current)
		}
		current = nil
	}

	for _, raw := range strings.Split(scope, "\n") {
		line := stripBullet(raw)
		if line == "" {
			continue
		}
		if _, ok := headingOf(line); ok {
			continue
		}

		isSchool := schoolKeywordRegex.MatchString(line)
		isDegree := degreeKeywordRegex.MatchString(line)

		switch {
		case isSchool:
			flush()
			current = &models.Education{Institution: strings.Trim(line, " ,")}
			if isDegree {
				current.Degree = strings.Trim(line, " ,")
			}
			if dates := dateRangeRegex.FindString(line); dates != "" {
				current.Dates = strings.TrimSpace(dates)
			}
		case isDegree:
			if current != nil && current.Degree != "" && current.Institution != "" {
				// a second degree under a new, not-yet-seen institution
				flush()
			}
			if current == nil {
				current = &models.Education{}
			}
			current.Degree = strings.Trim(dateRangeRegex.ReplaceAllString(line, ""), " ,-–")
		case dateRangeRegex.MatchString(line) || yearTokenRegex.MatchString(line):
			if current != nil && current.Dates == "" {
				if dates := dateRangeRegex.FindString(line); dates != "" {
					current.Dates = strings.TrimSpace(dates)
				} else {
					current.Dates = yearTokenRegex.FindString(line)
				}
			}
		}

		if match := gpaRegex.FindStringSubmatch(line); match != nil && current != nil && current.GPA == "" {
			current.GPA = strings.TrimSpace(match[1])
		}
	}
	flush()

	return entries
}

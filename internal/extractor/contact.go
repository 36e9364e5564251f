package extractor

import (
	"regexp"
	"strings"
)

var (
	nameLabelRegex    = regexp.MustCompile(`(?i)^name\s*[:\-]\s*(.+)$`)
	titlePrefixRegex  = regexp.MustCompile(`^(Mr|Mrs|Ms|Dr|Prof|Er|Eng)\.?\s+(.+)$`)
	initialsNameRegex = regexp.MustCompile(`^(?:[A-Z]\.\s*)+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?$|^[A-Z][a-z]+\s+(?:[A-Z]\.\s*)+[A-Z][a-z]+$`)

	titleWordRegex = regexp.MustCompile(`^[A-Z][a-z'\-]+$`)
	capsWordRegex  = regexp.MustCompile(`^[A-Z][A-Z'\-]+$`)

	emailRegex = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	obfuscatedAtRegex  = regexp.MustCompile(`(?i)\s*[\[(]\s*at\s*[\])]\s*`)
	obfuscatedDotRegex = regexp.MustCompile(`(?i)\s*[\[(]\s*dot\s*[\])]\s*`)
	plainAtRegex       = regexp.MustCompile(`(?i)\s+at\s+`)
	plainDotRegex      = regexp.MustCompile(`(?i)\s+dot\s+`)

	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\(\d{3}\)[\s.\-]?\d{3}[\s.\-]?\d{4}`),
		regexp.MustCompile(`\+\d{1,3}[\s.\-]\d{2,4}[\s.\-]\d{5,8}(?:[\s.\-]\d{2,6})?`),
		regexp.MustCompile(`\d{3}[.\-]\d{3}[.\-]\d{4}`),
		regexp.MustCompile(`\+?\d{10,15}`),
	}
	phoneLabelRegex = regexp.MustCompile(`(?i)\b(tel|telephone|phone|mobile|cell|contact)\b`)

	locationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(?:address|location)\s*[:\-]\s*(.+)$`),
		regexp.MustCompile(`\b[A-Z][a-zA-Z]+(?:\s[A-Z][a-zA-Z]+)?,\s*[A-Z]{2}\b`),
		regexp.MustCompile(`\b[A-Z][a-zA-Z]+(?:\s[A-Z][a-zA-Z]+)?,\s*[A-Z][a-zA-Z]+\b`),
		regexp.MustCompile(`\b[A-Z][a-zA-Z]+[\s,]+\d{5}(?:-\d{4})?\b`),
	}
	locationKeywordRegex = regexp.MustCompile(`(?i)\b(location|city|based|reside[sd]?|living)\b`)
	companySuffixRegex   = regexp.MustCompile(`(?i)\b(inc|llc|corp|corporation|ltd|gmbh|pvt)\b\.?`)

	majorCities = []string{
		"New York", "San Francisco", "Los Angeles", "Chicago", "Seattle", "Austin",
		"Boston", "Toronto", "Vancouver", "London", "Manchester", "Berlin", "Munich",
		"Paris", "Amsterdam", "Madrid", "Barcelona", "Dubai", "Singapore", "Tokyo",
		"Sydney", "Melbourne", "Bangalore", "Mumbai", "Delhi", "Karachi", "Lahore",
		"Islamabad", "Cairo", "Lagos", "Nairobi", "São Paulo", "Mexico City",
	}
)

// ExtractName scans the first ~20 non-empty lines for a candidate name.
// Attempts, in priority order: explicit "Name:" label, Title-Case line,
// ALL-CAPS line, honorific-prefixed line, initials pattern, then a
// Title-Case line sitting just above the contact details. Returns "" when
// nothing qualifies.
func ExtractName(text string) string {
	lines := nonEmptyLines(text, 20)

	// (a) explicit label
	for _, line := range lines {
		if match := nameLabelRegex.FindStringSubmatch(line); match != nil {
			candidate := strings.TrimSpace(match[1])
			if candidate != "" && !strings.Contains(candidate, "@") {
				return candidate
			}
		}
	}

	// (b) Title-Case two-to-three-word line that is not a section heading
	for _, line := range lines {
		if _, ok := headingOf(line); ok {
			continue
		}
		if isTitleCaseName(line, 2, 3) {
			return line
		}
	}

	// (c) ALL-CAPS two-to-four-word line, re-cased
	for _, line := range lines {
		if _, ok := headingOf(line); ok {
			continue
		}
		if isAllCapsName(line, 2, 4) {
			return toTitleCase(line)
		}
	}

	// (d) honorific prefix
	for _, line := range lines {
		if match := titlePrefixRegex.FindStringSubmatch(line); match != nil {
			candidate := strings.TrimSpace(match[2])
			if isTitleCaseName(candidate, 1, 3) {
				return candidate
			}
		}
	}

	// (e) initials pattern, e.g. "J. K. Rowling"
	for _, line := range lines {
		if initialsNameRegex.MatchString(line) {
			return line
		}
	}

	// (f) Title-Case two-word line within 3 lines above the email/phone line
	contactIdx := -1
	for i, line := range lines {
		if emailRegex.MatchString(line) || phoneLabelRegex.MatchString(line) {
			contactIdx = i
			break
		}
	}
	if contactIdx > 0 {
		start := contactIdx - 3
		if start < 0 {
			start = 0
		}
		for _, line := range lines[start:contactIdx] {
			if isTitleCaseName(line, 2, 2) {
				return line
			}
		}
	}

	return ""
}

func isTitleCaseName(line string, minWords, maxWords int) bool {
	if strings.ContainsAny(line, "@:|,0123456789") {
		return false
	}
	words := strings.Fields(line)
	if len(words) < minWords || len(words) > maxWords {
		return false
	}
	for _, word := range words {
		if !titleWordRegex.MatchString(word) {
			return false
		}
	}
	return true
}

func isAllCapsName(line string, minWords, maxWords int) bool {
	if strings.ContainsAny(line, "@:|,0123456789") {
		return false
	}
	words := strings.Fields(line)
	if len(words) < minWords || len(words) > maxWords {
		return false
	}
	for _, word := range words {
		if !capsWordRegex.MatchString(word) {
			return false
		}
	}
	return true
}

func toTitleCase(line string) string {
	words := strings.Fields(strings.ToLower(line))
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// decodeObfuscatedEmails rewrites "user [at] domain [dot] com" style
// obfuscations into plain addresses before regex matching. Bare "at"/"dot"
// words are only decoded on lines carrying both, so prose like
// "Engineer at TechCorp" is left alone.
func decodeObfuscatedEmails(text string) string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		decoded := obfuscatedAtRegex.ReplaceAllString(line, "@")
		decoded = obfuscatedDotRegex.ReplaceAllString(decoded, ".")
		if plainAtRegex.MatchString(decoded) && plainDotRegex.MatchString(decoded) {
			decoded = plainAtRegex.ReplaceAllString(decoded, "@")
			decoded = plainDotRegex.ReplaceAllString(decoded, ".")
		}
		out = append(out, decoded)
	}
	return strings.Join(out, "\n")
}

// ExtractEmail returns the best email address found in the document, or "".
// Personal-looking domains are preferred over corporate ones.
func ExtractEmail(text string) string {
	decoded := decodeObfuscatedEmails(text)

	seen := make(map[string]bool)
	var candidates []string
	for _, match := range emailRegex.FindAllString(decoded, -1) {
		match = strings.Trim(match, ".")
		key := strings.ToLower(match)
		if seen[key] || !isValidEmail(match) {
			continue
		}
		seen[key] = true
		candidates = append(candidates, match)
	}
	if len(candidates) == 0 {
		return ""
	}

	for _, candidate := range candidates {
		if isPersonalDomain(candidate) {
			return candidate
		}
	}
	return candidates[0]
}

func isValidEmail(email string) bool {
	parts := strings.SplitN(email, "@", 2)
	if len(parts) != 2 {
		return false
	}
	local, domain := parts[0], parts[1]
	if local == "" || domain == "" {
		return false
	}
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") ||
		strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	if strings.Contains(email, "..") {
		return false
	}
	segments := strings.Split(domain, ".")
	tld := segments[len(segments)-1]
	return len(segments) >= 2 && len(tld) >= 2
}

func isPersonalDomain(email string) bool {
	parts := strings.SplitN(strings.ToLower(email), "@", 2)
	if len(parts) != 2 {
		return false
	}
	domain := parts[1]
	for _, personal := range []string{"gmail.", "yahoo.", "outlook.", "hotmail.", "icloud.", "proton."} {
		if strings.HasPrefix(domain, personal) {
			return true
		}
	}
	// short domains tend to be personal
	if idx := strings.LastIndex(domain, "."); idx > 0 && idx <= 8 {
		return true
	}
	return false
}

// ExtractPhone returns the best phone number found in the document, or "".
// The contact block (first 10 lines) is scanned before the whole document,
// and numbers on labeled lines (tel/phone/mobile/cell) win over bare ones.
func ExtractPhone(text string) string {
	contactBlock := strings.Join(nonEmptyLines(text, 10), "\n")
	if phone := scanPhones(contactBlock); phone != "" {
		return phone
	}
	return scanPhones(text)
}

func scanPhones(text string) string {
	first := ""
	for _, line := range strings.Split(text, "\n") {
		for _, pattern := range phonePatterns {
			for _, match := range pattern.FindAllString(line, -1) {
				if !isValidPhone(match) {
					continue
				}
				candidate := strings.TrimSpace(match)
				if phoneLabelRegex.MatchString(line) {
					return candidate
				}
				if first == "" {
					first = candidate
				}
			}
		}
	}
	return first
}

func isValidPhone(raw string) bool {
	digits := 0
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 10 && digits <= 15
}

// ExtractLocation returns a best-effort location string from the contact
// block, or "". Lines that look like company names or date ranges are
// skipped; a fixed major-city list is the last resort.
func ExtractLocation(text string) string {
	lines := nonEmptyLines(text, 20)

	// Prefer lines that announce a location explicitly
	for _, line := range lines {
		if !locationKeywordRegex.MatchString(line) {
			continue
		}
		if value := matchLocation(line); value != "" {
			return value
		}
	}

	for _, line := range lines {
		if companySuffixRegex.MatchString(line) || dateRangeRegex.MatchString(line) {
			continue
		}
		if value := matchLocation(line); value != "" {
			return value
		}
	}

	// Last resort: known city names anywhere in the contact block
	joined := strings.Join(lines, "\n")
	for _, city := range majorCities {
		if containsTerm(joined, city) {
			return city
		}
	}
	return ""
}

func matchLocation(line string) string {
	if match := locationPatterns[0].FindStringSubmatch(line); match != nil {
		return strings.TrimSpace(match[1])
	}
	for _, pattern := range locationPatterns[1:] {
		if match := pattern.FindString(line); match != "" {
			return strings.TrimSpace(match)
		}
	}
	return ""
}

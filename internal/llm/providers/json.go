package providers

import (
	"fmt"
	"strings"
)

// CleanModelJSON prepares raw model output for unmarshaling. Markdown code
// fences are stripped first; if the remainder still is not a bare object,
// the largest balanced {...} span is carved out. Models frequently wrap
// their JSON in prose, so this recovery path is the common case, not the
// exception.
func CleanModelJSON(raw string) (string, error) {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "{") && strings.HasSuffix(text, "}") {
		return text, nil
	}

	span, ok := largestObjectSpan(text)
	if !ok {
		return "", fmt.Errorf("no JSON object found in model output")
	}
	return span, nil
}

// largestObjectSpan finds the longest balanced top-level {...} region in
// text, tracking string literals so braces inside them do not count
func largestObjectSpan(text string) (string, bool) {
	best := ""
	depth := 0
	start := -1
	inString := false
	escaped := false

	for i, r := range text {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}

		switch r {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 && start >= 0 {
					candidate := text[start : i+1]
					if len(candidate) > len(best) {
						best = candidate
					}
				}
			}
		}
	}

	if best == "" {
		return "", false
	}
	return best, true
}

// Package processors prepares raw document content for the extraction
// pipeline. The HTML cleaner turns an HTML resume into line-oriented plain
// text: the heuristic extractors depend on section headings and bullets
// landing on their own lines.
package processors

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLCleaner converts HTML resume documents into plain text
type HTMLCleaner struct {
	removeTags []string
}

var (
	breakTagRegex   = regexp.MustCompile(`(?i)<br\s*/?>`)
	listItemRegex   = regexp.MustCompile(`(?i)<li[^>]*>`)
	blockCloseRegex = regexp.MustCompile(`(?i)</(p|div|li|h[1-6]|tr|section|article|ul|ol|table|header)>`)
	commentRegex    = regexp.MustCompile(`<!--[\s\S]*?-->`)
	spaceRunRegex   = regexp.MustCompile(`[ \t]+`)
	newlineRunRegex = regexp.MustCompile(`\n{3,}`)
	trailingWSRegex = regexp.MustCompile(`[ \t]+\n`)
)

// NewHTMLCleaner creates a new HTML cleaner instance
func NewHTMLCleaner() *HTMLCleaner {
	return &HTMLCleaner{
		removeTags: []string{
			"script", "style", "noscript", "iframe", "object", "embed",
			"applet", "form", "input", "button", "select", "textarea",
			"svg", "path", "g", "defs", "use", "symbol",
			"meta", "link", "title", "base", "head",
		},
	}
}

// ExtractResumeText converts an HTML resume into plain text suitable for
// the heuristic extractors. Block-level boundaries become line breaks and
// list items become bullet lines, so the section segmenter sees the same
// shape a plain-text resume would have.
func (hc *HTMLCleaner) ExtractResumeText(html string) (string, error) {
	html = commentRegex.ReplaceAllString(html, "")
	html = breakTagRegex.ReplaceAllString(html, "\n")
	html = listItemRegex.ReplaceAllString(html, "\n• ")
	html = blockCloseRegex.ReplaceAllString(html, "\n")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	for _, tag := range hc.removeTags {
		doc.Find(tag).Remove()
	}

	text := doc.Find("body").Text()
	if strings.TrimSpace(text) == "" {
		text = doc.Text()
	}

	return hc.cleanExtractedText(text), nil
}

// cleanExtractedText normalizes whitespace without flattening the line
// structure the extractors rely on
func (hc *HTMLCleaner) cleanExtractedText(text string) string {
	text = spaceRunRegex.ReplaceAllString(text, " ")
	text = trailingWSRegex.ReplaceAllString(text, "\n")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		lines = append(lines, strings.TrimSpace(line))
	}
	text = strings.Join(lines, "\n")

	text = newlineRunRegex.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// GetCleanTextLength returns the approximate token count for the cleaned text
func (hc *HTMLCleaner) GetCleanTextLength(text string) int {
	// Rough estimation: ~4 characters per token
	return len(text) / 4
}

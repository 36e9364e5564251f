// Package decoder turns uploaded resume files into plain text documents.
// Format detection prefers content sniffing over the file extension, since
// uploads routinely arrive with the wrong suffix.
package decoder

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"resumelens/internal/llm/processors"
	"resumelens/pkg/models"
)

var pdfMagic = []byte("%PDF-")

// Decoder converts uploaded resume files into raw documents
type Decoder struct {
	htmlCleaner *processors.HTMLCleaner
}

// NewDecoder creates a new document decoder
func NewDecoder() *Decoder {
	return &Decoder{
		htmlCleaner: processors.NewHTMLCleaner(),
	}
}

// Decode extracts plain text from an uploaded file. Supported formats are
// PDF, HTML and plain text; anything else is treated as plain text.
func (d *Decoder) Decode(fileName string, data []byte) (*models.RawDocument, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty file: %s", fileName)
	}

	doc := &models.RawDocument{
		FileName:      fileName,
		FileSizeBytes: int64(len(data)),
	}

	switch {
	case bytes.HasPrefix(data, pdfMagic) || hasExtension(fileName, ".pdf"):
		text, err := d.decodePDF(data)
		if err != nil {
			return nil, err
		}
		doc.MimeType = "application/pdf"
		doc.Text = text

	case looksLikeHTML(data) || hasExtension(fileName, ".html", ".htm"):
		text, err := d.htmlCleaner.ExtractResumeText(string(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode HTML resume: %w", err)
		}
		doc.MimeType = "text/html"
		doc.Text = text

	default:
		doc.MimeType = "text/plain"
		doc.Text = string(data)
	}

	doc.Text = normalizeLines(doc.Text)
	if doc.Text == "" {
		return nil, fmt.Errorf("no text content found in %s", fileName)
	}

	return doc, nil
}

// decodePDF extracts text from a PDF, page by page. A page that fails to
// decode is skipped rather than failing the whole document.
func (d *Decoder) decodePDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPages := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPages; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}

	return text, nil
}

func hasExtension(fileName string, extensions ...string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	for _, candidate := range extensions {
		if ext == candidate {
			return true
		}
	}
	return false
}

func looksLikeHTML(data []byte) bool {
	head := strings.ToLower(string(data[:min(len(data), 512)]))
	return strings.Contains(head, "<html") || strings.Contains(head, "<!doctype html")
}

// normalizeLines trims each line and collapses blank-line runs
func normalizeLines(text string) string {
	var lines []string
	blank := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank && len(lines) > 0 {
				lines = append(lines, "")
			}
			blank = true
			continue
		}
		blank = false
		lines = append(lines, line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

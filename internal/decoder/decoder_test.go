package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePlainText(t *testing.T) {
	d := NewDecoder()

	doc, err := d.Decode("resume.txt", []byte("John Smith\n\n\n\nSoftware Engineer  \n"))
	require.NoError(t, err)

	assert.Equal(t, "text/plain", doc.MimeType)
	assert.Equal(t, "resume.txt", doc.FileName)
	// blank-line runs collapse, trailing whitespace is trimmed
	assert.Equal(t, "John Smith\n\nSoftware Engineer", doc.Text)
	assert.Equal(t, int64(len("John Smith\n\n\n\nSoftware Engineer  \n")), doc.FileSizeBytes)
}

func TestDecodeHTML(t *testing.T) {
	d := NewDecoder()
	html := `<!DOCTYPE html>
<html><head><title>Resume</title><style>body{color:red}</style></head>
<body>
<h1>John Smith</h1>
<p>john@gmail.com</p>
<h2>Experience</h2>
<ul><li>Built APIs</li><li>Led a team</li></ul>
</body></html>`

	doc, err := d.Decode("resume.html", []byte(html))
	require.NoError(t, err)

	assert.Equal(t, "text/html", doc.MimeType)
	assert.Contains(t, doc.Text, "John Smith")
	assert.Contains(t, doc.Text, "john@gmail.com")
	assert.Contains(t, doc.Text, "• Built APIs")
	assert.NotContains(t, doc.Text, "color:red")
	assert.NotContains(t, doc.Text, "<h1>")
}

func TestDecodeHTMLSniffedWithoutExtension(t *testing.T) {
	d := NewDecoder()

	doc, err := d.Decode("upload.bin", []byte("<html><body><p>Jane Doe</p></body></html>"))
	require.NoError(t, err)

	assert.Equal(t, "text/html", doc.MimeType)
	assert.Equal(t, "Jane Doe", doc.Text)
}

func TestDecodeEmptyFile(t *testing.T) {
	d := NewDecoder()

	_, err := d.Decode("resume.txt", nil)
	assert.Error(t, err)

	_, err = d.Decode("resume.txt", []byte("   \n  \n"))
	assert.Error(t, err)
}

func TestDecodeCorruptPDF(t *testing.T) {
	d := NewDecoder()

	_, err := d.Decode("resume.pdf", []byte("%PDF-1.4 not actually a pdf"))
	assert.Error(t, err)
}

func TestNormalizeLines(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"leading blanks dropped", "\n\nJohn", "John"},
		{"inner run collapsed", "a\n\n\n\nb", "a\n\nb"},
		{"lines trimmed", "  a  \n\tb\t", "a\nb"},
		{"empty", "  \n \n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeLines(tt.in))
		})
	}
}

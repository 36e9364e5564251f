package providers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanModelJSON(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "bare object",
			raw:      `{"name": "John"}`,
			expected: `{"name": "John"}`,
		},
		{
			name:     "json fence",
			raw:      "```json\n{\"name\": \"John\"}\n```",
			expected: `{"name": "John"}`,
		},
		{
			name:     "plain fence",
			raw:      "```\n{\"name\": \"John\"}\n```",
			expected: `{"name": "John"}`,
		},
		{
			name:     "prose wrapped",
			raw:      `Here is the extracted profile: {"name": "John"} Let me know if you need more.`,
			expected: `{"name": "John"}`,
		},
		{
			name:     "braces inside string literals",
			raw:      `Result: {"summary": "uses {curly} notation", "name": "John"}`,
			expected: `{"summary": "uses {curly} notation", "name": "John"}`,
		},
		{
			name:     "largest span wins",
			raw:      `{"a": 1} and then the full answer {"name": "John", "email": "j@x.com"}`,
			expected: `{"name": "John", "email": "j@x.com"}`,
		},
		{
			name:     "nested objects",
			raw:      `answer: {"skills": {"technical": ["Go"]}}`,
			expected: `{"skills": {"technical": ["Go"]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaned, err := CleanModelJSON(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cleaned)
			assert.True(t, json.Valid([]byte(cleaned)))
		})
	}
}

func TestCleanModelJSONNoObject(t *testing.T) {
	for _, raw := range []string{"", "no json here", "[1, 2, 3]", "just } some { noise"} {
		_, err := CleanModelJSON(raw)
		assert.Error(t, err, "raw: %q", raw)
	}
}

func TestCleanModelJSONEscapedQuotes(t *testing.T) {
	raw := `model says: {"summary": "she said \"hello {world}\" twice"}`

	cleaned, err := CleanModelJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, `{"summary": "she said \"hello {world}\" twice"}`, cleaned)
}

package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
		found    bool
	}{
		{
			name:     "nested error.message wins",
			body:     `{"error": {"message": "model not found", "code": 404}}`,
			expected: "model not found",
			found:    true,
		},
		{
			name:     "error.message wins over top-level message",
			body:     `{"error": {"message": "inner"}, "message": "outer"}`,
			expected: "inner",
			found:    true,
		},
		{
			name:     "top-level string error",
			body:     `{"error": "invalid api key"}`,
			expected: "invalid api key",
			found:    true,
		},
		{
			name:     "error object without message falls through to message",
			body:     `{"error": {"type": "overloaded"}, "message": "try later"}`,
			expected: "try later",
			found:    true,
		},
		{
			name:     "top-level message",
			body:     `{"message": "rate limited"}`,
			expected: "rate limited",
			found:    true,
		},
		{
			name:  "error as object only",
			body:  `{"error": {"code": 500}}`,
			found: false,
		},
		{
			name:  "non-string message ignored",
			body:  `{"message": 42}`,
			found: false,
		},
		{
			name:  "malformed json tolerated",
			body:  `<html>502 Bad Gateway</html>`,
			found: false,
		},
		{
			name:  "empty body",
			body:  ``,
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := ExtractMessage([]byte(tt.body))
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, msg)
			}
		})
	}
}

func TestFailureMessage(t *testing.T) {
	t.Run("uses cascade when structured", func(t *testing.T) {
		msg := FailureMessage(400, []byte(`{"error":{"message":"bad request body"}}`))
		assert.Equal(t, "bad request body", msg)
	})

	t.Run("falls back to trimmed raw text", func(t *testing.T) {
		msg := FailureMessage(502, []byte("  upstream unavailable \n"))
		assert.Equal(t, "upstream unavailable", msg)
	})

	t.Run("synthesises status line when body is empty", func(t *testing.T) {
		msg := FailureMessage(503, []byte("   \n\t"))
		assert.Equal(t, "request failed with status 503", msg)
	})
}

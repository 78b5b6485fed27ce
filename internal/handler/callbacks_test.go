package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "review_12_4_0",
			expected: "review_12_4_0",
		},
		{
			name:     "string with whitespace",
			input:    "  reveal_7_3  ",
			expected: "reveal_7_3",
		},
		{
			name:     "string with newline",
			input:    "vocab_5\n_1",
			expected: "vocab_5_1",
		},
		{
			name:     "string with tab",
			input:    "vocab\t_5_1",
			expected: "vocab_5_1",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "reveal\x00_7_0\x01",
			expected: "reveal_7_0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

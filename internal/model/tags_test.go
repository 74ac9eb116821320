package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected TagList
	}{
		{
			name:     "array form",
			input:    `["go","web"]`,
			expected: TagList{"go", "web"},
		},
		{
			name:     "comma-separated string form",
			input:    `"go, web"`,
			expected: TagList{"go", " web"},
		},
		{
			name:     "empty array",
			input:    `[]`,
			expected: TagList{},
		},
		{
			name:     "single string without commas",
			input:    `"go"`,
			expected: TagList{"go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got TagList
			err := json.Unmarshal([]byte(tt.input), &got)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTagList_UnmarshalJSON_RejectsOtherTypes(t *testing.T) {
	var got TagList
	assert.Error(t, json.Unmarshal([]byte(`42`), &got))
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &got))
}

func TestTagList_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		input    TagList
		expected TagList
	}{
		{
			name:     "trims dedupes and drops empties",
			input:    TagList{"a", " b", " ", "a"},
			expected: TagList{"a", "b"},
		},
		{
			name:     "preserves first-seen order",
			input:    TagList{"web", "go", "web", "api"},
			expected: TagList{"web", "go", "api"},
		},
		{
			name:     "nil input yields empty list",
			input:    nil,
			expected: TagList{},
		},
		{
			name:     "all-empty input yields empty list",
			input:    TagList{"", "  "},
			expected: TagList{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.Normalize())
		})
	}
}

func TestTagList_CommaStringNormalizesToCleanList(t *testing.T) {
	var got TagList
	err := json.Unmarshal([]byte(`"a, b, ,a"`), &got)
	assert.NoError(t, err)
	assert.Equal(t, TagList{"a", "b"}, got.Normalize())
}

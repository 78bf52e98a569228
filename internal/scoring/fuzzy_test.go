// internal/scoring/fuzzy_test.go
package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchSkills(t *testing.T) {
	tests := []struct {
		name     string
		resume   []string
		required []string
		expected float64
	}{
		{
			name:     "no requirements is a full match",
			resume:   []string{"python"},
			required: nil,
			expected: 100,
		},
		{
			name:     "no resume skills",
			resume:   nil,
			required: []string{"python"},
			expected: 0,
		},
		{
			name:     "exact matches",
			resume:   []string{"python", "docker"},
			required: []string{"python", "docker"},
			expected: 100,
		},
		{
			name:     "half matched",
			resume:   []string{"python"},
			required: []string{"python", "rust"},
			expected: 50,
		},
		{
			name:     "substring containment counts",
			resume:   []string{"postgres"},
			required: []string{"postgresql"},
			expected: 100,
		},
		{
			name:     "near miss spelling counts",
			resume:   []string{"javascrip"},
			required: []string{"javascript"},
			expected: 100,
		},
		{
			name:     "unrelated skills",
			resume:   []string{"react", "vue"},
			required: []string{"python", "django", "postgresql"},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, MatchSkills(tt.resume, tt.required), 0.01)
		})
	}
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		s1, s2   string
		expected int
	}{
		{"kitten", "sitting", 3},
		{"golang", "golang", 0},
		{"abc", "", 3},
		{"", "", 0},
		{"flask", "flash", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, editDistance(tt.s1, tt.s2), "editDistance(%q, %q)", tt.s1, tt.s2)
	}
}

func TestStringSimilarity(t *testing.T) {
	assert.InDelta(t, 100, stringSimilarity("redis", "redis"), 0.01)
	// one edit across ten characters
	assert.InDelta(t, 90, stringSimilarity("javascript", "javascripx"), 0.01)
	assert.InDelta(t, 100, stringSimilarity("", ""), 0.01)
}

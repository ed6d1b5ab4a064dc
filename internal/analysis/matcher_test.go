// internal/analysis/matcher_test.go
package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Whole-Word Matching Tests
// ==========================

func TestCountMatches(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		keywords []string
		expected int
	}{
		{
			name:     "single whole word",
			text:     "bad design",
			keywords: []string{"bad"},
			expected: 1,
		},
		{
			name:     "substring of larger word does not match",
			text:     "the badge looks fine",
			keywords: []string{"bad"},
			expected: 0,
		},
		{
			name:     "case insensitive",
			text:     "Bad BAD bad",
			keywords: []string{"bad"},
			expected: 3,
		},
		{
			name:     "repeated occurrences all count",
			text:     "good good good",
			keywords: []string{"good"},
			expected: 3,
		},
		{
			name:     "multiple keywords sum independently",
			text:     "the spacing is bad and the margin is wrong",
			keywords: []string{"bad", "wrong", "missing"},
			expected: 2,
		},
		{
			name:     "multi-word keyword matches as phrase",
			text:     "se podría mejorar el contraste",
			keywords: []string{"podría mejorar"},
			expected: 1,
		},
		{
			name:     "multi-word keyword does not match when joined",
			text:     "podríamejorar el contraste",
			keywords: []string{"podría mejorar"},
			expected: 0,
		},
		{
			name:     "keyword adjacent to punctuation",
			text:     "the spacing is bad.",
			keywords: []string{"bad"},
			expected: 1,
		},
		{
			name:     "spanish accented keyword",
			text:     "La alineación está mal",
			keywords: []string{"alineación"},
			expected: 1,
		},
		{
			name:     "empty text",
			text:     "",
			keywords: []string{"bad", "good"},
			expected: 0,
		},
		{
			name:     "empty keyword list",
			text:     "bad design everywhere",
			keywords: nil,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountMatches(tt.text, tt.keywords))
		})
	}
}

func TestCountMatches_DoubleCountingAcrossLists(t *testing.T) {
	// "bad" sits in both the negative and the critical severity lists and
	// each use counts it separately
	text := "this is bad"
	assert.Equal(t, 1, CountMatches(text, negativeWords))
	assert.Equal(t, 1, CountMatches(text, severityKeywords[SeverityCritical]))
}

// ==========================
// Sentence Split Tests
// ==========================

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "split on period plus space",
			text:     "First sentence. Second sentence",
			expected: []string{"First sentence", "Second sentence"},
		},
		{
			name:     "split on exclamation and question marks",
			text:     "Wow! Really? Yes",
			expected: []string{"Wow", "Really", "Yes"},
		},
		{
			name:     "trailing terminator stays on last sentence",
			text:     "Only one sentence.",
			expected: []string{"Only one sentence."},
		},
		{
			name:     "empty text",
			text:     "",
			expected: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitSentences(tt.text))
		})
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Hello world", capitalize("hello world"))
	assert.Equal(t, "Improve the contrast", capitalize("Improve the Contrast"))
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "Ajustar márgenes", capitalize("ajustar márgenes"))
}

// ==========================
// Benchmarks
// ==========================

func BenchmarkCountMatches(b *testing.B) {
	text := "The contrast is good but the spacing is bad and the alignment needs work. " +
		"El espaciado está mal y la jerarquía es mejorable."
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CountMatches(text, negativeWords)
	}
}

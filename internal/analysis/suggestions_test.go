// internal/analysis/suggestions_test.go
package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Pattern Capture Tests
// ==========================

func TestExtractSuggestions_PatternCaptures(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "english recommend with colon",
			text:     "Recommend: use more spacing.",
			expected: []string{"Use more spacing."},
		},
		{
			name:     "english should without colon",
			text:     "You should use larger margins.",
			expected: []string{"Use larger margins."},
		},
		{
			name:     "spanish se recomienda",
			text:     "Se recomienda: aumentar el contraste.",
			expected: []string{"Aumentar el contraste."},
		},
		{
			name:     "capture stops at sentence terminator",
			text:     "Consider: more padding. The rest is fine.",
			expected: []string{"More padding."},
		},
		{
			name:     "capture is lowercased then capitalized",
			text:     "CONSIDER: MORE PADDING.",
			expected: []string{"More padding."},
		},
		{
			name:     "identical captures deduplicated",
			text:     "Consider: more padding. Consider: more padding.",
			expected: []string{"More padding."},
		},
		{
			name:     "no matches and no improvement keywords",
			text:     "The layout is fine.",
			expected: []string{},
		},
		{
			name:     "empty text",
			text:     "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractSuggestions(tt.text))
		})
	}
}

func TestExtractSuggestions_PatternOrderAcrossLanguages(t *testing.T) {
	// Spanish patterns run before English ones regardless of position in
	// the text, and "fix" is also an imperative pattern that re-captures
	// the tail of the second sentence.
	text := "You should: fix margins. Se recomienda: usar más espacio."
	assert.Equal(t, []string{
		"Usar más espacio.",
		"Fix margins.",
		"Margins.",
	}, ExtractSuggestions(text))
}

func TestExtractSuggestions_CappedAtFive(t *testing.T) {
	text := "Consider: alpha. Consider: beta. Consider: gamma. " +
		"Consider: delta. Consider: epsilon. Consider: zeta. " +
		"Consider: eta. Consider: theta."
	assert.Equal(t, []string{
		"Alpha.", "Beta.", "Gamma.", "Delta.", "Epsilon.",
	}, ExtractSuggestions(text))
}

func TestExtractSuggestions_ConfigurableMax(t *testing.T) {
	text := "Consider: alpha option. Consider: beta option. Consider: gamma option."
	assert.Equal(t, []string{
		"Alpha option.", "Beta option.",
	}, extractSuggestions(text, 2))
}

// ==========================
// Fallback Tests
// ==========================

func TestExtractSuggestions_Fallback(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "sentence with improvement keyword",
			text:     "El espaciado está mal. Hay que ajustar los márgenes.",
			expected: []string{"Hay que ajustar los márgenes."},
		},
		{
			name:     "short fallback sentences dropped",
			text:     "Adjust it.",
			expected: []string{},
		},
		{
			name:     "long enough fallback sentence kept",
			text:     "Adjust the margins everywhere.",
			expected: []string{"Adjust the margins everywhere."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractSuggestions(tt.text))
		})
	}
}

func TestExtractSuggestions_FallbackSkippedWhenPatternMatches(t *testing.T) {
	// The first sentence matches a pattern, so the second sentence is not
	// harvested even though it carries an improvement keyword.
	text := "Consider: thinner borders. El texto es difícil de corregir aquí."
	assert.Equal(t, []string{"Thinner borders."}, ExtractSuggestions(text))
}

// ==========================
// Benchmarks
// ==========================

func BenchmarkExtractSuggestions(b *testing.B) {
	text := "Se recomienda: aumentar el contraste. You should use larger margins. " +
		"Consider: more padding around cards. Hay que ajustar la jerarquía."
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ExtractSuggestions(text)
	}
}

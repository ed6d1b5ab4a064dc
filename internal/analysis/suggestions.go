// internal/analysis/suggestions.go
package analysis

import (
	"regexp"
	"strings"
)

const defaultMaxSuggestions = 5

// Recommendation phrasing, applied in order: Spanish, English, bilingual
// imperative. Each captures the phrase after the introducing keyword up to
// the next sentence terminator.
var suggestionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:se recomienda|recomendación|sugiero|sugerencia|debería|podría mejorar|considera|intenta)[:\s]+([^.!?]+[.!?]?)`),
	regexp.MustCompile(`(?i)(?:recommend|suggestion|should|could improve|consider|try)[:\s]+([^.!?]+[.!?]?)`),
	regexp.MustCompile(`(?i)(?:mejorar|improve|fix|arreglar|cambiar|change)[:\s]+([^.!?]+[.!?]?)`),
}

// ExtractSuggestions pulls improvement suggestions out of a text: pattern
// captures first, deduplicated in first-seen order; if no pattern matches,
// falls back to sentences containing an improvement keyword. At most five
// are returned.
func ExtractSuggestions(text string) []string {
	return extractSuggestions(text, defaultMaxSuggestions)
}

func extractSuggestions(text string, max int) []string {
	suggestions := []string{}
	lower := strings.ToLower(text)

	for _, pattern := range suggestionPatterns {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			clean := capitalize(strings.TrimSpace(match[1]))
			if clean != "" && !containsString(suggestions, clean) {
				suggestions = append(suggestions, clean)
			}
		}
	}

	// Fallback: sentences that at least mention an improvement keyword
	if len(suggestions) == 0 {
		for _, sentence := range splitSentences(text) {
			if !containsAnyKeyword(sentence, improvementKeywords) {
				continue
			}
			clean := capitalize(strings.TrimSpace(sentence))
			if clean != "" && runeLen(clean) > 10 {
				suggestions = append(suggestions, clean)
				if len(suggestions) >= max {
					break
				}
			}
		}
	}

	if len(suggestions) > max {
		suggestions = suggestions[:max]
	}
	return suggestions
}

func containsAnyKeyword(sentence string, keywords []string) bool {
	lower := strings.ToLower(sentence)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

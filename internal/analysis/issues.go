// internal/analysis/issues.go
package analysis

import "strings"

// ExtractIssues flags every sentence containing a negative indicator and
// classifies its severity. Sentences are emitted in source order. The
// indicator test is substring containment, deliberately looser than the
// whole-word matching used for scoring, so "badge" does trip it.
func ExtractIssues(text string) []Issue {
	issues := []Issue{}

	for _, sentence := range splitSentences(text) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		if !hasNegativeIndicator(sentence) {
			continue
		}
		issues = append(issues, Issue{
			Severity: determineSeverity(sentence),
			Text:     sentence,
		})
	}

	return issues
}

func hasNegativeIndicator(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, list := range [][]string{
		negativeWords,
		severityKeywords[SeverityCritical],
		severityKeywords[SeverityWarning],
	} {
		for _, word := range list {
			if strings.Contains(lower, word) {
				return true
			}
		}
	}
	return false
}

// determineSeverity classifies a sentence by its first matching severity
// list, critical before warning. A sentence flagged only through a negative
// word that sits in neither list (e.g. "wrong") falls through to info.
func determineSeverity(sentence string) Severity {
	lower := strings.ToLower(sentence)

	for _, word := range severityKeywords[SeverityCritical] {
		if strings.Contains(lower, word) {
			return SeverityCritical
		}
	}

	for _, word := range severityKeywords[SeverityWarning] {
		if strings.Contains(lower, word) {
			return SeverityWarning
		}
	}

	return SeverityInfo
}

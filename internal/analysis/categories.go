// internal/analysis/categories.go
package analysis

// ScoreCategories derives a score for each of the four fixed categories.
// A category with no keyword mentions scores the neutral 75. A mentioned
// category scores 50 + ratio*50 where ratio is the document-wide
// positive/(positive+negative) word count; with mentions but no sentiment
// words the base 70 stands. Every mentioned category therefore receives the
// same ratio-derived score; sentence-local context around the mention is
// deliberately not inspected.
func ScoreCategories(text string) CategoryScores {
	scores := make(CategoryScores, len(categoryOrder))

	for _, category := range categoryOrder {
		mentions := CountMatches(text, categoryKeywords[category])
		if mentions == 0 {
			scores[category] = neutralScore
			continue
		}

		score := baseScore
		positives := CountMatches(text, positiveWords)
		negatives := CountMatches(text, negativeWords)
		if positives+negatives > 0 {
			ratio := float64(positives) / float64(positives+negatives)
			score = int(50 + ratio*50)
		}

		scores[category] = clamp(score, 0, 100)
	}

	return scores
}

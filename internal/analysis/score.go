// internal/analysis/score.go
package analysis

const (
	baseScore    = 70
	neutralScore = 75
	wordWeight   = 10
)

// Score derives the overall score for a text: base 70, plus 10 per positive
// word, minus 10 per negative word, clamped to [0,100]. A linear tally, not a
// normalized measure; heavily mixed texts can still clamp to either extreme.
func Score(text string) int {
	positives := CountMatches(text, positiveWords)
	negatives := CountMatches(text, negativeWords)

	score := baseScore + positives*wordWeight - negatives*wordWeight
	return clamp(score, 0, 100)
}

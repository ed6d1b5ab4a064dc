// internal/analysis/models.go
package analysis

// Severity indicates the urgency of a flagged issue.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityWarning, SeverityInfo:
		return true
	}
	return false
}

// Issue is one flagged sentence. Immutable once created; its position in the
// result list matches the sentence's position in the source text.
type Issue struct {
	Severity Severity `json:"severity"`
	Text     string   `json:"text"`
}

// CategoryScores maps each of the four fixed category names to a score in
// [0,100]. All four keys are always present.
type CategoryScores map[string]int

// Result carries everything one pipeline run produces for a text.
type Result struct {
	Score       int            `json:"score"`
	Categories  CategoryScores `json:"categories"`
	Issues      []Issue        `json:"issues"`
	Suggestions []string       `json:"suggestions"`
}

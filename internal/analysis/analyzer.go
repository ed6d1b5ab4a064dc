// internal/analysis/analyzer.go
package analysis

import "design-analysis/internal/common/logger"

type Config struct {
	MaxSuggestions int
}

// Analyzer runs the full pipeline over a text. It carries no per-request
// state; the keyword tables are process-wide constants, so a single Analyzer
// is safe for concurrent use.
type Analyzer struct {
	config *Config
	logger logger.Logger
}

func NewAnalyzer(config *Config, log logger.Logger) *Analyzer {
	if config == nil {
		config = &Config{}
	}
	if config.MaxSuggestions <= 0 {
		config.MaxSuggestions = defaultMaxSuggestions
	}
	return &Analyzer{
		config: config,
		logger: log.WithFields(map[string]interface{}{"component": "analyzer"}),
	}
}

// Analyze produces the overall score, category scores, flagged issues, and
// suggestions for one text. Every input, including the empty string,
// terminates with a well-defined result.
func (a *Analyzer) Analyze(text string) *Result {
	result := &Result{
		Score:       Score(text),
		Categories:  ScoreCategories(text),
		Issues:      ExtractIssues(text),
		Suggestions: extractSuggestions(text, a.config.MaxSuggestions),
	}

	a.logger.Debug("analysis completed", map[string]interface{}{
		"score":       result.Score,
		"issues":      len(result.Issues),
		"suggestions": len(result.Suggestions),
	})

	return result
}

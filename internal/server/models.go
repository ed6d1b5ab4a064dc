// internal/server/models.go
package server

import (
	"design-analysis/internal/analysis"
	"design-analysis/internal/common/validation"
)

// AnalyzeRequest is the input boundary object. The text may be empty; only
// its shape is validated.
type AnalyzeRequest struct {
	AnalysisText string `json:"analysis_text"`
}

// AnalyzeResponse mirrors the wire contract of POST /analyze.
type AnalyzeResponse struct {
	Score           int                     `json:"score"`
	Categories      analysis.CategoryScores `json:"categories"`
	Issues          []analysis.Issue        `json:"issues"`
	Suggestions     []string                `json:"suggestions"`
	FormattedOutput string                  `json:"formatted_output"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error  string                       `json:"error"`
	Fields []validation.ValidationError `json:"fields,omitempty"`
}

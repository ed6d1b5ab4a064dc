// Package report renders an analysis result as a human-readable text report.
package report

import (
	"fmt"
	"strings"

	"design-analysis/internal/analysis"
)

const barSegments = 10

var severityLabels = []struct {
	severity analysis.Severity
	label    string
}{
	{analysis.SeverityCritical, "Critical"},
	{analysis.SeverityWarning, "Warning"},
	{analysis.SeverityInfo, "Info"},
}

// Format renders the score, category scores, issues, and suggestions into a
// structured text report. Pure function of its inputs: identical inputs
// always produce identical output.
func Format(score int, categories analysis.CategoryScores, issues []analysis.Issue, suggestions []string) string {
	var b strings.Builder

	b.WriteString("DESIGN ANALYSIS REPORT\n")
	b.WriteString("======================\n\n")

	fmt.Fprintf(&b, "Overall score: %d/100 [%s]\n\n", score, tier(score))

	b.WriteString("Categories:\n")
	for _, name := range analysis.CategoryOrder() {
		s := categories[name]
		fmt.Fprintf(&b, "  %-9s %s %3d/100\n", name, bar(s), s)
	}

	if len(issues) > 0 {
		b.WriteString("\nIssues:\n")
		for _, group := range severityLabels {
			matched := false
			for _, issue := range issues {
				if issue.Severity != group.severity {
					continue
				}
				if !matched {
					fmt.Fprintf(&b, "  %s:\n", group.label)
					matched = true
				}
				fmt.Fprintf(&b, "    - %s\n", issue.Text)
			}
		}
	}

	if len(suggestions) > 0 {
		b.WriteString("\nSuggestions:\n")
		for i, suggestion := range suggestions {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, suggestion)
		}
	}

	return b.String()
}

// tier buckets a score into its quality band, highest first.
func tier(score int) string {
	switch {
	case score >= 90:
		return "excellent"
	case score >= 75:
		return "good"
	case score >= 60:
		return "fair"
	default:
		return "needs work"
	}
}

// bar renders a ten-segment proportional bar; filled segments are the score
// divided by ten, integer division.
func bar(score int) string {
	filled := score / barSegments
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barSegments-filled) + "]"
}

// internal/server/handlers.go
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"design-analysis/internal/common/metrics"
	"design-analysis/internal/common/validation"
	"design-analysis/internal/report"
)

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func (s *Server) handleAnalyze(c echo.Context) error {
	start := time.Now()
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		s.recordRequest(c, start, "invalid")
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
	}

	if result := validation.ValidateAnalyzeRequest(body); !result.Valid {
		s.recordRequest(c, start, "invalid")
		s.logger.Warn("invalid analyze request", map[string]interface{}{
			"requestId": requestID,
			"errors":    result.GetErrorMessages(),
		})
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:  "invalid request body",
			Fields: result.Errors,
		})
	}

	var req AnalyzeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.recordRequest(c, start, "invalid")
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "malformed JSON"})
	}

	result := s.analyzer.Analyze(req.AnalysisText)
	formatted := report.Format(result.Score, result.Categories, result.Issues, result.Suggestions)

	for _, issue := range result.Issues {
		metrics.IssuesExtracted.WithLabelValues(string(issue.Severity)).Inc()
	}
	metrics.ScoreDistribution.Observe(float64(result.Score))
	s.recordRequest(c, start, "ok")

	s.logger.Info("analysis completed", map[string]interface{}{
		"requestId":   requestID,
		"textLength":  len(req.AnalysisText),
		"score":       result.Score,
		"issues":      len(result.Issues),
		"suggestions": len(result.Suggestions),
	})

	return c.JSON(http.StatusOK, AnalyzeResponse{
		Score:           result.Score,
		Categories:      result.Categories,
		Issues:          result.Issues,
		Suggestions:     result.Suggestions,
		FormattedOutput: formatted,
	})
}

func (s *Server) recordRequest(c echo.Context, start time.Time, status string) {
	elapsed := time.Since(start)
	metrics.AnalyzeRequestsTotal.WithLabelValues(status).Inc()
	metrics.AnalyzeRequestDuration.Observe(elapsed.Seconds())
	if s.obs != nil {
		ctx := c.Request().Context()
		s.obs.RecordRequest(ctx, status)
		s.obs.RecordDuration(ctx, elapsed, status)
	}
}

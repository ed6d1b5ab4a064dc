// Package validation checks request payloads against JSON schemas.
package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// analyzeRequestSchema is the input contract of POST /analyze. The body must
// be a JSON object carrying analysis_text as a string; the string itself may
// be empty.
const analyzeRequestSchema = `{
	"type": "object",
	"properties": {
		"analysis_text": {
			"type": "string",
			"description": "Free-form design review text to analyze"
		}
	},
	"required": ["analysis_text"]
}`

var analyzeSchema = gojsonschema.NewSchemaLoader()

var compiledAnalyzeSchema *gojsonschema.Schema

func init() {
	schema, err := analyzeSchema.Compile(gojsonschema.NewStringLoader(analyzeRequestSchema))
	if err != nil {
		panic(fmt.Sprintf("analyze request schema does not compile: %v", err))
	}
	compiledAnalyzeSchema = schema
}

// ValidateAnalyzeRequest validates a raw request body against the analyze
// request schema and returns field-level errors.
func ValidateAnalyzeRequest(body []byte) *ValidationResult {
	result, err := compiledAnalyzeSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		// Not JSON at all
		return &ValidationResult{
			Valid: false,
			Errors: []ValidationError{
				{Field: "(body)", Message: err.Error()},
			},
		}
	}

	if result.Valid() {
		return &ValidationResult{Valid: true}
	}

	errs := make([]ValidationError, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		errs = append(errs, ValidationError{
			Field:   re.Field(),
			Message: re.Description(),
		})
	}
	return &ValidationResult{Valid: false, Errors: errs}
}

// GetErrorMessages returns a simple list of error messages.
func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

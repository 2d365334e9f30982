package models

import "strings"

// Severity grades the issues found by a safety assessment.
type Severity string

const (
	SeverityNone   Severity = "none"
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ParseSeverity maps free-form model output to a Severity, defaulting to none.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return SeverityLow
	case "medium":
		return SeverityMedium
	case "high":
		return SeverityHigh
	default:
		return SeverityNone
	}
}

// SafetyAssessment is the outcome of the safety-check stage for one request.
// It is never persisted beyond the pipeline run that produced it.
type SafetyAssessment struct {
	IsSafe            bool     `json:"is_safe"`
	SanitizedPrompt   string   `json:"sanitized_prompt"`
	Issues            []string `json:"issues"`
	Severity          Severity `json:"severity"`
	ModificationsMade bool     `json:"modifications_made"`
}

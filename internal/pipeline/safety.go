package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"prompt-enhancer/internal/llm"
	"prompt-enhancer/internal/models"
)

// SafetyChecker assesses a prompt for unsafe content and, when needed,
// rewrites it into a safe form.
type SafetyChecker interface {
	AssessSafety(ctx context.Context, prompt string) models.SafetyAssessment
	// Sanitize returns the rewritten prompt. ok is false when the prompt
	// cannot be made safe.
	Sanitize(ctx context.Context, prompt string, issues []string) (rewritten string, ok bool)
}

// LLMSafetyChecker runs the structured safety-assessment prompt through the
// gateway and parses its three-field response.
type LLMSafetyChecker struct {
	gateway llm.Gateway
	log     zerolog.Logger
}

func NewLLMSafetyChecker(gateway llm.Gateway, logger zerolog.Logger) *LLMSafetyChecker {
	return &LLMSafetyChecker{gateway: gateway, log: logger}
}

// AssessSafety asks the gateway whether the prompt is safe to process.
//
// A blocked completion is read as "probably safe": the check blocking on an
// innocuous prompt is far more common than a genuinely unsafe one. A failed
// or unparseable completion falls back to a conservative heuristic instead.
func (s *LLMSafetyChecker) AssessSafety(ctx context.Context, prompt string) models.SafetyAssessment {
	comp := s.gateway.Generate(ctx, fmt.Sprintf(models.SafetyPromptTemplate, prompt))
	if comp.IsBlocked() {
		s.log.Warn().Str("stop_reason", comp.StopReason).
			Msg("safety check blocked, assuming prompt is safe")
		return models.SafetyAssessment{IsSafe: true, Severity: models.SeverityNone}
	}
	if comp.Failed() || strings.TrimSpace(comp.Text) == "" {
		s.log.Warn().Err(comp.Err).Msg("safety check failed, using heuristic fallback")
		return s.heuristicAssessment(prompt)
	}
	assessment, ok := parseAssessment(comp.Text)
	if !ok {
		s.log.Warn().Str("response", comp.Text).
			Msg("unparseable safety response, using heuristic fallback")
		return s.heuristicAssessment(prompt)
	}
	return assessment
}

// heuristicAssessment decides safety without the model: short prompts free
// of risk keywords pass, everything else is treated as unsafe.
func (s *LLMSafetyChecker) heuristicAssessment(prompt string) models.SafetyAssessment {
	if len(prompt) > models.LongPromptThreshold {
		return models.SafetyAssessment{
			IsSafe:   false,
			Issues:   []string{"safety check unavailable for long prompt"},
			Severity: models.SeverityMedium,
		}
	}
	lower := strings.ToLower(prompt)
	for _, kw := range models.HighRiskKeywords {
		if strings.Contains(lower, kw) {
			return models.SafetyAssessment{
				IsSafe:   false,
				Issues:   []string{fmt.Sprintf("safety check unavailable, high-risk keyword %q present", kw)},
				Severity: models.SeverityHigh,
			}
		}
	}
	return models.SafetyAssessment{IsSafe: true, Severity: models.SeverityNone}
}

// parseAssessment extracts the SAFE / ISSUES / SEVERITY fields. ok is false
// when no SAFE line is present.
func parseAssessment(text string) (models.SafetyAssessment, bool) {
	var a models.SafetyAssessment
	sawSafeLine := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case hasFieldPrefix(line, "SAFE:"):
			val := strings.ToUpper(strings.TrimSpace(line[len("SAFE:"):]))
			a.IsSafe = strings.HasPrefix(val, "YES")
			sawSafeLine = true
		case hasFieldPrefix(line, "ISSUES:"):
			a.Issues = parseIssues(line[len("ISSUES:"):])
		case hasFieldPrefix(line, "SEVERITY:"):
			a.Severity = models.ParseSeverity(line[len("SEVERITY:"):])
		}
	}
	if !sawSafeLine {
		return models.SafetyAssessment{}, false
	}
	if a.Severity == "" {
		a.Severity = models.SeverityNone
	}
	return a, true
}

func hasFieldPrefix(line, prefix string) bool {
	return len(line) >= len(prefix) && strings.EqualFold(line[:len(prefix)], prefix)
}

func parseIssues(raw string) []string {
	var issues []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.Trim(strings.TrimSpace(part), `."`)
		if part == "" || strings.EqualFold(part, "none") {
			continue
		}
		issues = append(issues, part)
	}
	return issues
}

// Sanitize asks the gateway to rewrite an unsafe prompt. Any failure, block,
// empty response, or the explicit cannot-sanitize sentinel means the prompt
// is unrecoverable.
func (s *LLMSafetyChecker) Sanitize(ctx context.Context, prompt string, issues []string) (string, bool) {
	request := fmt.Sprintf(models.SanitizePromptTemplate, strings.Join(issues, ", "), prompt)
	comp := s.gateway.Generate(ctx, request)
	if !comp.OK() {
		s.log.Warn().Err(comp.Err).Str("status", string(comp.Status)).
			Msg("sanitization call failed")
		return "", false
	}
	text := strings.Trim(strings.TrimSpace(comp.Text), `"`)
	if text == "" || strings.Contains(text, models.CannotSanitize) {
		return "", false
	}
	return text, true
}

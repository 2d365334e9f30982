package pipeline

import (
	"prompt-enhancer/internal/knowledge"
	"prompt-enhancer/internal/models"
)

// Suggestion is one supplementary knowledge-base hit gathered during the
// retrieve stage.
type Suggestion struct {
	TechniqueName string  `json:"technique_name"`
	Category      string  `json:"category"`
	Content       string  `json:"content"`
	Score         float64 `json:"score"`
}

// RetrievalContext bundles everything the enhance stage works from: the
// identified technique's full metadata and the supplementary suggestions.
type RetrievalContext struct {
	Technique      knowledge.Technique `json:"technique"`
	TechniqueFound bool                `json:"technique_found"`
	Suggestions    []Suggestion        `json:"suggestions"`
}

// Result is the contract object returned for every processed prompt.
// Callers always receive one, whether or not the run succeeded.
type Result struct {
	RequestID           string                  `json:"request_id"`
	OriginalPrompt      string                  `json:"original_prompt"`
	SanitizedPrompt     string                  `json:"sanitized_prompt,omitempty"`
	IdentifiedTechnique string                  `json:"identified_technique"`
	EnhancedPrompt      string                  `json:"enhanced_prompt"`
	Safety              models.SafetyAssessment `json:"safety_result"`
	ContextUsed         RetrievalContext        `json:"context_used"`
	Success             bool                    `json:"success"`
	Error               string                  `json:"error,omitempty"`
}

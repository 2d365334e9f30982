package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"prompt-enhancer/internal/knowledge"
	"prompt-enhancer/internal/llm"
	"prompt-enhancer/internal/models"
)

const (
	maxSuggestions   = 2
	snippetMaxLength = 200
)

// Enhancer rewrites a prompt using the retrieved technique context.
// Implementations never fail: any trouble resolves to a deterministic
// template-based fallback.
type Enhancer interface {
	Enhance(ctx context.Context, prompt string, rc RetrievalContext) string
}

// LLMEnhancer builds the enhancement request for the gateway and validates
// its answer before accepting it.
type LLMEnhancer struct {
	gateway llm.Gateway
	log     zerolog.Logger
}

func NewLLMEnhancer(gateway llm.Gateway, logger zerolog.Logger) *LLMEnhancer {
	return &LLMEnhancer{gateway: gateway, log: logger}
}

// Enhance produces the enhanced prompt. When the identified technique is the
// default, it is relabeled so the request does not ask for a "zero-shot"
// rewrite, and example-based suggestions are dropped since they contradict a
// zero-example technique.
func (e *LLMEnhancer) Enhance(ctx context.Context, prompt string, rc RetrievalContext) string {
	tech := rc.Technique
	label := tech.Name
	suggestions := rc.Suggestions
	if tech.Name == models.DefaultTechnique {
		label = models.DefaultTechniqueLabel
		suggestions = filterExampleBased(suggestions)
	}

	request := buildEnhancementRequest(prompt, label, tech, suggestions)
	comp := e.gateway.Generate(ctx, request)
	if !comp.OK() {
		e.log.Warn().Err(comp.Err).Str("status", string(comp.Status)).
			Msg("enhancement call failed, using fallback")
		return fallbackEnhancement(prompt, label, tech.HowToApply)
	}
	enhanced := strings.TrimSpace(comp.Text)
	if len(enhanced) <= models.MinEnhancedLength {
		e.log.Warn().Int("length", len(enhanced)).
			Msg("enhancement response too short, using fallback")
		return fallbackEnhancement(prompt, label, tech.HowToApply)
	}
	return enhanced
}

func buildEnhancementRequest(prompt, label string, tech knowledge.Technique, suggestions []Suggestion) string {
	if label == "" {
		label = "Unknown"
	}
	description := tech.Description
	if description == "" {
		description = "No description available"
	}
	guidance := tech.HowToApply
	if guidance == "" {
		guidance = "No specific guidance available"
	}

	contextInfo := ""
	if len(suggestions) > 0 {
		var b strings.Builder
		b.WriteString("\nAdditional Related Techniques:")
		for i, s := range suggestions {
			if i >= maxSuggestions {
				break
			}
			snippet := s.Content
			if len(snippet) > snippetMaxLength {
				snippet = snippet[:snippetMaxLength]
			}
			fmt.Fprintf(&b, "\n- %s: %s...", s.TechniqueName, snippet)
		}
		b.WriteString("\n")
		contextInfo = b.String()
	}

	return fmt.Sprintf(models.EnhancementPromptTemplate, prompt, label, description, guidance, contextInfo)
}

// filterExampleBased drops in-context-learning suggestions, including the
// retrieval-based ones that live under other names.
func filterExampleBased(suggestions []Suggestion) []Suggestion {
	filtered := make([]Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if s.Category == string(knowledge.CategoryInContextLearning) {
			continue
		}
		if s.TechniqueName == "Unified Demonstration Retrieval (UDR)" ||
			s.TechniqueName == "Self-Generated In-Context Learning (SG-ICL)" {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}

// fallbackEnhancement is the deterministic local rewrite used when the
// gateway cannot produce an acceptable enhancement. It keys off the
// technique name and always returns the same output for the same inputs.
func fallbackEnhancement(prompt, techniqueName, howToApply string) string {
	switch {
	case strings.Contains(techniqueName, "Chain-of-Thought") || strings.Contains(techniqueName, "CoT"):
		return prompt + "\n\nPlease think through this step-by-step and explain your reasoning:"
	case strings.Contains(techniqueName, "Role Prompting") || strings.Contains(techniqueName, "Role Playing"):
		return "You are an expert in this domain with extensive knowledge and experience. " + prompt
	case strings.Contains(techniqueName, "Few-Shot"):
		return prompt + "\n\nPlease provide a detailed response with examples if applicable:"
	case strings.Contains(techniqueName, "Zero-Shot"):
		return prompt + "\n\nPlease provide a comprehensive and detailed response:"
	case strings.Contains(techniqueName, "Instruction Following"):
		return "Please follow these instructions carefully:\n\n" + prompt
	case strings.Contains(techniqueName, "Self-Consistency"):
		return prompt + "\n\nPlease think about this from multiple angles and provide a well-reasoned response:"
	case strings.Contains(techniqueName, "Generated Knowledge"):
		return "First, consider what background knowledge is relevant to this task, then:\n\n" + prompt
	}
	if howToApply != "" {
		return prompt + "\n\n" + howToApply
	}
	return prompt + "\n\nPlease provide a detailed and well-structured response:"
}

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"prompt-enhancer/internal/models"
	"prompt-enhancer/internal/retriever"
)

// ErrNotInitialized is returned when ProcessPrompt is called before all four
// collaborators are bound. It is a configuration error, not a runtime
// failure, and is never absorbed into a Result.
var ErrNotInitialized = errors.New("pipeline: collaborators not initialized")

// Orchestrator drives one prompt through the fixed stage sequence:
// categorize, safety check (with optional sanitization), retrieve, enhance.
// Stages run strictly in order with no backward transitions. Component
// references are read-only after construction, so one orchestrator may be
// reused across sequential calls.
type Orchestrator struct {
	categorizer Categorizer
	safety      SafetyChecker
	retriever   KnowledgeRetriever
	enhancer    Enhancer
	log         zerolog.Logger
	topK        int
}

func NewOrchestrator(
	categorizer Categorizer,
	safety SafetyChecker,
	knowledgeRetriever KnowledgeRetriever,
	enhancer Enhancer,
	logger zerolog.Logger,
	topK int,
) *Orchestrator {
	if topK <= 0 {
		topK = models.DefaultTopK
	}
	return &Orchestrator{
		categorizer: categorizer,
		safety:      safety,
		retriever:   knowledgeRetriever,
		enhancer:    enhancer,
		log:         logger,
		topK:        topK,
	}
}

// ProcessPrompt runs the full pipeline for one prompt. The returned error is
// non-nil only for the fatal precondition cases (ErrNotInitialized,
// retriever.ErrIndexNotBuilt); every other failure is absorbed into the
// Result so callers always receive a well-formed one. On an unrecoverable
// stage panic the enhanced prompt is the original, never partially
// processed text.
func (o *Orchestrator) ProcessPrompt(ctx context.Context, userPrompt string) (result Result, err error) {
	if o.categorizer == nil || o.safety == nil || o.retriever == nil || o.enhancer == nil {
		return Result{}, ErrNotInitialized
	}

	requestID := uuid.NewString()
	log := o.log.With().Str("request_id", requestID).Logger()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("pipeline stage panicked")
			result = Result{
				RequestID:      requestID,
				OriginalPrompt: userPrompt,
				EnhancedPrompt: userPrompt,
				Success:        false,
				Error:          fmt.Sprintf("internal error: %v", r),
			}
			err = nil
		}
	}()

	log.Info().Str("prompt", truncate(userPrompt, 100)).Msg("processing prompt")

	technique := o.categorizer.Categorize(ctx, userPrompt)
	log.Info().Str("technique", technique).Msg("technique identified")

	assessment := o.safety.AssessSafety(ctx, userPrompt)
	working := userPrompt
	sanitized := ""
	if !assessment.IsSafe {
		log.Warn().Strs("issues", assessment.Issues).Str("severity", string(assessment.Severity)).
			Msg("prompt flagged as unsafe, attempting sanitization")
		rewritten, ok := o.safety.Sanitize(ctx, userPrompt, assessment.Issues)
		if !ok {
			log.Warn().Msg("prompt could not be sanitized, rejecting")
			return Result{
				RequestID:           requestID,
				OriginalPrompt:      userPrompt,
				IdentifiedTechnique: technique,
				EnhancedPrompt:      userPrompt,
				Safety:              assessment,
				Success:             false,
				Error:               "prompt rejected as unsafe: " + strings.Join(assessment.Issues, ", "),
			}, nil
		}
		working = rewritten
		sanitized = rewritten
		assessment.SanitizedPrompt = rewritten
		assessment.ModificationsMade = true
	}

	tech, found := o.retriever.TechniqueInfo(technique)
	if !found {
		log.Warn().Str("technique", technique).Msg("technique not in knowledge base")
	}
	suggestions, searchErr := o.retriever.SearchKnowledge(ctx, working, o.topK)
	if searchErr != nil {
		if errors.Is(searchErr, retriever.ErrIndexNotBuilt) {
			return Result{}, searchErr
		}
		log.Warn().Err(searchErr).Msg("knowledge search failed, continuing without suggestions")
		suggestions = nil
	}
	retrievalContext := RetrievalContext{
		Technique:      tech,
		TechniqueFound: found,
		Suggestions:    suggestions,
	}

	enhanced := o.enhancer.Enhance(ctx, working, retrievalContext)
	log.Info().Int("enhanced_length", len(enhanced)).Msg("prompt enhancement complete")

	return Result{
		RequestID:           requestID,
		OriginalPrompt:      userPrompt,
		SanitizedPrompt:     sanitized,
		IdentifiedTechnique: technique,
		EnhancedPrompt:      enhanced,
		Safety:              assessment,
		ContextUsed:         retrievalContext,
		Success:             true,
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

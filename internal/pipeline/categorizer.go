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

// Categorizer identifies the prompting technique most relevant to a user
// prompt. Implementations never fail: any trouble resolves to a default.
type Categorizer interface {
	Categorize(ctx context.Context, prompt string) string
}

// LLMCategorizer asks the gateway to pick a technique from the catalog and
// validates the answer against the knowledge store.
type LLMCategorizer struct {
	gateway llm.Gateway
	store   *knowledge.Store
	log     zerolog.Logger
}

func NewLLMCategorizer(gateway llm.Gateway, store *knowledge.Store, logger zerolog.Logger) *LLMCategorizer {
	return &LLMCategorizer{gateway: gateway, store: store, log: logger}
}

// Categorize resolves a prompt to a known technique name. Unknown answers
// fall back to substring matching, then to the default technique. Gateway
// failures also land on the default; this stage never aborts a run.
func (c *LLMCategorizer) Categorize(ctx context.Context, prompt string) string {
	request := fmt.Sprintf(models.CategorizationPromptTemplate, c.store.DescriptionList(), prompt)
	comp := c.gateway.Generate(ctx, request)
	if !comp.OK() {
		c.log.Warn().Err(comp.Err).Str("status", string(comp.Status)).
			Msg("categorization call failed, using default technique")
		return models.DefaultTechnique
	}

	name := strings.Trim(strings.TrimSpace(comp.Text), `"`)
	if t, ok := c.store.Get(name); ok {
		c.log.Info().Str("technique", t.Name).Msg("prompt categorized")
		return t.Name
	}
	if t, ok := c.store.FindClosest(name); ok {
		c.log.Warn().Str("returned", name).Str("matched", t.Name).
			Msg("unknown technique name, matched by substring")
		return t.Name
	}
	c.log.Warn().Str("returned", name).Msg("unknown technique name, using default")
	return models.DefaultTechnique
}

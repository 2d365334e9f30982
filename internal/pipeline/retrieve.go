package pipeline

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"prompt-enhancer/internal/knowledge"
	"prompt-enhancer/internal/retriever"
)

// KnowledgeRetriever serves the retrieve stage: exact technique lookup plus
// semantic search over the broader knowledge base.
type KnowledgeRetriever interface {
	TechniqueInfo(name string) (knowledge.Technique, bool)
	SearchKnowledge(ctx context.Context, query string, topK int) ([]Suggestion, error)
}

// StoreRetriever backs the retrieve stage with the static technique store
// and the hybrid index built over its rendered entries.
type StoreRetriever struct {
	store     *knowledge.Store
	retriever *retriever.HybridRetriever
	log       zerolog.Logger
}

func NewStoreRetriever(store *knowledge.Store, r *retriever.HybridRetriever, logger zerolog.Logger) *StoreRetriever {
	return &StoreRetriever{store: store, retriever: r, log: logger}
}

// TechniqueInfo looks up a technique by exact name. A missing technique is
// not an error; callers get the zero value and proceed with empty metadata.
func (r *StoreRetriever) TechniqueInfo(name string) (knowledge.Technique, bool) {
	return r.store.Get(name)
}

// SearchKnowledge runs a pure vector search for the query and maps the hits
// back to technique suggestions via chunk metadata.
func (r *StoreRetriever) SearchKnowledge(ctx context.Context, query string, topK int) ([]Suggestion, error) {
	results, err := r.retriever.HybridSearch(ctx, query, topK,
		retriever.WithVectorWeight(1), retriever.WithKeywordWeight(0))
	if err != nil {
		return nil, fmt.Errorf("failed to search knowledge base: %w", err)
	}
	suggestions := make([]Suggestion, 0, len(results))
	for _, res := range results {
		suggestions = append(suggestions, Suggestion{
			TechniqueName: res.Metadata["technique_name"],
			Category:      res.Metadata["category"],
			Content:       res.Content,
			Score:         res.HybridScore,
		})
	}
	r.log.Debug().Int("count", len(suggestions)).Msg("knowledge search complete")
	return suggestions, nil
}

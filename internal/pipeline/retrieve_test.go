package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prompt-enhancer/internal/knowledge"
	"prompt-enhancer/internal/models"
	"prompt-enhancer/internal/retriever"
)

// wordEmbedder gives each vocabulary word its own dimension so similarity is
// deterministic in tests.
type wordEmbedder struct{}

var testVocab = []string{"reasoning", "examples", "persona", "steps", "expert"}

func (wordEmbedder) embed(text string) []float32 {
	v := make([]float32, len(testVocab)+1)
	v[0] = 0.1
	lower := strings.ToLower(text)
	for i, word := range testVocab {
		v[i+1] = float32(strings.Count(lower, word))
	}
	return v
}

func (e wordEmbedder) EmbedDocuments(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = e.embed(t)
	}
	return out, nil
}

func (e wordEmbedder) EmbedQuery(_ context.Context, text string) ([]float32, error) {
	return e.embed(text), nil
}

func builtKnowledgeRetriever(t *testing.T) *retriever.HybridRetriever {
	t.Helper()
	chunks := []models.DocumentChunk{
		{
			Content: "Ask the model to explain its reasoning in steps.",
			ChunkID: "cot_chunk_0", Source: "Chain-of-Thought (CoT) Prompting",
			Metadata: map[string]string{
				"technique_name": "Chain-of-Thought (CoT) Prompting",
				"category":       string(knowledge.CategoryThoughtGeneration),
			},
		},
		{
			Content: "Provide a handful of worked examples before the task.",
			ChunkID: "fs_chunk_0", Source: "Few-Shot Prompting",
			Metadata: map[string]string{
				"technique_name": "Few-Shot Prompting",
				"category":       string(knowledge.CategoryInContextLearning),
			},
		},
		{
			Content: "Assign the model an expert persona for the task.",
			ChunkID: "rp_chunk_0", Source: "Role Prompting",
			Metadata: map[string]string{
				"technique_name": "Role Prompting",
				"category":       string(knowledge.CategoryZeroShot),
			},
		},
	}
	r := retriever.New(wordEmbedder{}, zerolog.Nop(), 0.7, 0.3)
	require.NoError(t, r.BuildIndices(context.Background(), chunks))
	return r
}

func TestStoreRetrieverTechniqueInfo(t *testing.T) {
	sr := NewStoreRetriever(knowledge.NewStore(), builtKnowledgeRetriever(t), zerolog.Nop())

	tech, found := sr.TechniqueInfo("Role Prompting")
	require.True(t, found)
	assert.Equal(t, "Role Prompting", tech.Name)

	// a missing technique is empty metadata, not an error
	tech, found = sr.TechniqueInfo("Nonexistent Technique")
	assert.False(t, found)
	assert.Empty(t, tech.Name)
}

func TestStoreRetrieverSearchKnowledge(t *testing.T) {
	sr := NewStoreRetriever(knowledge.NewStore(), builtKnowledgeRetriever(t), zerolog.Nop())

	suggestions, err := sr.SearchKnowledge(context.Background(), "show reasoning steps", 2)
	require.NoError(t, err)
	require.Len(t, suggestions, 2)

	assert.Equal(t, "Chain-of-Thought (CoT) Prompting", suggestions[0].TechniqueName)
	assert.Equal(t, string(knowledge.CategoryThoughtGeneration), suggestions[0].Category)
	assert.NotEmpty(t, suggestions[0].Content)
	assert.GreaterOrEqual(t, suggestions[0].Score, suggestions[1].Score)
}

func TestStoreRetrieverSearchBeforeBuild(t *testing.T) {
	unbuilt := retriever.New(wordEmbedder{}, zerolog.Nop(), 0.7, 0.3)
	sr := NewStoreRetriever(knowledge.NewStore(), unbuilt, zerolog.Nop())

	_, err := sr.SearchKnowledge(context.Background(), "anything", 3)
	assert.ErrorIs(t, err, retriever.ErrIndexNotBuilt)
}

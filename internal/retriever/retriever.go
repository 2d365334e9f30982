package retriever

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"sort"
	"strconv"

	"github.com/philippgille/chromem-go"
	"github.com/rs/zerolog"

	"prompt-enhancer/internal/embedding"
	"prompt-enhancer/internal/models"
)

// ErrIndexNotBuilt is returned when a search runs before BuildIndices.
var ErrIndexNotBuilt = errors.New("retriever: indices not built")

const collectionName = "chunks"

// HybridRetriever owns a vector index and a keyword index over one fixed
// chunk collection and fuses their normalized scores per configurable
// weights. Builds replace all prior index state and must not run
// concurrently with searches on the same instance.
type HybridRetriever struct {
	embedder      embedding.Embedder
	log           zerolog.Logger
	vectorWeight  float64
	keywordWeight float64

	chunks     []models.DocumentChunk
	collection *chromem.Collection
	bm25       *bm25Index
	tfidf      *tfidfVectorizer
	built      bool
}

// New creates a retriever with instance-default fusion weights. Non-positive
// weight pairs fall back to the standard 0.7/0.3 split.
func New(embedder embedding.Embedder, logger zerolog.Logger, vectorWeight, keywordWeight float64) *HybridRetriever {
	if vectorWeight <= 0 && keywordWeight <= 0 {
		vectorWeight = models.DefaultVectorWeight
		keywordWeight = models.DefaultKeywordWeight
	}
	return &HybridRetriever{
		embedder:      embedder,
		log:           logger,
		vectorWeight:  vectorWeight,
		keywordWeight: keywordWeight,
	}
}

// SearchOption overrides per-query search behavior.
type SearchOption func(*searchOptions)

type searchOptions struct {
	vectorWeight  *float64
	keywordWeight *float64
}

// WithVectorWeight overrides the instance default vector weight for one query.
func WithVectorWeight(w float64) SearchOption {
	return func(o *searchOptions) { o.vectorWeight = &w }
}

// WithKeywordWeight overrides the instance default keyword weight for one query.
func WithKeywordWeight(w float64) SearchOption {
	return func(o *searchOptions) { o.keywordWeight = &w }
}

// BuildIndices embeds every chunk's content, L2-normalizes the vectors and
// loads them into an inner-product index, then builds the keyword indices
// over the same collection. Any prior index state is replaced.
func (r *HybridRetriever) BuildIndices(ctx context.Context, chunks []models.DocumentChunk) error {
	owned := make([]models.DocumentChunk, len(chunks))
	copy(owned, chunks)

	if len(owned) > 0 {
		texts := make([]string, len(owned))
		for i, c := range owned {
			texts[i] = c.Content
		}
		embs, err := r.embedder.EmbedDocuments(ctx, texts)
		if err != nil {
			return fmt.Errorf("failed to embed chunks: %w", err)
		}
		if len(embs) != len(owned) {
			return fmt.Errorf("embedder returned %d vectors for %d chunks", len(embs), len(owned))
		}
		for i := range owned {
			owned[i].Embedding = normalizeL2(embs[i])
		}
	}
	return r.buildEmbedded(ctx, owned)
}

// buildEmbedded constructs all indices from chunks that already carry
// normalized embeddings.
func (r *HybridRetriever) buildEmbedded(ctx context.Context, chunks []models.DocumentChunk) error {
	db := chromem.NewDB()
	collection, err := db.GetOrCreateCollection(collectionName, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	if len(chunks) > 0 {
		docs := make([]chromem.Document, len(chunks))
		tokenized := make([][]string, len(chunks))
		texts := make([]string, len(chunks))
		for i, c := range chunks {
			docs[i] = chromem.Document{
				ID:        strconv.Itoa(i),
				Content:   c.Content,
				Metadata:  c.Metadata,
				Embedding: c.Embedding,
			}
			tokenized[i] = tokenize(c.Content)
			texts[i] = c.Content
		}
		if err := collection.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
			return fmt.Errorf("failed to add documents to vector index: %w", err)
		}
		r.bm25 = newBM25Index(tokenized)
		r.tfidf = newTFIDFVectorizer()
		if err := r.tfidf.fit(texts); err != nil {
			return fmt.Errorf("failed to fit tf-idf vectorizer: %w", err)
		}
	} else {
		r.bm25 = newBM25Index(nil)
		r.tfidf = newTFIDFVectorizer()
	}

	r.chunks = chunks
	r.collection = collection
	r.built = true
	r.log.Info().Int("chunks", len(chunks)).Msg("built hybrid indices")
	return nil
}

// BuildIndicesWithCache loads a previously saved index from cacheDir when
// both cache files are present and readable, and otherwise builds from the
// given chunks and saves the result.
func (r *HybridRetriever) BuildIndicesWithCache(ctx context.Context, chunks []models.DocumentChunk, cacheDir string) error {
	cache := newIndexCache(cacheDir)
	if cache.exists() {
		cached, err := cache.load()
		if err == nil {
			r.log.Info().Str("dir", cacheDir).Msg("loaded index cache")
			return r.buildEmbedded(ctx, cached)
		}
		r.log.Warn().Err(err).Msg("index cache unreadable, rebuilding")
	}
	if err := r.BuildIndices(ctx, chunks); err != nil {
		return err
	}
	if err := cache.save(r.chunks); err != nil {
		return fmt.Errorf("failed to save index cache: %w", err)
	}
	return nil
}

// Chunks returns the indexed chunk collection.
func (r *HybridRetriever) Chunks() []models.DocumentChunk {
	return r.chunks
}

// HybridSearch scores every chunk in the collection with both methods, fuses
// the scores per the resolved weights and returns the topK chunks ranked by
// descending hybrid score. Ties keep original collection order.
func (r *HybridRetriever) HybridSearch(ctx context.Context, query string, topK int, opts ...SearchOption) ([]models.SearchResult, error) {
	if !r.built {
		return nil, ErrIndexNotBuilt
	}
	if topK <= 0 {
		topK = models.DefaultTopK
	}
	if len(r.chunks) == 0 {
		return []models.SearchResult{}, nil
	}

	var o searchOptions
	for _, opt := range opts {
		opt(&o)
	}
	vectorWeight, keywordWeight := r.vectorWeight, r.keywordWeight
	if o.vectorWeight != nil {
		vectorWeight = *o.vectorWeight
	}
	if o.keywordWeight != nil {
		keywordWeight = *o.keywordWeight
	}
	// renormalize the pair so only the ratio matters
	total := vectorWeight + keywordWeight
	if total == 0 {
		vectorWeight, keywordWeight = 0.5, 0.5
	} else {
		vectorWeight /= total
		keywordWeight /= total
	}

	vectorScores, err := r.vectorScores(ctx, query)
	if err != nil {
		return nil, err
	}
	keywordScores := r.keywordScores(query)

	hybrid := make([]float64, len(r.chunks))
	for i := range r.chunks {
		hybrid[i] = vectorWeight*vectorScores[i] + keywordWeight*keywordScores[i]
	}

	order := make([]int, len(r.chunks))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return hybrid[order[a]] > hybrid[order[b]]
	})
	if topK > len(order) {
		topK = len(order)
	}

	results := make([]models.SearchResult, 0, topK)
	for rank, idx := range order[:topK] {
		chunk := r.chunks[idx]
		results = append(results, models.SearchResult{
			Content:      chunk.Content,
			Source:       chunk.Source,
			VectorScore:  vectorScores[idx],
			KeywordScore: keywordScores[idx],
			HybridScore:  hybrid[idx],
			Rank:         rank + 1,
			Metadata:     chunk.Metadata,
		})
	}
	return results, nil
}

// vectorScores returns one cosine-similarity score per chunk. Every chunk in
// the collection receives a score.
func (r *HybridRetriever) vectorScores(ctx context.Context, query string) ([]float64, error) {
	scores := make([]float64, len(r.chunks))
	queryEmbedding, err := r.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	hits, err := r.collection.QueryEmbedding(ctx, normalizeL2(queryEmbedding), len(r.chunks), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query vector index: %w", err)
	}
	for _, hit := range hits {
		idx, err := strconv.Atoi(hit.ID)
		if err != nil || idx < 0 || idx >= len(scores) {
			continue
		}
		scores[idx] = float64(hit.Similarity)
	}
	return scores, nil
}

// keywordScores returns the BM25 relevance of each chunk, min-max normalized
// into [0,1] by the maximum score observed for this query.
func (r *HybridRetriever) keywordScores(query string) []float64 {
	scores := r.bm25.scores(tokenize(query))
	maxScore := 0.0
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}
	if maxScore > 0 {
		for i := range scores {
			scores[i] /= maxScore
		}
	}
	return scores
}

// TFIDFVector exposes the fitted TF-IDF representation of text for direct
// similarity use.
func (r *HybridRetriever) TFIDFVector(text string) ([]float64, error) {
	if !r.built {
		return nil, ErrIndexNotBuilt
	}
	return r.tfidf.vector(text), nil
}

func normalizeL2(v []float32) []float32 {
	var norm float64
	for _, x := range v {
		norm += float64(x) * float64(x)
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return v
	}
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out
}

package models

// DocumentChunk is a bounded contiguous span of a source document's text.
// Chunks are created by the chunker and are immutable afterwards; the
// retriever fills in Embedding when indices are built.
type DocumentChunk struct {
	Content   string            `json:"content"`
	ChunkID   string            `json:"chunk_id"`
	Source    string            `json:"source"`
	StartPos  int               `json:"start_pos"`
	EndPos    int               `json:"end_pos"`
	Metadata  map[string]string `json:"metadata"`
	Embedding []float32         `json:"-"`
}

// SearchResult is a single ranked hit from a hybrid search. Rank is 1-based
// and strictly increases with descending HybridScore.
type SearchResult struct {
	Content      string            `json:"content"`
	Source       string            `json:"source"`
	VectorScore  float64           `json:"vector_score"`
	KeywordScore float64           `json:"keyword_score"`
	HybridScore  float64           `json:"hybrid_score"`
	Rank         int               `json:"rank"`
	Metadata     map[string]string `json:"metadata"`
}

// Document is a named piece of raw text ready for chunking.
type Document struct {
	Name    string
	Content string
}

package retriever

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// queryOnlyEmbedder proves the cache path never re-embeds documents.
type queryOnlyEmbedder struct {
	erroringEmbedder
}

func (queryOnlyEmbedder) EmbedQuery(_ context.Context, text string) ([]float32, error) {
	return embedText(text), nil
}

func TestIndexCacheRoundtrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	fresh := New(fakeEmbedder{}, zerolog.Nop(), 0.7, 0.3)
	require.NoError(t, fresh.BuildIndicesWithCache(ctx, testChunks(), dir))
	want, err := fresh.HybridSearch(ctx, "dog in the park", 3)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, indexFileName))
	assert.FileExists(t, filepath.Join(dir, chunksFileName))

	// a second retriever must come up from the cache alone
	cached := New(queryOnlyEmbedder{}, zerolog.Nop(), 0.7, 0.3)
	require.NoError(t, cached.BuildIndicesWithCache(ctx, testChunks(), dir))
	got, err := cached.HybridSearch(ctx, "dog in the park", 3)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestIndexCacheCorruptIndexRebuilds(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	fresh := New(fakeEmbedder{}, zerolog.Nop(), 0.7, 0.3)
	require.NoError(t, fresh.BuildIndicesWithCache(ctx, testChunks(), dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, indexFileName), []byte("not an index"), 0o644))

	rebuilt := New(fakeEmbedder{}, zerolog.Nop(), 0.7, 0.3)
	require.NoError(t, rebuilt.BuildIndicesWithCache(ctx, testChunks(), dir))

	results, err := rebuilt.HybridSearch(ctx, "dog in the park", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Content, "dog")
}

func TestIndexCacheMissingSidecar(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	fresh := New(fakeEmbedder{}, zerolog.Nop(), 0.7, 0.3)
	require.NoError(t, fresh.BuildIndicesWithCache(ctx, testChunks(), dir))
	require.NoError(t, os.Remove(filepath.Join(dir, chunksFileName)))

	// one file missing means a full rebuild, not a partial load
	cache := newIndexCache(dir)
	assert.False(t, cache.exists())

	rebuilt := New(fakeEmbedder{}, zerolog.Nop(), 0.7, 0.3)
	require.NoError(t, rebuilt.BuildIndicesWithCache(ctx, testChunks(), dir))
	assert.FileExists(t, filepath.Join(dir, chunksFileName))
}

func TestIndexCacheSaveLoad(t *testing.T) {
	dir := t.TempDir()
	chunks := testChunks()
	for i := range chunks {
		chunks[i].Embedding = normalizeL2(embedText(chunks[i].Content))
	}

	cache := newIndexCache(dir)
	require.NoError(t, cache.save(chunks))
	require.True(t, cache.exists())

	loaded, err := cache.load()
	require.NoError(t, err)
	require.Len(t, loaded, len(chunks))
	for i := range chunks {
		assert.Equal(t, chunks[i].Content, loaded[i].Content)
		assert.Equal(t, chunks[i].ChunkID, loaded[i].ChunkID)
		assert.Equal(t, chunks[i].Embedding, loaded[i].Embedding)
	}
}

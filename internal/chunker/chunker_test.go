package chunker

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want Strategy
	}{
		{"semantic", StrategySemantic},
		{"SENTENCE", StrategySentence},
		{" sliding_window ", StrategySlidingWindow},
		{"simple", StrategySimple},
		{"bogus", StrategySimple},
		{"", StrategySimple},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStrategy(tt.in))
		})
	}
}

func TestChunkDocumentEmptyInput(t *testing.T) {
	for _, strategy := range []Strategy{StrategySemantic, StrategySentence, StrategySlidingWindow, StrategySimple} {
		t.Run(string(strategy), func(t *testing.T) {
			c := New(100, 10, strategy)
			assert.Empty(t, c.ChunkDocument("", "doc"))
			assert.Empty(t, c.ChunkDocument("   \n\t ", "doc"))
		})
	}
}

func TestSentenceChunking(t *testing.T) {
	text := "A cat sat. A dog ran. A bird flew. A fish swam."
	c := New(25, 0, StrategySentence)

	chunks := c.ChunkDocument(text, "animals")
	require.Len(t, chunks, 2)

	totalSentences := 0
	for i, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk.Content), 25)
		assert.Equal(t, "animals_sent_chunk_"+strconv.Itoa(i), chunk.ChunkID)
		n, err := strconv.Atoi(chunk.Metadata["sentence_count"])
		require.NoError(t, err)
		totalSentences += n
	}
	assert.Equal(t, 4, totalSentences)
	assert.Equal(t, "A cat sat. A dog ran.", chunks[0].Content)
	assert.Equal(t, "A bird flew. A fish swam.", chunks[1].Content)
}

func TestSemanticChunkingOverlap(t *testing.T) {
	text := "One fox ran far. Two cats sat down. Three dogs barked loud."
	c := New(40, 0, StrategySemantic)

	chunks := c.ChunkDocument(text, "doc")
	require.Len(t, chunks, 2)

	assert.Equal(t, "One fox ran far. Two cats sat down.", chunks[0].Content)
	// the next chunk starts with the trailing two sentences of the previous one
	assert.True(t, strings.HasPrefix(chunks[1].Content, "One fox ran far. Two cats sat down."))
	assert.True(t, strings.HasSuffix(chunks[1].Content, "Three dogs barked loud."))
}

func TestSemanticChunkingOversizeSentence(t *testing.T) {
	text := "Thisisasingleunbrokensentencethatrunswellpastthebudget."
	c := New(20, 5, StrategySemantic)

	chunks := c.ChunkDocument(text, "doc")
	require.Len(t, chunks, 1)
	assert.Equal(t, text, chunks[0].Content)
	assert.Greater(t, len(chunks[0].Content), 20)
}

func TestSlidingWindowChunking(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("alpha beta gamma delta epsilon ", 4))
	c := New(30, 10, StrategySlidingWindow)

	chunks := c.ChunkDocument(text, "doc")
	require.NotEmpty(t, chunks)

	for i, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk.Content), 30, "chunk %d exceeds window size", i)
		assert.LessOrEqual(t, chunk.StartPos, chunk.EndPos)
		if i > 0 {
			// no gaps between consecutive windows
			assert.LessOrEqual(t, chunks[i].StartPos, chunks[i-1].EndPos)
		}
	}
	assert.Equal(t, 0, chunks[0].StartPos)
	assert.Equal(t, len(text), chunks[len(chunks)-1].EndPos)
}

func TestSlidingWindowDoesNotSplitWords(t *testing.T) {
	text := "monday tuesday wednesday thursday friday saturday sunday"
	c := New(20, 5, StrategySlidingWindow)

	for _, chunk := range c.ChunkDocument(text, "doc") {
		for _, word := range strings.Fields(chunk.Content) {
			assert.Contains(t, strings.Fields(text), word)
		}
	}
}

func TestSimpleChunking(t *testing.T) {
	text := "abcdefghijklmnopqrstuvwxyz0123456789"
	c := New(10, 0, StrategySimple)

	chunks := c.ChunkDocument(text, "doc")
	require.Len(t, chunks, 4)

	var rebuilt strings.Builder
	for i, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk.Content), 10)
		assert.Equal(t, i*10, chunk.StartPos)
		rebuilt.WriteString(chunk.Content)
	}
	assert.Equal(t, text, rebuilt.String())
}

func TestChunkingDeterministic(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog. Pack my box with five dozen liquor jugs. How vexingly quick daft zebras jump!"
	for _, strategy := range []Strategy{StrategySemantic, StrategySentence, StrategySlidingWindow, StrategySimple} {
		t.Run(string(strategy), func(t *testing.T) {
			c := New(50, 10, strategy)
			assert.Equal(t, c.ChunkDocument(text, "doc"), c.ChunkDocument(text, "doc"))
		})
	}
}

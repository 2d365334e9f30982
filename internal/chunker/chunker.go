package chunker

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"prompt-enhancer/internal/models"
)

// Strategy selects how chunk boundaries are chosen.
type Strategy string

const (
	StrategySemantic      Strategy = "semantic"
	StrategySentence      Strategy = "sentence"
	StrategySlidingWindow Strategy = "sliding_window"
	StrategySimple        Strategy = "simple"
)

// ParseStrategy maps a config string to a Strategy, falling back to simple
// for anything unrecognized.
func ParseStrategy(s string) Strategy {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategySemantic, StrategySentence, StrategySlidingWindow:
		return Strategy(strings.ToLower(strings.TrimSpace(s)))
	default:
		return StrategySimple
	}
}

// Chunker splits raw document text into overlapping content chunks under a
// size budget. Chunking is deterministic for a given (text, config).
type Chunker struct {
	chunkSize    int
	chunkOverlap int
	strategy     Strategy
	sentenceRe   *regexp.Regexp
}

func New(chunkSize, chunkOverlap int, strategy Strategy) *Chunker {
	if chunkSize <= 0 {
		chunkSize = models.DefaultChunkSize
	}
	if chunkOverlap < 0 {
		chunkOverlap = 0
	}
	if chunkOverlap >= chunkSize {
		chunkOverlap = chunkSize / 2
	}
	return &Chunker{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
		strategy:     strategy,
		sentenceRe:   regexp.MustCompile(`[^.!?]+[.!?]+|[^.!?]+$`),
	}
}

// ChunkDocument splits text into an ordered sequence of chunks using the
// configured strategy. Empty or whitespace-only input yields zero chunks.
func (c *Chunker) ChunkDocument(text, source string) []models.DocumentChunk {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	switch c.strategy {
	case StrategySemantic:
		return c.semanticChunking(text, source)
	case StrategySentence:
		return c.sentenceChunking(text, source)
	case StrategySlidingWindow:
		return c.slidingWindowChunking(text, source)
	default:
		return c.simpleChunking(text, source)
	}
}

// sentence is one sentence of the input plus its byte offset.
type sentence struct {
	text  string
	start int
}

func (c *Chunker) splitSentences(text string) []sentence {
	var out []sentence
	for _, loc := range c.sentenceRe.FindAllStringIndex(text, -1) {
		raw := text[loc[0]:loc[1]]
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		lead := strings.Index(raw, trimmed[:1])
		out = append(out, sentence{text: trimmed, start: loc[0] + lead})
	}
	return out
}

// semanticChunking greedily accumulates sentences up to the size budget and
// seeds each new chunk with the last two sentences of the previous one. A
// single sentence longer than the budget is kept whole, never split.
func (c *Chunker) semanticChunking(text, source string) []models.DocumentChunk {
	sentences := c.splitSentences(text)
	var chunks []models.DocumentChunk
	var current []sentence

	currentLen := func() int {
		n := 0
		for i, s := range current {
			if i > 0 {
				n++
			}
			n += len(s.text)
		}
		return n
	}
	emit := func() {
		parts := make([]string, len(current))
		for i, s := range current {
			parts[i] = s.text
		}
		content := strings.Join(parts, " ")
		chunks = append(chunks, models.DocumentChunk{
			Content:  content,
			ChunkID:  fmt.Sprintf("%s_chunk_%d", source, len(chunks)),
			Source:   source,
			StartPos: current[0].start,
			EndPos:   current[0].start + len(content),
			Metadata: map[string]string{"sentence_count": strconv.Itoa(len(current))},
		})
	}

	for _, s := range sentences {
		if len(current) > 0 && currentLen()+len(s.text) > c.chunkSize {
			emit()
			// seed the next chunk with the trailing two sentences
			overlap := current
			if len(overlap) > 2 {
				overlap = overlap[len(overlap)-2:]
			}
			current = append(append([]sentence{}, overlap...), s)
			continue
		}
		current = append(current, s)
	}
	if len(current) > 0 {
		emit()
	}
	return chunks
}

// sentenceChunking groups whole sentences up to the size budget without
// cross-chunk overlap.
func (c *Chunker) sentenceChunking(text, source string) []models.DocumentChunk {
	sentences := c.splitSentences(text)
	var chunks []models.DocumentChunk
	var current []sentence

	emit := func() {
		parts := make([]string, len(current))
		for i, s := range current {
			parts[i] = s.text
		}
		last := current[len(current)-1]
		chunks = append(chunks, models.DocumentChunk{
			Content:  strings.Join(parts, " "),
			ChunkID:  fmt.Sprintf("%s_sent_chunk_%d", source, len(chunks)),
			Source:   source,
			StartPos: current[0].start,
			EndPos:   last.start + len(last.text),
			Metadata: map[string]string{"sentence_count": strconv.Itoa(len(current))},
		})
	}

	currentLen := 0
	for _, s := range sentences {
		if len(current) > 0 && currentLen+len(s.text) > c.chunkSize {
			emit()
			current = nil
			currentLen = 0
		}
		current = append(current, s)
		currentLen += len(s.text)
	}
	if len(current) > 0 {
		emit()
	}
	return chunks
}

// slidingWindowChunking emits fixed-size windows advancing by
// chunkSize-chunkOverlap, pulling each window's right edge back to the
// nearest preceding whitespace so words are not split.
func (c *Chunker) slidingWindowChunking(text, source string) []models.DocumentChunk {
	var chunks []models.DocumentChunk
	start := 0
	for start < len(text) {
		end := start + c.chunkSize
		if end >= len(text) {
			end = len(text)
		} else {
			for end > start && !isSpace(text[end]) {
				end--
			}
			if end == start {
				// single unbroken token wider than the window
				end = start + c.chunkSize
			}
		}
		content := strings.TrimSpace(text[start:end])
		if content != "" {
			chunks = append(chunks, models.DocumentChunk{
				Content:  content,
				ChunkID:  fmt.Sprintf("%s_window_%d", source, len(chunks)),
				Source:   source,
				StartPos: start,
				EndPos:   end,
				Metadata: map[string]string{"window_size": strconv.Itoa(len(content))},
			})
		}
		next := start + c.chunkSize - c.chunkOverlap
		if next < end {
			next = end
		}
		if next <= start {
			break
		}
		start = next
	}
	return chunks
}

// simpleChunking is plain fixed-size slicing, the baseline strategy.
func (c *Chunker) simpleChunking(text, source string) []models.DocumentChunk {
	var chunks []models.DocumentChunk
	for i := 0; i < len(text); i += c.chunkSize {
		end := i + c.chunkSize
		if end > len(text) {
			end = len(text)
		}
		content := text[i:end]
		if strings.TrimSpace(content) == "" {
			continue
		}
		chunks = append(chunks, models.DocumentChunk{
			Content:  content,
			ChunkID:  fmt.Sprintf("%s_simple_%d", source, len(chunks)),
			Source:   source,
			StartPos: i,
			EndPos:   end,
			Metadata: map[string]string{},
		})
	}
	return chunks
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t' || b == '\r'
}

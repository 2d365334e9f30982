package retriever

import (
	"math"
	"regexp"
	"strings"
)

// BM25 parameters, matching the common Okapi defaults.
const (
	bm25K1 = 1.5
	bm25B  = 0.75
)

var tokenRe = regexp.MustCompile(`\p{L}+|\p{N}+`)

// tokenize lowercases text and splits it into word tokens.
func tokenize(text string) []string {
	return tokenRe.FindAllString(strings.ToLower(text), -1)
}

// bm25Index is a term-frequency relevance model over a fixed document
// collection. Scores reward query-term overlap with saturation and
// document-length normalization.
type bm25Index struct {
	docFreqs []map[string]int
	docLens  []int
	avgLen   float64
	idf      map[string]float64
}

func newBM25Index(tokenizedDocs [][]string) *bm25Index {
	idx := &bm25Index{
		docFreqs: make([]map[string]int, len(tokenizedDocs)),
		docLens:  make([]int, len(tokenizedDocs)),
		idf:      make(map[string]float64),
	}
	df := make(map[string]int)
	total := 0
	for i, tokens := range tokenizedDocs {
		freqs := make(map[string]int, len(tokens))
		for _, tok := range tokens {
			freqs[tok]++
		}
		idx.docFreqs[i] = freqs
		idx.docLens[i] = len(tokens)
		total += len(tokens)
		for term := range freqs {
			df[term]++
		}
	}
	if len(tokenizedDocs) > 0 {
		idx.avgLen = float64(total) / float64(len(tokenizedDocs))
	}
	n := float64(len(tokenizedDocs))
	for term, freq := range df {
		idx.idf[term] = math.Log(1 + (n-float64(freq)+0.5)/(float64(freq)+0.5))
	}
	return idx
}

// scores returns one raw relevance score per document for the query tokens.
func (x *bm25Index) scores(queryTokens []string) []float64 {
	out := make([]float64, len(x.docFreqs))
	for i, freqs := range x.docFreqs {
		lenNorm := 1.0
		if x.avgLen > 0 {
			lenNorm = 1 - bm25B + bm25B*float64(x.docLens[i])/x.avgLen
		}
		var score float64
		for _, term := range queryTokens {
			tf := float64(freqs[term])
			if tf == 0 {
				continue
			}
			score += x.idf[term] * tf * (bm25K1 + 1) / (tf + bm25K1*lenNorm)
		}
		out[i] = score
	}
	return out
}

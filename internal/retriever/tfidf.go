package retriever

import (
	"errors"
	"math"
	"sort"
)

// tfidfVectorizer is a plain TF-IDF model over the chunk collection. It is
// built alongside the BM25 index and kept available for direct
// cosine-similarity use.
type tfidfVectorizer struct {
	vocabulary map[string]int
	idf        []float64
	fitted     bool
}

func newTFIDFVectorizer() *tfidfVectorizer {
	return &tfidfVectorizer{vocabulary: make(map[string]int)}
}

// fit builds the vocabulary and smoothed IDF values from the corpus.
func (v *tfidfVectorizer) fit(corpus []string) error {
	if len(corpus) == 0 {
		return errors.New("empty corpus for tf-idf fit")
	}
	df := make(map[string]int)
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, tok := range tokenize(text) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	v.vocabulary = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	n := float64(len(corpus))
	for i, term := range terms {
		v.vocabulary[term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	v.fitted = true
	return nil
}

// vector computes the L2-normalized TF-IDF vector for text. Unknown terms
// are ignored.
func (v *tfidfVectorizer) vector(text string) []float64 {
	vec := make([]float64, len(v.idf))
	if !v.fitted {
		return vec
	}
	tf := make(map[int]int)
	total := 0
	for _, tok := range tokenize(text) {
		if idx, ok := v.vocabulary[tok]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec
	}
	for idx, count := range tf {
		vec[idx] = float64(count) / float64(total) * v.idf[idx]
	}
	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

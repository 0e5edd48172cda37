package nlp

import (
	"context"
	"math"
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[a-z0-9][a-z0-9+#.\-]*`)

// FrequencyBackend is the similarity variant that builds a TF-IDF vector
// space over exactly the two input documents (unigrams and bigrams) and
// scores their cosine similarity. It needs no external services or models.
type FrequencyBackend struct{}

// NewFrequencyBackend returns the frequency similarity variant.
func NewFrequencyBackend() *FrequencyBackend {
	return &FrequencyBackend{}
}

// Name implements SimilarityBackend.
func (f *FrequencyBackend) Name() string { return "frequency" }

// Similarity implements SimilarityBackend. Inputs that are empty after
// stopword filtering score 0 rather than erroring.
func (f *FrequencyBackend) Similarity(_ context.Context, a, b string) float64 {
	termsA := ngrams(tokenize(a))
	termsB := ngrams(tokenize(b))
	if len(termsA) == 0 || len(termsB) == 0 {
		return 0
	}

	tfA := termFrequencies(termsA)
	tfB := termFrequencies(termsB)

	// Smoothed IDF over the two-document corpus.
	idf := make(map[string]float64, len(tfA)+len(tfB))
	for term := range tfA {
		df := 1.0
		if _, ok := tfB[term]; ok {
			df = 2.0
		}
		idf[term] = math.Log(3.0/(1.0+df)) + 1.0
	}
	for term := range tfB {
		if _, ok := idf[term]; ok {
			continue
		}
		idf[term] = math.Log(3.0/2.0) + 1.0
	}

	vecA := weight(tfA, idf)
	vecB := weight(tfB, idf)

	sim := cosine(vecA, vecB)
	return clampScore(sim * 100)
}

// tokenize lowercases, strips punctuation and drops stopwords and words of
// two characters or fewer.
func tokenize(text string) []string {
	var out []string
	for _, tok := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		if len(tok) <= 2 {
			continue
		}
		if _, stop := stopwords[tok]; stop {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// ngrams returns the unigrams plus adjacent bigrams of the token stream.
func ngrams(tokens []string) []string {
	terms := make([]string, 0, len(tokens)*2)
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

func termFrequencies(terms []string) map[string]float64 {
	freq := make(map[string]float64, len(terms))
	for _, t := range terms {
		freq[t]++
	}
	total := float64(len(terms))
	for t := range freq {
		freq[t] /= total
	}
	return freq
}

func weight(tf map[string]float64, idf map[string]float64) map[string]float64 {
	vec := make(map[string]float64, len(tf))
	for term, f := range tf {
		vec[term] = f * idf[term]
	}
	return vec
}

func cosine(a, b map[string]float64) float64 {
	var dot, normA, normB float64
	for term, wa := range a {
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
		normA += wa * wa
	}
	for _, wb := range b {
		normB += wb * wb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

package keywords

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/k5602/CV-Analayzer/internal/nlp"
)

// wordPattern matches technical tokens, keeping inner +, #, - and dots so
// terms like "c++", "c#" and "node.js" survive tokenization.
var wordPattern = regexp.MustCompile(`\b[a-zA-Z][a-zA-Z0-9+#\-.]*[a-zA-Z0-9]\b`)

// candidateLimit bounds how many ranked candidates the embedding path scores.
const candidateLimit = 30

// Engine extracts salient keywords and ranks job-description requirements.
// When the similarity backend is the embedding variant, requirement ranking
// scores candidate phrases against the whole document; otherwise it falls
// back to frequency ranking.
type Engine struct {
	sim nlp.SimilarityBackend
}

// NewEngine builds a keyword engine on top of the given similarity backend.
// A nil backend disables embedding-ranked requirements.
func NewEngine(sim nlp.SimilarityBackend) *Engine {
	return &Engine{sim: sim}
}

// ExtractKeywords returns the salient keyword set of the text: stopword
// filtered tokens longer than two characters, plus any dictionary skill
// terms found as whole words.
func (e *Engine) ExtractKeywords(text string) map[string]struct{} {
	lower := strings.ToLower(text)
	keywords := make(map[string]struct{})

	for _, word := range wordPattern.FindAllString(lower, -1) {
		if len(word) <= 2 || nlp.IsStopword(word) {
			continue
		}
		keywords[word] = struct{}{}
	}
	for _, skill := range DictionarySkills(lower) {
		keywords[skill] = struct{}{}
	}
	return keywords
}

// ExtractKeyRequirements returns up to n ranked requirement terms from a job
// description. Dictionary skills found in the text are always included;
// ranking preserves order and deduplicates.
func (e *Engine) ExtractKeyRequirements(ctx context.Context, jobDescription string, n int) []string {
	if n <= 0 || strings.TrimSpace(jobDescription) == "" {
		return []string{}
	}

	var ranked []string
	if e.sim != nil && e.sim.Name() == "embedding" {
		ranked = e.rankBySalience(ctx, jobDescription)
	} else {
		ranked = rankByFrequency(jobDescription)
	}

	requirements := make([]string, 0, n)
	seen := make(map[string]struct{})
	for _, term := range ranked {
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		requirements = append(requirements, term)
	}
	for _, skill := range sortedDictionarySkills(jobDescription) {
		if _, dup := seen[skill]; dup {
			continue
		}
		seen[skill] = struct{}{}
		requirements = append(requirements, skill)
	}

	if len(requirements) > n {
		requirements = requirements[:n]
	}
	return requirements
}

// rankBySalience scores frequency-derived candidate phrases against the
// whole document with the embedding backend and orders them by similarity.
func (e *Engine) rankBySalience(ctx context.Context, text string) []string {
	candidates := rankByFrequency(text)
	if len(candidates) > candidateLimit {
		candidates = candidates[:candidateLimit]
	}

	type scored struct {
		term  string
		score float64
	}
	scoredTerms := make([]scored, 0, len(candidates))
	for _, term := range candidates {
		scoredTerms = append(scoredTerms, scored{term, e.sim.Similarity(ctx, term, text)})
	}
	sort.SliceStable(scoredTerms, func(i, j int) bool {
		return scoredTerms[i].score > scoredTerms[j].score
	})

	out := make([]string, len(scoredTerms))
	for i, s := range scoredTerms {
		out[i] = s.term
	}
	return out
}

// rankByFrequency orders filtered tokens by descending frequency, ties
// broken alphabetically for determinism.
func rankByFrequency(text string) []string {
	lower := strings.ToLower(text)
	freq := make(map[string]int)
	for _, word := range wordPattern.FindAllString(lower, -1) {
		if len(word) <= 2 || nlp.IsStopword(word) {
			continue
		}
		freq[word]++
	}

	terms := make([]string, 0, len(freq))
	for term := range freq {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	return terms
}

func sortedDictionarySkills(text string) []string {
	skills := DictionarySkills(strings.ToLower(text))
	sort.Strings(skills)
	return skills
}

// SortedKeywords materializes a keyword set as a sorted slice for
// deterministic report output.
func SortedKeywords(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

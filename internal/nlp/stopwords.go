// Package nlp provides the pluggable similarity backend and the heuristic
// language tooling (stopwords, gazetteer tagging) used by entity extraction
// and keyword matching.
package nlp

import "strings"

// stopwords is the shared English stopword set used for tokenization
// filtering across the analyzer. Initialized once, read-only afterwards.
var stopwords = buildStopwords()

func buildStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "because", "as", "what",
		"when", "where", "how", "all", "any", "both", "each", "few", "more",
		"most", "other", "some", "such", "no", "nor", "not", "only", "own",
		"same", "so", "than", "too", "very", "s", "t", "can", "will", "just",
		"don", "should", "now", "to", "from", "with", "for", "by", "about",
		"against", "between", "into", "through", "during", "before", "after",
		"above", "below", "up", "down", "in", "out", "on", "off", "over",
		"under", "again", "further", "then", "once", "here", "there", "why",
		"this", "that", "these", "those", "i", "me", "my", "myself", "we",
		"our", "ours", "ourselves", "you", "you're", "you've", "you'll",
		"you'd", "your", "yours", "yourself", "yourselves", "he", "him",
		"his", "himself", "she", "she's", "her", "hers", "herself", "it",
		"it's", "its", "itself", "they", "them", "their", "theirs",
		"themselves", "who", "whom", "am", "is", "are", "was", "were", "be",
		"been", "being", "have", "has", "had", "having", "do", "does", "did",
		"doing", "would", "could", "ought", "i'm", "i've", "i'll",
		"i'd", "we're", "we've", "we'll", "we'd", "he's", "he'd", "she'll",
		"she'd", "it'll", "they're", "they've", "they'll", "they'd", "isn't",
		"aren't", "wasn't", "weren't", "hasn't", "haven't", "hadn't", "doesn't",
		"don't", "didn't", "won't", "wouldn't", "shan't", "shouldn't", "can't",
		"cannot", "couldn't", "mustn't", "let's", "that's", "there's",
		"shall", "must", "may", "might", "at",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// IsStopword reports whether the lowercased word is in the stopword set.
func IsStopword(word string) bool {
	_, ok := stopwords[strings.ToLower(word)]
	return ok
}

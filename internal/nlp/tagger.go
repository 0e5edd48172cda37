package nlp

import (
	"regexp"
	"strings"
)

// Tagger provides lightweight named-entity and noun-phrase heuristics based
// on small gazetteers and word-shape rules. It stands in for a full NER
// model: entity extraction treats a nil Tagger as "backend unavailable" and
// simply omits the affected fields.
type Tagger struct {
	commonNames map[string]struct{}
	locations   map[string]struct{}
}

var (
	nounEndings = []string{"tion", "ment", "ence", "ance", "ity", "ness", "ship", "age", "ery"}
	adjEndings  = []string{"able", "ible", "al", "ful", "ic", "ive", "less", "ous"}
	verbEndings = []string{"ate", "ize", "ise", "ify", "en", "ed", "ing"}

	wordPattern = regexp.MustCompile(`\b\w+\b`)
)

// NewTagger builds a Tagger with its built-in gazetteers.
func NewTagger() *Tagger {
	return &Tagger{
		commonNames: toSet([]string{
			"john", "david", "michael", "james", "robert", "william", "joseph", "thomas",
			"mary", "jennifer", "lisa", "sarah", "michelle", "patricia", "elizabeth",
			"smith", "johnson", "williams", "brown", "jones", "miller", "davis",
			"garcia", "rodriguez", "wilson", "martinez", "anderson", "taylor", "lee",
		}),
		locations: toSet([]string{
			"new york", "los angeles", "chicago", "houston", "phoenix", "philadelphia",
			"san antonio", "san diego", "dallas", "san jose", "austin", "boston",
			"seattle", "toronto", "london", "paris", "berlin", "sydney", "tokyo",
			"beijing", "mumbai", "delhi", "singapore", "dubai", "usa", "canada",
			"uk", "england", "france", "germany", "australia", "india", "china", "japan",
		}),
	}
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Locations returns location entities found in the text, in order of first
// appearance, with the casing used in the text.
func (t *Tagger) Locations(text string) []string {
	var found []string
	seen := make(map[string]struct{})
	lower := strings.ToLower(text)

	// Multi-word gazetteer entries need a substring scan.
	for loc := range t.locations {
		if !strings.Contains(loc, " ") {
			continue
		}
		idx := strings.Index(lower, loc)
		if idx < 0 {
			continue
		}
		proper := text[idx : idx+len(loc)]
		if _, dup := seen[strings.ToLower(proper)]; !dup {
			seen[strings.ToLower(proper)] = struct{}{}
			found = append(found, proper)
		}
	}

	for _, word := range capitalizedWords(text) {
		key := strings.ToLower(word)
		if _, ok := t.locations[key]; !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		found = append(found, word)
	}
	return found
}

// IsPersonName reports whether the phrase looks like a person name according
// to the common-name gazetteer.
func (t *Tagger) IsPersonName(phrase string) bool {
	for _, word := range strings.Fields(strings.ToLower(phrase)) {
		if _, ok := t.commonNames[word]; ok {
			return true
		}
	}
	return false
}

// NounPhrases extracts probable noun phrases (up to two tokens) using
// suffix-class heuristics. Results keep the casing from the text.
func (t *Tagger) NounPhrases(text string) []string {
	tokens := wordPattern.FindAllString(text, -1)

	var phrases []string
	for i := 0; i+1 < len(tokens); i++ {
		first, second := tokens[i], tokens[i+1]
		if IsStopword(first) || IsStopword(second) {
			continue
		}
		if len(first) < 2 || len(second) < 2 {
			continue
		}
		if likelyNoun(second) {
			phrases = append(phrases, first+" "+second)
		}
	}
	return phrases
}

func likelyNoun(word string) bool {
	w := strings.ToLower(word)
	if hasAnySuffix(w, nounEndings) {
		return true
	}
	return !hasAnySuffix(w, adjEndings) && !hasAnySuffix(w, verbEndings)
}

func hasAnySuffix(w string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(w, s) {
			return true
		}
	}
	return false
}

// capitalizedWords returns words starting with an uppercase letter that are
// not at an obvious sentence start.
func capitalizedWords(text string) []string {
	words := strings.Fields(text)
	var out []string
	for i, word := range words {
		trimmed := strings.Trim(word, ".,;:()[]{}")
		if trimmed == "" || trimmed[0] < 'A' || trimmed[0] > 'Z' {
			continue
		}
		if i == 0 {
			continue
		}
		prev := words[i-1]
		if strings.HasSuffix(prev, ".") || strings.HasSuffix(prev, "!") || strings.HasSuffix(prev, "?") {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

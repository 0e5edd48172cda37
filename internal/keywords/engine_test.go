package keywords

import (
	"context"
	"testing"

	"github.com/k5602/CV-Analayzer/internal/nlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractKeywords_FiltersStopwords(t *testing.T) {
	engine := NewEngine(nlp.NewFrequencyBackend())

	keywords := engine.ExtractKeywords("We are looking for a Python developer with SQL experience")

	assert.Contains(t, keywords, "python")
	assert.Contains(t, keywords, "sql")
	assert.Contains(t, keywords, "developer")
	assert.NotContains(t, keywords, "the")
	assert.NotContains(t, keywords, "are")
	assert.NotContains(t, keywords, "we")
}

func TestExtractKeywords_IncludesDictionaryPhrases(t *testing.T) {
	engine := NewEngine(nlp.NewFrequencyBackend())

	keywords := engine.ExtractKeywords("Experience with machine learning and data science required")

	assert.Contains(t, keywords, "machine learning")
	assert.Contains(t, keywords, "data science")
}

func TestExtractKeywords_EmptyText(t *testing.T) {
	engine := NewEngine(nlp.NewFrequencyBackend())

	keywords := engine.ExtractKeywords("")
	assert.Empty(t, keywords)
}

func TestExtractKeyRequirements_FrequencyRanking(t *testing.T) {
	engine := NewEngine(nlp.NewFrequencyBackend())

	jd := "Kubernetes experience required. Kubernetes clusters at scale. " +
		"Kubernetes operators preferred. Golang services. Golang tooling. Terraform."
	reqs := engine.ExtractKeyRequirements(context.Background(), jd, 5)

	require.NotEmpty(t, reqs)
	assert.Len(t, reqs, 5)
	// Most frequent term ranks first.
	assert.Equal(t, "kubernetes", reqs[0])
	assert.Contains(t, reqs, "golang")
}

func TestExtractKeyRequirements_SupplementsDictionarySkills(t *testing.T) {
	engine := NewEngine(nlp.NewFrequencyBackend())

	reqs := engine.ExtractKeyRequirements(context.Background(), "docker docker docker aws", 10)

	assert.Contains(t, reqs, "docker")
	assert.Contains(t, reqs, "aws")
}

func TestExtractKeyRequirements_Truncates(t *testing.T) {
	engine := NewEngine(nlp.NewFrequencyBackend())

	jd := "python java javascript react angular vue django flask spring express"
	reqs := engine.ExtractKeyRequirements(context.Background(), jd, 3)

	assert.Len(t, reqs, 3)
}

func TestExtractKeyRequirements_EmptyInput(t *testing.T) {
	engine := NewEngine(nlp.NewFrequencyBackend())

	assert.Empty(t, engine.ExtractKeyRequirements(context.Background(), "", 10))
	assert.Empty(t, engine.ExtractKeyRequirements(context.Background(), "python", 0))
}

func TestDictionarySkills_WholeWordOnly(t *testing.T) {
	skills := DictionarySkills("worked with javascript and git daily")

	assert.Contains(t, skills, "javascript")
	assert.Contains(t, skills, "git")
	// "java" must not match inside "javascript".
	assert.NotContains(t, skills, "java")
}

func TestSortedKeywords_Deterministic(t *testing.T) {
	set := map[string]struct{}{"b": {}, "a": {}, "c": {}}
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeywords(set))
}

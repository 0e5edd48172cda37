package nlp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequencyBackend_IdenticalTexts(t *testing.T) {
	backend := NewFrequencyBackend()

	score := backend.Similarity(context.Background(),
		"python developer with kubernetes experience",
		"python developer with kubernetes experience")

	assert.InDelta(t, 100.0, score, 0.01)
}

func TestFrequencyBackend_DisjointTexts(t *testing.T) {
	backend := NewFrequencyBackend()

	score := backend.Similarity(context.Background(),
		"python django flask backend",
		"photoshop illustrator typography branding")

	assert.Equal(t, 0.0, score)
}

func TestFrequencyBackend_PartialOverlap(t *testing.T) {
	backend := NewFrequencyBackend()

	score := backend.Similarity(context.Background(),
		"senior python engineer building cloud services",
		"python engineer working with cloud infrastructure")

	assert.Greater(t, score, 0.0)
	assert.Less(t, score, 100.0)
}

func TestFrequencyBackend_DegenerateInput(t *testing.T) {
	backend := NewFrequencyBackend()
	ctx := context.Background()

	// Empty after preprocessing: stopwords and short tokens only.
	assert.Equal(t, 0.0, backend.Similarity(ctx, "", "python"))
	assert.Equal(t, 0.0, backend.Similarity(ctx, "the and or", "python"))
	assert.Equal(t, 0.0, backend.Similarity(ctx, "a is to", "of in at"))
}

func TestFrequencyBackend_ScoreRange(t *testing.T) {
	backend := NewFrequencyBackend()
	ctx := context.Background()

	cases := [][2]string{
		{"go microservices grpc", "go microservices grpc kafka"},
		{"accounting finance excel", "accounting finance"},
		{"one two three four five six", "four five six seven eight nine"},
	}
	for _, c := range cases {
		score := backend.Similarity(ctx, c[0], c[1])
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}

func TestTokenize_FiltersStopwordsAndShortTokens(t *testing.T) {
	tokens := tokenize("The quick brown fox is in a box with C++ and SQL")

	assert.Contains(t, tokens, "quick")
	assert.Contains(t, tokens, "sql")
	assert.NotContains(t, tokens, "the")
	assert.NotContains(t, tokens, "is")
	assert.NotContains(t, tokens, "in")
}

func TestNgrams_IncludesBigrams(t *testing.T) {
	terms := ngrams([]string{"machine", "learning", "engineer"})

	require.Len(t, terms, 5)
	assert.Contains(t, terms, "machine learning")
	assert.Contains(t, terms, "learning engineer")
}

func TestCosineDense(t *testing.T) {
	assert.InDelta(t, 1.0, cosineDense([]float32{1, 0, 1}, []float32{1, 0, 1}), 1e-9)
	assert.InDelta(t, 0.0, cosineDense([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.Equal(t, 0.0, cosineDense([]float32{1}, []float32{1, 2}))
	assert.Equal(t, 0.0, cosineDense(nil, nil))
}

package nlp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestTagger_Locations(t *testing.T) {
	tagger := NewTagger()

	locs := tagger.Locations("Jane Roe\njane@example.com\nBased in Seattle since 2019.")
	assert.Contains(t, locs, "Seattle")

	locs = tagger.Locations("Relocated from new york to Berlin last year.")
	assert.Contains(t, locs, "new york")
	assert.Contains(t, locs, "Berlin")
}

func TestTagger_IsPersonName(t *testing.T) {
	tagger := NewTagger()

	assert.True(t, tagger.IsPersonName("John Smith"))
	assert.True(t, tagger.IsPersonName("sarah"))
	assert.False(t, tagger.IsPersonName("Kubernetes Cluster"))
}

func TestTagger_NounPhrases(t *testing.T) {
	tagger := NewTagger()

	phrases := tagger.NounPhrases("Led data migration and vendor management for the platform")
	assert.Contains(t, phrases, "data migration")
	assert.Contains(t, phrases, "vendor management")
}

func TestIsStopword(t *testing.T) {
	assert.True(t, IsStopword("the"))
	assert.True(t, IsStopword("The"))
	assert.False(t, IsStopword("python"))
}

func TestSelectBackend_DefaultsToFrequency(t *testing.T) {
	backend := SelectBackend(context.Background(), BackendConfig{}, zap.NewNop())
	assert.Equal(t, "frequency", backend.Name())
}

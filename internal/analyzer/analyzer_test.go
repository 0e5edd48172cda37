package analyzer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k5602/CV-Analayzer/internal/config"
	"github.com/k5602/CV-Analayzer/internal/types"
)

const testResume = `John Doe
john.doe@example.com
(555) 123-4567

Summary
Backend engineer building distributed services in Go and Python.

Experience

Senior Software Engineer at Acme Corp
Jan 2020 - Mar 2023
• Built event-driven microservices with docker and kubernetes.

Education

Bachelor of Science in Computer Science
State University
2013 - 2017

Skills
Python, Go, Docker, Kubernetes, PostgreSQL
`

func writeResume(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte(testResume), 0o644))
	return path
}

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := New(context.Background(), config.Config{NoOCR: true}, nil)
	require.NoError(t, err)
	return a
}

func TestAnalyze_WithoutJobDescription(t *testing.T) {
	a := newTestAnalyzer(t)

	result, failure := a.Analyze(context.Background(), writeResume(t), "", "")
	require.Nil(t, failure)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "resume.txt", result.FileName)
	assert.Equal(t, "John Doe", result.Resume.ContactInfo.Name)
	assert.Equal(t, "txt", result.Resume.FileFormat.Extension)
	assert.NotNil(t, result.ATS)
	assert.Nil(t, result.Match)
	assert.Nil(t, result.Scores.OverallMatch)
	assert.GreaterOrEqual(t, result.Scores.ATSCompatibility, 0)
	assert.False(t, result.OCRUsed)
}

func TestAnalyze_WithJobDescription(t *testing.T) {
	a := newTestAnalyzer(t)
	jd := "Looking for a python engineer with docker and kubernetes experience"

	result, failure := a.Analyze(context.Background(), writeResume(t), jd, "taleo")
	require.Nil(t, failure)
	require.NotNil(t, result.Match)

	assert.Greater(t, result.ATS.DetailedScores.KeywordMatch, 0)
	require.NotNil(t, result.Scores.OverallMatch)
	assert.Equal(t, result.Match.OverallMatchPercentage, *result.Scores.OverallMatch)
}

func TestAnalyze_UnsupportedFormat(t *testing.T) {
	a := newTestAnalyzer(t)
	path := filepath.Join(t.TempDir(), "resume.odt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	result, failure := a.Analyze(context.Background(), path, "", "")
	assert.Nil(t, result)
	require.NotNil(t, failure)
	assert.Equal(t, types.FailureUnsupportedFormat, failure.Category)
	assert.Equal(t, "resume.odt", failure.FileName)
}

func TestAnalyze_EmptyDocument(t *testing.T) {
	a := newTestAnalyzer(t)
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n"), 0o644))

	result, failure := a.Analyze(context.Background(), path, "", "")
	assert.Nil(t, result)
	require.NotNil(t, failure)
	assert.Equal(t, types.FailureExtraction, failure.Category)
}

func TestAnalyzeBatch(t *testing.T) {
	a := newTestAnalyzer(t)

	good := writeResume(t)
	bad := filepath.Join(t.TempDir(), "resume.odt")
	require.NoError(t, os.WriteFile(bad, []byte("x"), 0o644))

	items := a.AnalyzeBatch(context.Background(), []string{good, bad}, "", "")
	require.Len(t, items, 2)

	assert.Equal(t, good, items[0].FilePath)
	assert.NotNil(t, items[0].Result)
	assert.Nil(t, items[0].Failure)

	assert.Equal(t, bad, items[1].FilePath)
	assert.Nil(t, items[1].Result)
	require.NotNil(t, items[1].Failure)
	assert.Equal(t, types.FailureUnsupportedFormat, items[1].Failure.Category)
}

func TestPlatforms(t *testing.T) {
	a := newTestAnalyzer(t)
	assert.Contains(t, a.Platforms(), "taleo")
}

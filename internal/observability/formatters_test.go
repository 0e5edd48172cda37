package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/k5602/CV-Analayzer/internal/types"
)

func sampleResult() *types.AnalysisResult {
	resume := types.NewResumeEntities()
	resume.ContactInfo.Name = "John Doe"
	return &types.AnalysisResult{
		FileName: "resume.pdf",
		Resume:   resume,
		ATS: &types.ATSReport{
			Platform:           "Taleo",
			CompatibilityScore: 84,
			DetailedScores:     types.DetailedScores{Formatting: 85, Structure: 90, FileType: 100},
		},
	}
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAnalysis(sampleResult())

	out := buf.String()
	assert.Contains(t, out, "ANALYSIS SUMMARY")
	assert.Contains(t, out, "resume.pdf")
	assert.Contains(t, out, "John Doe")
	assert.Contains(t, out, "84/100")
}

func TestPrintAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAnalysis(nil)
	assert.Empty(t, buf.String())
}

func TestPrintAnalysis_WithMatch(t *testing.T) {
	result := sampleResult()
	result.Match = &types.MatchReport{
		OverallMatchPercentage: 72,
		StrongMatches:          []string{"python", "docker"},
		KeyGaps:                []string{"terraform"},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintAnalysis(result)

	out := buf.String()
	assert.Contains(t, out, "72%")
	assert.Contains(t, out, "python")
	assert.Contains(t, out, "terraform")
}

func TestPrintSuggestions(t *testing.T) {
	report := &types.ATSReport{
		ImprovementSuggestions: []string{"one", "two", "three", "four", "five", "six", "seven"},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintSuggestions(report)

	out := buf.String()
	assert.Contains(t, out, "IMPROVEMENT SUGGESTIONS")
	assert.Contains(t, out, "and 2 more")
}

func TestPrintBatchSummary(t *testing.T) {
	items := []types.BatchItem{
		{FileName: "a.pdf", Result: sampleResult()},
		{FileName: "b.odt", Failure: &types.AnalysisFailure{Category: types.FailureUnsupportedFormat}},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintBatchSummary(items)

	out := buf.String()
	assert.Contains(t, out, "2 documents, 1 succeeded")
	assert.Contains(t, out, "a.pdf")
	assert.True(t, strings.Contains(out, "unsupported_format"))
}

func TestPrintBatchSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintBatchSummary(nil)
	assert.Empty(t, buf.String())
}

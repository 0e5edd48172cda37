// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/k5602/CV-Analayzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of one analysis result.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("File:      %s\n", result.FileName))
	if result.Resume != nil && result.Resume.ContactInfo.Name != "" {
		sb.WriteString(fmt.Sprintf("Candidate: %s\n", result.Resume.ContactInfo.Name))
	}
	if result.OCRUsed {
		sb.WriteString("Extraction: OCR (reduced confidence)\n")
	}
	sb.WriteString("\n")

	if result.ATS != nil {
		sb.WriteString(fmt.Sprintf("ATS compatibility (%s): %d/100\n", result.ATS.Platform, result.ATS.CompatibilityScore))
		scores := result.ATS.DetailedScores
		sb.WriteString(fmt.Sprintf("  formatting %d  structure %d  file type %d\n",
			scores.Formatting, scores.Structure, scores.FileType))
		if result.Match != nil {
			sb.WriteString(fmt.Sprintf("  keyword match %d\n", scores.KeywordMatch))
		}
	}

	if result.Match != nil {
		sb.WriteString(fmt.Sprintf("\nJob match: %d%%\n", result.Match.OverallMatchPercentage))
		if len(result.Match.StrongMatches) > 0 {
			sb.WriteString(fmt.Sprintf("  Strong: %s\n", joinTruncated(result.Match.StrongMatches, 40)))
		}
		if len(result.Match.KeyGaps) > 0 {
			sb.WriteString(fmt.Sprintf("  Gaps:   %s\n", joinTruncated(result.Match.KeyGaps, 40)))
		}
	}

	p.printBox("ANALYSIS SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs the improvement suggestions from an ATS report.
func (p *Printer) PrintSuggestions(report *types.ATSReport) {
	if report == nil || len(report.ImprovementSuggestions) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(report.ImprovementSuggestions), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("• %s\n", report.ImprovementSuggestions[i]))
	}
	if len(report.ImprovementSuggestions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(report.ImprovementSuggestions)-maxItemsToShow))
	}

	p.printBox("IMPROVEMENT SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchSummary outputs per-document outcomes for a batch run.
func (p *Printer) PrintBatchSummary(items []types.BatchItem) {
	if len(items) == 0 {
		return
	}

	var sb strings.Builder
	succeeded := 0
	for _, item := range items {
		if item.Failure == nil {
			succeeded++
		}
	}
	sb.WriteString(fmt.Sprintf("Analyzed %d documents, %d succeeded\n\n", len(items), succeeded))

	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		item := items[i]
		switch {
		case item.Failure != nil:
			sb.WriteString(fmt.Sprintf("✗ %s (%s)\n", item.FileName, item.Failure.Category))
		case item.Result != nil && item.Result.ATS != nil:
			sb.WriteString(fmt.Sprintf("✓ %s  ATS %d\n", item.FileName, item.Result.ATS.CompatibilityScore))
		default:
			sb.WriteString(fmt.Sprintf("✓ %s\n", item.FileName))
		}
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more documents", len(items)-maxItemsToShow))
	}

	p.printBox("BATCH SUMMARY", sb.String())
}

func joinTruncated(items []string, limit int) string {
	joined := strings.Join(items, ", ")
	if len(joined) > limit {
		joined = joined[:limit-3] + "..."
	}
	return joined
}

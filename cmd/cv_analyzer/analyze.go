package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/k5602/CV-Analayzer/internal/analyzer"
	"github.com/k5602/CV-Analayzer/internal/config"
	"github.com/k5602/CV-Analayzer/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one resume for ATS compatibility and job match",
	Long: "Analyze a resume file: extract its text and structured entities, score ATS " +
		"compatibility against a platform's rules, and, when a job description is " +
		"supplied, measure keyword and semantic match.",
	RunE: runAnalyze,
}

var (
	analyzeResumeFile string
	analyzeJobFile    string
	analyzeJobText    string
	analyzePlatform   string
	analyzeRulesFile  string
	analyzeOutFile    string
	analyzeConfigFile string
	analyzeNoOCR      bool
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to resume file (pdf, docx, txt) (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to job description text file")
	analyzeCmd.Flags().StringVar(&analyzeJobText, "job-text", "", "Job description as an inline string")
	analyzeCmd.Flags().StringVarP(&analyzePlatform, "platform", "p", "", "ATS platform identifier (default: taleo)")
	analyzeCmd.Flags().StringVar(&analyzeRulesFile, "rules", "", "Path to ATS platform rules JSON file")
	analyzeCmd.Flags().StringVarP(&analyzeOutFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfigFile, "config", "", "Path to JSON config file")
	analyzeCmd.Flags().BoolVar(&analyzeNoOCR, "no-ocr", false, "Disable OCR fallback for image-based PDFs")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")
	_ = analyzeCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(config.Config{
		Job:      analyzeJobFile,
		Rules:    analyzeRulesFile,
		Platform: analyzePlatform,
		NoOCR:    analyzeNoOCR,
		Verbose:  analyzeVerbose,
	}, analyzeConfigFile)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	jobDescription, err := loadJobDescription(analyzeJobText, cfg.Job)
	if err != nil {
		return err
	}

	ctx := context.Background()
	a, err := analyzer.New(ctx, cfg, log)
	if err != nil {
		return err
	}

	result, failure := a.Analyze(ctx, analyzeResumeFile, jobDescription, cfg.Platform)
	if failure != nil {
		// Per-document failures are part of the output contract, not CLI errors.
		return writeJSON(failure, analyzeOutFile)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintAnalysis(result)
		printer.PrintSuggestions(result.ATS)
	}
	return writeJSON(result.Serializable(), analyzeOutFile)
}

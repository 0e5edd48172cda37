package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/k5602/CV-Analayzer/internal/analyzer"
	"github.com/k5602/CV-Analayzer/internal/config"
	"github.com/k5602/CV-Analayzer/internal/extraction"
	"github.com/k5602/CV-Analayzer/internal/observability"
	"github.com/k5602/CV-Analayzer/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze multiple resumes with a bounded worker pool",
	Long: "Analyze a directory of resumes, or an explicit file list, in parallel. " +
		"Each document yields either an analysis or a structured failure; one bad " +
		"document never aborts the batch.",
	RunE: runBatch,
}

var (
	batchDir        string
	batchFiles      []string
	batchJobFile    string
	batchJobText    string
	batchPlatform   string
	batchRulesFile  string
	batchOutFile    string
	batchConfigFile string
	batchWorkers    int
	batchNoOCR      bool
	batchVerbose    bool
)

func init() {
	batchCmd.Flags().StringVarP(&batchDir, "dir", "d", "", "Directory of resume files to analyze")
	batchCmd.Flags().StringSliceVarP(&batchFiles, "resume", "r", nil, "Resume file paths (repeatable)")
	batchCmd.Flags().StringVarP(&batchJobFile, "job", "j", "", "Path to job description text file")
	batchCmd.Flags().StringVar(&batchJobText, "job-text", "", "Job description as an inline string")
	batchCmd.Flags().StringVarP(&batchPlatform, "platform", "p", "", "ATS platform identifier (default: taleo)")
	batchCmd.Flags().StringVar(&batchRulesFile, "rules", "", "Path to ATS platform rules JSON file")
	batchCmd.Flags().StringVarP(&batchOutFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	batchCmd.Flags().StringVar(&batchConfigFile, "config", "", "Path to JSON config file")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", config.DefaultWorkers, "Worker pool size (capped)")
	batchCmd.Flags().BoolVar(&batchNoOCR, "no-ocr", false, "Disable OCR fallback for image-based PDFs")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, _ []string) error {
	if batchDir == "" && len(batchFiles) == 0 {
		return fmt.Errorf("must provide either --dir or --resume")
	}
	if batchDir != "" && len(batchFiles) > 0 {
		return fmt.Errorf("--dir and --resume are mutually exclusive")
	}

	cfg, err := resolveConfig(config.Config{
		Job:      batchJobFile,
		Rules:    batchRulesFile,
		Platform: batchPlatform,
		Workers:  batchWorkers,
		NoOCR:    batchNoOCR,
		Verbose:  batchVerbose,
	}, batchConfigFile)
	if err != nil {
		return err
	}

	paths := batchFiles
	if batchDir != "" {
		paths, err = collectResumeFiles(batchDir)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return fmt.Errorf("no supported resume files found in %s", batchDir)
		}
	}

	log, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	jobDescription, err := loadJobDescription(batchJobText, cfg.Job)
	if err != nil {
		return err
	}

	ctx := context.Background()
	a, err := analyzer.New(ctx, cfg, log)
	if err != nil {
		return err
	}

	items := a.AnalyzeBatch(ctx, paths, jobDescription, cfg.Platform)
	for i := range items {
		if items[i].Result != nil {
			items[i].Result = items[i].Result.Serializable()
		}
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintBatchSummary(items)
	}
	return writeJSON(batchReport(items), batchOutFile)
}

// collectResumeFiles lists supported resume files directly under dir, sorted
// for deterministic batch order.
func collectResumeFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if extraction.IsSupported(filepath.Ext(entry.Name())) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// batchSummary wraps batch output with counts for quick inspection.
type batchSummary struct {
	Total     int               `json:"total"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Items     []types.BatchItem `json:"items"`
}

func batchReport(items []types.BatchItem) batchSummary {
	summary := batchSummary{Total: len(items), Items: items}
	for _, item := range items {
		if item.Failure != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

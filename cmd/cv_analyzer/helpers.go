package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/k5602/CV-Analayzer/internal/config"
)

// newLogger builds the CLI logger. Verbose mode uses the human-readable
// development encoder at debug level; otherwise logs go to stderr at warn
// level so JSON output on stdout stays clean.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// resolveConfig merges flag values over an optional config file over
// environment defaults, then validates the result.
func resolveConfig(flagCfg config.Config, configPath string) (config.Config, error) {
	merged := flagCfg
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		merged = merged.MergeWithDefaults(*fileCfg)
	}
	merged = merged.MergeWithDefaults(config.FromEnv())

	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// loadJobDescription resolves the job description from an inline flag or a
// file path. Whitespace-only content counts as no job description.
func loadJobDescription(jobText, jobFile string) (string, error) {
	if jobText != "" && jobFile != "" {
		return "", fmt.Errorf("--job and --job-text are mutually exclusive")
	}
	if jobText != "" {
		return jobText, nil
	}
	if jobFile == "" {
		return "", nil
	}
	data, err := os.ReadFile(jobFile)
	if err != nil {
		return "", fmt.Errorf("failed to read job description file: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", nil
	}
	return string(data), nil
}

// writeJSON marshals v with indentation to the given path, or stdout when
// the path is empty.
func writeJSON(v any, outPath string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if outPath == "" {
		_, err = fmt.Fprintln(os.Stdout, string(data))
		return err
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

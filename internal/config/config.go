// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultWorkers is the batch worker pool size when unconfigured.
const DefaultWorkers = 4

// MaxWorkers caps the batch worker pool. Each worker can hold OCR and
// similarity-backend resources, so the cap stays small.
const MaxWorkers = 4

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Job   string `json:"job,omitempty"`   // Path to job description text file
	Rules string `json:"rules,omitempty"` // Path to ATS platform rules JSON

	// Analysis
	Platform string `json:"platform,omitempty"` // ATS platform identifier
	Workers  int    `json:"workers,omitempty"`  // Batch worker pool size
	NoOCR    bool   `json:"no_ocr,omitempty"`   // Disable OCR fallback for image PDFs

	// Embedding backend (OpenAI-compatible endpoint)
	APIKey         string `json:"api_key,omitempty"`         // Embeddings API key
	EmbeddingURL   string `json:"embedding_url,omitempty"`   // Override endpoint base URL
	EmbeddingModel string `json:"embedding_model,omitempty"` // Embedding model name

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Environment variable names honored by FromEnv.
const (
	envAPIKey         = "CV_ANALYZER_API_KEY"
	envEmbeddingURL   = "CV_ANALYZER_EMBEDDING_URL"
	envEmbeddingModel = "CV_ANALYZER_EMBEDDING_MODEL"
	envRulesPath      = "CV_ANALYZER_RULES"
)

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables. Callers
// load .env files (via godotenv) before calling this.
func FromEnv() Config {
	return Config{
		APIKey:         os.Getenv(envAPIKey),
		EmbeddingURL:   os.Getenv(envEmbeddingURL),
		EmbeddingModel: os.Getenv(envEmbeddingModel),
		Rules:          os.Getenv(envRulesPath),
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}

	if c.Rules != "" {
		if _, err := os.Stat(c.Rules); os.IsNotExist(err) {
			return fmt.Errorf("config error: rules file not found: %s", c.Rules)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Rules == "" {
		result.Rules = defaults.Rules
	}
	if result.Platform == "" {
		result.Platform = defaults.Platform
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.EmbeddingURL == "" {
		result.EmbeddingURL = defaults.EmbeddingURL
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if !result.NoOCR {
		result.NoOCR = defaults.NoOCR
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}

// EffectiveWorkers clamps the configured worker count to [1, MaxWorkers],
// substituting the default when unset.
func (c *Config) EffectiveWorkers() int {
	w := c.Workers
	if w <= 0 {
		w = DefaultWorkers
	}
	if w > MaxWorkers {
		w = MaxWorkers
	}
	return w
}

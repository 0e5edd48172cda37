// Package main provides the entry point for the CV analyzer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_analyzer",
	Short: "Resume analysis and ATS compatibility scoring",
	Long: "cv_analyzer extracts structured data from resumes (PDF, DOCX, TXT), " +
		"scores their compatibility with Applicant Tracking Systems, and measures " +
		"how well they match a target job description.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

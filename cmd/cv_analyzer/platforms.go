package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/k5602/CV-Analayzer/internal/ats"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List loaded ATS platforms",
	Long:  "List the ATS platform rule sets available for scoring, from the built-in defaults or an external rules file.",
	RunE:  runPlatforms,
}

var platformsRulesFile string

func init() {
	platformsCmd.Flags().StringVar(&platformsRulesFile, "rules", "", "Path to ATS platform rules JSON file")

	rootCmd.AddCommand(platformsCmd)
}

func runPlatforms(_ *cobra.Command, _ []string) error {
	rules := ats.DefaultRules()
	if platformsRulesFile != "" {
		loaded, err := ats.LoadRules(platformsRulesFile, nil)
		if err != nil {
			return err
		}
		rules = loaded
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
	for _, id := range rules.Platforms() {
		rule := rules.Resolve(id)
		fmt.Fprintf(w, "%s\t%s\t%s\n", id, rule.Name, rule.Description)
	}
	return w.Flush()
}

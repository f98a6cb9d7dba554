package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/macsweep/macsweep/internal/config"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List cleanup targets",
	Long:  "Print the catalog of cleanup target locations a future cleanup engine would cover. Nothing is scanned or deleted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		category, _ := cmd.Flags().GetString("category")
		return runTargets(asJSON, category)
	},
}

func init() {
	targetsCmd.Flags().Bool("json", false, "Output the catalog as JSON")
	targetsCmd.Flags().String("category", "", "Only show targets in this category")
}

func runTargets(asJSON bool, category string) error {
	targets := config.DefaultTargets()
	if category != "" {
		var filtered []config.CleanTarget
		for _, t := range targets {
			if strings.EqualFold(t.Category, category) {
				filtered = append(filtered, t)
			}
		}
		if len(filtered) == 0 {
			return fmt.Errorf("no targets in category %q", category)
		}
		targets = filtered
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(targets)
	}

	order, grouped := config.TargetsByCategory(targets)
	for _, cat := range order {
		fmt.Printf("%s\n", strings.ToUpper(cat))
		for _, t := range grouped[cat] {
			fmt.Printf("  %-22s %-8s %s\n", t.Name, t.RiskLevel, t.Description)
			for _, p := range t.Paths {
				fmt.Printf("    %s\n", p)
			}
		}
		fmt.Println()
	}
	return nil
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/macsweep/macsweep/internal/config"
	"github.com/macsweep/macsweep/internal/dashboard"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Monitor system health",
	Long:  "Live dashboard with disk, memory, CPU, and host metrics.",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		refresh, _ := cmd.Flags().GetInt("refresh")
		return runStatus(asJSON, refresh)
	},
}

func init() {
	statusCmd.Flags().Int("refresh", 1, "Refresh interval in seconds")
	statusCmd.Flags().Bool("json", false, "Print one metrics snapshot as JSON and exit")
}

func runStatus(asJSON bool, refresh int) error {
	if asJSON {
		metrics, err := dashboard.CollectMetrics()
		if err != nil {
			return fmt.Errorf("collect metrics: %w", err)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(metrics)
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("the status dashboard needs a TTY; use --json for scripted output")
	}

	settings := config.DefaultSettings()
	if refresh > 0 {
		settings.StatusRefresh = time.Duration(refresh) * time.Second
	}

	model := dashboard.New(settings, config.DefaultTargets())
	model.Section = dashboard.SectionStatus

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run status dashboard: %w", err)
	}
	return nil
}

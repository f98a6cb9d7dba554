package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/macsweep/macsweep/internal/config"
	"github.com/macsweep/macsweep/internal/logging"
	"github.com/macsweep/macsweep/internal/onboarding"
	"github.com/macsweep/macsweep/internal/shell"
)

var (
	// Global flags
	debug bool

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "macsweep",
	Short: "Reclaim disk space on your Mac",
	Long: `MacSweep - Reclaim disk space on your Mac.

Terminal shell for a prospective disk-cleanup utility: onboarding,
a smart-scan dashboard, live system status, and the cleanup target
catalog. Scanning and cleanup engines are not implemented yet.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write detailed logs to the debug log file")

	// Register all subcommands
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// runShell launches the full-screen application: onboarding first, then the
// dashboard.
func runShell() error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("macsweep needs an interactive terminal; run it from a TTY")
	}

	log, err := logging.New(debug)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer func() { _ = log.Sync() }()

	settings := config.DefaultSettings()
	ctrl := onboarding.NewController(onboarding.NewGate(settings.LineTolerance), log)
	ctrl.Subscribe(func(t onboarding.Transition) {
		log.Info("stage changed",
			zap.Stringer("from", t.From),
			zap.Stringer("to", t.To))
	})

	model := shell.New(ctrl, settings, config.DefaultTargets(), log)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run shell: %w", err)
	}
	return nil
}

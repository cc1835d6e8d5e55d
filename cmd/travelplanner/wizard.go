package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mcallisters/AI-powered-travel-planner/cmd/travelplanner/internal"
	"github.com/mcallisters/AI-powered-travel-planner/internal/tui"
	"github.com/mcallisters/AI-powered-travel-planner/internal/wizard"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Launch the interactive planning wizard",
	Long: `Launch the three-step planning wizard: location, budget, and
preferences. The generated plan is shown in the terminal and can be
saved as a document.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launchWizard(cmd)
	},
}

// launchWizard builds the pipeline from configuration and runs the TUI.
func launchWizard(cmd *cobra.Command) error {
	cfg, err := loadPlannerConfig()
	if err != nil {
		return err
	}

	logger := internal.SetupLogging(cfg.Logging.Level, cfg.Logging.Format,
		globalFlags.IsVerbose(), globalFlags.Quiet)

	p, err := buildPlanner(cfg, logger)
	if err != nil {
		return err
	}

	app := tui.NewApp(cmd.Context(), tui.AppConfig{
		Controller: wizard.NewController(p, logger),
		OutputDir:  cfg.Document.OutputDir,
	})

	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := program.Run(); err != nil {
		return internal.WrapError(internal.ExitError, "wizard terminated", err)
	}
	return nil
}

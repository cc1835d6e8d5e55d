package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mcallisters/AI-powered-travel-planner/cmd/travelplanner/internal"
)

// Mode flags for TUI vs headless operation
var (
	printMode bool // Force headless/print mode
	tuiMode   bool // Force TUI mode
)

var rootCmd = &cobra.Command{
	Use:   "travelplanner",
	Short: "AI-powered travel planner",
	Long: `Travelplanner turns a free-form trip description into a complete
itinerary: it extracts the trip details, searches for flights, hotels,
car rentals and attractions, and writes a day-by-day plan.

When run without a subcommand in an interactive terminal, it launches
the planning wizard. Use 'travelplanner plan' for headless operation.`,
	PersistentPreRunE: setupCommand,
	SilenceUsage:      true,
	SilenceErrors:     true,
	RunE:              runRootCmd,
}

// Execute runs the root command with signal handling
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

// setupCommand validates global flags and installs logging before any
// command runs.
func setupCommand(cmd *cobra.Command, args []string) error {
	flags, err := ParseGlobalFlags(cmd)
	if err != nil {
		return err
	}

	internal.SetVerbose(flags.IsVerbose())
	internal.SetupLogging("info", "text", flags.IsVerbose(), flags.Quiet)
	return nil
}

func init() {
	RegisterGlobalFlags(rootCmd)

	rootCmd.PersistentFlags().BoolVar(&printMode, "print", false, "Force headless/print mode (no TUI)")
	rootCmd.PersistentFlags().BoolVar(&tuiMode, "tui", false, "Force TUI mode even if not interactive")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// runRootCmd handles the root command when run without subcommands.
// By default, it launches the wizard if in an interactive terminal.
func runRootCmd(cmd *cobra.Command, args []string) error {
	if printMode {
		return cmd.Help()
	}

	if tuiMode || isTerminalInteractive() {
		return launchWizard(cmd)
	}

	return cmd.Help()
}

// isTerminalInteractive checks if stdin is a terminal.
func isTerminalInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("travelplanner v0.1.0")
	},
}

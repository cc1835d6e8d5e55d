package main

import (
	"github.com/spf13/cobra"

	"github.com/mcallisters/AI-powered-travel-planner/cmd/travelplanner/internal"
)

// GlobalFlags holds global flags available to all commands
type GlobalFlags struct {
	Verbose    bool
	Quiet      bool
	Output     string
	ConfigFile string
	HomeDir    string
}

var globalFlags = &GlobalFlags{}

// RegisterGlobalFlags registers persistent flags on the root command
func RegisterGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVarP(&globalFlags.Quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVarP(&globalFlags.Output, "output", "o", "text", "Output format (text|json)")
	cmd.PersistentFlags().StringVar(&globalFlags.ConfigFile, "config", "", "Path to config file (default: $TRAVELPLANNER_HOME/config.yaml)")
	cmd.PersistentFlags().StringVar(&globalFlags.HomeDir, "home", "", "Application home directory (default: ~/.travelplanner)")
}

// ParseGlobalFlags validates global flags from the command
func ParseGlobalFlags(cmd *cobra.Command) (*GlobalFlags, error) {
	format := internal.OutputFormat(globalFlags.Output)
	if format != internal.FormatText && format != internal.FormatJSON {
		return nil, internal.NewCLIError(internal.ExitInputError, "--output must be text or json")
	}

	if globalFlags.Verbose && globalFlags.Quiet {
		return nil, internal.NewCLIError(internal.ExitInputError, "--verbose and --quiet cannot be used together")
	}

	return globalFlags, nil
}

// GetOutputFormat returns the parsed OutputFormat enum
func (f *GlobalFlags) GetOutputFormat() internal.OutputFormat {
	if f.Output == string(internal.FormatJSON) {
		return internal.FormatJSON
	}
	return internal.FormatText
}

// IsVerbose returns true if verbose mode is enabled
func (f *GlobalFlags) IsVerbose() bool {
	return f.Verbose && !f.Quiet
}

package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mcallisters/AI-powered-travel-planner/cmd/travelplanner/internal"
	"github.com/mcallisters/AI-powered-travel-planner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage travelplanner configuration",
	Long: `View the travelplanner configuration.

Configuration is stored in YAML format at ~/.travelplanner/config.yaml
by default. API keys may be given inline or as ${ENV_VAR} references.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective configuration",
	Long: `Display the complete configuration after defaults and environment
variable interpolation are applied.

By default, output is in YAML format. Use --output json for JSON output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadPlannerConfig()
		if err != nil {
			return err
		}

		if globalFlags.GetOutputFormat() == internal.FormatJSON {
			return internal.NewJSONFormatter(cmd.OutOrStdout()).PrintJSON(cfg)
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return internal.WrapError(internal.ExitError, "failed to marshal config", err)
		}
		cmd.Print(string(data))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Run: func(cmd *cobra.Command, args []string) {
		homeDir := globalFlags.HomeDir
		if homeDir == "" {
			homeDir = os.Getenv("TRAVELPLANNER_HOME")
		}
		if homeDir == "" {
			homeDir = config.DefaultHomeDir()
		}
		cmd.Println(config.DefaultConfigPath(homeDir))
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcallisters/AI-powered-travel-planner/cmd/travelplanner/internal"
	"github.com/mcallisters/AI-powered-travel-planner/internal/planner"
	"github.com/mcallisters/AI-powered-travel-planner/internal/trip"
	"github.com/mcallisters/AI-powered-travel-planner/internal/util"
)

var (
	planAudioFile string
	planFormat    string
	planOutDir    string
)

var planCmd = &cobra.Command{
	Use:   "plan [description]",
	Short: "Generate a trip plan without the wizard",
	Long: `Generate a complete trip plan from a free-form description:

  travelplanner plan "5 days in Lisbon in June for 2, mid-range budget"

With --audio, the description is transcribed from an audio file instead:

  travelplanner plan --audio trip.mp3

The plan is printed to stdout. Use --out to also write the rendered
itinerary document (PDF by default, see --format) to a directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlanCmd,
}

func init() {
	planCmd.Flags().StringVar(&planAudioFile, "audio", "", "Audio file to transcribe into a trip description")
	planCmd.Flags().StringVar(&planFormat, "format", "", "Document format (pdf|md), overrides the configured default")
	planCmd.Flags().StringVar(&planOutDir, "out", "", "Directory to write the itinerary document to")
}

func runPlanCmd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && planAudioFile == "" {
		return internal.NewCLIError(internal.ExitInputError,
			"provide a trip description or --audio")
	}
	if len(args) > 0 && planAudioFile != "" {
		return internal.NewCLIError(internal.ExitInputError,
			"a trip description and --audio are mutually exclusive")
	}

	cfg, err := loadPlannerConfig()
	if err != nil {
		return err
	}
	if planFormat != "" {
		if planFormat != "pdf" && planFormat != "md" {
			return internal.NewCLIError(internal.ExitInputError, "--format must be pdf or md")
		}
		cfg.Document.Format = planFormat
	}

	logger := internal.SetupLogging(cfg.Logging.Level, cfg.Logging.Format,
		globalFlags.IsVerbose(), globalFlags.Quiet)

	p, err := buildPlanner(cfg, logger)
	if err != nil {
		return err
	}

	var result *planner.Result
	if planAudioFile != "" {
		result, err = p.PlanFromAudio(cmd.Context(), planAudioFile)
	} else {
		result, err = p.PlanFromText(cmd.Context(), args[0])
	}
	if err != nil {
		return err
	}

	savedTo := ""
	if planOutDir != "" {
		savedTo, err = writeDocument(result, planOutDir)
		if err != nil {
			return internal.WrapError(internal.ExitError, "failed to write itinerary document", err)
		}
	}

	return printPlanResult(cmd, result, savedTo)
}

// writeDocument writes the rendered itinerary into dir and returns the path.
func writeDocument(result *planner.Result, dir string) (string, error) {
	dir, err := util.ExpandPath(dir)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, result.Document.Filename())
	if err := os.WriteFile(path, result.Document.Data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// planOutput is the JSON shape of a headless planning run.
type planOutput struct {
	RequestID  string          `json:"request_id"`
	Transcript string          `json:"transcript,omitempty"`
	Params     trip.Parameters `json:"params"`
	Failed     []string        `json:"failed_categories,omitempty"`
	Plan       string          `json:"plan"`
	SavedTo    string          `json:"saved_to,omitempty"`
}

func printPlanResult(cmd *cobra.Command, result *planner.Result, savedTo string) error {
	formatter := internal.NewFormatter(globalFlags.GetOutputFormat(), cmd.OutOrStdout())

	if globalFlags.GetOutputFormat() == internal.FormatJSON {
		failed := make([]string, 0, len(result.Search.Failed))
		for _, c := range result.Search.Failed {
			failed = append(failed, string(c))
		}
		return formatter.PrintJSON(planOutput{
			RequestID:  result.RequestID,
			Transcript: result.Transcript,
			Params:     result.Params,
			Failed:     failed,
			Plan:       string(result.Plan),
			SavedTo:    savedTo,
		})
	}

	rows := [][]string{
		{"Destination", result.Params.Destination},
		{"Departure", result.Params.DepartureCity},
		{"Travelers", strconv.Itoa(result.Params.Travelers)},
	}
	if result.Params.StartDate != nil && result.Params.EndDate != nil {
		rows = append(rows, []string{"Dates",
			result.Params.StartDate.Format(trip.DateFormat) + " to " +
				result.Params.EndDate.Format(trip.DateFormat)})
	}
	if result.Params.Budget != "" {
		rows = append(rows, []string{"Budget", result.Params.Budget})
	}
	if err := formatter.PrintTable([]string{"Field", "Value"}, rows); err != nil {
		return err
	}

	cmd.Println()
	cmd.Println(strings.TrimSpace(string(result.Plan)))

	if len(result.Search.Failed) > 0 {
		cmd.PrintErrln()
		for _, c := range result.Search.Failed {
			cmd.PrintErrf("warning: %s search failed, section may be incomplete\n", c)
		}
	}
	if savedTo != "" {
		cmd.Println()
		return formatter.PrintSuccess("Itinerary written to " + savedTo)
	}
	return nil
}

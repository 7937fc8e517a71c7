package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"eld_logbook/internal/engine"
	"eld_logbook/internal/logsheet"
	"eld_logbook/internal/models"
)

var (
	renderInput string
	renderDate  string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render daily log sheets from a duty-entry JSON file",
	Long: `Reads a trip's duty-status timeline from a JSON file (either a bare
array of entries or an object with "trip" and "log_entries") and prints
the text log sheet for every day of the trip, or a single day with --date.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderInput, "input", "", "Duty-entry JSON file (required)")
	renderCmd.Flags().StringVar(&renderDate, "date", "", "Render only this day (YYYY-MM-DD)")
	_ = renderCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(renderInput)
	if err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}

	entries, trip, err := decodeTimeline(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", renderInput, err)
	}

	logs, err := engine.BuildDailyLogs(entries, trip)
	if err != nil {
		return err
	}
	if len(logs) == 0 {
		fmt.Println("No logs available")
		return nil
	}

	for i, lg := range logs {
		if renderDate != "" && lg.Date != renderDate {
			continue
		}
		if i > 0 && renderDate == "" {
			fmt.Println()
		}
		fmt.Printf("Day %d of %d\n\n", i+1, len(logs))
		fmt.Print(logsheet.RenderText(lg))
	}
	return nil
}

// decodeTimeline accepts both input shapes: a bare entry array, or the
// same object the HTTP endpoint takes.
func decodeTimeline(data []byte) ([]models.DutyEntry, models.TripInfo, error) {
	var entries []models.DutyEntry
	if err := json.Unmarshal(data, &entries); err == nil {
		return entries, models.TripInfo{}, nil
	}

	var wrapped struct {
		Trip       models.TripInfo    `json:"trip"`
		LogEntries []models.DutyEntry `json:"log_entries"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, models.TripInfo{}, err
	}
	return wrapped.LogEntries, wrapped.Trip, nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "eldlog",
	Short: "Driver's daily log service and renderer",
	Long: `eldlog serves and renders FMCSA-style driver's daily log sheets.
It takes a trip's duty-status timeline, splits it into per-day logs with
hour totals and rolling recap figures, and renders them for the screen
grid, the exported sheet, and the trip map.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/kalij01/ecobank-report-codes/internal/report"
	"github.com/kalij01/ecobank-report-codes/internal/tui"
)

var plainOutput bool

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the survey charts one after another",
	Long: `Show each survey chart in its own terminal window. The next chart opens
once the current one is closed with enter, space, q or esc. ctrl+c stops the
report.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&plainOutput, "plain", false, "Print charts to stdout instead of opening chart windows")
}

func runReport(cmd *cobra.Command, args []string) error {
	survey, err := loadSurvey()
	if err != nil {
		return err
	}

	var viewer report.Viewer = tui.NewViewer()
	if plainOutput {
		viewer = tui.NewPrinter(cmd.OutOrStdout(), 0, 0)
	}

	if err := report.Run(survey, viewer); err != nil {
		if errors.Is(err, tui.ErrAborted) {
			log.Printf("Report stopped before the last chart")
			return nil
		}
		return fmt.Errorf("report failed: %w", err)
	}

	log.Printf("Report complete")
	return nil
}

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/kalij01/ecobank-report-codes/internal/analysis"
	"github.com/kalij01/ecobank-report-codes/internal/report"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the survey tallies as tables",
	Long:  "Print the total response count, each frequency table and both cross-tabulations behind the report charts",
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	survey, err := loadSurvey()
	if err != nil {
		return err
	}

	a, err := report.Analyze(survey)
	if err != nil {
		return fmt.Errorf("summary failed: %w", err)
	}

	out := cmd.OutOrStdout()
	color.New(color.FgCyan, color.Bold).Fprintf(out, "\n=== %s ===\n", survey.Source)
	fmt.Fprintf(out, "Total responses: %d\n", a.TotalResponses)

	printCounts(out, "Do you have a bank account?", "Response", a.HasAccount)
	printCounts(out, "Willingness to Open an Account with Ecobank", "Response", a.WantsEcobank)
	printCounts(out, "Year Distribution", "Year", a.Year)
	printCounts(out, "Programme of Study", "Programme", a.Programme)
	if !a.Cards.Empty() {
		printCounts(out, "Preferred Card Types", "Card", a.Cards)
	}
	printCrossTab(out, "Have Bank Account vs Want to Open Ecobank", "Have Bank Account", a.AccountVsWilling)
	printCrossTab(out, "Year vs Willingness to Open Ecobank", "Year", a.YearVsWilling)

	return nil
}

func printCounts(w io.Writer, title, label string, counts analysis.Counts) {
	color.New(color.FgYellow).Fprintf(w, "\n%s\n", title)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{label, "Count", "Share"})

	total := counts.Total()
	for _, b := range counts {
		table.Append([]string{b.Label, strconv.Itoa(b.Count), share(b.Count, total)})
	}
	table.SetFooter([]string{"Total", strconv.Itoa(total), ""})
	table.Render()
}

func printCrossTab(w io.Writer, title, rowLabel string, ct *analysis.CrossTab) {
	if ct.Empty() {
		return
	}
	color.New(color.FgYellow).Fprintf(w, "\n%s\n", title)

	table := tablewriter.NewWriter(w)
	header := append([]string{rowLabel}, ct.Cols...)
	table.SetHeader(append(header, "Total"))

	for i, row := range ct.Rows {
		line := []string{row}
		rowTotal := 0
		for j := range ct.Cols {
			line = append(line, strconv.Itoa(ct.Cell(i, j)))
			rowTotal += ct.Cell(i, j)
		}
		table.Append(append(line, strconv.Itoa(rowTotal)))
	}
	table.Render()
}

func share(n, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(n)/float64(total)*100)
}

package cmd

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/kalij01/ecobank-report-codes/internal/columns"
	"github.com/kalij01/ecobank-report-codes/internal/models"
)

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Show which form question each survey field resolved to",
	RunE:  runColumns,
}

func runColumns(cmd *cobra.Command, args []string) error {
	survey, err := loadSurvey()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	color.New(color.FgCyan, color.Bold).Fprintf(out, "\n%d columns in %s\n", len(survey.Headers), survey.Source)

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Field", "Keywords", "Column", "Header"})
	table.SetAutoWrapText(false)

	for _, f := range models.Fields {
		keywords := strings.Join(columns.Keywords(f), " + ")
		c, ok := survey.Resolution.Lookup(f)
		if !ok {
			table.Append([]string{f.String(), keywords, "-", "not found"})
			continue
		}
		table.Append([]string{f.String(), keywords, strconv.Itoa(c.Index + 1), c.Header})
	}
	table.Render()

	return nil
}

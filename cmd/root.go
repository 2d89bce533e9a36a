package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kalij01/ecobank-report-codes/internal/columns"
	"github.com/kalij01/ecobank-report-codes/internal/csv"
	"github.com/kalij01/ecobank-report-codes/internal/models"
)

const defaultSurveyFile = "Form Responses 1.csv"

var surveyFile string

var rootCmd = &cobra.Command{
	Use:   "ecobank-report",
	Short: "Charts for the Ecobank student survey responses",
	Long: `Ecobank Report reads a Google Form responses export and walks through
the survey charts one window at a time: bank account ownership, willingness
to open an Ecobank account, year and programme distribution, preferred card
types and the two cross-tabulations.

Running without a command is the same as running "report".`,
	SilenceUsage: true,
	RunE:         runReport,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&surveyFile, "file", "f", defaultSurveyFile, "Form responses export (.csv, .tsv or .xlsx)")
	rootCmd.Flags().BoolVar(&plainOutput, "plain", false, "Print charts to stdout instead of opening chart windows")
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(columnsCmd)
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading it: %v", err)
	}

	if os.Getenv("SURVEY_FILE") != "" && !rootCmd.PersistentFlags().Changed("file") {
		surveyFile = os.Getenv("SURVEY_FILE")
	}
}

func loadSurvey() (*models.Survey, error) {
	parser := csv.NewParser(surveyFile)
	survey, err := parser.ParseSurvey()
	if err != nil {
		return nil, fmt.Errorf("failed to parse survey: %w", err)
	}

	log.Printf("Parsed %d responses from %s", survey.Len(), surveyFile)
	for _, f := range models.Fields {
		if c, ok := survey.Resolution.Lookup(f); ok {
			log.Printf("  %s: %q", f, c.Header)
		} else {
			log.Printf("  %s: no header matches %v", f, columns.Keywords(f))
		}
	}

	return survey, nil
}

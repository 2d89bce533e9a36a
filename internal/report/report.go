// Package report runs the fixed survey analysis: it tallies the resolved
// fields, builds the chart sequence and shows each chart in turn.
package report

import (
	"fmt"
	"log"

	"github.com/kalij01/ecobank-report-codes/internal/analysis"
	"github.com/kalij01/ecobank-report-codes/internal/chart"
	"github.com/kalij01/ecobank-report-codes/internal/models"
)

const (
	ProgrammeTop      = 10
	ProgrammeRotation = 45
	CardRotation      = 15
)

// Viewer displays one chart and returns once it has been dismissed.
type Viewer interface {
	Show(index, total int, c chart.Chart) error
}

// Analysis holds every tally the report draws.
type Analysis struct {
	TotalResponses   int
	HasAccount       analysis.Counts
	WantsEcobank     analysis.Counts
	Year             analysis.Counts
	Programme        analysis.Counts
	Cards            analysis.Counts
	AccountVsWilling *analysis.CrossTab
	YearVsWilling    *analysis.CrossTab
}

// Analyze computes the report tallies. The has-account, wants-Ecobank, year
// and programme columns are required; the card column is optional.
func Analyze(s *models.Survey) (*Analysis, error) {
	hasAccount, err := s.Values(models.FieldHasAccount)
	if err != nil {
		return nil, fmt.Errorf("failed to read bank account answers: %w", err)
	}
	wantsEcobank, err := s.Values(models.FieldWantsEcobank)
	if err != nil {
		return nil, fmt.Errorf("failed to read Ecobank answers: %w", err)
	}
	year, err := s.Values(models.FieldYear)
	if err != nil {
		return nil, fmt.Errorf("failed to read year answers: %w", err)
	}
	programme, err := s.Values(models.FieldProgramme)
	if err != nil {
		return nil, fmt.Errorf("failed to read programme answers: %w", err)
	}

	a := &Analysis{
		TotalResponses:   s.Len(),
		HasAccount:       analysis.Frequency(hasAccount),
		WantsEcobank:     analysis.Frequency(wantsEcobank),
		Year:             analysis.Frequency(year),
		Programme:        analysis.Frequency(programme),
		AccountVsWilling: analysis.NewCrossTab(hasAccount, wantsEcobank),
		YearVsWilling:    analysis.NewCrossTab(year, wantsEcobank),
	}

	if s.Has(models.FieldCardPreference) {
		cards, err := s.Values(models.FieldCardPreference)
		if err != nil {
			return nil, fmt.Errorf("failed to read card answers: %w", err)
		}
		a.Cards = analysis.MultiSelect(cards)
	}

	return a, nil
}

// Charts lays out the report in display order. Charts with nothing to show
// are left out.
func Charts(a *Analysis) []chart.Chart {
	var charts []chart.Chart

	if a.HasAccount.Total() > 0 {
		charts = append(charts, chart.Pie(a.HasAccount, "Do you have a bank account?"))
	}

	charts = append(charts,
		chart.Bar(a.WantsEcobank, "Willingness to Open an Account with Ecobank", "Response", "Count"),
		chart.Bar(a.Year, "Year Distribution", "Year", "Count"),
		chart.Bar(a.Programme, "Programme of Study (Top 10)", "Programme", "Count",
			chart.WithTop(ProgrammeTop), chart.WithRotation(ProgrammeRotation)),
	)

	if !a.Cards.Empty() {
		charts = append(charts, chart.Bar(a.Cards, "Preferred Card Types", "Card", "Selections",
			chart.WithRotation(CardRotation)))
	}

	if !a.AccountVsWilling.Empty() {
		charts = append(charts, chart.GroupedBar(a.AccountVsWilling,
			"Have Bank Account vs Want to Open Ecobank", "Have Bank Account", "Count"))
	}

	if !a.YearVsWilling.Empty() {
		charts = append(charts, chart.GroupedBar(a.YearVsWilling,
			"Year vs Willingness to Open Ecobank", "Year", "Count"))
	}

	return charts
}

// Run analyzes s and shows every chart through v, one at a time. It stops at
// the first display error.
func Run(s *models.Survey, v Viewer) error {
	a, err := Analyze(s)
	if err != nil {
		return err
	}

	charts := Charts(a)
	for i, c := range charts {
		log.Printf("Showing chart %d/%d: %s", i+1, len(charts), c.Title)
		if err := v.Show(i+1, len(charts), c); err != nil {
			return err
		}
	}
	return nil
}

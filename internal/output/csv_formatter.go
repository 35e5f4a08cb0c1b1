package output

import (
	"bytes"
	"encoding/csv"

	"github.com/businessthis/finplan/internal/domain"
)

// CSVFormatter exports the tabular results: what-if scenarios, tax bracket
// breakdowns, growth schedules and investment recommendations.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *Report) ([]byte, error) {
	var rows [][]string
	switch r := report.Result.(type) {
	case *domain.ScenarioResult:
		rows = scenarioRows(r)
	case *domain.TaxResult:
		rows = taxRows(r)
	case []domain.GrowthYear:
		rows = growthRows(r)
	case *domain.InvestmentPlan:
		rows = investmentRows(r)
	default:
		return nil, unsupported(c.Name(), report.Result)
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func scenarioRows(r *domain.ScenarioResult) [][]string {
	rows := [][]string{{"Scenario", "Income", "Expenses", "MonthlySavings", "AnnualSavings", "EmergencyFundTarget", "MonthsToEmergencyFund", "EmergencyFundReachable", "SavingsRate"}}
	for _, s := range r.Scenarios {
		rows = append(rows, []string{
			s.Name,
			s.Income.StringFixed(2),
			s.Expenses.StringFixed(2),
			s.MonthlySavings.StringFixed(2),
			s.AnnualSavings.StringFixed(2),
			s.EmergencyFundTarget.StringFixed(2),
			s.MonthsToEmergencyFund.StringFixed(2),
			boolToString(s.EmergencyFundReachable),
			s.SavingsRate.StringFixed(2),
		})
	}
	return rows
}

func taxRows(r *domain.TaxResult) [][]string {
	rows := [][]string{{"Bracket", "Min", "Max", "Rate", "TaxedIncome", "Tax"}}
	for _, b := range r.BracketBreakdown {
		rows = append(rows, []string{
			BracketLabel(b.Min, b.Max),
			b.Min.StringFixed(2),
			b.Max.StringFixed(2),
			b.Rate.String(),
			b.Income.StringFixed(2),
			b.Tax.StringFixed(2),
		})
	}
	return rows
}

func growthRows(years []domain.GrowthYear) [][]string {
	rows := [][]string{{"Year", "Balance", "Contributions", "Interest"}}
	for _, y := range years {
		rows = append(rows, []string{
			intToString(y.Year),
			y.Balance.StringFixed(2),
			y.Contributions.StringFixed(2),
			y.Interest.StringFixed(2),
		})
	}
	return rows
}

func investmentRows(p *domain.InvestmentPlan) [][]string {
	rows := [][]string{{"Type", "Amount", "Priority", "Reason"}}
	for _, rec := range p.Recommendations {
		rows = append(rows, []string{rec.Type, rec.Amount.StringFixed(2), rec.Priority, rec.Reason})
	}
	return rows
}

package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/businessthis/finplan/internal/domain"
)

// ConsoleFormatter renders a human-readable summary of any engine result.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	if report.Title != "" {
		fmt.Fprintln(&buf, strings.ToUpper(report.Title))
		fmt.Fprintln(&buf, strings.Repeat("=", 40))
	}

	switch r := report.Result.(type) {
	case *domain.SafeSpendResult:
		writeSafeSpend(&buf, r)
	case *domain.HealthScoreResult:
		writeHealthScore(&buf, r)
	case *domain.RetirementResult:
		writeRetirement(&buf, r)
	case *domain.GrowthResult:
		writeGrowth(&buf, r)
	case []domain.GrowthYear:
		writeGrowthSchedule(&buf, r)
	case *domain.TaxResult:
		writeTax(&buf, r)
	case *domain.AllocationResult:
		writeAllocation(&buf, r)
	case *domain.ScenarioResult:
		writeScenarios(&buf, r)
	case *domain.InvestmentPlan:
		writeInvestmentPlan(&buf, r)
	default:
		return nil, unsupported(c.Name(), report.Result)
	}

	if len(report.Assumptions) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Assumptions:")
		for _, a := range report.Assumptions {
			fmt.Fprintf(&buf, "  - %s\n", a)
		}
	}
	return buf.Bytes(), nil
}

func writeSafeSpend(buf *bytes.Buffer, r *domain.SafeSpendResult) {
	fmt.Fprintf(buf, "Daily:   %s\n", FormatCurrency(r.Daily))
	fmt.Fprintf(buf, "Weekly:  %s\n", FormatCurrency(r.Weekly))
	fmt.Fprintf(buf, "Monthly: %s\n", FormatCurrency(r.Monthly))
	fmt.Fprintf(buf, "Savings set aside: %s/month\n", FormatCurrency(r.MonthlySavingsContribution))
	fmt.Fprintf(buf, "Disposable before floor: %s/month\n", FormatCurrency(r.MonthlyDisposable))

	if len(r.Goals) == 0 {
		return
	}
	buf.WriteString("\nGoals:\n")
	for _, g := range r.Goals {
		status := "no monthly contribution"
		switch {
		case g.Achieved:
			status = "achieved"
		case g.Projectable:
			status = fmt.Sprintf("%d months to go", g.MonthsToGoal)
		}
		fmt.Fprintf(buf, "  %s: %s of %s (%s), %s\n", g.Name, FormatCurrency(g.CurrentAmount),
			FormatCurrency(g.TargetAmount), FormatPercentage(g.ProgressPercentage), status)
	}
}

func writeHealthScore(buf *bytes.Buffer, r *domain.HealthScoreResult) {
	fmt.Fprintf(buf, "Overall: %d/100 (%s)\n", r.OverallScore, r.HealthLevel)
	fmt.Fprintf(buf, "  Savings rate:   %2d/25  (%s)\n", r.Subscores.SavingsRate, FormatPercentage(r.Metrics.SavingsRate))
	fmt.Fprintf(buf, "  Debt ratio:     %2d/25  (%sx monthly income)\n", r.Subscores.DebtRatio, r.Metrics.DebtRatio.StringFixed(2))
	fmt.Fprintf(buf, "  Emergency fund: %2d/25  (%s of target)\n", r.Subscores.EmergencyFund, FormatPercentage(r.Metrics.EmergencyFundProgress))
	fmt.Fprintf(buf, "  Investment:     %2d/25\n", r.Subscores.Investment)
	reserve := "not covered"
	if r.Metrics.EmergencyFundAdequate {
		reserve = "covered"
	}
	fmt.Fprintf(buf, "Six-month reserve: %s (%s)\n", FormatCurrency(r.Metrics.RecommendedEmergencyFund), reserve)
	writeRecommendations(buf, r.Recommendations)
}

func writeRetirement(buf *bytes.Buffer, r *domain.RetirementResult) {
	fmt.Fprintf(buf, "Years to retirement: %d\n", r.YearsToRetirement)
	fmt.Fprintf(buf, "Desired annual income: %s\n", FormatCurrency(r.DesiredAnnualIncome))
	fmt.Fprintf(buf, "Total needed: %s\n", FormatCurrency(r.TotalNeeded))
	fmt.Fprintf(buf, "Current savings: %s\n", FormatCurrency(r.CurrentSavings))
	fmt.Fprintf(buf, "Gap: %s\n", FormatCurrency(r.Gap))
	fmt.Fprintf(buf, "Monthly contribution needed: %s\n", FormatCurrency(r.MonthlyContributionNeeded))
	fmt.Fprintf(buf, "Limits: 401k %s, IRA %s\n", FormatCurrency(r.Max401kContribution), FormatCurrency(r.MaxIRAContribution))
	writeRecommendations(buf, r.Recommendations)
}

func writeGrowth(buf *bytes.Buffer, r *domain.GrowthResult) {
	fmt.Fprintf(buf, "Future value: %s\n", FormatCurrency(r.TotalFutureValue))
	fmt.Fprintf(buf, "  from principal:     %s\n", FormatCurrency(r.PrincipalFuture))
	fmt.Fprintf(buf, "  from contributions: %s\n", FormatCurrency(r.AnnuityFuture))
	fmt.Fprintf(buf, "Total contributed: %s\n", FormatCurrency(r.TotalContributions))
	fmt.Fprintf(buf, "Total interest: %s\n", FormatCurrency(r.TotalInterest))
	fmt.Fprintf(buf, "Growth multiple: %sx\n", r.GrowthMultiple.StringFixed(2))
}

func writeGrowthSchedule(buf *bytes.Buffer, years []domain.GrowthYear) {
	fmt.Fprintf(buf, "%-6s %16s %16s %16s\n", "Year", "Balance", "Contributed", "Interest")
	for _, y := range years {
		fmt.Fprintf(buf, "%-6d %16s %16s %16s\n", y.Year, FormatCurrency(y.Balance), FormatCurrency(y.Contributions), FormatCurrency(y.Interest))
	}
}

func writeTax(buf *bytes.Buffer, r *domain.TaxResult) {
	fmt.Fprintf(buf, "Filing status: %s\n", r.FilingStatus)
	fmt.Fprintf(buf, "Deduction: %s\n", FormatCurrency(r.StandardDeduction))
	fmt.Fprintf(buf, "Taxable income: %s\n", FormatCurrency(r.TaxableIncome))
	for _, b := range r.BracketBreakdown {
		fmt.Fprintf(buf, "  %-24s @ %-7s %14s\n", BracketLabel(b.Min, b.Max), FormatRate(b.Rate), FormatCurrency(b.Tax))
	}
	fmt.Fprintf(buf, "Tax before credits: %s\n", FormatCurrency(r.TotalTax))
	fmt.Fprintf(buf, "Credits: %s\n", FormatCurrency(r.Credits))
	fmt.Fprintf(buf, "Final tax: %s\n", FormatCurrency(r.FinalTax))
	fmt.Fprintf(buf, "Effective rate: %s  Marginal rate: %s\n", FormatRate(r.EffectiveRate), FormatRate(r.MarginalRate))
	writeRecommendations(buf, r.Recommendations)
}

func writeAllocation(buf *bytes.Buffer, r *domain.AllocationResult) {
	fmt.Fprintf(buf, "Stocks: %3d%%  %s\n", r.StockPct, FormatCurrency(r.StockAmount))
	fmt.Fprintf(buf, "Bonds:  %3d%%  %s\n", r.BondPct, FormatCurrency(r.BondAmount))
	fmt.Fprintf(buf, "Cash:   %3d%%  %s\n", r.CashPct, FormatCurrency(r.CashAmount))
	writeRecommendations(buf, r.Recommendations)
}

func writeScenarios(buf *bytes.Buffer, r *domain.ScenarioResult) {
	fmt.Fprintf(buf, "Base: income %s, expenses %s, saving %s/month\n",
		FormatCurrency(r.Base.Income), FormatCurrency(r.Base.Expenses), FormatCurrency(r.Base.MonthlySavings))
	fmt.Fprintln(buf)
	for _, s := range r.Scenarios {
		fmt.Fprintf(buf, "%s: income %s, expenses %s, saving %s/month (%s)\n",
			s.Name, FormatCurrency(s.Income), FormatCurrency(s.Expenses), FormatCurrency(s.MonthlySavings), FormatPercentage(s.SavingsRate))
		if s.EmergencyFundReachable {
			fmt.Fprintf(buf, "  Emergency fund of %s in %s months\n", FormatCurrency(s.EmergencyFundTarget), s.MonthsToEmergencyFund.StringFixed(1))
		} else {
			fmt.Fprintf(buf, "  Emergency fund of %s not reachable\n", FormatCurrency(s.EmergencyFundTarget))
		}
	}
}

func writeInvestmentPlan(buf *bytes.Buffer, r *domain.InvestmentPlan) {
	fmt.Fprintf(buf, "Risk tolerance: %s\n", r.RiskTolerance)
	for _, rec := range r.Recommendations {
		fmt.Fprintf(buf, "  [%s] %s: %s\n", rec.Priority, rec.Type, FormatCurrency(rec.Amount))
		fmt.Fprintf(buf, "      %s\n", rec.Reason)
	}
	fmt.Fprintf(buf, "Total recommended: %s\n", FormatCurrency(r.TotalRecommended))
	if len(r.AgeBasedAdvice) > 0 {
		fmt.Fprintln(buf)
		fmt.Fprintln(buf, "For your age:")
		for _, a := range r.AgeBasedAdvice {
			fmt.Fprintf(buf, "  - %s\n", a)
		}
	}
}

func writeRecommendations(buf *bytes.Buffer, recs []string) {
	if len(recs) == 0 {
		return
	}
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "Recommendations:")
	for _, r := range recs {
		fmt.Fprintf(buf, "  - %s\n", r)
	}
}

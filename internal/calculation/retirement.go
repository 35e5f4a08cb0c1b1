package calculation

import (
	"github.com/businessthis/finplan/internal/domain"
	"github.com/businessthis/finplan/pkg/money"
	"github.com/shopspring/decimal"
)

// RetirementPlanner estimates the savings needed for retirement and the monthly
// contribution that closes the gap, assuming a fixed annual return compounded monthly.
type RetirementPlanner struct {
	AnnualReturn        decimal.Decimal
	IncomeReplacement   decimal.Decimal
	WithdrawalMultiple  decimal.Decimal
	Max401kContribution decimal.Decimal
	MaxIRAContribution  decimal.Decimal
	Logger              Logger
}

// NewRetirementPlanner creates a retirement planner from the rule set
func NewRetirementPlanner(rules domain.RetirementRules) *RetirementPlanner {
	return &RetirementPlanner{
		AnnualReturn:        rules.AnnualReturn,
		IncomeReplacement:   rules.IncomeReplacement,
		WithdrawalMultiple:  rules.WithdrawalMultiple,
		Max401kContribution: rules.Max401kContribution,
		MaxIRAContribution:  rules.MaxIRAContribution,
		Logger:              NopLogger{},
	}
}

// Plan computes retirement needs. A desiredIncome of zero or less defaults to the
// configured share of current annual income.
func (rp *RetirementPlanner) Plan(currentAge, retirementAge int, currentSavings, monthlyIncome, desiredIncome decimal.Decimal) (*domain.RetirementResult, error) {
	if err := requireAge("current_age", currentAge); err != nil {
		return nil, err
	}
	if retirementAge <= currentAge {
		return nil, invalid("retirement_age", "must be greater than current age %d, got %d", currentAge, retirementAge)
	}
	if err := requireAge("retirement_age", retirementAge); err != nil {
		return nil, err
	}
	if err := requireNonNegative(
		amount{"current_savings", currentSavings},
		amount{"monthly_income", monthlyIncome},
	); err != nil {
		return nil, err
	}

	if !desiredIncome.IsPositive() {
		desiredIncome = money.Annual(monthlyIncome).Mul(rp.IncomeReplacement)
	}

	years := retirementAge - currentAge
	months := years * 12
	totalNeeded := desiredIncome.Mul(rp.WithdrawalMultiple)
	contribution := rp.requiredContribution(totalNeeded, currentSavings, months)

	rp.Logger.Debugf("%d years to retirement, need %s, contribution %s/month",
		years, totalNeeded.StringFixed(2), contribution.StringFixed(2))

	return &domain.RetirementResult{
		YearsToRetirement:         years,
		DesiredAnnualIncome:       desiredIncome,
		TotalNeeded:               totalNeeded,
		MonthlyContributionNeeded: money.NonNegative(contribution),
		CurrentSavings:            currentSavings,
		Gap:                       money.NonNegative(totalNeeded.Sub(currentSavings)),
		Max401kContribution:       rp.Max401kContribution,
		MaxIRAContribution:        rp.MaxIRAContribution,
		Recommendations:           rp.recommendations(contribution),
	}, nil
}

// requiredContribution solves the future-value-of-annuity equation for the monthly
// payment. The result may be negative when current savings alone will grow past the
// target; Plan clamps it for presentation.
func (rp *RetirementPlanner) requiredContribution(totalNeeded, currentSavings decimal.Decimal, months int) decimal.Decimal {
	monthlyReturn := rp.AnnualReturn.Div(monthsPerYear)
	if monthlyReturn.IsZero() {
		return totalNeeded.Sub(currentSavings).Div(decimal.NewFromInt(int64(months)))
	}
	grownSavings := currentSavings.Mul(CompoundFactor(monthlyReturn, months))
	return totalNeeded.Sub(grownSavings).Div(AnnuityFactor(monthlyReturn, months))
}

// recommendations orders the tax-advantaged accounts: 401k first, then IRA, then
// ordinary investment accounts.
func (rp *RetirementPlanner) recommendations(contribution decimal.Decimal) []string {
	monthly401k := money.Monthly(rp.Max401kContribution)
	monthlyIRA := money.Monthly(rp.MaxIRAContribution)

	if !contribution.GreaterThan(monthly401k) {
		return []string{"401k contributions should cover your needs"}
	}
	recs := []string{"Max out 401k contributions first"}
	if contribution.Sub(monthly401k).GreaterThan(monthlyIRA) {
		recs = append(recs, "Also max out IRA contributions", "Consider additional taxable investments")
	} else {
		recs = append(recs, "Use IRA for remaining contributions")
	}
	return recs
}

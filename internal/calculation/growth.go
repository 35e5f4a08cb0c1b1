package calculation

import (
	"github.com/businessthis/finplan/internal/domain"
	"github.com/businessthis/finplan/pkg/money"
	"github.com/shopspring/decimal"
)

// factorPrecision bounds the scale of compounding factors. Exact powers of a
// 16-digit monthly rate grow to thousands of digits over a multi-decade horizon.
const factorPrecision = 24

var monthsPerYear = decimal.NewFromInt(12)

// GrowthProjector projects compound growth of a lump sum plus monthly contributions
type GrowthProjector struct {
	MaxYears int
	Logger   Logger
}

// NewGrowthProjector creates a growth projector from the rule set
func NewGrowthProjector(rules domain.GrowthRules) *GrowthProjector {
	return &GrowthProjector{MaxYears: rules.MaxYears, Logger: NopLogger{}}
}

// CompoundFactor returns (1+rate)^periods
func CompoundFactor(rate decimal.Decimal, periods int) decimal.Decimal {
	if periods <= 0 {
		return decimal.NewFromInt(1)
	}
	return decimal.NewFromInt(1).Add(rate).Pow(decimal.NewFromInt(int64(periods))).Round(factorPrecision)
}

// AnnuityFactor returns the future value of 1 paid at the end of each of periods
// periods: ((1+rate)^periods - 1) / rate, or periods when rate is zero.
func AnnuityFactor(rate decimal.Decimal, periods int) decimal.Decimal {
	n := decimal.NewFromInt(int64(periods))
	if !rate.IsPositive() {
		return n
	}
	return CompoundFactor(rate, periods).Sub(decimal.NewFromInt(1)).Div(rate)
}

// Project computes the future value after years of monthly compounding
func (gp *GrowthProjector) Project(principal, monthlyContribution, annualRate decimal.Decimal, years int) (*domain.GrowthResult, error) {
	if err := requireNonNegative(
		amount{"principal", principal},
		amount{"monthly_contribution", monthlyContribution},
		amount{"annual_rate", annualRate},
	); err != nil {
		return nil, err
	}
	if err := requirePositive("years", years); err != nil {
		return nil, err
	}
	if years > gp.MaxYears {
		return nil, invalid("years", "must be at most %d, got %d", gp.MaxYears, years)
	}

	monthlyRate := annualRate.Div(monthsPerYear)
	totalMonths := years * 12

	principalFuture := principal.Mul(CompoundFactor(monthlyRate, totalMonths))
	annuityFuture := monthlyContribution.Mul(AnnuityFactor(monthlyRate, totalMonths))
	total := principalFuture.Add(annuityFuture)
	contributions := principal.Add(monthlyContribution.Mul(decimal.NewFromInt(int64(totalMonths))))

	gp.Logger.Debugf("projected %d months at %s monthly: %s", totalMonths, monthlyRate.String(), total.StringFixed(2))

	return &domain.GrowthResult{
		PrincipalFuture:    principalFuture,
		AnnuityFuture:      annuityFuture,
		TotalFutureValue:   total,
		TotalContributions: contributions,
		TotalInterest:      total.Sub(contributions),
		GrowthMultiple:     money.SafeDiv(total, contributions, decimal.Zero),
	}, nil
}

// YearlySchedule returns the end-of-year balance for every year of the projection,
// month by month, matching Project at the final year.
func (gp *GrowthProjector) YearlySchedule(principal, monthlyContribution, annualRate decimal.Decimal, years int) ([]domain.GrowthYear, error) {
	if _, err := gp.Project(principal, monthlyContribution, annualRate, years); err != nil {
		return nil, err
	}

	monthlyRate := annualRate.Div(monthsPerYear)
	schedule := make([]domain.GrowthYear, 0, years)
	for year := 1; year <= years; year++ {
		months := year * 12
		balance := principal.Mul(CompoundFactor(monthlyRate, months)).
			Add(monthlyContribution.Mul(AnnuityFactor(monthlyRate, months)))
		contributions := principal.Add(monthlyContribution.Mul(decimal.NewFromInt(int64(months))))
		schedule = append(schedule, domain.GrowthYear{
			Year:          year,
			Balance:       balance,
			Contributions: contributions,
			Interest:      balance.Sub(contributions),
		})
	}
	return schedule, nil
}

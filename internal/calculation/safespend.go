package calculation

import (
	"github.com/businessthis/finplan/internal/domain"
	"github.com/businessthis/finplan/pkg/money"
	"github.com/shopspring/decimal"
)

// SafeSpendCalculator computes how much can be spent per day, week and month
// without touching fixed obligations or the savings goal.
type SafeSpendCalculator struct {
	DaysPerMonth      decimal.Decimal
	DaysPerWeek       decimal.Decimal
	DefaultGoalMonths int
	Logger            Logger
}

// NewSafeSpendCalculator creates a safe-spend calculator from the rule set
func NewSafeSpendCalculator(rules domain.SafeSpendRules) *SafeSpendCalculator {
	return &SafeSpendCalculator{
		DaysPerMonth:      decimal.NewFromInt(int64(rules.DaysPerMonth)),
		DaysPerWeek:       decimal.NewFromInt(int64(rules.DaysPerWeek)),
		DefaultGoalMonths: rules.DefaultGoalMonths,
		Logger:            NopLogger{},
	}
}

// Calculate derives the safe spend from monthly income, fixed and estimated variable
// expenses, and a savings goal to be reached in months.
func (c *SafeSpendCalculator) Calculate(income, fixed, variable, savingsGoal decimal.Decimal, months int) (*domain.SafeSpendResult, error) {
	if err := requireNonNegative(
		amount{"monthly_income", income},
		amount{"fixed_expenses", fixed},
		amount{"variable_expenses", variable},
		amount{"savings_goal", savingsGoal},
	); err != nil {
		return nil, err
	}
	if err := requirePositive("months_for_goal", months); err != nil {
		return nil, err
	}

	contribution := savingsGoal.Div(decimal.NewFromInt(int64(months)))
	disposable := income.Sub(fixed).Sub(contribution)
	monthlySafe := disposable.Sub(variable)

	// Weekly and monthly come from the floored daily figure so a deficit
	// never shows up as a negative allowance.
	daily := money.NonNegative(monthlySafe.Div(c.DaysPerMonth))
	if monthlySafe.IsNegative() {
		c.Logger.Debugf("monthly shortfall of %s, safe spend floored at zero", monthlySafe.Neg().StringFixed(2))
	}

	return &domain.SafeSpendResult{
		Daily:                      daily,
		Weekly:                     daily.Mul(c.DaysPerWeek),
		Monthly:                    daily.Mul(c.DaysPerMonth),
		MonthlySavingsContribution: contribution,
		MonthlyDisposable:          disposable,
	}, nil
}

// CalculateForProfile runs Calculate with the profile's income and expenses. A nil
// savingsGoal means "the sum of the user's goal targets"; months of zero means the
// default horizon. The result carries the progress of each goal.
func (c *SafeSpendCalculator) CalculateForProfile(p *domain.FinancialProfile, goals []domain.SavingsGoal, savingsGoal *decimal.Decimal, months int) (*domain.SafeSpendResult, error) {
	if err := ValidateProfile(p); err != nil {
		return nil, err
	}
	if err := requireGoals(goals); err != nil {
		return nil, err
	}
	goal := domain.TotalTargetAmount(goals)
	if savingsGoal != nil {
		goal = *savingsGoal
	}
	if months == 0 {
		months = c.DefaultGoalMonths
	}

	res, err := c.Calculate(p.MonthlyIncome, p.FixedExpenses, p.VariableExpenses, goal, months)
	if err != nil {
		return nil, err
	}
	for i := range goals {
		res.Goals = append(res.Goals, goals[i].Progress())
	}
	return res, nil
}

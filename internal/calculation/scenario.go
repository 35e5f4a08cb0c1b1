package calculation

import (
	"fmt"

	"github.com/businessthis/finplan/internal/domain"
	"github.com/businessthis/finplan/pkg/money"
	"github.com/shopspring/decimal"
)

// ScenarioModeler compares what-if income and expense multipliers against a base case
type ScenarioModeler struct {
	EmergencyFundMonths decimal.Decimal
	Logger              Logger
}

// NewScenarioModeler creates a scenario modeler from the rule set
func NewScenarioModeler(rules domain.ScenarioRules) *ScenarioModeler {
	return &ScenarioModeler{
		EmergencyFundMonths: decimal.NewFromInt(int64(rules.EmergencyFundMonths)),
		Logger:              NopLogger{},
	}
}

// Compare evaluates every scenario in order. Unnamed scenarios are labelled
// "Scenario N" by position; two scenarios with the same name are rejected.
func (sm *ScenarioModeler) Compare(baseIncome, baseExpenses decimal.Decimal, specs []domain.ScenarioSpec) (*domain.ScenarioResult, error) {
	if err := requireNonNegative(
		amount{"base_income", baseIncome},
		amount{"base_expenses", baseExpenses},
	); err != nil {
		return nil, err
	}

	seen := make(map[string]int, len(specs))
	named := make([]domain.ScenarioSpec, len(specs))
	for i, spec := range specs {
		if spec.Name == "" {
			spec.Name = fmt.Sprintf("Scenario %d", i+1)
		}
		field := fmt.Sprintf("scenarios[%d]", i)
		if err := requireNonNegative(
			amount{field + ".income_multiplier", spec.IncomeMultiplier},
			amount{field + ".expense_multiplier", spec.ExpenseMultiplier},
		); err != nil {
			return nil, err
		}
		if prev, ok := seen[spec.Name]; ok {
			return nil, invalid(field+".name", "duplicate scenario name %q (also at index %d)", spec.Name, prev)
		}
		seen[spec.Name] = i
		named[i] = spec
	}

	result := &domain.ScenarioResult{
		Base: domain.BaseCase{
			Income:         baseIncome,
			Expenses:       baseExpenses,
			MonthlySavings: baseIncome.Sub(baseExpenses),
		},
		Scenarios: make([]domain.ScenarioOutcome, 0, len(named)),
	}
	for _, spec := range named {
		outcome := sm.evaluate(baseIncome, baseExpenses, spec)
		sm.Logger.Debugf("%s: savings %s/month, reachable=%t", outcome.Name, outcome.MonthlySavings.StringFixed(2), outcome.EmergencyFundReachable)
		result.Scenarios = append(result.Scenarios, outcome)
	}
	return result, nil
}

func (sm *ScenarioModeler) evaluate(baseIncome, baseExpenses decimal.Decimal, spec domain.ScenarioSpec) domain.ScenarioOutcome {
	income := baseIncome.Mul(spec.IncomeMultiplier)
	expenses := baseExpenses.Mul(spec.ExpenseMultiplier)
	savings := income.Sub(expenses)
	target := expenses.Mul(sm.EmergencyFundMonths)

	outcome := domain.ScenarioOutcome{
		Name:                spec.Name,
		Income:              income,
		Expenses:            expenses,
		MonthlySavings:      savings,
		AnnualSavings:       money.Annual(savings),
		EmergencyFundTarget: target,
		SavingsRate:         money.Percent(savings, income),
	}
	if savings.IsPositive() {
		outcome.MonthsToEmergencyFund = target.Div(savings)
		outcome.EmergencyFundReachable = true
	}
	return outcome
}

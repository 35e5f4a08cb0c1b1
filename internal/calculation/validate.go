package calculation

import (
	"fmt"

	"github.com/businessthis/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

type amount struct {
	field string
	value decimal.Decimal
}

// requireNonNegative fails on the first negative amount, checked in argument order
func requireNonNegative(amounts ...amount) error {
	for _, a := range amounts {
		if a.value.IsNegative() {
			return invalid(a.field, "must be non-negative, got %s", a.value.String())
		}
	}
	return nil
}

func requireAge(field string, age int) error {
	if age < domain.MinAge || age > domain.MaxAge {
		return invalid(field, "must be between %d and %d, got %d", domain.MinAge, domain.MaxAge, age)
	}
	return nil
}

func requirePositive(field string, n int) error {
	if n <= 0 {
		return invalid(field, "must be positive, got %d", n)
	}
	return nil
}

// requireGoals checks every savings goal: a positive target and non-negative
// current amount and contribution
func requireGoals(goals []domain.SavingsGoal) error {
	for i, g := range goals {
		field := fmt.Sprintf("goals[%d]", i)
		if !g.TargetAmount.IsPositive() {
			return invalid(field+".target_amount", "must be positive, got %s", g.TargetAmount.String())
		}
		if err := requireNonNegative(
			amount{field + ".current_amount", g.CurrentAmount},
			amount{field + ".monthly_contribution", g.MonthlyContribution},
		); err != nil {
			return err
		}
	}
	return nil
}

func requireRisk(risk domain.RiskTolerance) error {
	if !risk.Valid() {
		return invalid("risk_tolerance", "must be conservative, moderate or aggressive, got %q", string(risk))
	}
	return nil
}

// ValidateProfile checks a financial profile against its documented ranges
func ValidateProfile(p *domain.FinancialProfile) error {
	if p == nil {
		return invalid("profile", "is required")
	}
	if err := requireNonNegative(
		amount{"monthly_income", p.MonthlyIncome},
		amount{"fixed_expenses", p.FixedExpenses},
		amount{"variable_expenses", p.VariableExpenses},
		amount{"emergency_fund_current", p.EmergencyFundCurrent},
		amount{"emergency_fund_target", p.EmergencyFundTarget},
		amount{"total_debt", p.TotalDebt},
	); err != nil {
		return err
	}
	if p.CreditScore != nil && (*p.CreditScore < domain.MinCreditScore || *p.CreditScore > domain.MaxCreditScore) {
		return invalid("credit_score", "must be between %d and %d, got %d", domain.MinCreditScore, domain.MaxCreditScore, *p.CreditScore)
	}
	if p.Age != nil {
		if err := requireAge("age", *p.Age); err != nil {
			return err
		}
	}
	if p.RiskTolerance != "" {
		if err := requireRisk(p.RiskTolerance); err != nil {
			return err
		}
	}
	if p.RetirementAge < 0 {
		return invalid("retirement_age", "must be non-negative, got %d", p.RetirementAge)
	}
	return nil
}

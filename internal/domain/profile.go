package domain

import (
	"github.com/businessthis/finplan/pkg/money"
	"github.com/shopspring/decimal"
)

// RiskTolerance is the investor's stated appetite for volatility
type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskModerate     RiskTolerance = "moderate"
	RiskAggressive   RiskTolerance = "aggressive"
)

// Valid reports whether r is one of the supported tolerances
func (r RiskTolerance) Valid() bool {
	switch r {
	case RiskConservative, RiskModerate, RiskAggressive:
		return true
	}
	return false
}

// Profile bounds
const (
	MinCreditScore = 300
	MaxCreditScore = 850
	MinAge         = 18
	MaxAge         = 120

	DefaultRetirementAge = 65
)

// FinancialProfile is the user's financial snapshot as supplied by the persistence layer.
// All amounts are monthly unless the name says otherwise.
type FinancialProfile struct {
	MonthlyIncome        decimal.Decimal `yaml:"monthly_income" json:"monthly_income"`
	FixedExpenses        decimal.Decimal `yaml:"fixed_expenses" json:"fixed_expenses"`
	VariableExpenses     decimal.Decimal `yaml:"variable_expenses" json:"variable_expenses"`
	EmergencyFundCurrent decimal.Decimal `yaml:"emergency_fund_current" json:"emergency_fund_current"`
	EmergencyFundTarget  decimal.Decimal `yaml:"emergency_fund_target" json:"emergency_fund_target"`
	TotalDebt            decimal.Decimal `yaml:"total_debt" json:"total_debt"`

	CreditScore   *int          `yaml:"credit_score,omitempty" json:"credit_score,omitempty"`
	Age           *int          `yaml:"age,omitempty" json:"age,omitempty"`
	RiskTolerance RiskTolerance `yaml:"risk_tolerance,omitempty" json:"risk_tolerance,omitempty"`
	RetirementAge int           `yaml:"retirement_age,omitempty" json:"retirement_age,omitempty"`
}

// TotalExpenses returns fixed plus variable monthly expenses
func (p *FinancialProfile) TotalExpenses() decimal.Decimal {
	return p.FixedExpenses.Add(p.VariableExpenses)
}

// SavingsRate returns the share of income left after expenses, as a percentage.
// Zero income yields zero.
func (p *FinancialProfile) SavingsRate() decimal.Decimal {
	return money.Percent(p.MonthlyIncome.Sub(p.TotalExpenses()), p.MonthlyIncome)
}

// DebtToIncomeRatio returns total debt over monthly income, zero when there is no income
func (p *FinancialProfile) DebtToIncomeRatio() decimal.Decimal {
	return money.SafeDiv(p.TotalDebt, p.MonthlyIncome, decimal.Zero)
}

// EmergencyFundProgress returns current/target as a percentage, zero without a target
func (p *FinancialProfile) EmergencyFundProgress() decimal.Decimal {
	return money.Percent(p.EmergencyFundCurrent, p.EmergencyFundTarget)
}

// RecommendedEmergencyFund is six months of total expenses
func (p *FinancialProfile) RecommendedEmergencyFund() decimal.Decimal {
	return p.TotalExpenses().Mul(decimal.NewFromInt(6))
}

// IsEmergencyFundAdequate reports whether the current fund covers the recommended amount
func (p *FinancialProfile) IsEmergencyFundAdequate() bool {
	return p.EmergencyFundCurrent.GreaterThanOrEqual(p.RecommendedEmergencyFund())
}

// EffectiveRiskTolerance returns the stated tolerance or moderate when none was given
func (p *FinancialProfile) EffectiveRiskTolerance() RiskTolerance {
	if p.RiskTolerance == "" {
		return RiskModerate
	}
	return p.RiskTolerance
}

// EffectiveRetirementAge returns the retirement age, defaulting to 65
func (p *FinancialProfile) EffectiveRetirementAge() int {
	if p.RetirementAge == 0 {
		return DefaultRetirementAge
	}
	return p.RetirementAge
}

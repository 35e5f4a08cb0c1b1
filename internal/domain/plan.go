package domain

import (
	"github.com/shopspring/decimal"
)

// PlanInput is the document loaded from a plan file: one household's profile with
// its goals, what-if scenarios and account balances.
type PlanInput struct {
	Name      string           `yaml:"name" json:"name"`
	Profile   FinancialProfile `yaml:"profile" json:"profile"`
	Goals     []SavingsGoal    `yaml:"goals,omitempty" json:"goals,omitempty"`
	Scenarios []ScenarioSpec   `yaml:"scenarios,omitempty" json:"scenarios,omitempty"`

	RetirementSavings  decimal.Decimal `yaml:"retirement_savings" json:"retirement_savings"`
	InvestableAmount   decimal.Decimal `yaml:"investable_amount" json:"investable_amount"`
	CurrentInvestments decimal.Decimal `yaml:"current_investments" json:"current_investments"`
	FilingStatus       FilingStatus    `yaml:"filing_status,omitempty" json:"filing_status,omitempty"` // Default: single
}

// EffectiveFilingStatus returns the filing status, defaulting to single
func (p *PlanInput) EffectiveFilingStatus() FilingStatus {
	if p.FilingStatus == "" {
		return FilingSingle
	}
	return p.FilingStatus
}

// AnnualIncome returns the profile's monthly income times twelve
func (p *PlanInput) AnnualIncome() decimal.Decimal {
	return p.Profile.MonthlyIncome.Mul(decimal.NewFromInt(12))
}

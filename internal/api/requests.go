package api

import (
	"github.com/shopspring/decimal"

	"github.com/businessthis/finplan/internal/domain"
)

// Omitted optional fields take these values.
const (
	defaultAge           = 30
	defaultRetirementAge = 65
	defaultYears         = 10
)

var (
	defaultMonthlyIncome    = decimal.NewFromInt(5000)
	defaultMonthlyExpenses  = decimal.NewFromInt(3000)
	defaultAnnualRate       = decimal.RequireFromString("0.07")
	defaultTaxableIncome    = decimal.NewFromInt(50000)
	defaultInvestmentAmount = decimal.NewFromInt(10000)
)

// SafeSpendRequest is the body of POST /v1/safe-spend. A missing savings goal
// means the sum of the goal targets; a missing month count uses the rules default.
type SafeSpendRequest struct {
	Profile       domain.FinancialProfile `json:"profile"`
	Goals         []domain.SavingsGoal    `json:"goals"`
	SavingsGoal   *decimal.Decimal        `json:"savings_goal"`
	MonthsForGoal int                     `json:"months_for_goal"`
}

// HealthScoresRequest is the body of POST /v1/health-scores
type HealthScoresRequest struct {
	Profiles []domain.FinancialProfile `json:"profiles"`
}

// RetirementRequest is the body of POST /v1/retirement
type RetirementRequest struct {
	CurrentAge              *int             `json:"current_age"`
	RetirementAge           *int             `json:"retirement_age"`
	CurrentSavings          decimal.Decimal  `json:"current_savings"`
	MonthlyIncome           *decimal.Decimal `json:"monthly_income"`
	DesiredRetirementIncome decimal.Decimal  `json:"desired_retirement_income"`
}

// CompoundInterestRequest is the body of POST /v1/compound-interest
type CompoundInterestRequest struct {
	Principal           decimal.Decimal  `json:"principal"`
	MonthlyContribution decimal.Decimal  `json:"monthly_contribution"`
	AnnualRate          *decimal.Decimal `json:"annual_rate"`
	Years               *int             `json:"years"`
	IncludeSchedule     bool             `json:"include_schedule"`
}

// CompoundInterestResponse adds the optional year-by-year schedule to the projection
type CompoundInterestResponse struct {
	domain.GrowthResult
	Schedule []domain.GrowthYear `json:"schedule,omitempty"`
}

// TaxEstimateRequest is the body of POST /v1/tax-estimate
type TaxEstimateRequest struct {
	Income       *decimal.Decimal    `json:"income"`
	FilingStatus domain.FilingStatus `json:"filing_status"`
	Deductions   decimal.Decimal     `json:"deductions"`
	Credits      decimal.Decimal     `json:"credits"`
}

// AllocationRequest is the body of POST /v1/asset-allocation
type AllocationRequest struct {
	Age              *int                 `json:"age"`
	RiskTolerance    domain.RiskTolerance `json:"risk_tolerance"`
	InvestmentAmount *decimal.Decimal     `json:"investment_amount"`
}

// WhatIfRequest is the body of POST /v1/what-if
type WhatIfRequest struct {
	BaseIncome   *decimal.Decimal      `json:"base_income"`
	BaseExpenses *decimal.Decimal      `json:"base_expenses"`
	Scenarios    []domain.ScenarioSpec `json:"scenarios"`
}

// InvestmentRequest is the body of POST /v1/investment-recommendations
type InvestmentRequest struct {
	Age                *int                 `json:"age"`
	AnnualIncome       *decimal.Decimal     `json:"annual_income"`
	RiskTolerance      domain.RiskTolerance `json:"risk_tolerance"`
	CurrentInvestments decimal.Decimal      `json:"current_investments"`
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func decimalOr(v *decimal.Decimal, def decimal.Decimal) decimal.Decimal {
	if v == nil {
		return def
	}
	return *v
}

func riskOr(r domain.RiskTolerance) domain.RiskTolerance {
	if r == "" {
		return domain.RiskModerate
	}
	return r
}

func filingOr(s domain.FilingStatus) domain.FilingStatus {
	if s == "" {
		return domain.FilingSingle
	}
	return s
}

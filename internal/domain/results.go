package domain

import (
	"github.com/shopspring/decimal"
)

// SafeSpendResult holds the discretionary spend limits. Weekly and Monthly are derived
// from the floored Daily figure.
type SafeSpendResult struct {
	Daily   decimal.Decimal `json:"daily" yaml:"daily"`
	Weekly  decimal.Decimal `json:"weekly" yaml:"weekly"`
	Monthly decimal.Decimal `json:"monthly" yaml:"monthly"`

	MonthlySavingsContribution decimal.Decimal `json:"monthly_savings_contribution" yaml:"monthly_savings_contribution"`
	MonthlyDisposable          decimal.Decimal `json:"monthly_disposable" yaml:"monthly_disposable"`

	Goals []GoalProgress `json:"goals,omitempty" yaml:"goals,omitempty"`
}

// HealthLevel is the banded reading of an overall health score
type HealthLevel string

const (
	HealthExcellent HealthLevel = "Excellent"
	HealthGood      HealthLevel = "Good"
	HealthFair      HealthLevel = "Fair"
	HealthPoor      HealthLevel = "Poor"
	HealthCritical  HealthLevel = "Critical"
)

// HealthSubscores are the four 0-25 components of the health score
type HealthSubscores struct {
	SavingsRate   int `json:"savings_rate" yaml:"savings_rate"`
	DebtRatio     int `json:"debt_ratio" yaml:"debt_ratio"`
	EmergencyFund int `json:"emergency_fund" yaml:"emergency_fund"`
	Investment    int `json:"investment" yaml:"investment"`
}

// Total sums the subscores
func (s HealthSubscores) Total() int {
	return s.SavingsRate + s.DebtRatio + s.EmergencyFund + s.Investment
}

// HealthMetrics are the raw ratios the subscores were derived from
type HealthMetrics struct {
	SavingsRate           decimal.Decimal `json:"savings_rate" yaml:"savings_rate"`                       // percent
	DebtRatio             decimal.Decimal `json:"debt_ratio" yaml:"debt_ratio"`                           // debt / monthly income
	EmergencyFundProgress decimal.Decimal `json:"emergency_fund_progress" yaml:"emergency_fund_progress"` // percent

	RecommendedEmergencyFund decimal.Decimal `json:"recommended_emergency_fund" yaml:"recommended_emergency_fund"` // six months of expenses
	EmergencyFundAdequate    bool            `json:"emergency_fund_adequate" yaml:"emergency_fund_adequate"`
}

// HealthScoreResult is the composite financial health score
type HealthScoreResult struct {
	OverallScore    int             `json:"overall_score" yaml:"overall_score"`
	Subscores       HealthSubscores `json:"subscores" yaml:"subscores"`
	HealthLevel     HealthLevel     `json:"health_level" yaml:"health_level"`
	Metrics         HealthMetrics   `json:"metrics" yaml:"metrics"`
	Recommendations []string        `json:"recommendations" yaml:"recommendations"`
}

// RetirementResult is the retirement savings requirement
type RetirementResult struct {
	YearsToRetirement         int             `json:"years_to_retirement" yaml:"years_to_retirement"`
	DesiredAnnualIncome       decimal.Decimal `json:"desired_annual_income" yaml:"desired_annual_income"`
	TotalNeeded               decimal.Decimal `json:"total_needed" yaml:"total_needed"`
	MonthlyContributionNeeded decimal.Decimal `json:"monthly_contribution_needed" yaml:"monthly_contribution_needed"`
	CurrentSavings            decimal.Decimal `json:"current_savings" yaml:"current_savings"`
	Gap                       decimal.Decimal `json:"gap" yaml:"gap"`
	Max401kContribution       decimal.Decimal `json:"max_401k_contribution" yaml:"max_401k_contribution"`
	MaxIRAContribution        decimal.Decimal `json:"max_ira_contribution" yaml:"max_ira_contribution"`
	Recommendations           []string        `json:"recommendations" yaml:"recommendations"`
}

// GrowthResult is a compound-growth projection
type GrowthResult struct {
	PrincipalFuture    decimal.Decimal `json:"principal_future" yaml:"principal_future"`
	AnnuityFuture      decimal.Decimal `json:"annuity_future" yaml:"annuity_future"`
	TotalFutureValue   decimal.Decimal `json:"total_future_value" yaml:"total_future_value"`
	TotalContributions decimal.Decimal `json:"total_contributions" yaml:"total_contributions"`
	TotalInterest      decimal.Decimal `json:"total_interest" yaml:"total_interest"`
	GrowthMultiple     decimal.Decimal `json:"growth_multiple" yaml:"growth_multiple"` // zero when nothing was contributed
}

// GrowthYear is the balance at the end of one projection year
type GrowthYear struct {
	Year          int             `json:"year" yaml:"year"`
	Balance       decimal.Decimal `json:"balance" yaml:"balance"`
	Contributions decimal.Decimal `json:"contributions" yaml:"contributions"`
	Interest      decimal.Decimal `json:"interest" yaml:"interest"`
}

// BracketTax is the share of taxable income taxed inside one bracket
type BracketTax struct {
	Min    decimal.Decimal `json:"min" yaml:"min"`
	Max    decimal.Decimal `json:"max" yaml:"max"` // zero for the open-ended top bracket
	Rate   decimal.Decimal `json:"rate" yaml:"rate"`
	Income decimal.Decimal `json:"income" yaml:"income"`
	Tax    decimal.Decimal `json:"tax" yaml:"tax"`
}

// TaxResult is a progressive income tax estimate
type TaxResult struct {
	FilingStatus      FilingStatus    `json:"filing_status" yaml:"filing_status"`
	StandardDeduction decimal.Decimal `json:"standard_deduction" yaml:"standard_deduction"`
	TaxableIncome     decimal.Decimal `json:"taxable_income" yaml:"taxable_income"`
	TotalTax          decimal.Decimal `json:"total_tax" yaml:"total_tax"`
	Credits           decimal.Decimal `json:"credits" yaml:"credits"`
	FinalTax          decimal.Decimal `json:"final_tax" yaml:"final_tax"`
	EffectiveRate     decimal.Decimal `json:"effective_rate" yaml:"effective_rate"`
	MarginalRate      decimal.Decimal `json:"marginal_rate" yaml:"marginal_rate"`
	BracketBreakdown  []BracketTax    `json:"bracket_breakdown" yaml:"bracket_breakdown"`
	Recommendations   []string        `json:"recommendations" yaml:"recommendations"`
}

// FilingStatus is the tax filing status
type FilingStatus string

const (
	FilingSingle       FilingStatus = "single"
	FilingMarriedJoint FilingStatus = "married_joint"
)

// Valid reports whether s is a supported filing status
func (s FilingStatus) Valid() bool {
	return s == FilingSingle || s == FilingMarriedJoint
}

// AllocationResult is a recommended stock/bond/cash split. The percentages always sum to 100.
type AllocationResult struct {
	StockPct        int             `json:"stock_pct" yaml:"stock_pct"`
	BondPct         int             `json:"bond_pct" yaml:"bond_pct"`
	CashPct         int             `json:"cash_pct" yaml:"cash_pct"`
	StockAmount     decimal.Decimal `json:"stock_amount" yaml:"stock_amount"`
	BondAmount      decimal.Decimal `json:"bond_amount" yaml:"bond_amount"`
	CashAmount      decimal.Decimal `json:"cash_amount" yaml:"cash_amount"`
	Recommendations []string        `json:"recommendations" yaml:"recommendations"`
}

// InvestmentRecommendation is one suggested account and amount
type InvestmentRecommendation struct {
	Type     string          `json:"type" yaml:"type"`
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
	Priority string          `json:"priority" yaml:"priority"`
	Reason   string          `json:"reason" yaml:"reason"`
}

// InvestmentPlan groups account recommendations with age-based advice
type InvestmentPlan struct {
	Recommendations  []InvestmentRecommendation `json:"recommendations" yaml:"recommendations"`
	TotalRecommended decimal.Decimal            `json:"total_recommended" yaml:"total_recommended"`
	RiskTolerance    RiskTolerance              `json:"risk_tolerance" yaml:"risk_tolerance"`
	AgeBasedAdvice   []string                   `json:"age_based_advice" yaml:"age_based_advice"`
}

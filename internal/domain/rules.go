package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PLANNING RULE ASSUMPTIONS:
//
// 1. Tax brackets are the 2024 single-filer table. Married filing jointly doubles every
//    bracket bound, which is a simplification and not the published joint table.
//
// 2. Retirement needs use the 4% withdrawal heuristic (25x desired annual income) and a
//    fixed 7% annual return compounded monthly.
//
// 3. Contribution caps are the 2024 401k ($23,000) and IRA ($7,000) employee limits.
//
// 4. The health score investment subscore is a fixed placeholder until a real metric is
//    defined.

// PlanningRules holds every tunable constant used by the planning engine. Tax law and
// contribution caps change yearly, so the set is versioned and loaded from YAML.
type PlanningRules struct {
	Version string `yaml:"version" json:"version"`
	TaxYear int    `yaml:"tax_year" json:"tax_year"`

	SafeSpend  SafeSpendRules     `yaml:"safe_spend" json:"safe_spend"`
	Health     HealthScoringRules `yaml:"health_scoring" json:"health_scoring"`
	Growth     GrowthRules        `yaml:"growth" json:"growth"`
	Retirement RetirementRules    `yaml:"retirement" json:"retirement"`
	Tax        TaxRules           `yaml:"tax" json:"tax"`
	Scenario   ScenarioRules      `yaml:"scenario" json:"scenario"`
	Investment InvestmentRules    `yaml:"investment" json:"investment"`
}

// SafeSpendRules controls the period conversions of the safe-spend calculator
type SafeSpendRules struct {
	DaysPerMonth      int `yaml:"days_per_month" json:"days_per_month"`           // Default: 30
	DaysPerWeek       int `yaml:"days_per_week" json:"days_per_week"`             // Default: 7
	DefaultGoalMonths int `yaml:"default_goal_months" json:"default_goal_months"` // Default: 12
}

// HealthScoringRules contains health score settings
type HealthScoringRules struct {
	InvestmentPlaceholder int `yaml:"investment_placeholder" json:"investment_placeholder"` // Default: 10
}

// GrowthRules bounds compound growth projections
type GrowthRules struct {
	MaxYears int `yaml:"max_years" json:"max_years"` // Default: 100
}

// RetirementRules contains retirement projection assumptions and account caps
type RetirementRules struct {
	AnnualReturn        decimal.Decimal `yaml:"annual_return" json:"annual_return"`                 // Default: 0.07
	IncomeReplacement   decimal.Decimal `yaml:"income_replacement" json:"income_replacement"`       // Default: 0.80
	WithdrawalMultiple  decimal.Decimal `yaml:"withdrawal_multiple" json:"withdrawal_multiple"`     // Default: 25 (4% rule)
	Max401kContribution decimal.Decimal `yaml:"max_401k_contribution" json:"max_401k_contribution"` // Default: 23000 (2024)
	MaxIRAContribution  decimal.Decimal `yaml:"max_ira_contribution" json:"max_ira_contribution"`   // Default: 7000 (2024)
}

func (rr RetirementRules) isZero() bool {
	return rr.AnnualReturn.IsZero() && rr.IncomeReplacement.IsZero() && rr.WithdrawalMultiple.IsZero() &&
		rr.Max401kContribution.IsZero() && rr.MaxIRAContribution.IsZero()
}

// TaxRules contains the progressive bracket table and recommendation thresholds
type TaxRules struct {
	StandardDeductionSingle       decimal.Decimal `yaml:"standard_deduction_single" json:"standard_deduction_single"`               // Default: 13850
	StandardDeductionMarriedJoint decimal.Decimal `yaml:"standard_deduction_married_joint" json:"standard_deduction_married_joint"` // Default: 27700
	BracketsSingle                []TaxBracket    `yaml:"brackets_single" json:"brackets_single"`

	HighEffectiveRate   decimal.Decimal `yaml:"high_effective_rate" json:"high_effective_rate"`     // Default: 0.20
	HighIncomeThreshold decimal.Decimal `yaml:"high_income_threshold" json:"high_income_threshold"` // Default: 100000
}

// TaxBracket is one row of a progressive table. A zero Max marks the open-ended top bracket.
type TaxBracket struct {
	Min  decimal.Decimal `yaml:"min" json:"min"`
	Max  decimal.Decimal `yaml:"max" json:"max"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// Unbounded reports whether the bracket has no upper limit
func (b TaxBracket) Unbounded() bool {
	return b.Max.IsZero()
}

// Scaled returns the bracket with both bounds multiplied by factor
func (b TaxBracket) Scaled(factor decimal.Decimal) TaxBracket {
	return TaxBracket{Min: b.Min.Mul(factor), Max: b.Max.Mul(factor), Rate: b.Rate}
}

// ScenarioRules contains what-if settings
type ScenarioRules struct {
	EmergencyFundMonths int `yaml:"emergency_fund_months" json:"emergency_fund_months"` // Default: 6
}

// InvestmentRules contains the investment recommendation settings
type InvestmentRules struct {
	RetirementSavingsRate    decimal.Decimal `yaml:"retirement_savings_rate" json:"retirement_savings_rate"`         // Default: 0.15
	RothIncomeLimit          decimal.Decimal `yaml:"roth_income_limit" json:"roth_income_limit"`                     // Default: 138000
	EmergencyFundIncomeShare decimal.Decimal `yaml:"emergency_fund_income_share" json:"emergency_fund_income_share"` // Default: 0.5
	BrokerageIncomeThreshold decimal.Decimal `yaml:"brokerage_income_threshold" json:"brokerage_income_threshold"`   // Default: 100000
	BrokerageRate            decimal.Decimal `yaml:"brokerage_rate" json:"brokerage_rate"`                           // Default: 0.10
}

// DefaultPlanningRules returns the 2024 rule set
func DefaultPlanningRules() PlanningRules {
	return PlanningRules{
		Version: "2024.1",
		TaxYear: 2024,
		SafeSpend: SafeSpendRules{
			DaysPerMonth:      30,
			DaysPerWeek:       7,
			DefaultGoalMonths: 12,
		},
		Health: HealthScoringRules{
			InvestmentPlaceholder: 10,
		},
		Growth: GrowthRules{
			MaxYears: 100,
		},
		Retirement: RetirementRules{
			AnnualReturn:        decimal.NewFromFloat(0.07),
			IncomeReplacement:   decimal.NewFromFloat(0.8),
			WithdrawalMultiple:  decimal.NewFromInt(25),
			Max401kContribution: decimal.NewFromInt(23000),
			MaxIRAContribution:  decimal.NewFromInt(7000),
		},
		Tax: TaxRules{
			StandardDeductionSingle:       decimal.NewFromInt(13850),
			StandardDeductionMarriedJoint: decimal.NewFromInt(27700),
			BracketsSingle: []TaxBracket{
				{decimal.Zero, decimal.NewFromInt(11000), decimal.NewFromFloat(0.10)},
				{decimal.NewFromInt(11000), decimal.NewFromInt(44725), decimal.NewFromFloat(0.12)},
				{decimal.NewFromInt(44725), decimal.NewFromInt(95375), decimal.NewFromFloat(0.22)},
				{decimal.NewFromInt(95375), decimal.NewFromInt(182050), decimal.NewFromFloat(0.24)},
				{decimal.NewFromInt(182050), decimal.NewFromInt(231250), decimal.NewFromFloat(0.32)},
				{decimal.NewFromInt(231250), decimal.NewFromInt(578125), decimal.NewFromFloat(0.35)},
				{decimal.NewFromInt(578125), decimal.Zero, decimal.NewFromFloat(0.37)},
			},
			HighEffectiveRate:   decimal.NewFromFloat(0.20),
			HighIncomeThreshold: decimal.NewFromInt(100000),
		},
		Scenario: ScenarioRules{
			EmergencyFundMonths: 6,
		},
		Investment: InvestmentRules{
			RetirementSavingsRate:    decimal.NewFromFloat(0.15),
			RothIncomeLimit:          decimal.NewFromInt(138000),
			EmergencyFundIncomeShare: decimal.NewFromFloat(0.5),
			BrokerageIncomeThreshold: decimal.NewFromInt(100000),
			BrokerageRate:            decimal.NewFromFloat(0.10),
		},
	}
}

// WithDefaults fills every zero-valued setting from DefaultPlanningRules, so a rules file
// only needs to carry the values it changes.
func (r PlanningRules) WithDefaults() PlanningRules {
	d := DefaultPlanningRules()
	if r.Version == "" {
		r.Version = d.Version
	}
	if r.TaxYear == 0 {
		r.TaxYear = d.TaxYear
	}

	fillInt(&r.SafeSpend.DaysPerMonth, d.SafeSpend.DaysPerMonth)
	fillInt(&r.SafeSpend.DaysPerWeek, d.SafeSpend.DaysPerWeek)
	fillInt(&r.SafeSpend.DefaultGoalMonths, d.SafeSpend.DefaultGoalMonths)
	fillInt(&r.Health.InvestmentPlaceholder, d.Health.InvestmentPlaceholder)
	fillInt(&r.Growth.MaxYears, d.Growth.MaxYears)
	fillInt(&r.Scenario.EmergencyFundMonths, d.Scenario.EmergencyFundMonths)

	// A zero annual return is a legitimate assumption and is kept as given
	// once any other retirement setting is present.
	if r.Retirement.isZero() {
		r.Retirement = d.Retirement
	}
	fillDec(&r.Retirement.IncomeReplacement, d.Retirement.IncomeReplacement)
	fillDec(&r.Retirement.WithdrawalMultiple, d.Retirement.WithdrawalMultiple)
	fillDec(&r.Retirement.Max401kContribution, d.Retirement.Max401kContribution)
	fillDec(&r.Retirement.MaxIRAContribution, d.Retirement.MaxIRAContribution)

	fillDec(&r.Tax.StandardDeductionSingle, d.Tax.StandardDeductionSingle)
	fillDec(&r.Tax.StandardDeductionMarriedJoint, d.Tax.StandardDeductionMarriedJoint)
	fillDec(&r.Tax.HighEffectiveRate, d.Tax.HighEffectiveRate)
	fillDec(&r.Tax.HighIncomeThreshold, d.Tax.HighIncomeThreshold)
	if len(r.Tax.BracketsSingle) == 0 {
		r.Tax.BracketsSingle = d.Tax.BracketsSingle
	}

	fillDec(&r.Investment.RetirementSavingsRate, d.Investment.RetirementSavingsRate)
	fillDec(&r.Investment.RothIncomeLimit, d.Investment.RothIncomeLimit)
	fillDec(&r.Investment.EmergencyFundIncomeShare, d.Investment.EmergencyFundIncomeShare)
	fillDec(&r.Investment.BrokerageIncomeThreshold, d.Investment.BrokerageIncomeThreshold)
	fillDec(&r.Investment.BrokerageRate, d.Investment.BrokerageRate)
	return r
}

// GenerateAssumptions creates a human-readable assumptions list from the rule values
func (r PlanningRules) GenerateAssumptions() []string {
	return []string{
		fmt.Sprintf("Rules version %s (tax year %d)", r.Version, r.TaxYear),
		fmt.Sprintf("Investment return: %.1f%% annually, compounded monthly", r.Retirement.AnnualReturn.Mul(decimal.NewFromInt(100)).InexactFloat64()),
		fmt.Sprintf("Retirement target: %sx desired annual income", r.Retirement.WithdrawalMultiple.String()),
		fmt.Sprintf("Contribution caps: 401k $%s, IRA $%s", r.Retirement.Max401kContribution.StringFixed(0), r.Retirement.MaxIRAContribution.StringFixed(0)),
		"Married filing jointly brackets: single-filer bounds doubled (approximation)",
		fmt.Sprintf("Month length: %d days", r.SafeSpend.DaysPerMonth),
	}
}

func fillInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func fillDec(v *decimal.Decimal, def decimal.Decimal) {
	if v.IsZero() {
		*v = def
	}
}

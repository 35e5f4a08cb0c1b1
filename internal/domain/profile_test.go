package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFinancialProfile_Ratios(t *testing.T) {
	p := FinancialProfile{
		MonthlyIncome:        decimal.NewFromInt(5000),
		FixedExpenses:        decimal.NewFromInt(2000),
		VariableExpenses:     decimal.NewFromInt(1000),
		EmergencyFundCurrent: decimal.NewFromInt(3000),
		EmergencyFundTarget:  decimal.NewFromInt(12000),
		TotalDebt:            decimal.NewFromInt(10000),
	}

	assert.Equal(t, "3000", p.TotalExpenses().String())
	assert.Equal(t, "40", p.SavingsRate().String())
	assert.Equal(t, "2", p.DebtToIncomeRatio().String())
	assert.Equal(t, "25", p.EmergencyFundProgress().String())
	assert.Equal(t, "18000", p.RecommendedEmergencyFund().String())
	assert.False(t, p.IsEmergencyFundAdequate())

	p.EmergencyFundCurrent = decimal.NewFromInt(18000)
	assert.True(t, p.IsEmergencyFundAdequate())
}

func TestFinancialProfile_ZeroDivisors(t *testing.T) {
	p := FinancialProfile{TotalDebt: decimal.NewFromInt(500), FixedExpenses: decimal.NewFromInt(100)}

	assert.True(t, p.SavingsRate().IsZero())
	assert.True(t, p.DebtToIncomeRatio().IsZero())
	assert.True(t, p.EmergencyFundProgress().IsZero())
}

func TestFinancialProfile_Defaults(t *testing.T) {
	var p FinancialProfile
	assert.Equal(t, RiskModerate, p.EffectiveRiskTolerance())
	assert.Equal(t, DefaultRetirementAge, p.EffectiveRetirementAge())

	p.RiskTolerance = RiskAggressive
	p.RetirementAge = 60
	assert.Equal(t, RiskAggressive, p.EffectiveRiskTolerance())
	assert.Equal(t, 60, p.EffectiveRetirementAge())
}

func TestRiskTolerance_Valid(t *testing.T) {
	assert.True(t, RiskConservative.Valid())
	assert.True(t, RiskModerate.Valid())
	assert.True(t, RiskAggressive.Valid())
	assert.False(t, RiskTolerance("reckless").Valid())
	assert.False(t, RiskTolerance("").Valid())
}

func TestPlanInput_Defaults(t *testing.T) {
	plan := PlanInput{Profile: FinancialProfile{MonthlyIncome: decimal.NewFromInt(6500)}}
	assert.Equal(t, FilingSingle, plan.EffectiveFilingStatus())
	assert.Equal(t, "78000", plan.AnnualIncome().String())

	plan.FilingStatus = FilingMarriedJoint
	assert.Equal(t, FilingMarriedJoint, plan.EffectiveFilingStatus())
}

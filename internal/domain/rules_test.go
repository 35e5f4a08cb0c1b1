package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanningRules_WithDefaults(t *testing.T) {
	d := DefaultPlanningRules()

	t.Run("empty rules become the defaults", func(t *testing.T) {
		r := PlanningRules{}.WithDefaults()
		assert.Equal(t, d.Version, r.Version)
		assert.Equal(t, d.TaxYear, r.TaxYear)
		assert.Equal(t, d.SafeSpend, r.SafeSpend)
		assert.Equal(t, 10, r.Health.InvestmentPlaceholder)
		assert.Equal(t, 6, r.Scenario.EmergencyFundMonths)
		assert.Equal(t, 100, r.Growth.MaxYears)
		assert.True(t, r.Retirement.AnnualReturn.Equal(d.Retirement.AnnualReturn))
		assert.Len(t, r.Tax.BracketsSingle, 7)
	})

	t.Run("zero return is kept when other retirement values are set", func(t *testing.T) {
		r := PlanningRules{Retirement: RetirementRules{Max401kContribution: decimal.NewFromInt(23500)}}.WithDefaults()
		assert.True(t, r.Retirement.AnnualReturn.IsZero())
		assert.True(t, r.Retirement.Max401kContribution.Equal(decimal.NewFromInt(23500)))
		assert.True(t, r.Retirement.IncomeReplacement.Equal(d.Retirement.IncomeReplacement))
		assert.True(t, r.Retirement.MaxIRAContribution.Equal(d.Retirement.MaxIRAContribution))
	})

	t.Run("explicit values survive", func(t *testing.T) {
		r := PlanningRules{Version: "custom", Health: HealthScoringRules{InvestmentPlaceholder: 20}}.WithDefaults()
		assert.Equal(t, "custom", r.Version)
		assert.Equal(t, 20, r.Health.InvestmentPlaceholder)
	})
}

func TestDefaultPlanningRules_BracketsAreContiguous(t *testing.T) {
	brackets := DefaultPlanningRules().Tax.BracketsSingle
	require.NotEmpty(t, brackets)
	assert.True(t, brackets[0].Min.IsZero())
	for i := 1; i < len(brackets); i++ {
		assert.True(t, brackets[i].Min.Equal(brackets[i-1].Max), "bracket %d", i)
	}
	assert.True(t, brackets[len(brackets)-1].Unbounded())
}

func TestTaxBracket_Scaled(t *testing.T) {
	b := TaxBracket{Min: decimal.NewFromInt(11000), Max: decimal.NewFromInt(44725), Rate: decimal.NewFromFloat(0.12)}
	joint := b.Scaled(decimal.NewFromInt(2))

	assert.Equal(t, "22000", joint.Min.String())
	assert.Equal(t, "89450", joint.Max.String())
	assert.True(t, joint.Rate.Equal(b.Rate))

	top := TaxBracket{Min: decimal.NewFromInt(578125), Rate: decimal.NewFromFloat(0.37)}
	assert.True(t, top.Scaled(decimal.NewFromInt(2)).Unbounded())
}

func TestGenerateAssumptions(t *testing.T) {
	lines := DefaultPlanningRules().GenerateAssumptions()
	assert.Contains(t, lines, "Rules version 2024.1 (tax year 2024)")
	assert.Contains(t, lines, "Investment return: 7.0% annually, compounded monthly")
	assert.Contains(t, lines, "Contribution caps: 401k $23000, IRA $7000")
	assert.Contains(t, lines, "Month length: 30 days")
}

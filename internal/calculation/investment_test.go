package calculation

import (
	"testing"

	"github.com/businessthis/finplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInvestmentAdvisor() *InvestmentAdvisor {
	rules := domain.DefaultPlanningRules()
	return NewInvestmentAdvisor(rules.Investment, rules.Retirement)
}

func TestInvestmentRecommendations(t *testing.T) {
	tests := []struct {
		name        string
		age         int
		income      int64
		current     int64
		types       []string
		amounts     []int64
		priorities  []string
		total       int64
		firstAdvice string
	}{
		{
			name:        "mid-career earner below the Roth limit",
			age:         35,
			income:      80000,
			current:     10000,
			types:       []string{"401k", "Roth IRA", "Emergency Fund"},
			amounts:     []int64{12000, 7000, 30000},
			priorities:  []string{PriorityHigh, PriorityHigh, PriorityHigh},
			total:       49000,
			firstAdvice: "Balance growth with stability - consider 60/40 stock/bond allocation",
		},
		{
			name:        "high earner with a funded cushion",
			age:         55,
			income:      200000,
			current:     200000,
			types:       []string{"401k", "Traditional IRA", "Taxable Brokerage"},
			amounts:     []int64{23000, 7000, 20000},
			priorities:  []string{PriorityHigh, PriorityMedium, PriorityMedium},
			total:       50000,
			firstAdvice: "Shift toward more conservative investments as retirement approaches",
		},
		{
			name:        "no income skips the 401k",
			age:         22,
			income:      0,
			current:     0,
			types:       []string{"Roth IRA"},
			amounts:     []int64{7000},
			priorities:  []string{PriorityHigh},
			total:       7000,
			firstAdvice: "Focus on growth investments - you have time to recover from market downturns",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := newTestInvestmentAdvisor().Recommend(tt.age, dec(tt.income), domain.RiskModerate, dec(tt.current))
			require.NoError(t, err)
			require.Len(t, plan.Recommendations, len(tt.types))

			for i, rec := range plan.Recommendations {
				assert.Equal(t, tt.types[i], rec.Type)
				assert.True(t, rec.Amount.Equal(dec(tt.amounts[i])), "%s: got %s", rec.Type, rec.Amount)
				assert.Equal(t, tt.priorities[i], rec.Priority)
				assert.NotEmpty(t, rec.Reason)
			}
			assert.True(t, plan.TotalRecommended.Equal(dec(tt.total)), "total %s", plan.TotalRecommended)
			assert.Equal(t, domain.RiskModerate, plan.RiskTolerance)
			require.Len(t, plan.AgeBasedAdvice, 2)
			assert.Equal(t, tt.firstAdvice, plan.AgeBasedAdvice[0])
		})
	}
}

func TestAgeBasedAdvice(t *testing.T) {
	assert.Equal(t, "Consider starting with target-date funds for simplicity", AgeBasedAdvice(29)[1])
	assert.Equal(t, "Maximize employer 401k matching if available", AgeBasedAdvice(30)[1])
	assert.Equal(t, "Consider catch-up contributions to retirement accounts", AgeBasedAdvice(64)[1])
	assert.Equal(t, "Consider dividend-paying stocks and bonds", AgeBasedAdvice(65)[1])
}

func TestInvestmentRecommendations_InvalidInput(t *testing.T) {
	advisor := newTestInvestmentAdvisor()

	_, err := advisor.Recommend(10, dec(50000), domain.RiskModerate, dec(0))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = advisor.Recommend(40, dec(50000), domain.RiskTolerance(""), dec(0))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = advisor.Recommend(40, dec(-1), domain.RiskModerate, dec(0))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = advisor.Recommend(40, dec(50000), domain.RiskModerate, dec(-1))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

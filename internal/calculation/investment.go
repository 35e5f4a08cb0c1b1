package calculation

import (
	"github.com/businessthis/finplan/internal/domain"
	"github.com/businessthis/finplan/pkg/money"
	"github.com/shopspring/decimal"
)

// Recommendation priorities
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
)

// InvestmentAdvisor suggests where the next dollars of annual savings should go
type InvestmentAdvisor struct {
	Max401kContribution      decimal.Decimal
	MaxIRAContribution       decimal.Decimal
	RetirementSavingsRate    decimal.Decimal
	RothIncomeLimit          decimal.Decimal
	EmergencyFundIncomeShare decimal.Decimal
	BrokerageIncomeThreshold decimal.Decimal
	BrokerageRate            decimal.Decimal
	Logger                   Logger
}

// NewInvestmentAdvisor creates an investment advisor. Contribution caps come from the
// retirement rules so both calculators agree on the yearly limits.
func NewInvestmentAdvisor(rules domain.InvestmentRules, retirement domain.RetirementRules) *InvestmentAdvisor {
	return &InvestmentAdvisor{
		Max401kContribution:      retirement.Max401kContribution,
		MaxIRAContribution:       retirement.MaxIRAContribution,
		RetirementSavingsRate:    rules.RetirementSavingsRate,
		RothIncomeLimit:          rules.RothIncomeLimit,
		EmergencyFundIncomeShare: rules.EmergencyFundIncomeShare,
		BrokerageIncomeThreshold: rules.BrokerageIncomeThreshold,
		BrokerageRate:            rules.BrokerageRate,
		Logger:                   NopLogger{},
	}
}

// Recommend builds the ordered account recommendations for an annual income
func (ia *InvestmentAdvisor) Recommend(age int, annualIncome decimal.Decimal, risk domain.RiskTolerance, currentInvestments decimal.Decimal) (*domain.InvestmentPlan, error) {
	if err := requireAge("age", age); err != nil {
		return nil, err
	}
	if err := requireRisk(risk); err != nil {
		return nil, err
	}
	if err := requireNonNegative(
		amount{"annual_income", annualIncome},
		amount{"current_investments", currentInvestments},
	); err != nil {
		return nil, err
	}

	var recs []domain.InvestmentRecommendation
	if amt := decimal.Min(ia.Max401kContribution, annualIncome.Mul(ia.RetirementSavingsRate)); amt.IsPositive() {
		recs = append(recs, domain.InvestmentRecommendation{
			Type:     "401k",
			Amount:   amt,
			Priority: PriorityHigh,
			Reason:   "Tax-advantaged retirement savings",
		})
	}

	if annualIncome.LessThan(ia.RothIncomeLimit) {
		recs = append(recs, domain.InvestmentRecommendation{
			Type:     "Roth IRA",
			Amount:   ia.MaxIRAContribution,
			Priority: PriorityHigh,
			Reason:   "Tax-free growth for retirement",
		})
	} else {
		recs = append(recs, domain.InvestmentRecommendation{
			Type:     "Traditional IRA",
			Amount:   ia.MaxIRAContribution,
			Priority: PriorityMedium,
			Reason:   "Tax-deferred growth",
		})
	}

	emergencyTarget := annualIncome.Mul(ia.EmergencyFundIncomeShare)
	if currentInvestments.LessThan(emergencyTarget) {
		recs = append(recs, domain.InvestmentRecommendation{
			Type:     "Emergency Fund",
			Amount:   emergencyTarget.Sub(currentInvestments),
			Priority: PriorityHigh,
			Reason:   "Financial safety net",
		})
	}

	if annualIncome.GreaterThan(ia.BrokerageIncomeThreshold) {
		recs = append(recs, domain.InvestmentRecommendation{
			Type:     "Taxable Brokerage",
			Amount:   annualIncome.Mul(ia.BrokerageRate),
			Priority: PriorityMedium,
			Reason:   "Additional growth opportunities",
		})
	}

	total := decimal.Zero
	for _, r := range recs {
		total = total.Add(r.Amount)
	}
	ia.Logger.Debugf("%d recommendations totalling %s", len(recs), money.Cents(total).String())

	return &domain.InvestmentPlan{
		Recommendations:  recs,
		TotalRecommended: total,
		RiskTolerance:    risk,
		AgeBasedAdvice:   AgeBasedAdvice(age),
	}, nil
}

// AgeBasedAdvice returns general guidance for a life stage
func AgeBasedAdvice(age int) []string {
	switch {
	case age < 30:
		return []string{
			"Focus on growth investments - you have time to recover from market downturns",
			"Consider starting with target-date funds for simplicity",
		}
	case age < 50:
		return []string{
			"Balance growth with stability - consider 60/40 stock/bond allocation",
			"Maximize employer 401k matching if available",
		}
	case age < 65:
		return []string{
			"Shift toward more conservative investments as retirement approaches",
			"Consider catch-up contributions to retirement accounts",
		}
	default:
		return []string{
			"Focus on income generation and capital preservation",
			"Consider dividend-paying stocks and bonds",
		}
	}
}

package calculation

import (
	"github.com/businessthis/finplan/internal/domain"
	"github.com/businessthis/finplan/pkg/money"
	"github.com/shopspring/decimal"
)

// AllocationAdvisor recommends an age and risk based stock/bond/cash split
type AllocationAdvisor struct {
	Logger Logger
}

// NewAllocationAdvisor creates an allocation advisor
func NewAllocationAdvisor() *AllocationAdvisor {
	return &AllocationAdvisor{Logger: NopLogger{}}
}

// Recommend splits investment across stocks, bonds and cash. The percentages always sum
// to 100; any rounding remainder goes to cash.
func (aa *AllocationAdvisor) Recommend(age int, risk domain.RiskTolerance, investment decimal.Decimal) (*domain.AllocationResult, error) {
	if err := requireAge("age", age); err != nil {
		return nil, err
	}
	if err := requireRisk(risk); err != nil {
		return nil, err
	}
	if err := requireNonNegative(amount{"investment_amount", investment}); err != nil {
		return nil, err
	}

	stock, bond, cash := BaseAllocation(age, risk)
	if total := stock + bond + cash; total != 100 {
		aa.Logger.Debugf("base split %d/%d/%d sums to %d, renormalizing", stock, bond, cash, total)
		stock, bond, cash = normalizeAllocation(stock, bond, cash)
	}

	return &domain.AllocationResult{
		StockPct:        stock,
		BondPct:         bond,
		CashPct:         cash,
		StockAmount:     money.PercentOf(investment, stock),
		BondAmount:      money.PercentOf(investment, bond),
		CashAmount:      money.PercentOf(investment, cash),
		Recommendations: allocationRecommendations(stock, bond, cash),
	}, nil
}

// BaseAllocation returns the tier formula percentages before renormalization
func BaseAllocation(age int, risk domain.RiskTolerance) (stock, bond, cash int) {
	switch risk {
	case domain.RiskConservative:
		return max(20, 100-age), min(80, age+20), 10
	case domain.RiskAggressive:
		return max(80, 110-age), max(0, min(20, age-10)), 5
	default:
		return max(60, 100-age), min(40, age), 5
	}
}

// normalizeAllocation scales the split proportionally to 100, flooring stock and
// bond and assigning the remainder to cash.
func normalizeAllocation(stock, bond, cash int) (int, int, int) {
	total := stock + bond + cash
	if total <= 0 {
		return 0, 0, 100
	}
	s := stock * 100 / total
	b := bond * 100 / total
	return s, b, 100 - s - b
}

func allocationRecommendations(stock, bond, cash int) []string {
	var recs []string
	if stock > 80 {
		recs = append(recs, "Consider reducing stock allocation for better diversification")
	} else if stock < 40 {
		recs = append(recs, "Consider increasing stock allocation for long-term growth")
	}
	if bond > 60 {
		recs = append(recs, "High bond allocation may limit growth potential")
	} else if bond < 20 {
		recs = append(recs, "Consider adding bonds for stability")
	}
	if cash > 20 {
		recs = append(recs, "High cash allocation may lose value to inflation")
	} else if cash < 5 {
		recs = append(recs, "Consider maintaining emergency cash reserves")
	}
	if len(recs) == 0 {
		recs = append(recs, "Your asset allocation looks well-balanced!")
	}
	return recs
}

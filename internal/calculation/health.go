package calculation

import (
	"github.com/businessthis/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxSubscore is the ceiling of each of the four health subscores
const MaxSubscore = 25

// Recommendation thresholds: a subscore below its threshold produces advice
const (
	goodSavingsScore    = 15
	goodDebtScore       = 20
	goodEmergencyScore  = 20
	goodInvestmentScore = 15
)

// HealthScorer computes the composite 0-100 financial health score
type HealthScorer struct {
	// InvestmentPlaceholder is the fixed investment subscore. There is no
	// investment metric yet; the value is carried over unchanged.
	InvestmentPlaceholder int
	Logger                Logger
}

// NewHealthScorer creates a health scorer from the rule set
func NewHealthScorer(rules domain.HealthScoringRules) *HealthScorer {
	return &HealthScorer{
		InvestmentPlaceholder: clampScore(rules.InvestmentPlaceholder),
		Logger:                NopLogger{},
	}
}

// Score evaluates a profile
func (hs *HealthScorer) Score(p *domain.FinancialProfile) (*domain.HealthScoreResult, error) {
	if err := ValidateProfile(p); err != nil {
		return nil, err
	}

	metrics := domain.HealthMetrics{
		SavingsRate:           p.SavingsRate(),
		DebtRatio:             p.DebtToIncomeRatio(),
		EmergencyFundProgress: p.EmergencyFundProgress(),

		RecommendedEmergencyFund: p.RecommendedEmergencyFund(),
		EmergencyFundAdequate:    p.IsEmergencyFundAdequate(),
	}
	subscores := domain.HealthSubscores{
		SavingsRate:   SavingsRateScore(metrics.SavingsRate),
		DebtRatio:     DebtRatioScore(metrics.DebtRatio),
		EmergencyFund: EmergencyFundScore(metrics.EmergencyFundProgress),
		Investment:    hs.InvestmentPlaceholder,
	}
	overall := subscores.Total()
	hs.Logger.Debugf("subscores savings=%d debt=%d emergency=%d investment=%d overall=%d",
		subscores.SavingsRate, subscores.DebtRatio, subscores.EmergencyFund, subscores.Investment, overall)

	return &domain.HealthScoreResult{
		OverallScore:    overall,
		Subscores:       subscores,
		HealthLevel:     HealthLevelFor(overall),
		Metrics:         metrics,
		Recommendations: healthRecommendations(subscores),
	}, nil
}

// SavingsRateScore maps a savings rate percentage to 0-25 points
func SavingsRateScore(rate decimal.Decimal) int {
	switch {
	case rate.GreaterThanOrEqual(decimal.NewFromInt(20)):
		return 25
	case rate.GreaterThanOrEqual(decimal.NewFromInt(15)):
		return 20
	case rate.GreaterThanOrEqual(decimal.NewFromInt(10)):
		return 15
	case rate.GreaterThanOrEqual(decimal.NewFromInt(5)):
		return 10
	case rate.IsNegative():
		return 0
	default:
		return clampScore(int(rate.Mul(decimal.NewFromInt(2)).Floor().IntPart()))
	}
}

// DebtRatioScore maps debt over monthly income to 0-25 points
func DebtRatioScore(ratio decimal.Decimal) int {
	switch {
	case ratio.LessThanOrEqual(decimal.NewFromFloat(0.2)):
		return 25
	case ratio.LessThanOrEqual(decimal.NewFromFloat(0.3)):
		return 20
	case ratio.LessThanOrEqual(decimal.NewFromFloat(0.4)):
		return 15
	case ratio.LessThanOrEqual(decimal.NewFromFloat(0.5)):
		return 10
	default:
		penalty := ratio.Mul(decimal.NewFromInt(50)).Floor()
		// ratio > 0.5 here, so anything past 25 points of penalty is zero
		if penalty.GreaterThan(decimal.NewFromInt(MaxSubscore)) {
			return 0
		}
		return clampScore(MaxSubscore - int(penalty.IntPart()))
	}
}

// EmergencyFundScore maps emergency fund progress percentage to 0-25 points
func EmergencyFundScore(progress decimal.Decimal) int {
	switch {
	case progress.GreaterThanOrEqual(decimal.NewFromInt(100)):
		return 25
	case progress.GreaterThanOrEqual(decimal.NewFromInt(75)):
		return 20
	case progress.GreaterThanOrEqual(decimal.NewFromInt(50)):
		return 15
	case progress.GreaterThanOrEqual(decimal.NewFromInt(25)):
		return 10
	default:
		return clampScore(int(progress.Div(decimal.NewFromInt(4)).Floor().IntPart()))
	}
}

// HealthLevelFor bands an overall score
func HealthLevelFor(score int) domain.HealthLevel {
	switch {
	case score >= 90:
		return domain.HealthExcellent
	case score >= 75:
		return domain.HealthGood
	case score >= 60:
		return domain.HealthFair
	case score >= 40:
		return domain.HealthPoor
	default:
		return domain.HealthCritical
	}
}

func healthRecommendations(s domain.HealthSubscores) []string {
	var recs []string
	if s.SavingsRate < goodSavingsScore {
		recs = append(recs, "Increase your savings rate by reducing expenses or increasing income")
	}
	if s.DebtRatio < goodDebtScore {
		recs = append(recs, "Focus on paying down debt to improve your debt-to-income ratio")
	}
	if s.EmergencyFund < goodEmergencyScore {
		recs = append(recs, "Build your emergency fund to cover 3-6 months of expenses")
	}
	if s.Investment < goodInvestmentScore {
		recs = append(recs, "Consider starting an investment portfolio for long-term wealth building")
	}
	if len(recs) == 0 {
		recs = append(recs, "Great job! Your financial health is in excellent shape")
	}
	return recs
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxSubscore {
		return MaxSubscore
	}
	return v
}

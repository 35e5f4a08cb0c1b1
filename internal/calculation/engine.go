package calculation

import (
	"context"

	"github.com/businessthis/finplan/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// PlanningEngine orchestrates all planning calculations. It is immutable after
// construction apart from SetLogger and safe for concurrent use.
type PlanningEngine struct {
	Rules domain.PlanningRules

	SafeSpendCalc  *SafeSpendCalculator
	HealthCalc     *HealthScorer
	RetirementCalc *RetirementPlanner
	GrowthCalc     *GrowthProjector
	TaxCalc        *TaxEstimator
	AllocationCalc *AllocationAdvisor
	ScenarioCalc   *ScenarioModeler
	InvestmentCalc *InvestmentAdvisor

	Logger Logger
}

// NewPlanningEngine creates a planning engine with the default rule set
func NewPlanningEngine() *PlanningEngine {
	return NewPlanningEngineWithRules(domain.DefaultPlanningRules())
}

// NewPlanningEngineWithRules creates a planning engine from a rule set. Zero-valued
// settings are filled from the defaults.
func NewPlanningEngineWithRules(rules domain.PlanningRules) *PlanningEngine {
	rules = rules.WithDefaults()
	engine := &PlanningEngine{
		Rules:          rules,
		SafeSpendCalc:  NewSafeSpendCalculator(rules.SafeSpend),
		HealthCalc:     NewHealthScorer(rules.Health),
		RetirementCalc: NewRetirementPlanner(rules.Retirement),
		GrowthCalc:     NewGrowthProjector(rules.Growth),
		TaxCalc:        NewTaxEstimator(rules.Tax),
		AllocationCalc: NewAllocationAdvisor(),
		ScenarioCalc:   NewScenarioModeler(rules.Scenario),
		InvestmentCalc: NewInvestmentAdvisor(rules.Investment, rules.Retirement),
	}
	engine.SetLogger(nil)
	return engine
}

// SetLogger sets the logger for the engine and its calculators. If nil is provided, a no-op logger is used.
func (pe *PlanningEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	pe.Logger = l
	pe.SafeSpendCalc.Logger = withComponent(l, "safe-spend")
	pe.HealthCalc.Logger = withComponent(l, "health")
	pe.RetirementCalc.Logger = withComponent(l, "retirement")
	pe.GrowthCalc.Logger = withComponent(l, "growth")
	pe.TaxCalc.Logger = withComponent(l, "tax")
	pe.AllocationCalc.Logger = withComponent(l, "allocation")
	pe.ScenarioCalc.Logger = withComponent(l, "scenario")
	pe.InvestmentCalc.Logger = withComponent(l, "investment")
}

// ComputeSafeSpend returns the daily, weekly and monthly safe-to-spend amounts
func (pe *PlanningEngine) ComputeSafeSpend(income, fixed, variable, savingsGoal decimal.Decimal, months int) (*domain.SafeSpendResult, error) {
	return pe.SafeSpendCalc.Calculate(income, fixed, variable, savingsGoal, months)
}

// ComputeSafeSpendForProfile returns the safe spend for a stored profile and its goals
func (pe *PlanningEngine) ComputeSafeSpendForProfile(profile *domain.FinancialProfile, goals []domain.SavingsGoal, savingsGoal *decimal.Decimal, months int) (*domain.SafeSpendResult, error) {
	return pe.SafeSpendCalc.CalculateForProfile(profile, goals, savingsGoal, months)
}

// ComputeHealthScore returns the composite financial health score of a profile
func (pe *PlanningEngine) ComputeHealthScore(profile *domain.FinancialProfile) (*domain.HealthScoreResult, error) {
	return pe.HealthCalc.Score(profile)
}

// ComputeHealthScores scores several profiles concurrently. Results keep the input
// order; the first failure cancels the remaining work.
func (pe *PlanningEngine) ComputeHealthScores(ctx context.Context, profiles []*domain.FinancialProfile) ([]*domain.HealthScoreResult, error) {
	results := make([]*domain.HealthScoreResult, len(profiles))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range profiles {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := pe.HealthCalc.Score(p)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ComputeRetirementNeeds returns the savings target and monthly contribution for retirement
func (pe *PlanningEngine) ComputeRetirementNeeds(currentAge, retirementAge int, currentSavings, monthlyIncome, desiredIncome decimal.Decimal) (*domain.RetirementResult, error) {
	return pe.RetirementCalc.Plan(currentAge, retirementAge, currentSavings, monthlyIncome, desiredIncome)
}

// ComputeCompoundInterest projects a principal and monthly contributions forward
func (pe *PlanningEngine) ComputeCompoundInterest(principal, monthlyContribution, annualRate decimal.Decimal, years int) (*domain.GrowthResult, error) {
	return pe.GrowthCalc.Project(principal, monthlyContribution, annualRate, years)
}

// ComputeGrowthSchedule returns the year-by-year balances of a compound growth projection
func (pe *PlanningEngine) ComputeGrowthSchedule(principal, monthlyContribution, annualRate decimal.Decimal, years int) ([]domain.GrowthYear, error) {
	return pe.GrowthCalc.YearlySchedule(principal, monthlyContribution, annualRate, years)
}

// ComputeTaxEstimate estimates annual income tax
func (pe *PlanningEngine) ComputeTaxEstimate(income decimal.Decimal, status domain.FilingStatus, deductions, credits decimal.Decimal) (*domain.TaxResult, error) {
	return pe.TaxCalc.Estimate(income, status, deductions, credits)
}

// ComputeAssetAllocation recommends a stock/bond/cash split
func (pe *PlanningEngine) ComputeAssetAllocation(age int, risk domain.RiskTolerance, investment decimal.Decimal) (*domain.AllocationResult, error) {
	return pe.AllocationCalc.Recommend(age, risk, investment)
}

// ComputeWhatIf compares income and expense scenarios against the base case
func (pe *PlanningEngine) ComputeWhatIf(baseIncome, baseExpenses decimal.Decimal, scenarios []domain.ScenarioSpec) (*domain.ScenarioResult, error) {
	return pe.ScenarioCalc.Compare(baseIncome, baseExpenses, scenarios)
}

// ComputeInvestmentPlan recommends accounts and amounts for annual savings
func (pe *PlanningEngine) ComputeInvestmentPlan(age int, annualIncome decimal.Decimal, risk domain.RiskTolerance, currentInvestments decimal.Decimal) (*domain.InvestmentPlan, error) {
	return pe.InvestmentCalc.Recommend(age, annualIncome, risk, currentInvestments)
}

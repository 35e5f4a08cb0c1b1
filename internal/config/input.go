package config

import (
	"fmt"
	"os"

	"github.com/businessthis/finplan/internal/calculation"
	"github.com/businessthis/finplan/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of plan input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.PlanInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a plan document
func (ip *InputParser) Parse(data []byte) (*domain.PlanInput, error) {
	var plan domain.PlanInput
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlanInput(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &plan, nil
}

// LoadAll loads several plan files, stopping at the first failure
func (ip *InputParser) LoadAll(filenames []string) ([]*domain.PlanInput, error) {
	plans := make([]*domain.PlanInput, 0, len(filenames))
	for _, f := range filenames {
		plan, err := ip.LoadFromFile(f)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

// ValidatePlanInput validates the loaded plan
func (ip *InputParser) ValidatePlanInput(plan *domain.PlanInput) error {
	if err := calculation.ValidateProfile(&plan.Profile); err != nil {
		return fmt.Errorf("profile: %w", err)
	}

	for i, goal := range plan.Goals {
		if err := ip.validateGoal(&goal); err != nil {
			return fmt.Errorf("goal %d validation failed: %w", i, err)
		}
	}

	for i, scenario := range plan.Scenarios {
		if scenario.IncomeMultiplier.IsNegative() || scenario.ExpenseMultiplier.IsNegative() {
			return fmt.Errorf("scenario %d: multipliers cannot be negative", i)
		}
	}

	if plan.RetirementSavings.IsNegative() {
		return fmt.Errorf("retirement savings cannot be negative")
	}
	if plan.InvestableAmount.IsNegative() {
		return fmt.Errorf("investable amount cannot be negative")
	}
	if plan.CurrentInvestments.IsNegative() {
		return fmt.Errorf("current investments cannot be negative")
	}
	if plan.FilingStatus != "" && !plan.FilingStatus.Valid() {
		return fmt.Errorf("filing status must be 'single' or 'married_joint'")
	}

	return nil
}

func (ip *InputParser) validateGoal(goal *domain.SavingsGoal) error {
	if goal.Name == "" {
		return fmt.Errorf("goal name is required")
	}
	if goal.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("target amount must be positive")
	}
	if goal.CurrentAmount.IsNegative() {
		return fmt.Errorf("current amount cannot be negative")
	}
	if goal.MonthlyContribution.IsNegative() {
		return fmt.Errorf("monthly contribution cannot be negative")
	}
	return nil
}

// CreateExamplePlanInput creates an example plan
func (ip *InputParser) CreateExamplePlanInput() *domain.PlanInput {
	age := 34
	score := 720

	return &domain.PlanInput{
		Name: "Example Household",
		Profile: domain.FinancialProfile{
			MonthlyIncome:        decimal.NewFromInt(6500),
			FixedExpenses:        decimal.NewFromInt(2800),
			VariableExpenses:     decimal.NewFromInt(1200),
			EmergencyFundCurrent: decimal.NewFromInt(9000),
			EmergencyFundTarget:  decimal.NewFromInt(24000),
			TotalDebt:            decimal.NewFromInt(1500),
			CreditScore:          &score,
			Age:                  &age,
			RiskTolerance:        domain.RiskModerate,
			RetirementAge:        65,
		},
		Goals: []domain.SavingsGoal{
			{
				Name:                "Emergency fund top-up",
				TargetAmount:        decimal.NewFromInt(15000),
				CurrentAmount:       decimal.NewFromInt(9000),
				MonthlyContribution: decimal.NewFromInt(500),
				Priority:            1,
			},
			{
				Name:                "Vacation",
				TargetAmount:        decimal.NewFromInt(3000),
				MonthlyContribution: decimal.NewFromInt(150),
				Priority:            2,
			},
		},
		Scenarios: []domain.ScenarioSpec{
			{Name: "Raise", IncomeMultiplier: decimal.NewFromFloat(1.1), ExpenseMultiplier: decimal.NewFromInt(1)},
			{Name: "Job loss", IncomeMultiplier: decimal.Zero, ExpenseMultiplier: decimal.NewFromFloat(0.8)},
			{Name: "New baby", IncomeMultiplier: decimal.NewFromInt(1), ExpenseMultiplier: decimal.NewFromFloat(1.25)},
		},
		RetirementSavings:  decimal.NewFromInt(42000),
		InvestableAmount:   decimal.NewFromInt(10000),
		CurrentInvestments: decimal.NewFromInt(42000),
		FilingStatus:       domain.FilingSingle,
	}
}

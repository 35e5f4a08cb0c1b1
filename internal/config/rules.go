package config

import (
	"fmt"
	"os"

	"github.com/businessthis/finplan/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// RulesParser loads versioned planning rule files
type RulesParser struct{}

// NewRulesParser creates a new rules parser
func NewRulesParser() *RulesParser {
	return &RulesParser{}
}

// LoadFromFile loads planning rules from a YAML file. Settings missing from the file
// keep their default values.
func (rp *RulesParser) LoadFromFile(filename string) (*domain.PlanningRules, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var rules domain.PlanningRules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	rules = rules.WithDefaults()

	if err := rp.ValidateRules(&rules); err != nil {
		return nil, fmt.Errorf("rules validation failed: %w", err)
	}

	return &rules, nil
}

// LoadOrDefault loads the rules file when a path is given and returns the defaults otherwise
func (rp *RulesParser) LoadOrDefault(filename string) (*domain.PlanningRules, error) {
	if filename == "" {
		rules := domain.DefaultPlanningRules()
		return &rules, nil
	}
	return rp.LoadFromFile(filename)
}

// SaveToFile writes rules as YAML
func (rp *RulesParser) SaveToFile(rules *domain.PlanningRules, filename string) error {
	data, err := yaml.Marshal(rules)
	if err != nil {
		return fmt.Errorf("failed to marshal rules: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// maxGrowthYears caps the configurable projection horizon
const maxGrowthYears = 200

// ValidateRules validates a complete rule set
func (rp *RulesParser) ValidateRules(rules *domain.PlanningRules) error {
	if rules.SafeSpend.DaysPerMonth <= 0 || rules.SafeSpend.DaysPerWeek <= 0 {
		return fmt.Errorf("safe_spend: day counts must be positive")
	}
	if rules.SafeSpend.DaysPerWeek > rules.SafeSpend.DaysPerMonth {
		return fmt.Errorf("safe_spend: days per week cannot exceed days per month")
	}
	if rules.SafeSpend.DefaultGoalMonths <= 0 {
		return fmt.Errorf("safe_spend: default goal months must be positive")
	}

	if rules.Health.InvestmentPlaceholder < 0 || rules.Health.InvestmentPlaceholder > 25 {
		return fmt.Errorf("health_scoring: investment placeholder must be between 0 and 25")
	}

	if rules.Growth.MaxYears <= 0 || rules.Growth.MaxYears > maxGrowthYears {
		return fmt.Errorf("growth: max years must be between 1 and %d", maxGrowthYears)
	}

	if err := rp.validateRetirement(&rules.Retirement); err != nil {
		return fmt.Errorf("retirement: %w", err)
	}
	if err := rp.validateTax(&rules.Tax); err != nil {
		return fmt.Errorf("tax: %w", err)
	}

	if rules.Scenario.EmergencyFundMonths <= 0 {
		return fmt.Errorf("scenario: emergency fund months must be positive")
	}

	inv := rules.Investment
	if !isRate(inv.RetirementSavingsRate) || !isRate(inv.EmergencyFundIncomeShare) || !isRate(inv.BrokerageRate) {
		return fmt.Errorf("investment: rates must be between 0 and 1")
	}
	if inv.RothIncomeLimit.IsNegative() || inv.BrokerageIncomeThreshold.IsNegative() {
		return fmt.Errorf("investment: income thresholds cannot be negative")
	}

	return nil
}

func (rp *RulesParser) validateRetirement(r *domain.RetirementRules) error {
	if r.AnnualReturn.IsNegative() || r.AnnualReturn.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("annual return must be between 0 and 100%%")
	}
	if !r.IncomeReplacement.IsPositive() || r.IncomeReplacement.GreaterThan(decimal.NewFromInt(2)) {
		return fmt.Errorf("income replacement must be between 0 and 2")
	}
	if !r.WithdrawalMultiple.IsPositive() {
		return fmt.Errorf("withdrawal multiple must be positive")
	}
	if r.Max401kContribution.IsNegative() || r.MaxIRAContribution.IsNegative() {
		return fmt.Errorf("contribution caps cannot be negative")
	}
	return nil
}

// validateTax requires ascending, contiguous brackets with only the last one open-ended
func (rp *RulesParser) validateTax(t *domain.TaxRules) error {
	if t.StandardDeductionSingle.IsNegative() || t.StandardDeductionMarriedJoint.IsNegative() {
		return fmt.Errorf("standard deductions cannot be negative")
	}
	if len(t.BracketsSingle) == 0 {
		return fmt.Errorf("at least one bracket is required")
	}
	if !t.BracketsSingle[0].Min.IsZero() {
		return fmt.Errorf("first bracket must start at 0")
	}
	for i, b := range t.BracketsSingle {
		if !isRate(b.Rate) {
			return fmt.Errorf("bracket %d: rate must be between 0 and 1", i)
		}
		last := i == len(t.BracketsSingle)-1
		if b.Unbounded() != last {
			return fmt.Errorf("bracket %d: only the last bracket may be open-ended", i)
		}
		if !last {
			if b.Max.LessThanOrEqual(b.Min) {
				return fmt.Errorf("bracket %d: max must be greater than min", i)
			}
			if !t.BracketsSingle[i+1].Min.Equal(b.Max) {
				return fmt.Errorf("bracket %d: next bracket must start at %s", i, b.Max.String())
			}
		}
	}
	if !isRate(t.HighEffectiveRate) {
		return fmt.Errorf("high effective rate must be between 0 and 1")
	}
	return nil
}

func isRate(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(1))
}

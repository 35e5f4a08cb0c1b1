package domain

import (
	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ScenarioSpec describes one what-if case as multipliers on the base income and expenses
type ScenarioSpec struct {
	Name              string          `yaml:"name" json:"name"`
	IncomeMultiplier  decimal.Decimal `yaml:"income_multiplier" json:"income_multiplier"`
	ExpenseMultiplier decimal.Decimal `yaml:"expense_multiplier" json:"expense_multiplier"`
}

// UnmarshalYAML implements custom YAML unmarshaling for ScenarioSpec.
// Omitted multipliers default to 1 (no change from the base case).
func (s *ScenarioSpec) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		Name              string  `yaml:"name"`
		IncomeMultiplier  *string `yaml:"income_multiplier,omitempty"`
		ExpenseMultiplier *string `yaml:"expense_multiplier,omitempty"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	s.Name = aux.Name
	s.IncomeMultiplier = decimal.NewFromInt(1)
	s.ExpenseMultiplier = decimal.NewFromInt(1)

	if aux.IncomeMultiplier != nil {
		val, err := decimal.NewFromString(*aux.IncomeMultiplier)
		if err != nil {
			return err
		}
		s.IncomeMultiplier = val
	}
	if aux.ExpenseMultiplier != nil {
		val, err := decimal.NewFromString(*aux.ExpenseMultiplier)
		if err != nil {
			return err
		}
		s.ExpenseMultiplier = val
	}
	return nil
}

// UnmarshalJSON applies the same multiplier defaults as UnmarshalYAML
func (s *ScenarioSpec) UnmarshalJSON(data []byte) error {
	var aux struct {
		Name              string           `json:"name"`
		IncomeMultiplier  *decimal.Decimal `json:"income_multiplier"`
		ExpenseMultiplier *decimal.Decimal `json:"expense_multiplier"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	s.Name = aux.Name
	s.IncomeMultiplier = decimal.NewFromInt(1)
	s.ExpenseMultiplier = decimal.NewFromInt(1)
	if aux.IncomeMultiplier != nil {
		s.IncomeMultiplier = *aux.IncomeMultiplier
	}
	if aux.ExpenseMultiplier != nil {
		s.ExpenseMultiplier = *aux.ExpenseMultiplier
	}
	return nil
}

// BaseCase is the unmodified income and expense position
type BaseCase struct {
	Income         decimal.Decimal `json:"income" yaml:"income"`
	Expenses       decimal.Decimal `json:"expenses" yaml:"expenses"`
	MonthlySavings decimal.Decimal `json:"monthly_savings" yaml:"monthly_savings"`
}

// ScenarioOutcome is the financial position under one what-if case.
// When savings are not positive the emergency fund is unreachable and
// MonthsToEmergencyFund is zero.
type ScenarioOutcome struct {
	Name                   string          `json:"name" yaml:"name"`
	Income                 decimal.Decimal `json:"income" yaml:"income"`
	Expenses               decimal.Decimal `json:"expenses" yaml:"expenses"`
	MonthlySavings         decimal.Decimal `json:"monthly_savings" yaml:"monthly_savings"`
	AnnualSavings          decimal.Decimal `json:"annual_savings" yaml:"annual_savings"`
	EmergencyFundTarget    decimal.Decimal `json:"emergency_fund_target" yaml:"emergency_fund_target"`
	MonthsToEmergencyFund  decimal.Decimal `json:"months_to_emergency_fund" yaml:"months_to_emergency_fund"`
	EmergencyFundReachable bool            `json:"emergency_fund_reachable" yaml:"emergency_fund_reachable"`
	SavingsRate            decimal.Decimal `json:"savings_rate" yaml:"savings_rate"`
}

// ScenarioResult holds the base case and the scenarios in input order
type ScenarioResult struct {
	Base      BaseCase          `json:"base" yaml:"base"`
	Scenarios []ScenarioOutcome `json:"scenarios" yaml:"scenarios"`
}

// Lookup returns the outcome with the given name
func (r *ScenarioResult) Lookup(name string) (ScenarioOutcome, bool) {
	for _, s := range r.Scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return ScenarioOutcome{}, false
}

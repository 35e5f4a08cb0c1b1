package config

import (
	"path/filepath"
	"testing"

	"github.com/businessthis/finplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesParser_PartialFileKeepsDefaults(t *testing.T) {
	content := "version: \"2025.1\"\n" +
		"tax_year: 2025\n" +
		"retirement:\n" +
		"  annual_return: 0.06\n" +
		"  max_401k_contribution: 23500\n" +
		"tax:\n" +
		"  standard_deduction_single: 15000\n"

	rules, err := NewRulesParser().LoadFromFile(writeTemp(t, "rules.yaml", content))
	require.NoError(t, err)

	defaults := domain.DefaultPlanningRules()
	assert.Equal(t, "2025.1", rules.Version)
	assert.Equal(t, 2025, rules.TaxYear)
	assert.True(t, rules.Retirement.AnnualReturn.Equal(decimal.RequireFromString("0.06")))
	assert.True(t, rules.Retirement.Max401kContribution.Equal(decimal.NewFromInt(23500)))
	assert.True(t, rules.Retirement.MaxIRAContribution.Equal(defaults.Retirement.MaxIRAContribution))
	assert.True(t, rules.Tax.StandardDeductionSingle.Equal(decimal.NewFromInt(15000)))
	assert.True(t, rules.Tax.StandardDeductionMarriedJoint.Equal(defaults.Tax.StandardDeductionMarriedJoint))
	assert.Len(t, rules.Tax.BracketsSingle, len(defaults.Tax.BracketsSingle))
	assert.Equal(t, defaults.SafeSpend, rules.SafeSpend)
}

func TestRulesParser_CustomBrackets(t *testing.T) {
	content := "tax:\n" +
		"  brackets_single:\n" +
		"    - {min: 0, max: 10000, rate: 0.1}\n" +
		"    - {min: 10000, max: 0, rate: 0.2}\n"

	rules, err := NewRulesParser().LoadFromFile(writeTemp(t, "rules.yaml", content))
	require.NoError(t, err)
	require.Len(t, rules.Tax.BracketsSingle, 2)
	assert.True(t, rules.Tax.BracketsSingle[1].Unbounded())
}

func TestRulesParser_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "gap between brackets",
			content: "tax:\n  brackets_single:\n    - {min: 0, max: 10000, rate: 0.1}\n    - {min: 12000, max: 0, rate: 0.2}\n",
			wantErr: "next bracket must start at 10000",
		},
		{
			name:    "open-ended bracket in the middle",
			content: "tax:\n  brackets_single:\n    - {min: 0, max: 0, rate: 0.1}\n    - {min: 10000, max: 0, rate: 0.2}\n",
			wantErr: "only the last bracket may be open-ended",
		},
		{
			name:    "first bracket above zero",
			content: "tax:\n  brackets_single:\n    - {min: 100, max: 0, rate: 0.1}\n",
			wantErr: "first bracket must start at 0",
		},
		{
			name:    "rate above 100%",
			content: "tax:\n  brackets_single:\n    - {min: 0, max: 0, rate: 1.5}\n",
			wantErr: "rate must be between 0 and 1",
		},
		{
			name:    "negative return",
			content: "retirement:\n  annual_return: -0.02\n",
			wantErr: "annual return",
		},
		{
			name:    "placeholder above the subscore ceiling",
			content: "health_scoring:\n  investment_placeholder: 30\n",
			wantErr: "investment placeholder",
		},
		{
			name:    "growth horizon too long",
			content: "growth:\n  max_years: 5000\n",
			wantErr: "growth: max years must be between 1 and 200",
		},
		{
			name:    "negative growth horizon",
			content: "growth:\n  max_years: -1\n",
			wantErr: "growth: max years",
		},
		{
			name:    "week longer than month",
			content: "safe_spend:\n  days_per_month: 5\n",
			wantErr: "days per week cannot exceed days per month",
		},
		{
			name:    "not yaml",
			content: "tax: [\n",
			wantErr: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRulesParser().LoadFromFile(writeTemp(t, "rules.yaml", tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRulesParser_SaveAndReload(t *testing.T) {
	parser := NewRulesParser()
	defaults := domain.DefaultPlanningRules()
	path := filepath.Join(t.TempDir(), "rules.yaml")

	require.NoError(t, parser.SaveToFile(&defaults, path))
	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, defaults.Version, loaded.Version)
	assert.True(t, loaded.Retirement.AnnualReturn.Equal(defaults.Retirement.AnnualReturn))
	require.Len(t, loaded.Tax.BracketsSingle, len(defaults.Tax.BracketsSingle))
	for i, b := range defaults.Tax.BracketsSingle {
		assert.True(t, loaded.Tax.BracketsSingle[i].Max.Equal(b.Max), "bracket %d", i)
		assert.True(t, loaded.Tax.BracketsSingle[i].Rate.Equal(b.Rate), "bracket %d", i)
	}
}

func TestRulesParser_LoadOrDefault(t *testing.T) {
	rules, err := NewRulesParser().LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPlanningRules().Version, rules.Version)

	_, err = NewRulesParser().LoadOrDefault("does-not-exist.yaml")
	assert.Error(t, err)
}

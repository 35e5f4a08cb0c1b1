package integration

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/businessthis/finplan/internal/calculation"
	"github.com/businessthis/finplan/internal/domain"
	"github.com/businessthis/finplan/internal/output"
)

func TestOutputGeneration(t *testing.T) {
	plan := loadFixture(t)
	out, err := runPlan(calculation.NewPlanningEngine(), plan)
	require.NoError(t, err)

	results := map[string]any{
		"safe spend": out.SafeSpend,
		"health":     out.Health,
		"retirement": out.Retirement,
		"tax":        out.Tax,
		"allocation": out.Allocation,
		"what-if":    out.WhatIf,
		"investment": out.Investment,
	}
	tabular := map[string]bool{"tax": true, "what-if": true, "investment": true}

	for _, format := range output.AvailableFormatterNames() {
		for name, result := range results {
			t.Run(format+"/"+name, func(t *testing.T) {
				var buf bytes.Buffer
				err := output.Render(&buf, format, &output.Report{Title: plan.Name, Result: result})
				if format == "csv" && !tabular[name] {
					assert.True(t, errors.Is(err, output.ErrUnsupportedFormat), "got %v", err)
					return
				}
				require.NoError(t, err)
				assert.NotZero(t, buf.Len())
			})
		}
	}
}

func TestConsoleReportMentionsScenarios(t *testing.T) {
	plan := loadFixture(t)
	out, err := runPlan(calculation.NewPlanningEngine(), plan)
	require.NoError(t, err)

	var buf bytes.Buffer
	rules := domain.DefaultPlanningRules()
	require.NoError(t, output.Render(&buf, "console", &output.Report{
		Title:       "What-if",
		Result:      out.WhatIf,
		Assumptions: rules.GenerateAssumptions(),
	}))
	content := buf.String()
	for _, s := range plan.Scenarios {
		assert.Contains(t, content, s.Name)
	}
	assert.Contains(t, content, "not reachable")
	assert.Contains(t, content, "Assumptions:")
}

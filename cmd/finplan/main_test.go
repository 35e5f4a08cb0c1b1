package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/businessthis/finplan/internal/domain"
	"github.com/businessthis/finplan/internal/output"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("FINPLAN_RULES", "")
	t.Setenv("LOG_LEVEL", "")

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// examplePlan writes the output of `finplan example` to a temp file
func examplePlan(t *testing.T) string {
	t.Helper()
	out, _, err := runCLI(t, "example")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0644))
	return path
}

func TestExampleRoundTrip(t *testing.T) {
	out, _, err := runCLI(t, "example")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Example Household")
	assert.Contains(t, out, "monthly_income:")
}

func TestAllocationCommand(t *testing.T) {
	plan := examplePlan(t)

	out, _, err := runCLI(t, "allocation", plan)
	require.NoError(t, err)
	assert.Contains(t, out, "EXAMPLE HOUSEHOLD: ASSET ALLOCATION")
	assert.Contains(t, out, "Stocks:  66%  $6,600.00")

	out, _, err = runCLI(t, "allocation", plan, "--format", "json")
	require.NoError(t, err)
	var res domain.AllocationResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 66, res.StockPct)
	assert.Equal(t, 28, res.BondPct)
	assert.Equal(t, 6, res.CashPct)
}

func TestTaxCommand(t *testing.T) {
	plan := examplePlan(t)

	out, _, err := runCLI(t, "tax", plan, "-f", "yaml")
	require.NoError(t, err)
	var res domain.TaxResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	// 6500 a month is 78000 a year, 64150 after the standard deduction
	assert.True(t, res.TaxableIncome.Equal(decimal.NewFromInt(64150)), "taxable %s", res.TaxableIncome)
	assert.True(t, res.FinalTax.Equal(decimal.RequireFromString("9420.5")), "final %s", res.FinalTax)

	_, _, err = runCLI(t, "tax", plan, "--credits", "lots")
	assert.ErrorContains(t, err, "invalid --credits")
}

func TestWhatIfCSV(t *testing.T) {
	plan := examplePlan(t)

	out, _, err := runCLI(t, "what-if", plan, "--format", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Scenario,"))
	assert.True(t, strings.HasPrefix(lines[1], "Raise,"))
	assert.True(t, strings.HasPrefix(lines[2], "Job loss,"))
	assert.True(t, strings.HasPrefix(lines[3], "New baby,"))
}

func TestHealthCommandScoresEveryPlan(t *testing.T) {
	first := examplePlan(t)
	second := examplePlan(t)

	out, _, err := runCLI(t, "health", first, second)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "EXAMPLE HOUSEHOLD: FINANCIAL HEALTH"))
	assert.Contains(t, out, "Overall:")
}

func TestPlanCommands(t *testing.T) {
	plan := examplePlan(t)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"safe-spend", plan}, "Emergency fund top-up: $9,000.00 of $15,000.00 (60.00%), 12 months to go"},
		{[]string{"safe-spend", plan, "--goal", "0"}, "Savings set aside: $0.00/month"},
		{[]string{"retirement", plan}, "Years to retirement: 31"},
		{[]string{"invest", plan}, "401k"},
		{[]string{"growth", "--monthly", "100", "--rate", "0.12", "--years", "1"}, "Future value: $1,268.25"},
		{[]string{"allocation", plan, "--assumptions"}, "Assumptions:"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args[:1], " "), func(t *testing.T) {
			out, _, err := runCLI(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestGrowthSchedule(t *testing.T) {
	out, _, err := runCLI(t, "growth", "--principal", "1000", "--rate", "0.12", "--years", "3", "--schedule", "--format", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Year,Balance,Contributions,Interest", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1,1126.83,"), lines[1])
}

func TestRulesCommand(t *testing.T) {
	out, _, err := runCLI(t, "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "tax_year:")
	assert.Contains(t, out, "brackets_single:")

	// edited rules are picked up by later commands
	rulesPath := filepath.Join(t.TempDir(), "rules.yaml")
	_, _, err = runCLI(t, "rules", "--out", rulesPath)
	require.NoError(t, err)

	data, err := os.ReadFile(rulesPath)
	require.NoError(t, err)
	edited := strings.Replace(string(data), "investment_placeholder: 10", "investment_placeholder: 20", 1)
	require.NotEqual(t, string(data), edited)
	require.NoError(t, os.WriteFile(rulesPath, []byte(edited), 0644))

	out, _, err = runCLI(t, "health", examplePlan(t), "--rules", rulesPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Investment:     20/25")
}

func TestOutFile(t *testing.T) {
	plan := examplePlan(t)
	path := filepath.Join(t.TempDir(), "allocation.json")

	out, errOut, err := runCLI(t, "allocation", plan, "--format", "json", "--out", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Report written to")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"stock_pct": 66`)
}

func TestCommandErrors(t *testing.T) {
	plan := examplePlan(t)

	noAge := filepath.Join(t.TempDir(), "no-age.yaml")
	require.NoError(t, os.WriteFile(noAge, []byte("name: Anonymous\nprofile:\n  monthly_income: 4000\n"), 0644))

	t.Run("unsupported format", func(t *testing.T) {
		_, _, err := runCLI(t, "allocation", plan, "--format", "html")
		assert.True(t, errors.Is(err, output.ErrUnsupportedFormat), "got %v", err)
	})
	t.Run("csv of a scalar result", func(t *testing.T) {
		_, _, err := runCLI(t, "allocation", plan, "--format", "csv")
		assert.True(t, errors.Is(err, output.ErrUnsupportedFormat), "got %v", err)
	})
	t.Run("missing plan", func(t *testing.T) {
		_, _, err := runCLI(t, "what-if", "does-not-exist.yaml")
		assert.ErrorContains(t, err, "failed to read file")
	})
	t.Run("age required", func(t *testing.T) {
		_, _, err := runCLI(t, "retirement", noAge)
		assert.ErrorContains(t, err, "profile.age is required")
	})
	t.Run("missing rules file", func(t *testing.T) {
		_, _, err := runCLI(t, "rules", "--rules", "nope.yaml")
		assert.ErrorContains(t, err, "failed to load rules")
	})
	t.Run("out file with several plans", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "health.json")
		_, _, err := runCLI(t, "health", plan, examplePlan(t), "--format", "json", "--out", path)
		assert.ErrorContains(t, err, "--out takes a single plan, got 2")
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "nothing should be written")
	})
	t.Run("bad decimal flag", func(t *testing.T) {
		_, _, err := runCLI(t, "safe-spend", plan, "--goal", "lots")
		assert.ErrorContains(t, err, `invalid --goal "lots"`)
	})
	t.Run("wrong arg count", func(t *testing.T) {
		_, _, err := runCLI(t, "tax")
		assert.Error(t, err)
	})
}

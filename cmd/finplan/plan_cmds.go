package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/businessthis/finplan/internal/config"
	"github.com/businessthis/finplan/internal/domain"
	"github.com/businessthis/finplan/pkg/money"
)

func newSafeSpendCmd(a *app) *cobra.Command {
	var goal string
	var months int

	cmd := &cobra.Command{
		Use:   "safe-spend PLAN",
		Short: "Daily, weekly and monthly safe-to-spend amounts",
		Long:  "Computes the safe-to-spend amounts for a plan. Without --goal the savings goal is the sum of the plan's goal targets.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadPlan(args[0])
			if err != nil {
				return err
			}
			var savingsGoal *decimal.Decimal
			if goal != "" {
				v, err := decimalFlag("goal", goal)
				if err != nil {
					return err
				}
				savingsGoal = &v
			}
			res, err := a.engine.ComputeSafeSpendForProfile(&plan.Profile, plan.Goals, savingsGoal, months)
			if err != nil {
				return err
			}
			return a.render(planTitle(plan, "Safe to spend"), res)
		},
	}
	cmd.Flags().StringVar(&goal, "goal", "", "savings goal amount (default: sum of goal targets)")
	cmd.Flags().IntVar(&months, "months", 0, "months to reach the goal (default from rules)")
	return cmd
}

func newHealthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health PLAN...",
		Short: "Financial health score for one or more plans",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.outFile != "" && len(args) > 1 {
				return fmt.Errorf("--out takes a single plan, got %d", len(args))
			}
			plans, err := config.NewInputParser().LoadAll(args)
			if err != nil {
				return err
			}
			profiles := make([]*domain.FinancialProfile, len(plans))
			for i, p := range plans {
				profiles[i] = &p.Profile
			}
			results, err := a.engine.ComputeHealthScores(cmd.Context(), profiles)
			if err != nil {
				return err
			}
			for i, res := range results {
				if err := a.render(planTitle(plans[i], "Financial health"), res); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newRetirementCmd(a *app) *cobra.Command {
	var desired string

	cmd := &cobra.Command{
		Use:   "retirement PLAN",
		Short: "Retirement savings target and required monthly contribution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadPlan(args[0])
			if err != nil {
				return err
			}
			if plan.Profile.Age == nil {
				return fmt.Errorf("plan %s: profile.age is required for retirement planning", args[0])
			}
			desiredIncome, err := decimalFlag("desired", desired)
			if err != nil {
				return err
			}
			res, err := a.engine.ComputeRetirementNeeds(*plan.Profile.Age, plan.Profile.EffectiveRetirementAge(),
				plan.RetirementSavings, plan.Profile.MonthlyIncome, desiredIncome)
			if err != nil {
				return err
			}
			return a.render(planTitle(plan, "Retirement needs"), res)
		},
	}
	cmd.Flags().StringVar(&desired, "desired", "0", "desired annual retirement income (0 = share of current income from rules)")
	return cmd
}

func newTaxCmd(a *app) *cobra.Command {
	var deductions, credits string

	cmd := &cobra.Command{
		Use:   "tax PLAN",
		Short: "Progressive income tax estimate on the plan's annual income",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadPlan(args[0])
			if err != nil {
				return err
			}
			d, err := decimalFlag("deductions", deductions)
			if err != nil {
				return err
			}
			c, err := decimalFlag("credits", credits)
			if err != nil {
				return err
			}
			res, err := a.engine.ComputeTaxEstimate(plan.AnnualIncome(), plan.EffectiveFilingStatus(), d, c)
			if err != nil {
				return err
			}
			return a.render(planTitle(plan, "Tax estimate"), res)
		},
	}
	cmd.Flags().StringVar(&deductions, "deductions", "0", "itemized deductions (used when above the standard deduction)")
	cmd.Flags().StringVar(&credits, "credits", "0", "tax credits")
	return cmd
}

func newAllocationCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "allocation PLAN",
		Short: "Stock, bond and cash split of the plan's investable amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadPlan(args[0])
			if err != nil {
				return err
			}
			if plan.Profile.Age == nil {
				return fmt.Errorf("plan %s: profile.age is required for asset allocation", args[0])
			}
			res, err := a.engine.ComputeAssetAllocation(*plan.Profile.Age, plan.Profile.EffectiveRiskTolerance(), plan.InvestableAmount)
			if err != nil {
				return err
			}
			return a.render(planTitle(plan, "Asset allocation"), res)
		},
	}
}

func newWhatIfCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "what-if PLAN",
		Short: "Compare the plan's scenarios against its current income and expenses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadPlan(args[0])
			if err != nil {
				return err
			}
			res, err := a.engine.ComputeWhatIf(plan.Profile.MonthlyIncome, plan.Profile.TotalExpenses(), plan.Scenarios)
			if err != nil {
				return err
			}
			return a.render(planTitle(plan, "What-if scenarios"), res)
		},
	}
}

func newInvestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "invest PLAN",
		Short: "Account-by-account investment recommendations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadPlan(args[0])
			if err != nil {
				return err
			}
			if plan.Profile.Age == nil {
				return fmt.Errorf("plan %s: profile.age is required for investment recommendations", args[0])
			}
			res, err := a.engine.ComputeInvestmentPlan(*plan.Profile.Age, plan.AnnualIncome(), plan.Profile.EffectiveRiskTolerance(), plan.CurrentInvestments)
			if err != nil {
				return err
			}
			return a.render(planTitle(plan, "Investment recommendations"), res)
		},
	}
}

func decimalFlag(name, value string) (decimal.Decimal, error) {
	v, err := money.Parse(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", name, value, err)
	}
	return v, nil
}

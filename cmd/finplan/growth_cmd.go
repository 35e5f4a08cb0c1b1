package main

import (
	"github.com/spf13/cobra"
)

func newGrowthCmd(a *app) *cobra.Command {
	var principal, monthly, rate string
	var years int
	var schedule bool

	cmd := &cobra.Command{
		Use:   "growth",
		Short: "Compound growth of a principal plus monthly contributions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := decimalFlag("principal", principal)
			if err != nil {
				return err
			}
			m, err := decimalFlag("monthly", monthly)
			if err != nil {
				return err
			}
			r, err := decimalFlag("rate", rate)
			if err != nil {
				return err
			}

			if schedule {
				rows, err := a.engine.ComputeGrowthSchedule(p, m, r, years)
				if err != nil {
					return err
				}
				return a.render("Growth schedule", rows)
			}
			res, err := a.engine.ComputeCompoundInterest(p, m, r, years)
			if err != nil {
				return err
			}
			return a.render("Compound growth", res)
		},
	}
	cmd.Flags().StringVar(&principal, "principal", "0", "starting balance")
	cmd.Flags().StringVar(&monthly, "monthly", "0", "monthly contribution")
	cmd.Flags().StringVar(&rate, "rate", "0.07", "annual interest rate, compounded monthly")
	cmd.Flags().IntVar(&years, "years", 10, "projection length in years")
	cmd.Flags().BoolVar(&schedule, "schedule", false, "print the year-by-year balance instead of the summary")
	return cmd
}

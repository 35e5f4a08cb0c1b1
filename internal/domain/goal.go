package domain

import (
	"github.com/businessthis/finplan/pkg/money"
	"github.com/shopspring/decimal"
)

// SavingsGoal is a user's savings target
type SavingsGoal struct {
	Name                string          `yaml:"name" json:"name"`
	TargetAmount        decimal.Decimal `yaml:"target_amount" json:"target_amount"`
	CurrentAmount       decimal.Decimal `yaml:"current_amount" json:"current_amount"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	Priority            int             `yaml:"priority" json:"priority"`
}

// ProgressPercentage returns current/target as a percentage
func (g *SavingsGoal) ProgressPercentage() decimal.Decimal {
	return money.Percent(g.CurrentAmount, g.TargetAmount)
}

// RemainingAmount is what is still missing to reach the target, never negative
func (g *SavingsGoal) RemainingAmount() decimal.Decimal {
	return money.NonNegative(g.TargetAmount.Sub(g.CurrentAmount))
}

// MonthsToGoal returns the whole months needed at the current contribution.
// ok is false when there is no positive contribution to project with.
func (g *SavingsGoal) MonthsToGoal() (months int, ok bool) {
	remaining := g.RemainingAmount()
	if remaining.IsZero() {
		return 0, true
	}
	if !g.MonthlyContribution.IsPositive() {
		return 0, false
	}
	return int(remaining.Div(g.MonthlyContribution).Ceil().IntPart()), true
}

// RequiredMonthlyContribution spreads the remaining amount over months; zero for months <= 0
func (g *SavingsGoal) RequiredMonthlyContribution(months int) decimal.Decimal {
	return money.SafeDiv(g.RemainingAmount(), decimal.NewFromInt(int64(months)), decimal.Zero)
}

// IsAchieved reports whether the current amount has reached the target
func (g *SavingsGoal) IsAchieved() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// GoalProgress is the state of one savings goal. MonthsToGoal is only meaningful
// when Projectable is true.
type GoalProgress struct {
	Name               string          `json:"name" yaml:"name"`
	TargetAmount       decimal.Decimal `json:"target_amount" yaml:"target_amount"`
	CurrentAmount      decimal.Decimal `json:"current_amount" yaml:"current_amount"`
	RemainingAmount    decimal.Decimal `json:"remaining_amount" yaml:"remaining_amount"`
	ProgressPercentage decimal.Decimal `json:"progress_percentage" yaml:"progress_percentage"`
	MonthsToGoal       int             `json:"months_to_goal" yaml:"months_to_goal"`
	Projectable        bool            `json:"projectable" yaml:"projectable"`
	Achieved           bool            `json:"achieved" yaml:"achieved"`
}

// Progress summarizes the goal using its current contribution
func (g *SavingsGoal) Progress() GoalProgress {
	months, ok := g.MonthsToGoal()
	return GoalProgress{
		Name:               g.Name,
		TargetAmount:       g.TargetAmount,
		CurrentAmount:      g.CurrentAmount,
		RemainingAmount:    g.RemainingAmount(),
		ProgressPercentage: g.ProgressPercentage(),
		MonthsToGoal:       months,
		Projectable:        ok,
		Achieved:           g.IsAchieved(),
	}
}

// TotalTargetAmount sums the target amounts of goals
func TotalTargetAmount(goals []SavingsGoal) decimal.Decimal {
	total := decimal.Zero
	for _, g := range goals {
		total = total.Add(g.TargetAmount)
	}
	return total
}

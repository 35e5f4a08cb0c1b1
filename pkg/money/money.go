package money

import (
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// SafeDiv divides num by den. When den is zero or negative the fallback is
// returned instead, so callers never see a division fault on degenerate inputs
// such as zero income or zero contributions.
func SafeDiv(num, den, fallback decimal.Decimal) decimal.Decimal {
	if den.Sign() <= 0 {
		return fallback
	}
	return num.Div(den)
}

// Percent returns part/whole*100, or zero when whole is not positive.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	return SafeDiv(part.Mul(hundred), whole, decimal.Zero)
}

// NonNegative clamps a negative amount to zero.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// PercentOf returns pct percent of amount.
func PercentOf(amount decimal.Decimal, pct int) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(int64(pct))).Div(hundred)
}

// Annual converts a monthly amount to annual
func Annual(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(twelve)
}

// Monthly converts an annual amount to monthly
func Monthly(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(twelve)
}

// Cents rounds to two places using banker's rounding, for display only.
func Cents(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}

// Parse parses a decimal amount from a string.
func Parse(value string) (decimal.Decimal, error) {
	return decimal.NewFromString(value)
}

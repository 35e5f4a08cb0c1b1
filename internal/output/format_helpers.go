package output

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// FormatCurrency formats a decimal as USD with thousands separators and 2 decimals.
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	abs := rounded.Abs()
	fixed := abs.StringFixed(2)
	return sign + "$" + humanize.Comma(abs.IntPart()) + fixed[len(fixed)-3:]
}

// FormatPercentage formats a decimal already expressed in percent with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a fractional rate (0.22) as a percentage (22.00%).
func FormatRate(rate decimal.Decimal) string { return FormatPercentage(rate.Mul(decimalHundred)) }

// BracketLabel renders a tax bracket range such as "$11,000 - $44,725" or "$578,125+".
func BracketLabel(min, max decimal.Decimal) string {
	if max.IsZero() {
		return "$" + humanize.Comma(min.IntPart()) + "+"
	}
	return "$" + humanize.Comma(min.IntPart()) + " - $" + humanize.Comma(max.IntPart())
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

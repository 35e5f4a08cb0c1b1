//go:build unit

package output

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1234.567", "$1,234.57"},
		{"0", "$0.00"},
		{"0.005", "$0.01"},
		{"-1000", "-$1,000.00"},
		{"1234567.891", "$1,234,567.89"},
	}
	for _, c := range cases {
		got := FormatCurrency(decimal.RequireFromString(c.in))
		if got != c.want {
			t.Errorf("FormatCurrency(%s) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatPercentage(t *testing.T) {
	v := decimal.NewFromFloat(12.3456)
	got := FormatPercentage(v)
	want := "12.35%"
	if got != want {
		t.Errorf("FormatPercentage(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatRate(t *testing.T) {
	if got, want := FormatRate(decimal.RequireFromString("0.22")), "22.00%"; got != want {
		t.Errorf("FormatRate(0.22) = %q, want %q", got, want)
	}
}

func TestBracketLabel(t *testing.T) {
	if got, want := BracketLabel(decimal.Zero, decimal.NewFromInt(11000)), "$0 - $11,000"; got != want {
		t.Errorf("BracketLabel bounded = %q, want %q", got, want)
	}
	if got, want := BracketLabel(decimal.NewFromInt(578125), decimal.Zero), "$578,125+"; got != want {
		t.Errorf("BracketLabel open-ended = %q, want %q", got, want)
	}
}

package calculation

import (
	"github.com/businessthis/finplan/internal/domain"
	"github.com/businessthis/finplan/pkg/money"
	"github.com/shopspring/decimal"
)

// TAX ESTIMATE ASSUMPTIONS:
//
// 1. Single-filer brackets come from the rules file (2024 values by default).
//
// 2. Married filing jointly doubles every single-filer bound. The published joint
//    table differs in the upper brackets; this is an estimate, not a filing tool.
//
// 3. Deductions: the larger of the status-specific standard deduction and the
//    caller's itemized deductions.

// jointBracketFactor scales single-filer bounds to the married-joint approximation
var jointBracketFactor = decimal.NewFromInt(2)

// TaxEstimator handles progressive income tax estimates
type TaxEstimator struct {
	StandardDeductionSingle       decimal.Decimal
	StandardDeductionMarriedJoint decimal.Decimal
	BracketsSingle                []domain.TaxBracket
	BracketsMarriedJoint          []domain.TaxBracket
	HighEffectiveRate             decimal.Decimal
	HighIncomeThreshold           decimal.Decimal
	Logger                        Logger
}

// NewTaxEstimator creates a tax estimator from the rule set
func NewTaxEstimator(rules domain.TaxRules) *TaxEstimator {
	single := append([]domain.TaxBracket(nil), rules.BracketsSingle...)
	joint := make([]domain.TaxBracket, 0, len(single))
	for _, b := range single {
		joint = append(joint, b.Scaled(jointBracketFactor))
	}
	return &TaxEstimator{
		StandardDeductionSingle:       rules.StandardDeductionSingle,
		StandardDeductionMarriedJoint: rules.StandardDeductionMarriedJoint,
		BracketsSingle:                single,
		BracketsMarriedJoint:          joint,
		HighEffectiveRate:             rules.HighEffectiveRate,
		HighIncomeThreshold:           rules.HighIncomeThreshold,
		Logger:                        NopLogger{},
	}
}

// Brackets returns the table for a filing status
func (te *TaxEstimator) Brackets(status domain.FilingStatus) []domain.TaxBracket {
	if status == domain.FilingMarriedJoint {
		return te.BracketsMarriedJoint
	}
	return te.BracketsSingle
}

// StandardDeduction returns the standard deduction for a filing status
func (te *TaxEstimator) StandardDeduction(status domain.FilingStatus) decimal.Decimal {
	if status == domain.FilingMarriedJoint {
		return te.StandardDeductionMarriedJoint
	}
	return te.StandardDeductionSingle
}

// Estimate calculates the income tax for a year
func (te *TaxEstimator) Estimate(income decimal.Decimal, status domain.FilingStatus, deductions, credits decimal.Decimal) (*domain.TaxResult, error) {
	if err := requireNonNegative(
		amount{"income", income},
		amount{"deductions", deductions},
		amount{"credits", credits},
	); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, invalid("filing_status", "must be single or married_joint, got %q", string(status))
	}

	standard := te.StandardDeduction(status)
	taxable := money.NonNegative(income.Sub(decimal.Max(standard, deductions)))

	totalTax := decimal.Zero
	marginal := decimal.Zero
	var breakdown []domain.BracketTax
	for _, bracket := range te.Brackets(status) {
		if taxable.LessThanOrEqual(bracket.Min) {
			break
		}
		upper := taxable
		if !bracket.Unbounded() {
			upper = decimal.Min(taxable, bracket.Max)
		}
		portion := upper.Sub(bracket.Min)
		if !portion.IsPositive() {
			continue
		}
		tax := portion.Mul(bracket.Rate)
		totalTax = totalTax.Add(tax)
		marginal = bracket.Rate
		breakdown = append(breakdown, domain.BracketTax{
			Min:    bracket.Min,
			Max:    bracket.Max,
			Rate:   bracket.Rate,
			Income: portion,
			Tax:    tax,
		})
	}

	finalTax := money.NonNegative(totalTax.Sub(credits))
	effective := money.SafeDiv(finalTax, income, decimal.Zero)
	te.Logger.Debugf("%s: taxable %s across %d brackets, tax %s", status, taxable.StringFixed(2), len(breakdown), finalTax.StringFixed(2))

	return &domain.TaxResult{
		FilingStatus:      status,
		StandardDeduction: standard,
		TaxableIncome:     taxable,
		TotalTax:          totalTax,
		Credits:           credits,
		FinalTax:          finalTax,
		EffectiveRate:     effective,
		MarginalRate:      marginal,
		BracketBreakdown:  breakdown,
		Recommendations:   te.recommendations(income, deductions, standard, effective),
	}, nil
}

func (te *TaxEstimator) recommendations(income, deductions, standard, effective decimal.Decimal) []string {
	var recs []string
	if effective.GreaterThan(te.HighEffectiveRate) {
		recs = append(recs, "Consider maxing out 401k contributions to reduce taxable income")
	}
	if income.GreaterThan(te.HighIncomeThreshold) {
		recs = append(recs, "Consider Roth IRA conversions in lower income years")
	}
	if deductions.LessThan(standard) {
		recs = append(recs, "Consider itemizing deductions if they exceed standard deduction")
	}
	return recs
}

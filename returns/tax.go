/*
Package returns projects the investment value of accumulated micro-savings.

It covers the two supported products — a tax-advantaged pension scheme and an
index fund — and the progressive income-tax schedule that drives the pension
deduction benefit. Like the savings package, everything here is pure and
request-scoped.

KEY PIECES:
  - tax.go:        slab-based income tax and the deduction-capped benefit
  - projection.go: horizon, annual compounding, inflation adjustment

SEE ALSO:
  - savings: produces the ReportingGroups this package projects
*/
package returns

import (
	"github.com/shopspring/decimal"

	"github.com/warp/savings-engine/savings"
)

// Pension deduction limits: the deductible portion of an investment is capped
// at 10% of annual income and at an absolute ceiling.
var (
	deductionPct = savings.MustDecimal("0.10")
	deductionCap = decimal.NewFromInt(200_000)
)

// =============================================================================
// TAX SLABS - Progressive schedule over annual income
// =============================================================================

// taxSlab covers incomes in (floor, ceiling]. flat is the tax accumulated by
// all lower slabs; rate applies to the excess over floor. A zero ceiling
// marks the unbounded top slab.
type taxSlab struct {
	ceiling decimal.Decimal
	floor   decimal.Decimal
	flat    decimal.Decimal
	rate    decimal.Decimal
}

var taxSlabs = []taxSlab{
	{ceiling: decimal.NewFromInt(700_000), floor: decimal.NewFromInt(700_000), flat: decimal.Zero, rate: decimal.Zero},
	{ceiling: decimal.NewFromInt(1_000_000), floor: decimal.NewFromInt(700_000), flat: decimal.Zero, rate: savings.MustDecimal("0.10")},
	{ceiling: decimal.NewFromInt(1_200_000), floor: decimal.NewFromInt(1_000_000), flat: decimal.NewFromInt(30_000), rate: savings.MustDecimal("0.15")},
	{ceiling: decimal.NewFromInt(1_500_000), floor: decimal.NewFromInt(1_200_000), flat: decimal.NewFromInt(60_000), rate: savings.MustDecimal("0.20")},
	{floor: decimal.NewFromInt(1_500_000), flat: decimal.NewFromInt(120_000), rate: savings.MustDecimal("0.30")},
}

// Tax computes the tax owed on an annual income under the progressive slab
// schedule. Monotonic non-decreasing in income; zero at or below the first
// threshold.
func Tax(income decimal.Decimal) decimal.Decimal {
	for _, s := range taxSlabs {
		if s.ceiling.IsZero() || income.LessThanOrEqual(s.ceiling) {
			excess := income.Sub(s.floor)
			if excess.Sign() <= 0 {
				return s.flat
			}
			return s.flat.Add(excess.Mul(s.rate))
		}
	}
	return decimal.Zero // unreachable: the last slab is unbounded
}

// TaxBenefit is the marginal tax saved by the deductible portion of an
// investment: tax(income) - tax(income - deduction), with the deduction
// capped at the invested amount, 10% of income, and the absolute ceiling.
// Never negative: the deduction cannot exceed the investment and Tax is
// monotonic.
func TaxBenefit(invested, annualIncome decimal.Decimal) decimal.Decimal {
	deduction := decimal.Min(invested, annualIncome.Mul(deductionPct), deductionCap)
	return Tax(annualIncome).Sub(Tax(annualIncome.Sub(deduction)))
}

package returns

import (
	"github.com/shopspring/decimal"

	"github.com/warp/savings-engine/savings"
)

const (
	// RetirementAge anchors the investment horizon.
	RetirementAge = 60
	// MinHorizonYears floors the horizon for investors at or past
	// retirement age.
	MinHorizonYears = 5

	monthsPerYear = 12
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// =============================================================================
// PRODUCTS
// =============================================================================

// Product selects which investment vehicle a projection uses.
type Product string

const (
	// ProductPension is the tax-advantaged pension scheme: 7.11%/yr, with a
	// deduction benefit against annual income.
	ProductPension Product = "pension"
	// ProductIndex is the index fund: 14.49%/yr, no deduction eligibility.
	ProductIndex Product = "index"
)

var productRates = map[Product]decimal.Decimal{
	ProductPension: savings.MustDecimal("0.0711"),
	ProductIndex:   savings.MustDecimal("0.1449"),
}

// Rate returns the fixed annual growth rate for the product.
func (p Product) Rate() decimal.Decimal { return productRates[p] }

// =============================================================================
// PROJECTION MATH
// =============================================================================

// Horizon is the number of compounding years until retirement, never less
// than MinHorizonYears (so ages at or past RetirementAge still project).
func Horizon(age int) int {
	if years := RetirementAge - age; years > MinHorizonYears {
		return years
	}
	return MinHorizonYears
}

// Compound grows a principal at a fixed annual rate with one compounding
// period per year: principal * (1 + rate)^years.
func Compound(principal, rate decimal.Decimal, years int) decimal.Decimal {
	return principal.Mul(one.Add(rate).Pow(decimal.NewFromInt(int64(years))))
}

// DeflateToPresent converts a future value back to today's purchasing power:
// future / (1 + inflationPct/100)^years.
func DeflateToPresent(future, inflationPct decimal.Decimal, years int) decimal.Decimal {
	deflator := one.Add(inflationPct.Div(hundred)).Pow(decimal.NewFromInt(int64(years)))
	return future.Div(deflator)
}

// =============================================================================
// GROUP PROJECTIONS
// =============================================================================

// GroupReturn is the projected outcome for one reporting group: the
// inflation-adjusted net gain on the group's savings, plus the pension tax
// benefit when applicable.
type GroupReturn struct {
	savings.ReportingGroup
	Profit     decimal.Decimal
	TaxBenefit decimal.Decimal
}

// Project computes profit and tax benefit for a single principal.
// Profit is the inflation-adjusted value minus the principal, rounded to 2
// places. The tax benefit applies to the pension product only, computed
// against annual income (wage * 12); the index product always reports 0.
// A zero principal yields zero profit and zero benefit.
func Project(product Product, principal decimal.Decimal, age int, wage, inflationPct decimal.Decimal) (profit, taxBenefit decimal.Decimal) {
	years := Horizon(age)
	future := Compound(principal, product.Rate(), years)
	real := DeflateToPresent(future, inflationPct, years)
	profit = real.Sub(principal).Round(2)

	taxBenefit = decimal.Zero
	if product == ProductPension {
		annualIncome := wage.Mul(decimal.NewFromInt(monthsPerYear))
		taxBenefit = TaxBenefit(principal, annualIncome).Round(2)
	}
	return profit, taxBenefit
}

// ProjectGroups derives a GroupReturn per reporting group, in order.
func ProjectGroups(groups []savings.ReportingGroup, product Product, age int, wage, inflationPct decimal.Decimal) []GroupReturn {
	out := make([]GroupReturn, 0, len(groups))
	for _, g := range groups {
		profit, benefit := Project(product, g.Amount, age, wage, inflationPct)
		out = append(out, GroupReturn{
			ReportingGroup: g,
			Profit:         profit,
			TaxBenefit:     benefit,
		})
	}
	return out
}

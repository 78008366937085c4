package savings

import "github.com/shopspring/decimal"

var roundBase = decimal.NewFromInt(RoundBase)

// Ceiling rounds an amount up to the next multiple of RoundBase. Amounts that
// are already exact multiples are unchanged (400 stays 400). Non-positive
// amounts round to zero.
func Ceiling(amount decimal.Decimal) decimal.Decimal {
	if amount.Sign() <= 0 {
		return decimal.Zero
	}
	rem := amount.Mod(roundBase)
	if rem.IsZero() {
		return amount
	}
	return amount.Add(roundBase.Sub(rem))
}

// Remanent is the gap between an amount and its ceiling: the raw
// micro-savings for one transaction, before any override rules. Kept stable
// to 10 fractional digits; the final round to 2 happens once, after the
// override passes.
func Remanent(amount, ceiling decimal.Decimal) decimal.Decimal {
	return ceiling.Sub(amount).Round(10)
}

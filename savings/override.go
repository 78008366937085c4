/*
override.go - Time-bounded remanent adjustment rules

PURPOSE:
  Applies the two rule passes to each transaction's remanent, always in the
  same order:

  1. Override pass (q): among the rules whose window contains the
     transaction instant, exactly one wins and its Fixed value REPLACES the
     remanent. Overlaps resolve deterministically: latest Start wins, and an
     exact Start tie goes to the rule listed first.
  2. Bonus pass (p): the Extra values of ALL rules whose window contains the
     instant are summed and ADDED to the (possibly replaced) remanent.

  Applying overrides before bonuses lets a bonus stack on top of a forced
  value. The passes are independent: bonuses apply whether or not an
  override fired.
*/
package savings

import "github.com/shopspring/decimal"

// ApplyOverrides resolves the q pass for one instant. With no matching rule
// the remanent is returned unchanged; otherwise the winning rule's Fixed
// value replaces it.
func ApplyOverrides(remanent decimal.Decimal, at Instant, rules []OverrideRule) decimal.Decimal {
	best := -1
	for i, r := range rules {
		if !r.Contains(at) {
			continue
		}
		// Strict After keeps the earlier-listed rule on an exact Start tie.
		if best < 0 || r.Start.After(rules[best].Start) {
			best = i
		}
	}
	if best < 0 {
		return remanent
	}
	return rules[best].Fixed
}

// ApplyBonuses resolves the p pass for one instant: every matching rule
// contributes its Extra.
func ApplyBonuses(remanent decimal.Decimal, at Instant, rules []BonusRule) decimal.Decimal {
	total := remanent
	for _, r := range rules {
		if r.Contains(at) {
			total = total.Add(r.Extra)
		}
	}
	return total
}

// Process runs the full per-transaction pipeline over a batch of valid
// transactions: parse the date, compute ceiling and remanent, then the
// override and bonus passes. The remanent is rounded to 2 places once, after
// both passes. A malformed date fails the whole call with a *ParseError.
func Process(txs []Transaction, overrides []OverrideRule, bonuses []BonusRule) ([]ProcessedTransaction, error) {
	processed := make([]ProcessedTransaction, 0, len(txs))
	for _, tx := range txs {
		at, err := ParseInstant(tx.Date)
		if err != nil {
			return nil, err
		}

		ceiling := Ceiling(tx.Amount)
		remanent := Remanent(tx.Amount, ceiling)
		remanent = ApplyOverrides(remanent, at, overrides)
		remanent = ApplyBonuses(remanent, at, bonuses)

		processed = append(processed, ProcessedTransaction{
			Transaction: tx,
			At:          at,
			Ceiling:     ceiling,
			Remanent:    remanent.Round(2),
		})
	}
	return processed, nil
}

package savings

import "github.com/shopspring/decimal"

// =============================================================================
// PERIOD - Inclusive time interval
// =============================================================================

// Period is a closed interval [Start, End]. Callers may submit periods
// unordered and arbitrarily overlapping; Start <= End is assumed, not
// enforced. The same containment check is used by override rules, bonus
// rules, and reporting windows.
type Period struct {
	Start Instant
	End   Instant
}

// Contains returns true if the instant is within the period [Start, End],
// inclusive on both ends.
func (p Period) Contains(at Instant) bool {
	return at.AfterOrEqual(p.Start) && at.BeforeOrEqual(p.End)
}

func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}

// =============================================================================
// RULES - Time-bounded adjustments to the remanent
// =============================================================================

// OverrideRule (a "q" period) forces the remanent to a fixed value for every
// transaction inside its window. When several override windows contain the
// same instant, exactly one wins: latest Start, then earliest list position.
type OverrideRule struct {
	Period
	Fixed decimal.Decimal
}

// BonusRule (a "p" period) adds an extra amount to the remanent for every
// transaction inside its window. All matching bonus rules stack.
type BonusRule struct {
	Period
	Extra decimal.Decimal
}

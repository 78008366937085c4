/*
Package savings provides the core round-up micro-savings engine.

PURPOSE:
  This package contains the pure computation pipeline that turns a batch of
  dated expense transactions into savings amounts: validation, rounding to
  the next 100, time-bounded override rules, and grouping into reporting
  windows. Everything here is request-scoped and side-effect free.

KEY CONCEPTS IN THIS FILE (types.go):
  - Transaction: A raw dated expense as submitted by the caller
  - ProcessedTransaction: A transaction enriched with ceiling and remanent
  - InvalidTransaction: A rejected transaction plus the rejection message

PIPELINE:
  raw transactions
    → Validate          (validate.go)  negative amounts, duplicate dates
    → Ceiling/Remanent  (rounding.go)  round-up gap per transaction
    → Overrides/Bonuses (override.go)  q replaces, p adds, in that order
    → GroupByWindows    (aggregate.go) sum remanents per k window

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal to avoid floating-point errors
  2. Purity: No hidden state; every function reads only its arguments
  3. Recovery as data: bad transactions become InvalidTransaction entries,
     they never abort the batch

SEE ALSO:
  - time.go: Instant parsing (the two accepted timestamp formats)
  - period.go: Inclusive intervals and the q/p rule types
  - errors.go: ParseError and friends
*/
package savings

import (
	"github.com/shopspring/decimal"
)

// RoundBase is the multiple that expense amounts are rounded up to.
const RoundBase = 100

// =============================================================================
// TRANSACTION - Raw dated expense
// =============================================================================

// Transaction is a single expense as received from the caller. Date keeps the
// raw string form: duplicate detection is keyed on the exact string, and the
// string is echoed back unchanged in responses.
type Transaction struct {
	Date   string
	Amount decimal.Decimal
	Label  string
}

// InvalidTransaction is a transaction rejected by Validate, with the
// human-readable reason attached.
type InvalidTransaction struct {
	Transaction
	Message string
}

// =============================================================================
// PROCESSED TRANSACTION - Enriched with ceiling and remanent
// =============================================================================

// ProcessedTransaction is a valid transaction after the rounding and override
// passes. At holds the parsed instant so window checks do not re-parse the
// date string. Remanent is the final savings amount, rounded to 2 places.
type ProcessedTransaction struct {
	Transaction
	At       Instant
	Ceiling  decimal.Decimal
	Remanent decimal.Decimal
}

// =============================================================================
// DECIMAL HELPERS
// =============================================================================

// MustDecimal parses a decimal literal, returning zero on failure. For
// package-level constants only.
func MustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

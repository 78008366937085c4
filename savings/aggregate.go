package savings

import "github.com/shopspring/decimal"

// =============================================================================
// REPORTING GROUPS - Remanents summed per reporting window
// =============================================================================

// ReportingGroup is the sum of remanents of every processed transaction whose
// instant falls inside one reporting ("k") window.
type ReportingGroup struct {
	Period
	Amount decimal.Decimal
}

// GroupByWindows sums remanents per window. Windows are evaluated
// independently: they may overlap, so one transaction can contribute to
// several groups, and a window matching nothing yields amount 0. Each sum is
// rounded to 2 places. Output order follows the input window order.
func GroupByWindows(txs []ProcessedTransaction, windows []Period) []ReportingGroup {
	groups := make([]ReportingGroup, 0, len(windows))
	for _, w := range windows {
		total := decimal.Zero
		for _, tx := range txs {
			if w.Contains(tx.At) {
				total = total.Add(tx.Remanent)
			}
		}
		groups = append(groups, ReportingGroup{Period: w, Amount: total.Round(2)})
	}
	return groups
}

// InAnyWindow reports whether the instant falls inside at least one of the
// given windows.
func InAnyWindow(at Instant, windows []Period) bool {
	for _, w := range windows {
		if w.Contains(at) {
			return true
		}
	}
	return false
}

package savings

// Rejection messages attached to invalid transactions.
const (
	MsgNegativeAmount = "Negative amounts are not allowed"
	MsgDuplicateDate  = "Duplicate transaction"
)

// Validate screens a batch of raw transactions in input order and splits it
// into valid and invalid lists, both preserving relative order. Checks, in
// order per transaction:
//
//  1. Negative amount.
//  2. Duplicate date: the raw date string was already seen on an earlier
//     transaction in this batch. The first occurrence is valid, every later
//     one is not, regardless of amount.
//
// A transaction carries at most one rejection message (the negative check
// reports first). Dates are recorded only for transactions that pass both
// checks, so a transaction rejected for a negative amount does not reserve
// its date: a later transaction with the same date still counts as the first
// occurrence. Dates are never parsed here; validation works on the raw
// strings and never fails the batch.
func Validate(txs []Transaction) (valid []Transaction, invalid []InvalidTransaction) {
	seen := make(map[string]struct{}, len(txs))

	for _, tx := range txs {
		if tx.Amount.IsNegative() {
			invalid = append(invalid, InvalidTransaction{Transaction: tx, Message: MsgNegativeAmount})
			continue
		}
		if _, dup := seen[tx.Date]; dup {
			invalid = append(invalid, InvalidTransaction{Transaction: tx, Message: MsgDuplicateDate})
			continue
		}
		seen[tx.Date] = struct{}{}
		valid = append(valid, tx)
	}
	return valid, invalid
}

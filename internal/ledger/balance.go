package ledger

import "github.com/shopspring/decimal"

var zero = decimal.Zero

func (s Sign) decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(s))
}

// Entry is an output row: the event plus the account balance immediately
// after it was applied. BillAmount and AmountPaid split the gross amount by
// direction so a caller can fold a same-day charge and settlement into one
// display row.
type Entry struct {
	Event
	RunningBalance decimal.Decimal `json:"running_balance"`
	BillAmount     decimal.Decimal `json:"bill_amount"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
}

// ApplyBalances folds the ordered events left to right starting at the
// opening balance. Each entry's running balance depends on every entry before
// it, so the fold is strictly sequential.
func ApplyBalances(openingBalance decimal.Decimal, ordered []Event) []Entry {
	entries := make([]Entry, 0, len(ordered))
	balance := openingBalance

	for i := range ordered {
		event := ordered[i]
		balance = balance.Add(event.SignedAmount)

		entry := Entry{
			Event:          event,
			RunningBalance: balance,
			BillAmount:     zero,
			AmountPaid:     zero,
		}
		switch {
		case event.Kind.IsCharge():
			entry.BillAmount = event.GrossAmount
		case event.Kind.IsSettlement():
			entry.AmountPaid = event.GrossAmount
		}

		entries = append(entries, entry)
	}

	return entries
}

package ledger

import "github.com/shopspring/decimal"

// Summary aggregates one slice of the history. OpeningBalance and Balance are
// the account balance entering and leaving the slice. Totals sum gross
// amounts per category; Net sums signed amounts.
type Summary struct {
	OpeningBalance decimal.Decimal            `json:"opening_balance"`
	Balance        decimal.Decimal            `json:"balance"`
	Totals         map[string]decimal.Decimal `json:"totals"`
	Net            decimal.Decimal            `json:"net"`
	Count          int                        `json:"count"`
	Skipped        int                        `json:"skipped"`
}

// Total returns the named total, zero when absent.
func (s Summary) Total(category string) decimal.Decimal {
	if v, ok := s.Totals[category]; ok {
		return v
	}
	return zero
}

// Summaries holds the three views a statement reports.
type Summaries struct {
	Before Summary `json:"before"`
	Within Summary `json:"within"`
	ToDate Summary `json:"to_date"`
}

// Summarize reduces the partitions of an ordered history. entries must be
// ApplyBalances over the same ordered events that were partitioned, so the
// before partition is a prefix of entries and the within partition follows
// it directly.
//
// The before summary closes on the running balance of its last entry and the
// to-date summary on the last entry overall. The within summary opens where
// before closed and closes on the last in-window entry. Empty partitions
// fall back to the incoming balance.
func Summarize(openingBalance decimal.Decimal, entries []Entry, parts Partitions, category CategoryRule, categories []string) Summaries {
	before := aggregate(parts.Before, category, categories)
	before.OpeningBalance = openingBalance
	before.Balance = balanceAt(entries, len(parts.Before)-1, openingBalance)

	within := aggregate(parts.Within, category, categories)
	within.OpeningBalance = before.Balance
	within.Balance = balanceAt(entries, len(parts.Before)+len(parts.Within)-1, before.Balance)

	all := make([]Event, len(entries))
	for i := range entries {
		all[i] = entries[i].Event
	}
	toDate := aggregate(all, category, categories)
	toDate.OpeningBalance = openingBalance
	toDate.Balance = balanceAt(entries, len(entries)-1, openingBalance)

	return Summaries{Before: before, Within: within, ToDate: toDate}
}

func balanceAt(entries []Entry, idx int, fallback decimal.Decimal) decimal.Decimal {
	if idx < 0 || idx >= len(entries) {
		return fallback
	}
	return entries[idx].RunningBalance
}

func aggregate(events []Event, category CategoryRule, categories []string) Summary {
	summary := Summary{
		Totals: make(map[string]decimal.Decimal, len(categories)),
		Net:    zero,
	}
	for _, name := range categories {
		summary.Totals[name] = zero
	}

	for i := range events {
		event := &events[i]
		summary.Count++

		if event.Anomaly == AnomalyNonFiniteAmount || event.Anomaly == AnomalyUnknownType {
			summary.Skipped++
			continue
		}

		name := category(*event)
		current, ok := summary.Totals[name]
		if !ok {
			current = zero
		}
		summary.Totals[name] = current.Add(event.GrossAmount)
		summary.Net = summary.Net.Add(event.SignedAmount)
	}

	return summary
}

package services

import (
	"time"

	"fuel-ledger/internal/ledger"
	"fuel-ledger/internal/models"
)

var kindLabels = map[ledger.EventKind]string{
	ledger.KindBill:          "Bill",
	ledger.KindPayment:       "Payment",
	ledger.KindPurchase:      "Purchase",
	ledger.KindFuelPurchase:  "Fuel Purchase",
	ledger.KindDeposit:       "Deposit",
	ledger.KindWithdrawal:    "Withdrawal",
	ledger.KindStockAddition: "Addition",
	ledger.KindStockRemoval:  "Removal",
	ledger.KindAdjustment:    "Adjustment",
	ledger.KindUnknown:       "Unknown",
}

// KindLabel returns the display name of an event kind
func KindLabel(kind ledger.EventKind) string {
	if label, ok := kindLabels[kind]; ok {
		return label
	}
	return string(kind)
}

// BuildStatementRows folds entries into display rows. A charge immediately
// followed by a settlement on the same calendar day becomes one row badged
// e.g. "Bill+Payment" whose running balance is the balance after both. The
// entries are already ordered charge-first, so no re-sorting is needed.
func BuildStatementRows(entries []ledger.Entry, loc *time.Location) []models.StatementRow {
	if loc == nil {
		loc = time.UTC
	}

	rows := make([]models.StatementRow, 0, len(entries))
	for i := 0; i < len(entries); i++ {
		entry := entries[i]
		row := singleRow(entry, loc)

		if i+1 < len(entries) && pairsWith(entry, entries[i+1], loc) {
			next := entries[i+1]
			row.Badge = KindLabel(entry.Kind) + "+" + KindLabel(next.Kind)
			row.Kinds = append(row.Kinds, next.Kind)
			row.References = append(row.References, next.Reference)
			row.AmountPaid = row.AmountPaid.Add(next.AmountPaid)
			row.Net = row.Net.Add(next.SignedAmount)
			row.RunningBalance = next.RunningBalance
			row.Flagged = row.Flagged || next.Anomaly != ledger.AnomalyNone
			i++
		}

		rows = append(rows, row)
	}

	return rows
}

func singleRow(entry ledger.Entry, loc *time.Location) models.StatementRow {
	return models.StatementRow{
		Date:           startOfDay(entry.Timestamp, loc),
		Badge:          KindLabel(entry.Kind),
		Kinds:          []ledger.EventKind{entry.Kind},
		References:     []string{entry.Reference},
		BillAmount:     entry.BillAmount,
		AmountPaid:     entry.AmountPaid,
		Net:            entry.SignedAmount,
		RunningBalance: entry.RunningBalance,
		Flagged:        entry.Anomaly != ledger.AnomalyNone,
	}
}

func pairsWith(charge, settlement ledger.Entry, loc *time.Location) bool {
	if !charge.Kind.IsCharge() || !settlement.Kind.IsSettlement() {
		return false
	}
	return startOfDay(charge.Timestamp, loc).Equal(startOfDay(settlement.Timestamp, loc))
}

// Package ledger turns heterogeneous account records (bills, payments,
// purchases, bank movements, tank stock movements) into a chronologically
// ordered statement with a running balance and before/within/to-date
// summaries.
//
// The package is a pure transform: it never performs I/O, never mutates the
// records it is given and holds no state between calls, so Compute may be
// invoked concurrently for any number of accounts.
package ledger

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// EventKind identifies the source record type of a ledger event.
type EventKind string

const (
	KindBill          EventKind = "bill"
	KindPayment       EventKind = "payment"
	KindPurchase      EventKind = "purchase"
	KindFuelPurchase  EventKind = "fuel_purchase"
	KindDeposit       EventKind = "deposit"
	KindWithdrawal    EventKind = "withdrawal"
	KindStockAddition EventKind = "stock_addition"
	KindStockRemoval  EventKind = "stock_removal"
	KindAdjustment    EventKind = "adjustment"

	// KindUnknown is a record whose upstream type column matched no kind.
	KindUnknown EventKind = "unknown"
)

// same-day ordering classes
const (
	rankCharge = iota
	rankSettlement
	rankOther
)

// rank places charge-type events (something owed or added) ahead of
// settlement-type events (something paid or removed) on the same day.
func (k EventKind) rank() int {
	switch k {
	case KindBill, KindPurchase, KindFuelPurchase, KindDeposit, KindStockAddition:
		return rankCharge
	case KindPayment, KindWithdrawal, KindStockRemoval:
		return rankSettlement
	default:
		return rankOther
	}
}

// IsCharge reports whether the kind increases what the counterparty owes
// (bills, purchases, deposits, stock additions).
func (k EventKind) IsCharge() bool {
	return k.rank() == rankCharge
}

// IsSettlement reports whether the kind settles a charge (payments,
// withdrawals, stock removals).
func (k EventKind) IsSettlement() bool {
	return k.rank() == rankSettlement
}

// Anomaly describes a data-integrity problem found on a source record.
type Anomaly string

const (
	AnomalyNone            Anomaly = ""
	AnomalyMissingAmount   Anomaly = "missing_amount"
	AnomalyNonFiniteAmount Anomaly = "non_finite_amount"
	AnomalyUnknownType     Anomaly = "unknown_type"
)

type amountState int

const (
	amountMissing amountState = iota
	amountPresent
	amountNonFinite
)

// Amount is an amount as received from upstream storage. The zero value is a
// missing amount.
type Amount struct {
	value decimal.Decimal
	state amountState
}

// AmountOf wraps a known decimal amount.
func AmountOf(d decimal.Decimal) Amount {
	return Amount{value: d, state: amountPresent}
}

// AmountFromFloat wraps a float amount. NaN and infinities are kept as
// non-finite so they can be excluded instead of poisoning the balance.
func AmountFromFloat(f float64) Amount {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Amount{state: amountNonFinite}
	}
	return AmountOf(decimal.NewFromFloat(f))
}

// AmountFromNull wraps a nullable database column.
func AmountFromNull(d decimal.NullDecimal) Amount {
	if !d.Valid {
		return MissingAmount()
	}
	return AmountOf(d.Decimal)
}

// MissingAmount returns an amount for a record whose amount field is absent.
func MissingAmount() Amount {
	return Amount{state: amountMissing}
}

// Value returns the decimal value and whether it is usable.
func (a Amount) Value() (decimal.Decimal, bool) {
	if a.state != amountPresent {
		return decimal.Zero, false
	}
	return a.value, true
}

func (a Amount) anomaly() Anomaly {
	switch a.state {
	case amountMissing:
		return AnomalyMissingAmount
	case amountNonFinite:
		return AnomalyNonFiniteAmount
	default:
		return AnomalyNone
	}
}

// Record is a raw source record supplied by the caller. Implementations are
// treated as read-only and carried through to the output untouched.
type Record interface {
	LedgerTimestamp() time.Time
	LedgerAmount() Amount
	LedgerReference() string
}

// Event is a normalized, immutable ledger event.
type Event struct {
	Timestamp    time.Time       `json:"timestamp"`
	Kind         EventKind       `json:"kind"`
	SignedAmount decimal.Decimal `json:"signed_amount"`
	GrossAmount  decimal.Decimal `json:"gross_amount"`
	Reference    string          `json:"reference"`
	Anomaly      Anomaly         `json:"anomaly,omitempty"`
	Detail       Record          `json:"detail,omitempty"`

	seq int
}

// Warning reports a source record that was kept in the statement with a zero
// amount because its upstream amount was missing or not a finite number.
type Warning struct {
	Kind      EventKind `json:"kind"`
	Reference string    `json:"reference"`
	Timestamp time.Time `json:"timestamp"`
	Anomaly   Anomaly   `json:"anomaly"`
}

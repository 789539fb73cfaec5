package models

import (
	"time"

	"fuel-ledger/internal/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnitLitres is the unit of tank statements. Money statements carry the
// configured currency code.
const UnitLitres = "L"

// LedgerStatement is a computed account statement for a window
type LedgerStatement struct {
	AccountType    ledger.AccountType `json:"account_type"`
	AccountID      uuid.UUID          `json:"account_id"`
	AccountName    string             `json:"account_name"`
	Unit           string             `json:"unit"`
	From           time.Time          `json:"from"`
	To             time.Time          `json:"to"`
	OpeningBalance decimal.Decimal    `json:"opening_balance"`
	ClosingBalance decimal.Decimal    `json:"closing_balance"`
	Entries        []ledger.Entry     `json:"entries"`
	Rows           []StatementRow     `json:"rows"`
	Before         ledger.Summary     `json:"before"`
	Within         ledger.Summary     `json:"within"`
	ToDate         ledger.Summary     `json:"to_date"`
	Counts         ledger.Counts      `json:"counts"`
	Warnings       []ledger.Warning   `json:"warnings"`
	GeneratedAt    time.Time          `json:"generated_at"`
}

// StatementRow is a display row. A same-day charge and its settlement share
// one row with a combined badge such as "Bill+Payment".
type StatementRow struct {
	Date           time.Time          `json:"date"`
	Badge          string             `json:"badge"`
	Kinds          []ledger.EventKind `json:"kinds"`
	References     []string           `json:"references"`
	BillAmount     decimal.Decimal    `json:"bill_amount"`
	AmountPaid     decimal.Decimal    `json:"amount_paid"`
	Net            decimal.Decimal    `json:"net"`
	RunningBalance decimal.Decimal    `json:"running_balance"`
	Flagged        bool               `json:"flagged,omitempty"`
}

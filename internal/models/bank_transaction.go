package models

import (
	"errors"
	"time"

	"fuel-ledger/internal/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	BankTransactionDeposit    = "deposit"
	BankTransactionWithdrawal = "withdrawal"
	BankTransactionAdjustment = "adjustment" // signed, e.g. bank charges found on reconciliation
)

var (
	ErrBankAccountRequired        = errors.New("bank account ID is required")
	ErrInvalidBankTransactionType = errors.New("invalid bank transaction type")
)

// BankTransaction is a deposit into or withdrawal from a station bank account.
type BankTransaction struct {
	ID              uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	BankAccountID   uuid.UUID           `gorm:"type:uuid;not null;index" json:"bank_account_id"`
	TransactionType string              `gorm:"type:varchar(20);not null" json:"transaction_type"`
	TransactionDate time.Time           `gorm:"not null;index" json:"transaction_date"`
	Reference       string              `gorm:"type:varchar(100)" json:"reference,omitempty"`
	Description     string              `gorm:"type:text" json:"description,omitempty"`
	Amount          decimal.NullDecimal `gorm:"type:decimal(15,2)" json:"amount"`
	CreatedAt       time.Time           `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time           `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for BankTransaction
func (t *BankTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	stampCreate(&t.CreatedAt, &t.UpdatedAt)
	return t.Validate()
}

// Validate validates the bank transaction fields
func (t *BankTransaction) Validate() error {
	if t.BankAccountID == uuid.Nil {
		return ErrBankAccountRequired
	}
	if t.TransactionDate.IsZero() {
		return ErrDateRequired
	}
	if _, ok := bankTransactionKinds[t.TransactionType]; !ok {
		return ErrInvalidBankTransactionType
	}
	return nil
}

// TableName returns the table name for BankTransaction
func (t *BankTransaction) TableName() string {
	return "bank_transactions"
}

var bankTransactionKinds = map[string]ledger.EventKind{
	BankTransactionDeposit:    ledger.KindDeposit,
	BankTransactionWithdrawal: ledger.KindWithdrawal,
	BankTransactionAdjustment: ledger.KindAdjustment,
}

// LedgerKind maps the transaction type to its ledger event kind. Unrecognized
// types map to ledger.KindUnknown.
func (t BankTransaction) LedgerKind() ledger.EventKind {
	if kind, ok := bankTransactionKinds[t.TransactionType]; ok {
		return kind
	}
	return ledger.KindUnknown
}

func (t BankTransaction) LedgerTimestamp() time.Time  { return t.TransactionDate }
func (t BankTransaction) LedgerAmount() ledger.Amount { return ledger.AmountFromNull(t.Amount) }
func (t BankTransaction) LedgerReference() string     { return t.Reference }

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
	PartyTypeCustomer = "customer"
	PartyTypeSupplier = "supplier"

	PaymentMethodCash   = "cash"
	PaymentMethodBank   = "bank"
	PaymentMethodCheque = "cheque"
)

var (
	ErrInvalidPartyType     = errors.New("invalid party type")
	ErrPartyRequired        = errors.New("party ID is required")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// Payment is money received from a customer or paid to a supplier. The same
// table serves both directions; PartyType says which ledger it belongs to.
type Payment struct {
	ID            uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	PartyType     string              `gorm:"type:varchar(20);not null;index:idx_payments_party" json:"party_type"`
	PartyID       uuid.UUID           `gorm:"type:uuid;not null;index:idx_payments_party" json:"party_id"`
	PaymentDate   time.Time           `gorm:"not null;index" json:"payment_date"`
	Method        string              `gorm:"type:varchar(20);not null;default:'cash'" json:"method"`
	Reference     string              `gorm:"type:varchar(100)" json:"reference,omitempty"`
	Amount        decimal.NullDecimal `gorm:"type:decimal(15,2)" json:"amount"`
	BankAccountID *uuid.UUID          `gorm:"type:uuid" json:"bank_account_id,omitempty"`
	Notes         string              `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time           `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time           `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Method == "" {
		p.Method = PaymentMethodCash
	}
	stampCreate(&p.CreatedAt, &p.UpdatedAt)
	return p.Validate()
}

// Validate validates the payment fields
func (p *Payment) Validate() error {
	if p.PartyType != PartyTypeCustomer && p.PartyType != PartyTypeSupplier {
		return ErrInvalidPartyType
	}
	if p.PartyID == uuid.Nil {
		return ErrPartyRequired
	}
	if p.PaymentDate.IsZero() {
		return ErrDateRequired
	}
	switch p.Method {
	case PaymentMethodCash, PaymentMethodBank, PaymentMethodCheque:
	default:
		return ErrInvalidPaymentMethod
	}
	return nil
}

// TableName returns the table name for Payment
func (p *Payment) TableName() string {
	return "payments"
}

func (p Payment) LedgerTimestamp() time.Time  { return p.PaymentDate }
func (p Payment) LedgerAmount() ledger.Amount { return ledger.AmountFromNull(p.Amount) }
func (p Payment) LedgerReference() string     { return p.Reference }

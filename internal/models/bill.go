package models

import (
	"errors"
	"time"

	"fuel-ledger/internal/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrCustomerRequired = errors.New("customer ID is required")
	ErrDateRequired     = errors.New("date is required")
)

// Bill is a credit sale to a customer. Amount is nullable because bills are
// imported from the forecourt system and occasionally arrive without a total.
type Bill struct {
	ID            uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID    uuid.UUID           `gorm:"type:uuid;not null;index" json:"customer_id"`
	BillDate      time.Time           `gorm:"not null;index" json:"bill_date"`
	InvoiceNumber string              `gorm:"type:varchar(50);index" json:"invoice_number"`
	Amount        decimal.NullDecimal `gorm:"type:decimal(15,2)" json:"amount"`
	Litres        decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"litres,omitempty"`
	Notes         string              `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time           `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time           `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	stampCreate(&b.CreatedAt, &b.UpdatedAt)
	return b.Validate()
}

// Validate validates the bill fields
func (b *Bill) Validate() error {
	if b.CustomerID == uuid.Nil {
		return ErrCustomerRequired
	}
	if b.BillDate.IsZero() {
		return ErrDateRequired
	}
	return nil
}

// TableName returns the table name for Bill
func (b *Bill) TableName() string {
	return "bills"
}

func (b Bill) LedgerTimestamp() time.Time  { return b.BillDate }
func (b Bill) LedgerAmount() ledger.Amount { return ledger.AmountFromNull(b.Amount) }
func (b Bill) LedgerReference() string     { return b.InvoiceNumber }

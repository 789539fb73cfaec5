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
	ErrSupplierRequired = errors.New("supplier ID is required")
	ErrTankRequired     = errors.New("tank ID is required")
	ErrInvalidLitres    = errors.New("litres cannot be negative")
)

// Purchase is a non-fuel purchase on supplier credit (lubricants, spares,
// shop stock).
type Purchase struct {
	ID           uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	SupplierID   uuid.UUID           `gorm:"type:uuid;not null;index" json:"supplier_id"`
	PurchaseDate time.Time           `gorm:"not null;index" json:"purchase_date"`
	Reference    string              `gorm:"type:varchar(100)" json:"reference,omitempty"`
	Description  string              `gorm:"type:text" json:"description,omitempty"`
	Amount       decimal.NullDecimal `gorm:"type:decimal(15,2)" json:"amount"`
	CreatedAt    time.Time           `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time           `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Purchase
func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	stampCreate(&p.CreatedAt, &p.UpdatedAt)
	return p.Validate()
}

// Validate validates the purchase fields
func (p *Purchase) Validate() error {
	if p.SupplierID == uuid.Nil {
		return ErrSupplierRequired
	}
	if p.PurchaseDate.IsZero() {
		return ErrDateRequired
	}
	return nil
}

// TableName returns the table name for Purchase
func (p *Purchase) TableName() string {
	return "purchases"
}

func (p Purchase) LedgerTimestamp() time.Time  { return p.PurchaseDate }
func (p Purchase) LedgerAmount() ledger.Amount { return ledger.AmountFromNull(p.Amount) }
func (p Purchase) LedgerReference() string     { return p.Reference }

// FuelPurchase is a tanker delivery. It appears on the supplier ledger as
// money owed and on the tank ledger as litres received.
type FuelPurchase struct {
	ID           uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	SupplierID   uuid.UUID           `gorm:"type:uuid;not null;index" json:"supplier_id"`
	TankID       uuid.UUID           `gorm:"type:uuid;not null;index" json:"tank_id"`
	PurchaseDate time.Time           `gorm:"not null;index" json:"purchase_date"`
	Reference    string              `gorm:"type:varchar(100)" json:"reference,omitempty"`
	Litres       decimal.Decimal     `gorm:"type:decimal(12,2);not null" json:"litres"`
	Rate         decimal.Decimal     `gorm:"type:decimal(10,4);not null;default:0" json:"rate"`
	Amount       decimal.NullDecimal `gorm:"type:decimal(15,2)" json:"amount"`
	CreatedAt    time.Time           `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time           `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for FuelPurchase
func (f *FuelPurchase) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	stampCreate(&f.CreatedAt, &f.UpdatedAt)
	return f.Validate()
}

// Validate validates the fuel purchase fields
func (f *FuelPurchase) Validate() error {
	if f.SupplierID == uuid.Nil {
		return ErrSupplierRequired
	}
	if f.TankID == uuid.Nil {
		return ErrTankRequired
	}
	if f.PurchaseDate.IsZero() {
		return ErrDateRequired
	}
	if f.Litres.IsNegative() {
		return ErrInvalidLitres
	}
	return nil
}

// TableName returns the table name for FuelPurchase
func (f *FuelPurchase) TableName() string {
	return "fuel_purchases"
}

// Total returns the invoiced amount, falling back to litres * rate when the
// invoice total was not recorded.
func (f FuelPurchase) Total() decimal.NullDecimal {
	if f.Amount.Valid {
		return f.Amount
	}
	if f.Rate.IsZero() {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(f.Litres.Mul(f.Rate).Round(2))
}

func (f FuelPurchase) LedgerTimestamp() time.Time  { return f.PurchaseDate }
func (f FuelPurchase) LedgerAmount() ledger.Amount { return ledger.AmountFromNull(f.Total()) }
func (f FuelPurchase) LedgerReference() string     { return f.Reference }

// StockRecord views the delivery in litres for the tank ledger.
func (f FuelPurchase) StockRecord() ledger.Record {
	return fuelDelivery{f}
}

type fuelDelivery struct {
	FuelPurchase
}

func (d fuelDelivery) LedgerAmount() ledger.Amount {
	return ledger.AmountOf(d.Litres)
}

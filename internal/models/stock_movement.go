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
	StockMovementAddition   = "addition"
	StockMovementRemoval    = "removal"
	StockMovementAdjustment = "adjustment" // signed dip-reading correction
)

var (
	ErrInvalidStockMovementType = errors.New("invalid stock movement type")
)

// StockMovement is a change in tank stock other than a tanker delivery:
// nozzle sales, transfers between tanks and dip corrections.
type StockMovement struct {
	ID           uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	TankID       uuid.UUID           `gorm:"type:uuid;not null;index" json:"tank_id"`
	MovementType string              `gorm:"type:varchar(20);not null" json:"movement_type"`
	MovementDate time.Time           `gorm:"not null;index" json:"movement_date"`
	Reference    string              `gorm:"type:varchar(100)" json:"reference,omitempty"`
	Litres       decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"litres"`
	Notes        string              `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time           `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time           `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for StockMovement
func (m *StockMovement) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	stampCreate(&m.CreatedAt, &m.UpdatedAt)
	return m.Validate()
}

// Validate validates the stock movement fields
func (m *StockMovement) Validate() error {
	if m.TankID == uuid.Nil {
		return ErrTankRequired
	}
	if m.MovementDate.IsZero() {
		return ErrDateRequired
	}
	if _, ok := stockMovementKinds[m.MovementType]; !ok {
		return ErrInvalidStockMovementType
	}
	return nil
}

// TableName returns the table name for StockMovement
func (m *StockMovement) TableName() string {
	return "stock_movements"
}

var stockMovementKinds = map[string]ledger.EventKind{
	StockMovementAddition:   ledger.KindStockAddition,
	StockMovementRemoval:    ledger.KindStockRemoval,
	StockMovementAdjustment: ledger.KindAdjustment,
}

// LedgerKind maps the movement type to its ledger event kind. Unrecognized
// types map to ledger.KindUnknown.
func (m StockMovement) LedgerKind() ledger.EventKind {
	if kind, ok := stockMovementKinds[m.MovementType]; ok {
		return kind
	}
	return ledger.KindUnknown
}

func (m StockMovement) LedgerTimestamp() time.Time  { return m.MovementDate }
func (m StockMovement) LedgerAmount() ledger.Amount { return ledger.AmountFromNull(m.Litres) }
func (m StockMovement) LedgerReference() string     { return m.Reference }

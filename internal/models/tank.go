package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	FuelTypePetrol   = "petrol"
	FuelTypeDiesel   = "diesel"
	FuelTypeHiOctane = "hi_octane"
)

var (
	ErrInvalidFuelType = errors.New("invalid fuel type")
	ErrInvalidCapacity = errors.New("tank capacity must be positive")
)

// Tank is an underground storage tank. Its ledger balance is litres in stock.
type Tank struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name         string          `gorm:"type:varchar(100);not null" json:"name"`
	FuelType     string          `gorm:"type:varchar(20);not null;index" json:"fuel_type"`
	Capacity     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"capacity"`
	OpeningStock decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"opening_stock"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`

	Movements []StockMovement `gorm:"foreignKey:TankID" json:"-"`
}

// BeforeCreate hook for Tank
func (t *Tank) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	stampCreate(&t.CreatedAt, &t.UpdatedAt)
	return t.Validate()
}

// Validate validates the tank fields
func (t *Tank) Validate() error {
	if t.Name == "" {
		return ErrNameRequired
	}
	if !IsValidFuelType(t.FuelType) {
		return ErrInvalidFuelType
	}
	if !t.Capacity.IsPositive() {
		return ErrInvalidCapacity
	}
	return nil
}

// TableName returns the table name for Tank
func (t *Tank) TableName() string {
	return "tanks"
}

// IsValidFuelType checks if the fuel type is valid
func IsValidFuelType(fuelType string) bool {
	switch fuelType {
	case FuelTypePetrol, FuelTypeDiesel, FuelTypeHiOctane:
		return true
	default:
		return false
	}
}

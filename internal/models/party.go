package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNameRequired = errors.New("name is required")
)

// Customer is a credit customer of the station. A positive balance is what
// the customer owes.
type Customer struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name           string          `gorm:"type:varchar(255);not null;index" json:"name"`
	Phone          string          `gorm:"type:varchar(20);index" json:"phone,omitempty"`
	VehicleNumber  string          `gorm:"type:varchar(20)" json:"vehicle_number,omitempty"`
	OpeningBalance decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"opening_balance"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`

	Bills []Bill `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate hook for Customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	stampCreate(&c.CreatedAt, &c.UpdatedAt)
	return c.Validate()
}

// Validate validates the customer fields
func (c *Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

// TableName returns the table name for Customer
func (c *Customer) TableName() string {
	return "customers"
}

// Supplier is a vendor the station buys fuel and goods from. A positive
// balance is what the station owes the supplier.
type Supplier struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name           string          `gorm:"type:varchar(255);not null;index" json:"name"`
	Phone          string          `gorm:"type:varchar(20)" json:"phone,omitempty"`
	OpeningBalance decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"opening_balance"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`

	Purchases     []Purchase     `gorm:"foreignKey:SupplierID" json:"-"`
	FuelPurchases []FuelPurchase `gorm:"foreignKey:SupplierID" json:"-"`
}

// BeforeCreate hook for Supplier
func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	stampCreate(&s.CreatedAt, &s.UpdatedAt)
	return s.Validate()
}

// Validate validates the supplier fields
func (s *Supplier) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

// TableName returns the table name for Supplier
func (s *Supplier) TableName() string {
	return "suppliers"
}

// stampCreate sets timestamps if not already set (for tests)
func stampCreate(createdAt, updatedAt *time.Time) {
	now := time.Now()
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt.IsZero() {
		*updatedAt = now
	}
}
